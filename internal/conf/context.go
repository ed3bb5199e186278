package conf

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/observability"
)

// Context carries what every command needs: the settings that are filled in
// once flags are parsed, the viper instance flags bind into, and the metrics.
type Context struct {
	Settings *Settings
	Viper    *viper.Viper
	Metrics  *observability.Metrics
}

// NewContext creates a Context with empty settings and a private viper instance.
func NewContext() (*Context, error) {
	m, err := observability.NewMetrics()
	if err != nil {
		return nil, err
	}
	return &Context{
		Settings: &Settings{},
		Viper:    viper.New(),
		Metrics:  m,
	}, nil
}

// BindFlag binds a command flag to a config key so the flag overrides the
// config file and environment when set.
func (c *Context) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return errors.Newf("no flag to bind for config key %q", key).
			Category(errors.CategoryConfiguration).
			Build()
	}
	return c.Viper.BindPFlag(key, flag)
}

// Load reads configuration into c.Settings.
func (c *Context) Load(configFile string) error {
	settings, err := Load(c.Viper, configFile)
	if err != nil {
		return err
	}
	*c.Settings = *settings
	return nil
}
