// Package conf provides configuration management for the feederwatch dashboard.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/logger"
)

// EnvPrefix is prepended to every environment override, e.g.
// FEEDERWATCH_DIRECTORY_CACHETTL=1m.
const EnvPrefix = "FEEDERWATCH"

// Settings contains all configuration options.
type Settings struct {
	Debug bool `yaml:"debug" mapstructure:"debug"` // true to enable debug logging

	Logging logger.LoggingConfig `yaml:"logging" mapstructure:"logging"`

	Directory DirectorySettings `yaml:"directory" mapstructure:"directory"`
	Overlay   OverlaySettings   `yaml:"overlay" mapstructure:"overlay"`
}

// DirectorySettings controls the species directory view.
type DirectorySettings struct {
	StatusFilter string        `yaml:"statusfilter" mapstructure:"statusfilter"` // all, regional or observed
	CacheTTL     time.Duration `yaml:"cachettl" mapstructure:"cachettl"`         // view memoisation lifetime, 0 disables
}

// OverlaySettings controls the video overlay.
type OverlaySettings struct {
	MaxFrameDelta float64 `yaml:"maxframedelta" mapstructure:"maxframedelta"` // seconds a frame sample stays current
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads defaults, the optional config file and FEEDERWATCH_ environment
// variables into v, validates the result and stores it as the current
// settings. An empty configFile searches the default config paths.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	if err := initViper(v, configFile); err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error unmarshaling config into struct: %w", err)).
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	settingsInstance = settings
	return settings, nil
}

// initViper sets defaults and reads the configuration file. A missing file in
// the search paths is not an error; a missing explicit file is.
func initViper(v *viper.Viper, configFile string) error {
	setDefaultConfig(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, path := range GetDefaultConfigPaths() {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			GetLogger().Debug("No config file found, using defaults")
			return nil
		}
		return errors.New(fmt.Errorf("error reading config file: %w", err)).
			Category(errors.CategoryConfiguration).
			FileContext(configFile).
			Build()
	}

	GetLogger().Debug("Loaded config file", logger.String("path", v.ConfigFileUsed()))
	return nil
}

// GetDefaultConfigPaths returns the directories searched for config.yaml, in
// priority order.
func GetDefaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "feederwatch"))
	}
	return append(paths, "/etc/feederwatch")
}

// GetSettings returns the settings stored by the last successful Load, or nil.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// GetLogger returns the config package logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("config")
}
