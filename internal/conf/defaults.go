// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.timezone", "Local")

	v.SetDefault("directory.statusfilter", "all")
	v.SetDefault("directory.cachettl", 5*time.Minute)

	v.SetDefault("overlay.maxframedelta", 0.3)
}
