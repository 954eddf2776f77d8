package config

import "github.com/spf13/viper"

// Config holds runtime configuration for the icogrid CLI.
// Values are populated from .icogrid.yaml, ICOGRID_* env vars, and flags.
type Config struct {
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
