// README: Config loader with env defaults for logging and service identity.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "RIDESHARE"

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json text"`
}

type Config struct {
	Service struct {
		Name string `validate:"required"`
	}
	Log LogConfig
}

// Load reads RIDESHARE_* environment variables over the built-in defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("service_name", "rideshare")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "json")

	var cfg Config
	cfg.Service.Name = v.GetString("service_name")
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
