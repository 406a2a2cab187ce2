package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver   string `mapstructure:"db_driver" validate:"required,oneof=mysql postgres sqlite"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBPath     string `mapstructure:"db_path"`
	ServerPort int    `mapstructure:"server_port" validate:"required,gt=0,lt=65536"`
	GinMode    string `mapstructure:"gin_mode" validate:"required,oneof=debug release test"`
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

var defaults = map[string]any{
	"db_driver":   "mysql",
	"db_host":     "localhost",
	"db_port":     "3306",
	"db_user":     "taskuser",
	"db_password": "taskpassword",
	"db_name":     "task_management",
	"db_path":     "task_management.db",
	"server_port": 8080,
	"gin_mode":    "debug",
	"log_level":   "info",
}

// Load reads the configuration from environment variables (DB_HOST, DB_PORT, ...)
// falling back to the defaults above, and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.DBDriver != "sqlite" && cfg.DBHost == "" {
		return nil, fmt.Errorf("invalid config: DB_HOST is required for driver %s", cfg.DBDriver)
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
