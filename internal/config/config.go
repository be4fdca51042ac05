// Package config provides application configuration loading from environment variables and .env files.
// It uses viper for flexible configuration management with sensible defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from environment variables or .env file.
// Configuration priority: environment variables > .env file > defaults.
type Config struct {
	AppEnv      string // Application environment (dev, staging, prod)
	HTTPAddr    string // HTTP server bind address (e.g., ":8080")
	MetricsAddr string // Metrics server bind address
	SchemaFile  string // Optional YAML file merged over the built-in property schema
}

// Load reads configuration from environment variables and .env file (if present).
// Environment variables take precedence over .env file values.
func Load() (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigFile(".env") // Optional; silently ignored if file doesn't exist
	_ = viperInstance.ReadInConfig()    // Ignore error - .env is optional
	viperInstance.AutomaticEnv()        // Read from environment variables

	setConfigDefaults(viperInstance)

	return &Config{
		AppEnv:      viperInstance.GetString("APP_ENV"),
		HTTPAddr:    viperInstance.GetString("APP_HTTP_ADDR"),
		MetricsAddr: viperInstance.GetString("METRICS_ADDR"),
		SchemaFile:  viperInstance.GetString("SCHEMA_FILE"),
	}, nil
}

// setConfigDefaults sets default values for all configuration options.
// These defaults are suitable for local development.
func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_HTTP_ADDR", ":8080")
	v.SetDefault("METRICS_ADDR", ":9090")
	v.SetDefault("SCHEMA_FILE", "")
}

// ValidationError represents a configuration validation error with details about what failed.
type ValidationError struct {
	Field   string // Name of the configuration field
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed [%s]: %s", e.Field, e.Message)
}

// Validate checks that the configuration is suitable for startup.
// It performs stricter checks than Load and is intended to fail fast on
// misconfiguration.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return ValidationError{
			Field:   "APP_HTTP_ADDR",
			Message: "HTTP server address cannot be empty",
		}
	}

	if c.MetricsAddr == "" {
		return ValidationError{
			Field:   "METRICS_ADDR",
			Message: "metrics server address cannot be empty",
		}
	}

	if c.AppEnv == "" {
		return ValidationError{
			Field:   "APP_ENV",
			Message: "application environment cannot be empty",
		}
	}

	return nil
}
