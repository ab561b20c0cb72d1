// Package config loads CLI configuration from ARBOR_* environment
// variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all CLI configuration.
type Config struct {
	Root    string `envconfig:"ARBOR_ROOT" default:""`
	Logging LogConfig
	Listing ListConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"ARBOR_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"ARBOR_LOG_DEV" default:"false"`
}

// ListConfig holds defaults for listing commands.
type ListConfig struct {
	IncludeHidden bool `envconfig:"ARBOR_SHOW_HIDDEN" default:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or falls back to
// defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "info"},
	}
}
