// Package config loads service settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all settings for a report run, populated from environment variables.
type Config struct {
	OutputDir    string `env:"OUTPUT_DIR" envDefault:"."`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	Seed         int64  `env:"SEED" envDefault:"0"`
	ChartEnabled bool   `env:"CHART_ENABLED" envDefault:"true"`

	// MetricsAddr exposes /metrics when set, e.g. ":9090". Empty disables the endpoint.
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}
