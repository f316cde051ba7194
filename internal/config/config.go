// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mmynk/investcalc/internal/render"
)

// Config holds the server and CLI settings.
type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	Locale        string `env:"LOCALE" envDefault:"en-US"`
	Currency      string `env:"CURRENCY" envDefault:"USD"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Format returns the money display format for the configured locale and currency.
func (c Config) Format() (render.Format, error) {
	return render.ParseFormat(c.Locale, c.Currency)
}
