// Package config loads folio settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration.
type Config struct {
	// APIURL is the catalog service base URL. It is treated as opaque and
	// only validated when a request is built.
	APIURL string `env:"FOLIO_API_URL" envDefault:"http://localhost:8000"`

	// Locale is the UI language used when no preference is stored. Empty
	// means detect from LC_ALL/LC_MESSAGES/LANG.
	Locale string `env:"FOLIO_LOCALE"`

	// QueryLocale is the locale the service stores category names in.
	// Category filters are sent as labels in this locale.
	QueryLocale string `env:"FOLIO_QUERY_LOCALE" envDefault:"ru"`

	TimeoutMs int `env:"FOLIO_TIMEOUT_MS" envDefault:"10000"`

	// DBPath is the preferences database. Empty means ~/.folio/folio.db.
	DBPath string `env:"FOLIO_DB"`

	// LogFile receives request logs. "-" writes to stderr; empty disables.
	LogFile string `env:"FOLIO_LOG_FILE"`
}

// Load parses the environment into a Config and fills derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TimeoutMs <= 0 {
		return Config{}, fmt.Errorf("FOLIO_TIMEOUT_MS must be positive, got %d", cfg.TimeoutMs)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".folio", "folio.db")
	}
	return cfg, nil
}

// Timeout returns the HTTP request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
