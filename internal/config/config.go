// Package config loads engine configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the knobs the embedding process can set.
type Config struct {
	// DBPath is the SQLite database file. Parent directories are
	// created on open.
	DBPath string `env:"LEDGER_DB_PATH" envDefault:"./data/ledger.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
