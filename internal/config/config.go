// Package config loads domkit-watch's environment-variable configuration,
// mirroring the env-var-with-defaults shape domkit's teacher uses for its
// own CLI configuration.
package config

import (
	"os"
	"strconv"
)

// Config holds domkit-watch's runtime configuration.
type Config struct {
	DatabasePath  string
	Debug         bool
	RecordHistory int
}

// LoadConfig loads configuration from environment variables, falling back
// to sensible defaults for a local demo run.
func LoadConfig() *Config {
	cfg := &Config{
		DatabasePath:  os.Getenv("DOMKIT_WATCH_DB"),
		RecordHistory: 500,
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "domkit-watch.db"
	}

	if debugStr := os.Getenv("DOMKIT_WATCH_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if historyStr := os.Getenv("DOMKIT_WATCH_HISTORY"); historyStr != "" {
		if history, err := strconv.Atoi(historyStr); err == nil && history > 0 {
			cfg.RecordHistory = history
		}
	}

	return cfg
}
