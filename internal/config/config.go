// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Supported store drivers.
const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

// Config holds the configuration for the analytics CLI.
type Config struct {
	DBPath    string // path to the database file
	DBDriver  string // "sqlite" (default) or "duckdb"
	OutputDir string // directory for exported CSV reports
	Seed      int64  // PRNG seed for the synthetic loader
	LogLevel  string // log level: debug, info, warn, error (default "info")
	Env       string // environment: "development" (default) or "production"

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables.
// All variables are optional — defaults produce a working local setup.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:    os.Getenv("DB_PATH"),
		DBDriver:  strings.ToLower(os.Getenv("DB_DRIVER")),
		OutputDir: os.Getenv("OUTPUT_DIR"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		Env:       os.Getenv("ENV"),
	}

	if v := os.Getenv("SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = n
	}

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "global_inequality.db"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "reports"
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
		if os.Getenv("SEED") == "0" {
			cfg.Warnings = append(cfg.Warnings, "SEED=0 is reserved — using default seed 42")
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverDuckDB {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be %q or %q", cfg.DBDriver, DriverSQLite, DriverDuckDB)
	}

	return cfg, nil
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be in KEY=VALUE format. Comments (#) and blank
// lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
