package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_PATH", "DB_DRIVER", "OUTPUT_DIR", "SEED", "LOG_LEVEL", "ENV"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "global_inequality.db", cfg.DBPath)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("DB_DRIVER", "DUCKDB")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("SEED", "7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "production")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, DriverDuckDB, cfg.DBDriver)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.IsProduction())
}

func TestLoadFromEnv_InvalidDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_InvalidSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED", "not-a-number")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_ZeroSeedFallsBackWithWarning(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED", "0")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Len(t, cfg.Warnings, 1)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "duckdb") // real env wins over the file

	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nDB_PATH=\"/tmp/dotenv.db\"\nDB_DRIVER=sqlite\nLOG_LEVEL='debug'\nmalformed line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "/tmp/dotenv.db", os.Getenv("DB_PATH"))
	assert.Equal(t, "duckdb", os.Getenv("DB_DRIVER"))
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"))
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "abc", stripQuotes(`"abc"`))
	assert.Equal(t, "abc", stripQuotes("'abc'"))
	assert.Equal(t, `"abc'`, stripQuotes(`"abc'`))
	assert.Equal(t, "abc", stripQuotes("abc"))
	assert.Equal(t, `"`, stripQuotes(`"`))
}
