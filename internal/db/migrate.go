package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"inequality-analytics/internal/config"
)

// Migrate brings the indicator schema up to date for the given driver.
// SQLite goes through goose; DuckDB executes the embedded DDL directly
// (the DDL is written to be idempotent).
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	switch driver {
	case config.DriverSQLite:
		return RunMigrations(db)
	case config.DriverDuckDB:
		if _, err := db.ExecContext(ctx, EmbedDuckDBSchema); err != nil {
			return fmt.Errorf("apply duckdb schema: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}
}

// RunMigrations executes all pending goose migrations against SQLite.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(EmbedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
