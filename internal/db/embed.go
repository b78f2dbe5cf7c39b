package db

import "embed"

// EmbedMigrations contains the embedded SQL migration files for SQLite.
//
//go:embed migrations/*.sql
var EmbedMigrations embed.FS

// EmbedDuckDBSchema contains the equivalent DDL for DuckDB, applied
// directly because goose has no DuckDB dialect.
//
//go:embed schema/duckdb.sql
var EmbedDuckDBSchema string
