package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTestSQLite opens a hardened SQLite write pool in t.TempDir(), runs all
// pending migrations, and registers cleanup.
func OpenTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := OpenSQLite(path, "write", 0)
	if err != nil {
		t.Fatalf("open test sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}
