package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inequality-analytics/internal/domain"
)

// Compile-time check.
var _ domain.ReportRunRepository = (*RunLogRepo)(nil)

// RunLogRepo records report export runs in report_runs.
type RunLogRepo struct {
	db *sql.DB
}

// NewRunLogRepo creates a new RunLogRepo.
func NewRunLogRepo(db *sql.DB) *RunLogRepo {
	return &RunLogRepo{db: db}
}

// Insert stores a run record, assigning an id when the caller left it empty.
func (r *RunLogRepo) Insert(ctx context.Context, run *domain.ReportRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO report_runs (id, report_slug, row_count, duration_ms, output_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.ReportSlug, run.RowCount, run.DurationMs, run.OutputPath,
		run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert report run: %w", err)
	}
	return nil
}

// List returns the most recent run records, newest first.
func (r *RunLogRepo) List(ctx context.Context, limit int) ([]domain.ReportRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, report_slug, row_count, duration_ms, output_path, created_at
		 FROM report_runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list report runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.ReportRun
	for rows.Next() {
		var run domain.ReportRun
		var path sql.NullString
		var created interface{}
		if err := rows.Scan(&run.ID, &run.ReportSlug, &run.RowCount, &run.DurationMs, &path, &created); err != nil {
			return nil, fmt.Errorf("scan report run: %w", err)
		}
		if path.Valid {
			p := path.String
			run.OutputPath = &p
		}
		// SQLite stores the timestamp as TEXT, DuckDB as TIMESTAMP.
		switch v := created.(type) {
		case time.Time:
			run.CreatedAt = v
		case string:
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				run.CreatedAt = ts
			}
		case []byte:
			if ts, err := time.Parse(time.RFC3339, string(v)); err == nil {
				run.CreatedAt = ts
			}
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
