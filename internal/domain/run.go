package domain

import (
	"context"
	"time"
)

// ReportRun is one row of report_runs — a record of a report export.
type ReportRun struct {
	ID         string
	ReportSlug string
	RowCount   int64
	DurationMs int64
	OutputPath *string
	CreatedAt  time.Time
}

// ReportRunRepository stores report run records.
type ReportRunRepository interface {
	Insert(ctx context.Context, run *ReportRun) error
	List(ctx context.Context, limit int) ([]ReportRun, error)
}
