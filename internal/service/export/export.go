// Package export renders report results as CSV files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"inequality-analytics/internal/domain"
	"inequality-analytics/internal/service/report"
)

// Summary describes the outcome of exporting one report.
type Summary struct {
	Slug     string
	Title    string
	RowCount int
	Path     string
	Err      error
}

// Runner exports the report catalogue to an output directory and records
// each export in report_runs.
type Runner struct {
	outputDir string
	runs      domain.ReportRunRepository
	log       *slog.Logger
}

// NewRunner creates a Runner. runs may be nil to skip run logging.
func NewRunner(outputDir string, runs domain.ReportRunRepository, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{outputDir: outputDir, runs: runs, log: log}
}

// WriteAll runs every catalogue report against the snapshot and writes one
// CSV per report. Reports are independent: a failure in one is recorded in
// its summary and the rest still run.
func (r *Runner) WriteAll(ctx context.Context, ds *domain.Dataset) ([]Summary, error) {
	if err := os.MkdirAll(r.outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	catalog := report.Catalog()
	summaries := make([]Summary, 0, len(catalog))
	for i, rep := range catalog {
		summary := Summary{Slug: rep.Slug, Title: rep.Title}
		path := filepath.Join(r.outputDir, fmt.Sprintf("%02d_%s.csv", i+1, rep.Slug))

		start := time.Now()
		res, err := rep.Run(ds)
		if err != nil {
			summary.Err = fmt.Errorf("run %s: %w", rep.Slug, err)
			r.log.Warn("report failed", "report", rep.Slug, "error", err)
			summaries = append(summaries, summary)
			continue
		}

		if err := writeFile(path, res); err != nil {
			summary.Err = err
			r.log.Warn("export failed", "report", rep.Slug, "error", err)
			summaries = append(summaries, summary)
			continue
		}

		summary.RowCount = res.RowCount()
		summary.Path = path
		summaries = append(summaries, summary)
		r.log.Info("exported report", "report", rep.Slug, "rows", res.RowCount(), "path", path)

		r.logRun(ctx, rep.Slug, res.RowCount(), time.Since(start), path)
	}
	return summaries, nil
}

// logRun records the export best-effort; a run-log failure never fails the
// export itself.
func (r *Runner) logRun(ctx context.Context, slug string, rows int, took time.Duration, path string) {
	if r.runs == nil {
		return
	}
	err := r.runs.Insert(ctx, &domain.ReportRun{
		ReportSlug: slug,
		RowCount:   int64(rows),
		DurationMs: took.Milliseconds(),
		OutputPath: &path,
	})
	if err != nil {
		r.log.Warn("record report run", "report", slug, "error", err)
	}
}

func writeFile(path string, res *report.Result) error {
	f, err := os.Create(path) //nolint:gosec // path is built from the fixed catalogue
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, res); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV renders a result as CSV: a header row, then one record per row.
// Floats use two decimal places, absent values render as empty cells.
// Output is byte-identical for identical results.
func WriteCSV(w io.Writer, res *report.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return err
	}
	record := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for i := range record {
			record[i] = ""
		}
		for i, v := range row {
			if i >= len(record) {
				break
			}
			record[i] = FormatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatCell renders one result cell as text.
func FormatCell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', 2, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
