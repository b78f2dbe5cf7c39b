// Package report implements the analytical report catalogue. Every report
// is a pure function of an immutable dataset snapshot: window semantics
// (lag, ranking, percentile bucketing) are explicit sort-then-scan passes
// over in-memory slices, partitioned by the relevant grouping key.
package report

// Result holds the structured output of one report: named columns and
// ordered rows. Cell values are string, int, float64 or nil (absent).
type Result struct {
	Columns []string
	Rows    [][]interface{}
}

// RowCount returns the number of rows in the result.
func (r *Result) RowCount() int { return len(r.Rows) }
