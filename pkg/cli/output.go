package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"inequality-analytics/internal/service/export"
	"inequality-analytics/internal/service/report"
)

// printTable renders a result as an aligned text table.
func printTable(w io.Writer, res *report.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))

	sep := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		sep[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	cells := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = export.FormatCell(row[i])
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}
