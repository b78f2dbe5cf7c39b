package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inequality-analytics/internal/db"
	"inequality-analytics/internal/db/repository"
	"inequality-analytics/internal/service/export"
	"inequality-analytics/internal/service/report"
)

func newReportCmd(opts *options) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "report <slug>",
		Short: "Run a single report and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.Get(args[0])
			if err != nil {
				return err
			}

			conn, err := db.Open(opts.cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			ds, err := repository.NewSnapshotRepo(conn).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load snapshot: %w", err)
			}

			res, err := rep.Run(ds)
			if err != nil {
				return fmt.Errorf("run %s: %w", rep.Slug, err)
			}

			if asCSV {
				return export.WriteCSV(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", rep.Title)
			printTable(cmd.OutOrStdout(), res)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d row(s)\n", res.RowCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "Print CSV instead of a table")
	return cmd
}
