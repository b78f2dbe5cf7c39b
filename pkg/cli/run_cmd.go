package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inequality-analytics/internal/db"
	"inequality-analytics/internal/db/repository"
	"inequality-analytics/internal/service/export"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full report catalogue and export each report as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := db.Open(opts.cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			ds, err := repository.NewSnapshotRepo(conn).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load snapshot: %w", err)
			}
			for _, orphan := range ds.Orphans {
				opts.log.Warn("dropped fact row for unknown country", "country", orphan)
			}

			runner := export.NewRunner(opts.cfg.OutputDir, repository.NewRunLogRepo(conn), opts.log)
			summaries, err := runner.WriteAll(cmd.Context(), ds)
			if err != nil {
				return err
			}

			failed := 0
			for _, s := range summaries {
				if s.Err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "  FAIL %-28s %v\n", s.Slug, s.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  OK   %-28s %4d rows  %s\n", s.Slug, s.RowCount, s.Path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d reports exported to %s\n", len(summaries)-failed, len(summaries), opts.cfg.OutputDir)
			if failed > 0 {
				return fmt.Errorf("%d report(s) failed", failed)
			}
			return nil
		},
	}
}
