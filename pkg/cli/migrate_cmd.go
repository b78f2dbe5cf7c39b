package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inequality-analytics/internal/db"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations to the indicator database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := db.Open(opts.cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.Migrate(cmd.Context(), conn, opts.cfg.DBDriver); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			opts.log.Info("migrations applied", "db", opts.cfg.DBPath, "driver", opts.cfg.DBDriver)
			fmt.Fprintf(cmd.OutOrStdout(), "Schema up to date (%s, %s)\n", opts.cfg.DBDriver, opts.cfg.DBPath)
			return nil
		},
	}
}
