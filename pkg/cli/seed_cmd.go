package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"inequality-analytics/internal/db"
	"inequality-analytics/internal/db/repository"
	"inequality-analytics/internal/service/seed"
)

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the synthetic indicator dataset (no-op if already loaded)",
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

			repo := repository.NewIndicatorRepo(conn)
			loaded, err := seed.New(repo, opts.cfg.Seed, opts.log).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if !loaded {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already seeded, nothing to do")
				return nil
			}

			counts, err := repo.TableCounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("count tables: %w", err)
			}
			tables := make([]string, 0, len(counts))
			for t := range counts {
				tables = append(tables, t)
			}
			sort.Strings(tables)
			for _, t := range tables {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-22s %d rows\n", t, counts[t])
			}
			return nil
		},
	}
}
