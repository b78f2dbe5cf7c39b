package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inequality-analytics/internal/service/report"
)

func newReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the report catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i, rep := range report.Catalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-28s %s\n", i+1, rep.Slug, rep.Title)
			}
			return nil
		},
	}
}
