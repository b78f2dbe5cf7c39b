// Package cli implements the ineq command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"inequality-analytics/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

// options carries the resolved configuration into subcommands.
type options struct {
	cfg *config.Config
	log *slog.Logger
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		dbPath    string
		dbDriver  string
		outputDir string
		profile   string
	)
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "ineq",
		Short:         "Global inequality analytics CLI",
		Long:          "Batch analytics over the global inequality indicator database: schema migrations, synthetic data loading, and a catalogue of 15 CSV reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load .env first so LoadFromEnv sees it.
			if err := config.LoadDotEnv(".env"); err != nil {
				return err
			}
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}

			// Profile values fill gaps left by env; flags win over both.
			userCfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional.
				userCfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
			}
			p := userCfg.ActiveProfile(profile)

			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			} else if os.Getenv("DB_PATH") == "" && p.DBPath != "" {
				cfg.DBPath = p.DBPath
			}
			if cmd.Flags().Changed("driver") {
				cfg.DBDriver = dbDriver
			} else if os.Getenv("DB_DRIVER") == "" && p.DBDriver != "" {
				cfg.DBDriver = p.DBDriver
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			} else if os.Getenv("OUTPUT_DIR") == "" && p.OutputDir != "" {
				cfg.OutputDir = p.OutputDir
			}
			if cfg.DBDriver != config.DriverSQLite && cfg.DBDriver != config.DriverDuckDB {
				return fmt.Errorf("invalid driver %q: must be %q or %q", cfg.DBDriver, config.DriverSQLite, config.DriverDuckDB)
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
			slog.SetDefault(log)
			for _, w := range cfg.Warnings {
				log.Warn(w)
			}

			opts.cfg = cfg
			opts.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default global_inequality.db)")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Database driver: sqlite or duckdb (default sqlite)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory for exported CSV reports (default reports)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")

	rootCmd.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newRunCmd(opts),
		newReportCmd(opts),
		newReportsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
