package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidar/event-planner/internal/config"
	"github.com/aidar/event-planner/internal/repository/postgres"
	"github.com/aidar/event-planner/internal/seed"
	"github.com/aidar/event-planner/internal/service"
)

func migrateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Import the seed dataset into the database",
		Long: `Import the seed dataset into the database in a single transaction.

The embedded dataset is used unless --file or SEED_FILE names another one.
Running it against an already seeded database fails without changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg, seedCfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			if file == "" {
				file = seedCfg.File
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, dbCfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			svc := service.NewMigrationService(postgres.NewSeedRepository(pool), seed.Source(file), logger)
			if err := svc.Migrate(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migration completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed YAML file (default: embedded dataset)")

	return cmd
}
