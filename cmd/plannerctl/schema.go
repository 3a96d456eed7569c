package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidar/event-planner/internal/config"
	"github.com/aidar/event-planner/internal/repository/postgres"
	"github.com/aidar/event-planner/migrations"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema up|down",
		Short:     "Create or drop the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(migrations.Up), string(migrations.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg, _, err := config.LoadDatabase()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, dbCfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			dir := migrations.Direction(args[0])
			if err := postgres.ApplySchema(ctx, pool, dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema %s applied\n", dir)
			return nil
		},
	}
}
