package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aidar/event-planner/internal/seed"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect seed datasets",
	}
	cmd.AddCommand(seedValidateCmd())
	return cmd
}

func seedValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a seed file for broken references",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			data, err := seed.Source(path)()
			if err != nil {
				return err
			}

			counts := data.Counts()
			tables := make([]string, 0, len(counts))
			for table := range counts {
				tables = append(tables, table)
			}
			sort.Strings(tables)

			out := cmd.OutOrStdout()
			for _, table := range tables {
				fmt.Fprintf(out, "%-14s %d\n", table, counts[table])
			}
			fmt.Fprintln(out, "Seed data is valid")
			return nil
		},
	}
}
