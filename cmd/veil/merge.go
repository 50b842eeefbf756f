package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil"
	"github.com/aretw0/veil/pkg/core"
)

var mergeStrategy string

var mergeCmd = &cobra.Command{
	Use:   "merge FILE OTHER",
	Short: "Merge another mapping file into this one",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		strategy := core.MergeStrategy(mergeStrategy)
		if strategy != core.MergeSkip && strategy != core.MergeOverwrite {
			fmt.Printf("Unknown strategy %q (want skip or overwrite)\n", mergeStrategy)
			os.Exit(1)
		}

		m := openMapping(args[0])
		other, err := veil.Open(args[1], veil.WithLogger(slog.Default()), veil.WithMustExist(true))
		if err != nil {
			fatal("Failed to open other mapping", err)
		}

		result := m.Store().Merge(other.Store().Document(), strategy)

		if err := m.Save(context.Background()); err != nil {
			fatal("Failed to save mapping", err)
		}
		fmt.Printf("Merge results: added=%d skipped=%d overwritten=%d\n", result.Added, result.Skipped, result.Overwritten)
	},
}

func init() {
	mappingCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVar(&mergeStrategy, "strategy", "skip", "Conflict strategy: skip or overwrite")
}
