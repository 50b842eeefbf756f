package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil/pkg/core"
)

var importOverwrite bool

var importCmd = &cobra.Command{
	Use:   "import FILE INPUT",
	Short: "Import tabular rows (CSV, or XLSX by extension) into a mapping",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])
		input := args[1]

		f, err := os.Open(input)
		if err != nil {
			fatal("Failed to open input file", err)
		}
		defer f.Close()

		var result core.ImportResult
		if filepath.Ext(input) == ".xlsx" {
			result, err = m.Store().ImportXLSX(f, importOverwrite)
		} else {
			result, err = m.Store().ImportCSV(f, importOverwrite)
		}
		if err != nil {
			fatal("Failed to import", err)
		}

		if err := m.Save(context.Background()); err != nil {
			fatal("Failed to save mapping", err)
		}

		fmt.Printf("Import results: added=%d skipped=%d errors=%d\n", result.Added, result.Skipped, len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	},
}

func init() {
	mappingCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "Replace existing entities with the same original")
}
