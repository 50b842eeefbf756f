package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE OUTPUT",
	Short: "Export a mapping to tabular form (CSV, or XLSX by extension)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])
		output := args[1]

		f, err := os.Create(output)
		if err != nil {
			fatal("Failed to create output file", err)
		}
		defer f.Close()

		if filepath.Ext(output) == ".xlsx" {
			err = m.Store().ExportXLSX(f)
		} else {
			err = m.Store().ExportCSV(f)
		}
		if err != nil {
			fatal("Failed to export mapping", err)
		}

		fmt.Printf("Exported to %s\n", output)
	},
}

func init() {
	mappingCmd.AddCommand(exportCmd)
}
