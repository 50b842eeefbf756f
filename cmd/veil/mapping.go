package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil"
)

// mappingCmd groups the subcommands that manage a mapping file.
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Manage a pseudonym mapping file",
}

// openMapping opens (or starts) the mapping at path for a subcommand.
func openMapping(path string) *veil.Mapping {
	m, err := veil.Open(path, veil.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to open mapping", err)
	}
	return m
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}
