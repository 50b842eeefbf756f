package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil"
)

// initCmd represents the mapping init command
var initCmd = &cobra.Command{
	Use:   "init FILE",
	Short: "Create an empty mapping file",
	Long:  `Create a new empty mapping document at FILE. Fails if the file already exists.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := veil.Create(args[0], veil.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to create mapping", err)
		}
		fmt.Println("Initialized empty mapping at", m.Path())
	},
}

func init() {
	mappingCmd.AddCommand(initCmd)
}
