package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove FILE ORIGINAL",
	Short: "Remove an entity from a mapping",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])

		if !m.Store().Remove(args[1]) {
			fmt.Println("Entity not found")
			os.Exit(1)
		}

		if err := m.Save(context.Background()); err != nil {
			fatal("Failed to save mapping", err)
		}
		fmt.Printf("Removed: %s\n", args[1])
	},
}

func init() {
	mappingCmd.AddCommand(removeCmd)
}
