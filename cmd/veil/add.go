package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil/pkg/core"
)

var (
	addType       string
	addVariations []string
	addNotes      string
)

var addCmd = &cobra.Command{
	Use:   "add FILE ORIGINAL ALIAS",
	Short: "Add an entity to a mapping",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])
		original, alias := args[1], args[2]

		if !m.Store().Add(original, alias, core.EntityType(addType), addVariations, addNotes) {
			fmt.Println("Failed to add (duplicate original or alias)")
			os.Exit(1)
		}

		if err := m.Save(context.Background()); err != nil {
			fatal("Failed to save mapping", err)
		}
		fmt.Printf("Added: %s -> %s\n", original, alias)
	},
}

func init() {
	mappingCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addType, "type", "t", "other", "Entity type")
	addCmd.Flags().StringSliceVar(&addVariations, "variations", nil, "Alternate surface forms of the original")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-form notes")
}
