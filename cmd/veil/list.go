package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil"
	"github.com/aretw0/veil/pkg/core"
)

var (
	listType string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List the entities in a mapping",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])
		entities := m.Store().List(core.EntityType(listType))

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entities); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		printTable(entities)
	},
}

// printTable renders entities with columns sized to their contents.
func printTable(entities []veil.Entity) {
	if len(entities) == 0 {
		fmt.Println("No entities in mapping.")
		return
	}

	origWidth, aliasWidth, typeWidth := len("Original"), len("Alias"), len("Type")
	for _, e := range entities {
		origWidth = max(origWidth, len(e.Original))
		aliasWidth = max(aliasWidth, len(e.Alias))
		typeWidth = max(typeWidth, len(string(e.Type)))
	}

	fmt.Printf("%-*s | %-*s | %-*s | Variations\n", origWidth, "Original", aliasWidth, "Alias", typeWidth, "Type")
	fmt.Println(strings.Repeat("-", origWidth+aliasWidth+typeWidth+20))

	for _, e := range entities {
		vars := strings.Join(e.Variations, ", ")
		if len(vars) > 30 {
			vars = vars[:30]
		}
		fmt.Printf("%-*s | %-*s | %-*s | %s\n", origWidth, e.Original, aliasWidth, e.Alias, typeWidth, string(e.Type), vars)
	}
}

func init() {
	mappingCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter entities by type")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
