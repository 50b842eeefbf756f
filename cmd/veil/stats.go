package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Show statistics about a mapping",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(m.Store().Statistics()); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

func init() {
	mappingCmd.AddCommand(statsCmd)
}
