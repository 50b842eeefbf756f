package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var analyzeMapping string

var analyzeCmd = &cobra.Command{
	Use:   "analyze INPUT",
	Short: "Report what the detectors would match, without redacting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read input", err)
		}

		engine := newEngine(analyzeMapping)
		findings := engine.Analyze(string(content))

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(findings); err != nil {
			fatal("Failed to encode findings", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeMapping, "mapping", "m", "", "Alias mapping file")
}
