package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil"
)

var (
	redactMapping  string
	redactPatterns []string
	redactRandom   bool
)

var redactCmd = &cobra.Command{
	Use:   "redact INPUT OUTPUT",
	Short: "Redact a text file",
	Long: `Rewrite a document so sensitive terms are replaced consistently.
Known entities (and their variations) are substituted with their aliases
first; the selected pattern detectors then sweep the result.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		input, output := args[0], args[1]

		mappingPath := redactMapping
		if mappingPath == "" {
			mappingPath = cfg.MappingPath
		}

		patterns := redactPatterns
		if patterns == nil {
			patterns = cfg.Patterns
		}

		engine := newEngine(mappingPath)
		if bad := unknownPatterns(engine.Library(), patterns); len(bad) > 0 {
			fmt.Printf("Unknown patterns: %v (known: %v)\n", bad, engine.Library().Names())
			os.Exit(1)
		}

		content, err := os.ReadFile(input)
		if err != nil {
			fatal("Failed to read input", err)
		}

		engine.ClearLog()

		// Entity redaction always runs before pattern detection.
		result := engine.RedactEntities(string(content), false)
		if len(patterns) > 0 {
			result = engine.RedactPatterns(result, patterns, redactRandom)
		}

		if err := os.WriteFile(output, []byte(result), 0644); err != nil {
			fatal("Failed to write output", err)
		}

		report := engine.Report()
		fmt.Printf("Redaction complete. %d replacements made.\n", report.TotalRedactions)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			fatal("Failed to encode report", err)
		}
	},
}

// newEngine builds an engine over the mapping at path; an empty path
// means no registered entities, pattern detection only.
func newEngine(path string) *veil.Engine {
	if path == "" {
		return veil.NewEngine(nil)
	}
	m, err := veil.Open(path, veil.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to open mapping", err)
	}
	return m.Engine()
}

func unknownPatterns(library *veil.Library, names []string) []string {
	var bad []string
	for _, name := range names {
		if !library.Has(name) {
			bad = append(bad, name)
		}
	}
	return bad
}

func init() {
	rootCmd.AddCommand(redactCmd)
	redactCmd.Flags().StringVarP(&redactMapping, "mapping", "m", "", "Alias mapping file")
	redactCmd.Flags().StringSliceVarP(&redactPatterns, "patterns", "p", nil, "Pattern detectors to apply, in order")
	redactCmd.Flags().BoolVarP(&redactRandom, "random", "r", false, "Use numbered placeholders per pattern instead of fixed ones")
}
