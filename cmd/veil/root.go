package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil/internal/config"
)

var (
	verbose bool

	// cfg holds defaults loaded from config file / environment.
	// Flags always win over it.
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Pseudonymize text with persistent alias mappings and pattern detectors",
	Long: `Veil maintains a persistent mapping from real-world identifiers to stable
aliases and rewrites documents so sensitive terms are replaced consistently.
Regex detectors catch the common shapes (emails, phones, SSNs) that no one
registered by hand.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = loadConfig()

		level := slog.LevelInfo
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

func loadConfig() config.Config {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "veil"))
	}

	c, err := config.Load(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring broken config: %v\n", err)
		return config.Config{}
	}
	return c
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
