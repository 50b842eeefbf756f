package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a mapping for duplicate originals/aliases and empty fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m := openMapping(args[0])

		report := m.Store().Validate()
		if report.Valid {
			fmt.Println("Mapping is valid.")
			return
		}

		fmt.Println("Validation issues:")
		for _, issue := range report.Issues {
			fmt.Printf("  - %s\n", issue)
		}
		os.Exit(1)
	},
}

func init() {
	mappingCmd.AddCommand(validateCmd)
}
