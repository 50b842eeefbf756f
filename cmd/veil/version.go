package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/veil"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of veil",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veil version %s\n", veil.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
