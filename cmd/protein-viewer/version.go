package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of protein-viewer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "protein-viewer %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
