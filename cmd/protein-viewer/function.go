// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var functionCmd = &cobra.Command{
	Use:   "function <accession>",
	Short: "Print the UniProt function summary of a protein",
	Long: `Function fetches the UniProtKB flat-text record of an accession and prints
the first FUNCTION comment block as one line. Pass --eco one or more times
to keep only lines citing those evidence codes (e.g. --eco ECO:0000269).

A record without a function block prints "No function description found.";
failing to reach UniProt is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runFunction,
}

func init() {
	functionCmd.Flags().StringSlice("eco", nil, "evidence codes to keep (comma-separated or repeated)")
	rootCmd.AddCommand(functionCmd)
}

func runFunction(cmd *cobra.Command, args []string) error {
	eco, _ := cmd.Flags().GetStringSlice("eco")

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	summary, err := svc.proteins.Function(cmd.Context(), args[0], eco)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary)
	return nil
}
