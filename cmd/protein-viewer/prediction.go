// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var predictionCmd = &cobra.Command{
	Use:   "prediction <accession>",
	Short: "Print the AlphaFold DB prediction entry of a protein",
	Long: `Prediction queries the AlphaFold DB prediction API and prints the first
entry for the accession as indented JSON, or as YAML with --yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrediction,
}

func init() {
	predictionCmd.Flags().Bool("yaml", false, "output YAML instead of JSON")
	rootCmd.AddCommand(predictionCmd)
}

func runPrediction(cmd *cobra.Command, args []string) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	p, err := svc.proteins.Prediction(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printValue(cmd.OutOrStdout(), p, asYAML)
}

// printValue writes v as indented JSON or YAML.
func printValue(w io.Writer, v any, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
