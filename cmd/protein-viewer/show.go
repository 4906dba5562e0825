// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/viewer"
)

var showCmd = &cobra.Command{
	Use:   "show <accession>",
	Short: "Print a protein's name, function summary, and model location",
	Long: `Show combines the AlphaFold prediction and the UniProt function summary of
an accession, the same view the HTTP API serves. With --model-out the mmCIF
model is downloaded to a local file; --color selects the viewer color
scheme (lDDT or rainbow) printed as a 3Dmol.js style.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("color", viewer.SchemeLDDT, "viewer color scheme: lDDT or rainbow")
	showCmd.Flags().String("model-out", "", "write the mmCIF model to this file")
	showCmd.Flags().StringSlice("eco", nil, "evidence codes to keep in the function summary")
	showCmd.Flags().Bool("yaml", false, "output YAML instead of text")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	color, _ := cmd.Flags().GetString("color")
	modelOut, _ := cmd.Flags().GetString("model-out")
	eco, _ := cmd.Flags().GetStringSlice("eco")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	style, err := viewer.Style(color)
	if err != nil {
		return err
	}

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	p, err := svc.proteins.Lookup(cmd.Context(), args[0], eco)
	if err != nil {
		return err
	}

	if modelOut != "" {
		model, err := svc.alphafold.Model(cmd.Context(), p.ModelURL)
		if err != nil {
			return err
		}
		if err := os.WriteFile(modelOut, []byte(model), 0o644); err != nil {
			return fmt.Errorf("writing model: %w", err)
		}
		logger.Info("model saved", zap.String("path", modelOut), zap.Int("bytes", len(model)))
	}

	out := cmd.OutOrStdout()
	if asYAML {
		return printValue(out, p, true)
	}
	fmt.Fprintf(out, "Name of Protein: %s\n", p.Name)
	fmt.Fprintf(out, "Protein Summary: %s\n", p.Summary)
	fmt.Fprintf(out, "Model: %s\n", p.ModelURL)
	if p.Organism != "" {
		fmt.Fprintf(out, "Organism: %s\n", p.Organism)
	}
	fmt.Fprintf(out, "Style (%s): ", color)
	return printValue(out, style, false)
}
