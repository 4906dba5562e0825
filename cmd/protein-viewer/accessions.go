// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var accessionsCmd = &cobra.Command{
	Use:   "accessions",
	Short: "Export UniProtKB accessions matching a query as TSV",
	Long: `Accessions streams the accession and entry name of every UniProtKB entry
matching a query (default: reviewed entries with annotation score 5) and
writes the decompressed TSV to a file, or to stdout with --out -.`,
	Args: cobra.NoArgs,
	RunE: runAccessions,
}

func init() {
	accessionsCmd.Flags().String("query", "", "UniProtKB query (default \"(reviewed:true) AND (annotation_score:5)\")")
	accessionsCmd.Flags().String("out", "IDS.txt", "output file, or - for stdout")
	bindFlag("uniprot.accession_query", accessionsCmd.Flags().Lookup("query"))
	rootCmd.AddCommand(accessionsCmd)
}

func runAccessions(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	w := cmd.OutOrStdout()
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	n, err := svc.uniprot.StreamAccessions(cmd.Context(), svc.cfg.UniProt.AccessionQuery, w)
	if err != nil {
		return err
	}
	logger.Info("accessions exported", zap.String("out", outPath), zap.Int64("bytes", n))
	return nil
}
