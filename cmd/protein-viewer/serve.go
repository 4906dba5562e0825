// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-viewer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the protein JSON API and the 3D viewer page",
	Long: `Serve starts an HTTP server with:

  GET /                                 viewer page (?accession=, ?color=)
  GET /api/protein/{accession}          prediction + function summary (?eco=)
  GET /api/protein/{accession}/function function summary only (?eco=)
  GET /api/style/{scheme}               3Dmol.js style for lDDT or rainbow
  GET /healthz                          liveness

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :5000)")
	bindFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	srv := server.New(svc.proteins, svc.cfg.Server, logger.Named("server"))
	return srv.ListenAndServe(cmd.Context())
}
