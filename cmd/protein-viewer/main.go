// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the protein-viewer CLI. It looks up
// AlphaFold structure predictions and UniProt function summaries, prints
// them, and serves the browser viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/protein-viewer/internal/logging"
	"github.com/pdiddy/protein-viewer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// rootCmd is the base command for the protein-viewer CLI.
var rootCmd = &cobra.Command{
	Use:   "protein-viewer",
	Short: "Look up protein structure predictions and function annotations",
	Long: `protein-viewer retrieves the AlphaFold DB structure prediction and the
UniProtKB function annotation for a UniProt accession.

The function subcommand prints the function summary extracted from the
UniProtKB flat-text record, prediction prints the AlphaFold entry, show
prints both, and serve starts the HTTP API with a 3D viewer page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("debug"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./protein-viewer.yaml or ~/.config/protein-viewer/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("cache", false, "cache UniProt records in a local SQLite database")
	rootCmd.PersistentFlags().String("cache-dir", "", "directory of the record cache (default ./cache)")

	bindFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	bindFlag("cache.enabled", rootCmd.PersistentFlags().Lookup("cache"))
	bindFlag("cache.dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	setDefaults(types.DefaultConfig())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("protein-viewer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "protein-viewer"))
		}
	}

	viper.SetEnvPrefix("PROTEIN_VIEWER")
	viper.SetEnvKeyReplacer(newKeyReplacer())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newKeyReplacer maps nested keys such as server.addr onto SERVER_ADDR.
func newKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
