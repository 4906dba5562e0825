// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-viewer/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or purge the local UniProt record cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the number and size of cached records",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete cached records older than --older-than (default: all)",
	Args:  cobra.NoArgs,
	RunE:  runCachePurge,
}

func init() {
	cachePurgeCmd.Flags().Duration("older-than", 0, "only delete records fetched longer ago than this")

	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openCache() (*cache.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cache.Open(cfg.Cache)
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	store, err := openCache()
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Records: %d\n", st.Records)
	fmt.Fprintf(out, "Bytes:   %d\n", st.Bytes)
	if st.Records > 0 {
		fmt.Fprintf(out, "Oldest:  %s\n", st.Oldest.Format(time.RFC3339))
		fmt.Fprintf(out, "Newest:  %s\n", st.Newest.Format(time.RFC3339))
	}
	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")

	store, err := openCache()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Purge(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Purged %d record(s)\n", n)
	return nil
}
