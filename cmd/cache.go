package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:          "cache",
	Short:        "Manage the search result cache",
	SilenceUsage: true,
}

var cacheClearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Delete all cached search results",
	Args:         cobra.NoArgs,
	RunE:         runCacheClear,
	SilenceUsage: true,
}

var cacheCleanCmd = &cobra.Command{
	Use:          "clean",
	Short:        "Delete only expired cache entries",
	Args:         cobra.NoArgs,
	RunE:         runCacheClean,
	SilenceUsage: true,
}

var cacheStatsCmd = &cobra.Command{
	Use:          "stats",
	Short:        "Report cache statistics",
	Args:         cobra.NoArgs,
	RunE:         runCacheStats,
	SilenceUsage: true,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
}

func openCache(cmd *cobra.Command) (*cache.Cache, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return cache.New(cfg.CacheDir, cfg.CacheTTL)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	store, err := openCache(cmd)
	if err != nil {
		return err
	}

	count := store.Clear()
	cons.Successf("Cleared %d cache entries.\n", count)

	return nil
}

func runCacheClean(cmd *cobra.Command, args []string) error {
	store, err := openCache(cmd)
	if err != nil {
		return err
	}

	count := store.ClearExpired()
	cons.Successf("Removed %d expired cache entries.\n", count)

	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	store, err := openCache(cmd)
	if err != nil {
		return err
	}

	stats := store.Stats()
	cons.Printf("Cache directory: %s\n", stats.Dir)
	cons.Printf("Total entries:   %d\n", stats.Total)
	cons.Printf("Valid entries:   %d\n", stats.Valid)
	cons.Printf("Expired entries: %d\n", stats.Expired)
	cons.Printf("Total size:      %d bytes\n", stats.TotalBytes)
	cons.Printf("TTL:             %s\n", stats.TTL)

	return nil
}
