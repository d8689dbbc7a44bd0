package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/cache"
	"github.com/lean-forge/proofcheck/internal/search"
)

var searchCmd = &cobra.Command{
	Use:          "search <query>",
	Short:        "Search Lean Mathlib for a given query",
	Long:         `Query the remote lemma search service for Mathlib theorems and definitions. Results are cached on disk.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runSearch,
	SilenceUsage: true,
}

func init() {
	searchCmd.Flags().Bool("no-cache", false, "Bypass the search result cache")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")

	// A broken cache only costs redundant fetches, never the search itself
	store, err := cache.New(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		cons.Errorf("Warning: search cache unavailable: %v\n", err)
		store = nil
	}

	client := search.NewClient(search.Options{
		Endpoint:   cfg.Endpoint,
		Timeout:    cfg.SearchTimeout,
		MaxRetries: cfg.MaxRetries,
		Cache:      store,
	})

	query := args[0]
	cons.Printf("Searching for: %s\n", query)

	hits, err := client.Search(query, !noCache)
	if err != nil {
		cons.Errorf("Error: %v\n", err)
		return err
	}

	search.Render(cons, hits, cfg.MaxResults)

	return nil
}
