package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/cache"
	"github.com/lean-forge/proofcheck/internal/mcp"
	"github.com/lean-forge/proofcheck/internal/search"
	"github.com/lean-forge/proofcheck/internal/translator"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Run as a Model Context Protocol tool server over stdio",
	Long:         `Expose proofcheck operations as MCP tools, resources and prompts, speaking JSON-RPC over stdin and stdout. Logs go to stderr so the protocol stream stays clean.`,
	Args:         cobra.NoArgs,
	RunE:         runServe,
	SilenceUsage: true,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := cache.New(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		logger.Warn("search cache unavailable", "error", err)
		store = nil
	}

	client := search.NewClient(search.Options{
		Endpoint:   cfg.Endpoint,
		Timeout:    cfg.SearchTimeout,
		MaxRetries: cfg.MaxRetries,
		Cache:      store,
	})

	server := mcp.NewServer(mcp.Deps{
		Runner:     newRunner(),
		Search:     client,
		Cache:      store,
		Translator: translator.New(),
		Config:     cfg,
	}, logger)

	logger.Info("proofcheck MCP server listening on stdio")

	return server.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
