package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lean-forge/proofcheck/internal/config"
	"github.com/lean-forge/proofcheck/internal/console"
	"github.com/lean-forge/proofcheck/internal/toolchain"
	"github.com/lean-forge/proofcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "proofcheck",
	Short:        "Formalize and validate mathematical proofs with Lean",
	Long:         `A CLI tool to help formalize and validate mathematical proofs using the Lean 4 toolchain.`,
	SilenceUsage: true,
}

// cons is the shared presentation surface; tests swap it for a buffer-backed
// console to capture output.
var cons = console.New()

// newRunner is replaceable in tests so no command spawns a real subprocess.
var newRunner = func() toolchain.Runner {
	return toolchain.NewRunner()
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.NewLoader().Load(cmd)
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("endpoint", config.DefaultEndpoint, "Lemma search service endpoint URL")
	rootCmd.PersistentFlags().String("cache-dir", "", "Search cache directory (default ~/.proofcheck/cache)")
	rootCmd.PersistentFlags().Int("timeout", config.DefaultSearchTimeout, "Search request timeout in seconds")
	rootCmd.PersistentFlags().Int("max-results", config.DefaultMaxResults, "Maximum search hits to display")
	rootCmd.PersistentFlags().String("template", config.DefaultTemplate, "Lake template for new projects")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(serveCmd)
}
