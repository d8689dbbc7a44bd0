package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Loader handles configuration loading from various sources
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load assembles configuration in precedence order: defaults, then the
// global config file, then a local config discovered from the working
// directory, then command flags.
func (l *Loader) Load(cmd *cobra.Command) (*Config, error) {
	l.setupViperDefaults()
	l.loadGlobalConfig()
	l.loadLocalConfig()
	l.bindCommandFlags(cmd)

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("search_endpoint", DefaultEndpoint)
	viper.SetDefault("cache_dir", "")
	viper.SetDefault("cache_ttl", DefaultCacheTTL)
	viper.SetDefault("search_timeout", DefaultSearchTimeout)
	viper.SetDefault("search_max_retries", DefaultMaxRetries)
	viper.SetDefault("search_max_results", DefaultMaxResults)
	viper.SetDefault("template", DefaultTemplate)
	viper.SetDefault("verbose", false)
}

// loadGlobalConfig loads global configuration from the user config dir
func (l *Loader) loadGlobalConfig() {
	base, err := os.UserConfigDir()
	if err != nil {
		return
	}

	globalDir := filepath.Join(base, "proofcheck")

	for _, ext := range []string{"yml", "yaml", "json", "toml"} {
		globalPath := filepath.Join(globalDir, "config."+ext)

		if _, err := os.Stat(globalPath); err == nil {
			viper.SetConfigFile(globalPath)

			if err := viper.ReadInConfig(); err == nil {
				break
			}
		}
	}
}

// loadLocalConfig loads local configuration found from the working directory
func (l *Loader) loadLocalConfig() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	localPath := FindLocalConfig(cwd)
	if localPath != "" {
		viper.SetConfigFile(localPath)
		_ = viper.ReadInConfig()
	}
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("search_endpoint", cmd.Flags().Lookup("endpoint"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("search_timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("search_max_results", cmd.Flags().Lookup("max-results"))
	_ = viper.BindPFlag("template", cmd.Flags().Lookup("template"))
}
