package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultEndpoint      = "https://loogle.lean-lang.org/json"
	DefaultCacheTTL      = 3600 // seconds
	DefaultSearchTimeout = 30   // seconds
	DefaultMaxRetries    = 3
	DefaultMaxResults    = 10
	DefaultTemplate      = "math"
)

// Holds the configuration options for proofcheck
type Config struct {
	// Search service endpoint URL
	Endpoint string

	// Cache directory; empty selects ~/.proofcheck/cache
	CacheDir string

	// Cache entry lifetime
	CacheTTL time.Duration

	// Per-request search timeout
	SearchTimeout time.Duration

	// Total search attempts on timeout
	MaxRetries int

	// Maximum hits rendered per search
	MaxResults int

	// Lake template for new projects
	Template string

	// Enable verbose output
	Verbose bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Endpoint:      viper.GetString("search_endpoint"),
		CacheDir:      viper.GetString("cache_dir"),
		CacheTTL:      time.Duration(viper.GetInt("cache_ttl")) * time.Second,
		SearchTimeout: time.Duration(viper.GetInt("search_timeout")) * time.Second,
		MaxRetries:    viper.GetInt("search_max_retries"),
		MaxResults:    viper.GetInt("search_max_results"),
		Template:      viper.GetString("template"),
		Verbose:       viper.GetBool("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("search endpoint must not be empty")
	}

	if _, err := url.Parse(c.Endpoint); err != nil {
		return fmt.Errorf("invalid search endpoint: %w", err)
	}

	if c.CacheDir != "" {
		abs, err := filepath.Abs(c.CacheDir)
		if err != nil {
			return fmt.Errorf("invalid cache directory: %w", err)
		}

		c.CacheDir = abs
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %s", c.CacheTTL)
	}

	if c.SearchTimeout <= 0 {
		return fmt.Errorf("search_timeout must be positive, got %s", c.SearchTimeout)
	}

	if c.MaxRetries < 1 {
		return fmt.Errorf("search_max_retries must be at least 1, got %d", c.MaxRetries)
	}

	if c.MaxResults < 1 {
		return fmt.Errorf("search_max_results must be at least 1, got %d", c.MaxResults)
	}

	if c.Template == "" {
		return fmt.Errorf("template must not be empty")
	}

	return nil
}
