// Package cache provides a TTL-expiring file cache for search results.
//
// Each entry lives in its own JSON file named after a truncated SHA-256
// digest of the query text, so distinct queries never contend on the same
// file. The cache is strictly best-effort: write failures are swallowed,
// unparseable entries are deleted on the next access, and no locking is
// performed (whole-file writes make a same-key race benign).
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is the default lifetime of a cache entry.
const DefaultTTL = time.Hour

const (
	filePrefix = "search_"
	fileSuffix = ".json"
)

// Cache manages the on-disk search result store.
type Cache struct {
	dir string
	ttl time.Duration

	// now is replaceable for TTL expiry tests
	now func() time.Time
}

// New creates a cache rooted at dir. An empty dir selects the default
// location under the user's home directory. A non-positive ttl selects
// DefaultTTL.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}

		dir = filepath.Join(home, ".proofcheck", "cache")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Dir returns the cache root directory.
func (c *Cache) Dir() string {
	return c.dir
}

// TTL returns the configured entry lifetime.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached payload for query, or ok=false on a miss. Expired
// and corrupt entries are removed as a side effect.
func (c *Cache) Get(query string) (json.RawMessage, bool) {
	path := c.entryPath(Key(query))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil || !entry.valid() {
		// Corrupt entry, self-heal by deleting it
		os.Remove(path)
		return nil, false
	}

	if c.now().Sub(entry.Timestamp) > c.ttl {
		os.Remove(path)
		return nil, false
	}

	return entry.Data, true
}

// Set stores a payload for query. The cache is never a correctness
// dependency, so failures are silently ignored.
func (c *Cache) Set(query string, payload json.RawMessage) {
	entry := Entry{
		Query:     query,
		Timestamp: c.now(),
		Data:      payload,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(c.entryPath(Key(query)), data, 0o644)
}

// Clear deletes every entry file and returns the number deleted.
func (c *Cache) Clear() int {
	count := 0

	for _, path := range c.entryFiles() {
		if os.Remove(path) == nil {
			count++
		}
	}

	return count
}

// ClearExpired deletes entries past their TTL, plus any that fail to parse.
// Returns the number deleted.
func (c *Cache) ClearExpired() int {
	count := 0

	for _, path := range c.entryFiles() {
		entry, err := c.readEntry(path)
		if err != nil {
			if os.Remove(path) == nil {
				count++
			}

			continue
		}

		if c.now().Sub(entry.Timestamp) > c.ttl {
			if os.Remove(path) == nil {
				count++
			}
		}
	}

	return count
}

// Stats is an aggregate read-only report over the cache directory.
type Stats struct {
	Total      int
	Valid      int
	Expired    int
	TotalBytes int64
	TTL        time.Duration
	Dir        string
}

// Stats scans the cache directory without mutating it.
func (c *Cache) Stats() Stats {
	stats := Stats{
		TTL: c.ttl,
		Dir: c.dir,
	}

	for _, path := range c.entryFiles() {
		stats.Total++

		if info, err := os.Stat(path); err == nil {
			stats.TotalBytes += info.Size()
		}

		entry, err := c.readEntry(path)
		if err != nil || c.now().Sub(entry.Timestamp) > c.ttl {
			stats.Expired++
			continue
		}

		stats.Valid++
	}

	return stats
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, filePrefix+key+fileSuffix)
}

func (c *Cache) entryFiles() []string {
	matches, err := filepath.Glob(filepath.Join(c.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil
	}

	return matches
}

func (c *Cache) readEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}

	if !entry.valid() {
		return nil, fmt.Errorf("cache entry missing required fields: %s", path)
	}

	return &entry, nil
}
