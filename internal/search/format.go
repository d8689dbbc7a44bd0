package search

import (
	"strings"

	"github.com/lean-forge/proofcheck/internal/console"
	"github.com/lean-forge/proofcheck/internal/utils"
)

// DefaultMaxResults is the number of hits rendered per search.
const DefaultMaxResults = 10

// maxFieldLength caps each rendered field.
const maxFieldLength = 100

// Render writes a human-readable hit listing to the console. At most
// maxResults hits are shown, each field truncated to 100 characters, with a
// trailing notice when more results exist.
func Render(c *console.Console, hits []Hit, maxResults int) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if len(hits) == 0 {
		c.Println("No results found.")
		return
	}

	shown := hits
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}

	for _, hit := range shown {
		c.Println(strings.Repeat("-", 20))
		c.Accentf("%s\n", utils.Truncate(hit.Name, maxFieldLength))
		c.Printf("  Type: %s\n", utils.Truncate(hit.Type, maxFieldLength))

		if hit.Module != "" {
			c.Printf("  Module: %s\n", utils.Truncate(hit.Module, maxFieldLength))
		}

		if hit.Doc != "" {
			c.Printf("  Doc: %s\n", utils.Truncate(strings.TrimSpace(hit.Doc), maxFieldLength))
		}
	}

	if len(hits) > maxResults {
		c.Printf("\n... and %d more results (showing first %d)\n", len(hits)-maxResults, maxResults)
	}
}
