package cache

import (
	"encoding/json"
	"time"
)

// Entry is the on-disk cache record, one JSON file per entry.
type Entry struct {
	// Query is the original search query text
	Query string `json:"query"`

	// Timestamp when this entry was written (RFC 3339)
	Timestamp time.Time `json:"timestamp"`

	// Data is the raw search response payload, stored verbatim
	Data json.RawMessage `json:"data"`
}

// valid reports whether the entry carries the required fields.
func (e *Entry) valid() bool {
	return e.Query != "" && !e.Timestamp.IsZero() && len(e.Data) > 0
}
