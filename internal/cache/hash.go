package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// keyLength is the number of hex characters kept from the digest. 64 bits
// keeps the collision probability negligible while producing short filenames.
const keyLength = 16

// Key derives the cache key for a query: a truncated SHA-256 digest of the
// query text. The same query always maps to the same key.
func Key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])[:keyLength]
}
