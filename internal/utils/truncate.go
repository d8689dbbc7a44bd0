package utils

// Truncate shortens s to at most max runes, appending "..." when content
// was cut. Operates on runes so multi-byte Lean symbols are never split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	if max <= 3 {
		return string(runes[:max])
	}

	return string(runes[:max-3]) + "..."
}
