package translator

import (
	"fmt"
	"regexp"
)

// envKeywords maps recognized LaTeX theorem environments to Lean
// declaration keywords. Unrecognized environments pass through unchanged.
var envKeywords = map[string]string{
	"theorem":     "theorem",
	"lemma":       "lemma",
	"proposition": "theorem",
	"corollary":   "theorem",
	"definition":  "def",
	"example":     "example",
}

// envOrder fixes the rewrite order so generated counter names are stable.
var envOrder = []string{"theorem", "lemma", "proposition", "corollary", "definition", "example"}

// envPatterns holds one compiled matcher per environment. RE2 has no
// backreferences, so each environment needs its own begin/end pair.
var envPatterns = map[string]*regexp.Regexp{}

var reProofEnv = regexp.MustCompile(`(?s)\\begin\{proof\}(.*?)\\end\{proof\}`)

func init() {
	for _, env := range envOrder {
		envPatterns[env] = regexp.MustCompile(
			`(?s)\\begin\{` + env + `\}(?:\[([^\]]*)\])?(.*?)\\end\{` + env + `\}`)
	}
}

// Stage 8: environment restructuring. Theorem-like blocks become indented
// Lean declarations; proof bodies become further-indented tactic blocks.
func (t *Translator) restructureEnvironments(s string) string {
	for _, env := range envOrder {
		keyword := envKeywords[env]
		pattern := envPatterns[env]

		s = pattern.ReplaceAllStringFunc(s, func(match string) string {
			groups := pattern.FindStringSubmatch(match)
			title, body := groups[1], groups[2]

			if keyword == "example" {
				return fmt.Sprintf("example :\n%s", indent(body, 2))
			}

			return fmt.Sprintf("%s %s :\n%s", keyword, t.declName(env, title), indent(body, 2))
		})
	}

	s = reProofEnv.ReplaceAllStringFunc(s, func(match string) string {
		body := reProofEnv.FindStringSubmatch(match)[1]

		return fmt.Sprintf("  := by\n%s", indent(body, 4))
	})

	return s
}
