// Package translator performs a best-effort syntactic translation from
// LaTeX math notation into Lean 4 source text.
//
// The translation is an ordered pipeline of textual rewrites over flat
// patterns, not a LaTeX parser: nested braces, macro expansion and
// ambiguous command arguments are out of scope. Later stages depend on
// earlier ones having already run, so the stage order is load-bearing.
package translator

import (
	"fmt"
	"regexp"
	"strings"
)

// Translator rewrites LaTeX text into Lean syntax. Not safe for concurrent
// use; each translation threads a counter through the environment stage.
type Translator struct {
	envCounts map[string]int
}

// New returns a fresh Translator.
func New() *Translator {
	return &Translator{}
}

// Translate runs the full rewrite pipeline over the input and returns the
// translated body text (without the file header).
func (t *Translator) Translate(input string) string {
	t.envCounts = make(map[string]int)

	s := input
	s = stripDocumentStructure(s)
	s = rewriteFractions(s)
	s = rewriteFunctions(s)
	s = rewriteSuperscripts(s)
	s = rewriteSubscripts(s)
	s = normalizeSetBuilder(s)
	s = substituteSymbols(s)
	s = t.restructureEnvironments(s)
	s = stripTextCommands(s)
	s = collapseWhitespace(s)

	return s
}

// Stage 1: document structure. Preamble and title machinery are deleted;
// sectioning commands become Lean comment lines so titles survive.
var (
	reDocumentClass = regexp.MustCompile(`(?m)^\\documentclass(?:\[[^\]]*\])?\{[^{}]*\}[ \t]*\n?`)
	reUsePackage    = regexp.MustCompile(`(?m)^\\usepackage(?:\[[^\]]*\])?\{[^{}]*\}[ \t]*\n?`)
	reDocumentEnv   = regexp.MustCompile(`\\(?:begin|end)\{document\}`)
	reTitleBlock    = regexp.MustCompile(`\\(?:title|author|date)\{[^{}]*\}`)
	reMakeTitle     = regexp.MustCompile(`\\maketitle`)
	reSubsubsection = regexp.MustCompile(`\\subsubsection\*?\{([^{}]*)\}`)
	reSubsection    = regexp.MustCompile(`\\subsection\*?\{([^{}]*)\}`)
	reSection       = regexp.MustCompile(`\\section\*?\{([^{}]*)\}`)
)

func stripDocumentStructure(s string) string {
	s = reDocumentClass.ReplaceAllString(s, "")
	s = reUsePackage.ReplaceAllString(s, "")
	s = reDocumentEnv.ReplaceAllString(s, "")
	s = reTitleBlock.ReplaceAllString(s, "")
	s = reMakeTitle.ReplaceAllString(s, "")
	s = reSubsubsection.ReplaceAllString(s, "-- ### $1")
	s = reSubsection.ReplaceAllString(s, "-- ## $1")
	s = reSection.ReplaceAllString(s, "-- # $1")

	return s
}

// Stage 2: fractions. Flat non-greedy brace matching; nested braces inside
// either operand are a documented limitation.
var reFrac = regexp.MustCompile(`\\frac\{([^{}]*)\}\{([^{}]*)\}`)

func rewriteFractions(s string) string {
	return reFrac.ReplaceAllString(s, "($1) / ($2)")
}

// Stage 3: function-application macros to call syntax.
var (
	reFuncBraced = regexp.MustCompile(`\\(sin|cos|tan|log|exp|ln|sqrt|abs)\{([^{}]+)\}`)
	reFuncBare   = regexp.MustCompile(`\\(sin|cos|tan|log|exp|ln|sqrt|abs)\b\s+([A-Za-z0-9]+)`)
)

func rewriteFunctions(s string) string {
	s = reFuncBraced.ReplaceAllString(s, "$1 ($2)")
	s = reFuncBare.ReplaceAllString(s, "$1 $2")

	return s
}

// Stage 4: braced superscripts. Bare single-character superscripts pass
// through unchanged.
var reSuperscript = regexp.MustCompile(`\^\{([^{}]+)\}`)

func rewriteSuperscripts(s string) string {
	return reSuperscript.ReplaceAllString(s, "^($1)")
}

// Stage 5: subscripts. Single digits become Unicode subscript digits;
// anything else braced becomes an underscore-qualified suffix.
var (
	reSubDigitBraced = regexp.MustCompile(`_\{(\d)\}`)
	reSubDigitBare   = regexp.MustCompile(`_(\d)`)
	reSubBraced      = regexp.MustCompile(`_\{([^{}]+)\}`)

	subscriptDigits = []rune("₀₁₂₃₄₅₆₇₈₉")
)

func subscriptDigit(match string) string {
	d := match[len(match)-1]
	if strings.HasSuffix(match, "}") {
		d = match[len(match)-2]
	}

	return string(subscriptDigits[d-'0'])
}

func rewriteSubscripts(s string) string {
	s = reSubDigitBraced.ReplaceAllStringFunc(s, subscriptDigit)
	s = reSubDigitBare.ReplaceAllStringFunc(s, subscriptDigit)
	s = reSubBraced.ReplaceAllString(s, "_$1")

	return s
}

// Stage 6: set-builder notation. The separator spacing is normalized; the
// structure is kept as-is.
var reSetBuilder = regexp.MustCompile(`\{\s*([^{}|]*?)\s*\|\s*([^{}|]*?)\s*\}`)

func normalizeSetBuilder(s string) string {
	return reSetBuilder.ReplaceAllString(s, "{$1 | $2}")
}

// Stage 7: symbol macros, one flat ordered table scan.
func substituteSymbols(s string) string {
	for _, r := range symbolTable {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}

	return s
}

// Stage 9: text-formatting and reference commands.
var (
	reTextWrap = regexp.MustCompile(`\\(?:textbf|textit|texttt|emph|text|mathrm)\{([^{}]*)\}`)
	reLabel    = regexp.MustCompile(`\\label\{[^{}]*\}`)
	reRef      = regexp.MustCompile(`\\(?:ref|eqref|cite)\{[^{}]*\}`)
)

func stripTextCommands(s string) string {
	s = reTextWrap.ReplaceAllString(s, "$1")
	s = reLabel.ReplaceAllString(s, "")
	s = reRef.ReplaceAllString(s, "<ref>")

	return s
}

// Stage 10: whitespace. Runs of two or more blank lines collapse to one,
// and the result is trimmed.
var (
	reBlankLine = regexp.MustCompile(`(?m)^[ \t]+$`)
	reBlankRun  = regexp.MustCompile(`\n{3,}`)
)

func collapseWhitespace(s string) string {
	s = reBlankLine.ReplaceAllString(s, "")
	s = reBlankRun.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// indent prefixes every non-empty line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimSpace(s), "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = pad + strings.TrimSpace(line)
		} else {
			lines[i] = ""
		}
	}

	return strings.Join(lines, "\n")
}

// slugify turns an environment title into a Lean-friendly identifier.
var reNonIdent = regexp.MustCompile(`[^A-Za-z0-9_]+`)

func slugify(title string) string {
	slug := reNonIdent.ReplaceAllString(strings.TrimSpace(title), "_")
	slug = strings.Trim(slug, "_")

	return strings.ToLower(slug)
}

// declName returns the declaration name for an environment block, using the
// bracketed title when present and a per-environment counter otherwise.
func (t *Translator) declName(env, title string) string {
	if slug := slugify(title); slug != "" {
		return slug
	}

	t.envCounts[env]++
	return fmt.Sprintf("%s_%d", env, t.envCounts[env])
}
