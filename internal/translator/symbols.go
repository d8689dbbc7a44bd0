package translator

import "regexp"

// rewrite is one (pattern, replacement) pair of the substitution table.
type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// symbolTable is the ordered flat substitution table for symbol macros.
// Evaluated first-to-last; \b guards keep short macros (\in, \le) from
// matching inside longer ones (\infty, \left). Where one macro is a prefix
// of another the longer entry still comes first.
var symbolTable = []rewrite{
	// Logic connectives
	{regexp.MustCompile(`\\forall\b`), "∀"},
	{regexp.MustCompile(`\\exists\b`), "∃"},
	{regexp.MustCompile(`\\neg\b`), "¬"},
	{regexp.MustCompile(`\\lnot\b`), "¬"},
	{regexp.MustCompile(`\\land\b`), "∧"},
	{regexp.MustCompile(`\\wedge\b`), "∧"},
	{regexp.MustCompile(`\\lor\b`), "∨"},
	{regexp.MustCompile(`\\vee\b`), "∨"},
	{regexp.MustCompile(`\\implies\b`), "→"},
	{regexp.MustCompile(`\\Rightarrow\b`), "→"},
	{regexp.MustCompile(`\\iff\b`), "↔"},
	{regexp.MustCompile(`\\Leftrightarrow\b`), "↔"},
	{regexp.MustCompile(`\\mapsto\b`), "↦"},
	{regexp.MustCompile(`\\rightarrow\b`), "→"},
	{regexp.MustCompile(`\\to\b`), "→"},

	// Set relations and operations
	{regexp.MustCompile(`\\subseteq\b`), "⊆"},
	{regexp.MustCompile(`\\subsetneq\b`), "⊊"},
	{regexp.MustCompile(`\\subset\b`), "⊂"},
	{regexp.MustCompile(`\\supseteq\b`), "⊇"},
	{regexp.MustCompile(`\\supset\b`), "⊃"},
	{regexp.MustCompile(`\\setminus\b`), `\`},
	{regexp.MustCompile(`\\emptyset\b`), "∅"},
	{regexp.MustCompile(`\\varnothing\b`), "∅"},
	{regexp.MustCompile(`\\cup\b`), "∪"},
	{regexp.MustCompile(`\\cap\b`), "∩"},
	{regexp.MustCompile(`\\notin\b`), "∉"},
	{regexp.MustCompile(`\\in\b`), "∈"},
	{regexp.MustCompile(`\\ni\b`), "∋"},

	// Number sets
	{regexp.MustCompile(`\\mathbb\{N\}`), "ℕ"},
	{regexp.MustCompile(`\\mathbb\{Z\}`), "ℤ"},
	{regexp.MustCompile(`\\mathbb\{Q\}`), "ℚ"},
	{regexp.MustCompile(`\\mathbb\{R\}`), "ℝ"},
	{regexp.MustCompile(`\\mathbb\{C\}`), "ℂ"},
	{regexp.MustCompile(`\\N\b`), "ℕ"},
	{regexp.MustCompile(`\\Z\b`), "ℤ"},
	{regexp.MustCompile(`\\Q\b`), "ℚ"},
	{regexp.MustCompile(`\\R\b`), "ℝ"},
	{regexp.MustCompile(`\\C\b`), "ℂ"},

	// Comparison relations
	{regexp.MustCompile(`\\neq\b`), "≠"},
	{regexp.MustCompile(`\\ne\b`), "≠"},
	{regexp.MustCompile(`\\leq\b`), "≤"},
	{regexp.MustCompile(`\\le\b`), "≤"},
	{regexp.MustCompile(`\\geq\b`), "≥"},
	{regexp.MustCompile(`\\ge\b`), "≥"},
	{regexp.MustCompile(`\\equiv\b`), "≡"},
	{regexp.MustCompile(`\\approx\b`), "≈"},
	{regexp.MustCompile(`\\sim\b`), "∼"},
	{regexp.MustCompile(`\\mid\b`), "∣"},

	// Miscellaneous operators
	{regexp.MustCompile(`\\cdot\b`), "*"},
	{regexp.MustCompile(`\\times\b`), "×"},
	{regexp.MustCompile(`\\div\b`), "/"},
	{regexp.MustCompile(`\\pm\b`), "±"},
	{regexp.MustCompile(`\\mp\b`), "∓"},
	{regexp.MustCompile(`\\circ\b`), "∘"},
	{regexp.MustCompile(`\\oplus\b`), "⊕"},
	{regexp.MustCompile(`\\otimes\b`), "⊗"},
	{regexp.MustCompile(`\\infty\b`), "∞"},
	{regexp.MustCompile(`\\partial\b`), "∂"},
	{regexp.MustCompile(`\\nabla\b`), "∇"},
	{regexp.MustCompile(`\\sum\b`), "∑"},
	{regexp.MustCompile(`\\prod\b`), "∏"},
	{regexp.MustCompile(`\\int\b`), "∫"},

	// Greek letters, lowercase
	{regexp.MustCompile(`\\alpha\b`), "α"},
	{regexp.MustCompile(`\\beta\b`), "β"},
	{regexp.MustCompile(`\\gamma\b`), "γ"},
	{regexp.MustCompile(`\\delta\b`), "δ"},
	{regexp.MustCompile(`\\varepsilon\b`), "ε"},
	{regexp.MustCompile(`\\epsilon\b`), "ε"},
	{regexp.MustCompile(`\\zeta\b`), "ζ"},
	{regexp.MustCompile(`\\eta\b`), "η"},
	{regexp.MustCompile(`\\theta\b`), "θ"},
	{regexp.MustCompile(`\\iota\b`), "ι"},
	{regexp.MustCompile(`\\kappa\b`), "κ"},
	{regexp.MustCompile(`\\lambda\b`), "λ"},
	{regexp.MustCompile(`\\mu\b`), "μ"},
	{regexp.MustCompile(`\\nu\b`), "ν"},
	{regexp.MustCompile(`\\xi\b`), "ξ"},
	{regexp.MustCompile(`\\pi\b`), "π"},
	{regexp.MustCompile(`\\rho\b`), "ρ"},
	{regexp.MustCompile(`\\sigma\b`), "σ"},
	{regexp.MustCompile(`\\tau\b`), "τ"},
	{regexp.MustCompile(`\\upsilon\b`), "υ"},
	{regexp.MustCompile(`\\varphi\b`), "φ"},
	{regexp.MustCompile(`\\phi\b`), "φ"},
	{regexp.MustCompile(`\\chi\b`), "χ"},
	{regexp.MustCompile(`\\psi\b`), "ψ"},
	{regexp.MustCompile(`\\omega\b`), "ω"},

	// Greek letters, uppercase
	{regexp.MustCompile(`\\Gamma\b`), "Γ"},
	{regexp.MustCompile(`\\Delta\b`), "Δ"},
	{regexp.MustCompile(`\\Theta\b`), "Θ"},
	{regexp.MustCompile(`\\Lambda\b`), "Λ"},
	{regexp.MustCompile(`\\Xi\b`), "Ξ"},
	{regexp.MustCompile(`\\Pi\b`), "Π"},
	{regexp.MustCompile(`\\Sigma\b`), "Σ"},
	{regexp.MustCompile(`\\Phi\b`), "Φ"},
	{regexp.MustCompile(`\\Psi\b`), "Ψ"},
	{regexp.MustCompile(`\\Omega\b`), "Ω"},
}
