// Package project scaffolds new Lean projects through lake init.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/lean-forge/proofcheck/internal/toolchain"
)

// InitTimeout bounds the lake init invocation.
const InitTimeout = 30 * time.Second

// DefaultTemplate is the lake template used for new projects.
const DefaultTemplate = "math"

// reservedChars may not appear anywhere in a project name.
const reservedChars = `/\:*?"<>| `

// ErrInvalidName indicates a project name that failed validation.
var ErrInvalidName = errors.New("invalid project name")

// starterFile is written into a freshly initialized project so users have an
// obvious place to begin.
const starterFile = `-- Starter file created by proofcheck.
-- Add your theorems here, then run: proofcheck check Proofs.lean

import Mathlib

theorem starter_example : 1 + 1 = 2 := by
  rfl
`

// ValidateName enforces the project naming rules, in order: non-empty, no
// reserved characters, first character a letter or underscore.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}

	if strings.ContainsAny(name, reservedChars) {
		return fmt.Errorf(`%w: name must not contain any of / \ : * ? " < > | or spaces`, ErrInvalidName)
	}

	first := []rune(name)[0]
	if !unicode.IsLetter(first) && first != '_' {
		return fmt.Errorf("%w: name must start with a letter or underscore", ErrInvalidName)
	}

	return nil
}

// Create scaffolds a new Lean project directory. The operation is
// all-or-nothing: any failure after the directory is created removes it
// again before the error is returned.
func Create(r toolchain.Runner, name, template string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if template == "" {
		template = DefaultTemplate
	}

	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	if ok, msg := toolchain.CheckInstallation(r); !ok {
		return fmt.Errorf("toolchain check failed: %s", msg)
	}

	if err := os.MkdirAll(name, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := initialize(r, name, template); err != nil {
		// Roll back so no half-initialized project is left behind
		os.RemoveAll(name)
		return err
	}

	return nil
}

func initialize(r toolchain.Runner, name, template string) error {
	res, err := r.Run(name, InitTimeout, toolchain.LakeBinary, "init", ".", template)
	if err != nil {
		if errors.Is(err, toolchain.ErrNotFound) {
			return errors.New("`lake` command not found; please install Lean and the lake build tool first")
		}

		return fmt.Errorf("failed to run lake init: %w", err)
	}

	if res.TimedOut {
		return fmt.Errorf("lake init timed out after %s", InitTimeout)
	}

	if res.ExitCode != 0 {
		detail := strings.TrimSpace(res.Stderr)
		if detail == "" {
			detail = strings.TrimSpace(res.Stdout)
		}

		return fmt.Errorf("lake init exited with code %d: %s", res.ExitCode, detail)
	}

	starter := filepath.Join(name, "Proofs.lean")
	if err := os.WriteFile(starter, []byte(starterFile), 0o644); err != nil {
		return fmt.Errorf("failed to write starter file: %w", err)
	}

	return nil
}
