// Package verify checks Lean source files by building their enclosing
// project with lake.
package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lean-forge/proofcheck/internal/toolchain"
)

// BuildTimeout bounds a single lake build invocation.
const BuildTimeout = 300 * time.Second

// SourceExtension is the recognized Lean source extension.
const SourceExtension = ".lean"

// markerFiles identify a directory as a Lean project root.
var markerFiles = []string{"lakefile.toml", "lakefile.lean"}

// Result is the outcome of a verification run. Build failures are reported
// here rather than as errors; the message carries the tool's own diagnostics.
type Result struct {
	Success bool
	Message string
}

// FindProjectRoot walks from dir toward the filesystem root looking for a
// project marker file. Returns "" when no marker is found.
func FindProjectRoot(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		for _, marker := range markerFiles {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}

// CheckFile verifies a Lean file by locating its project root and running
// lake build there. Every precondition failure short-circuits before any
// subprocess is spawned.
func CheckFile(r toolchain.Runner, path string) Result {
	if _, err := os.Stat(path); err != nil {
		return Result{Message: fmt.Sprintf("Error: file not found: %s", path)}
	}

	if !strings.HasSuffix(path, SourceExtension) {
		return Result{Message: fmt.Sprintf("Error: %s is not a Lean source file (expected %s extension)", path, SourceExtension)}
	}

	if ok, msg := toolchain.CheckInstallation(r); !ok {
		return Result{Message: msg}
	}

	root := FindProjectRoot(filepath.Dir(path))
	if root == "" {
		return Result{Message: "Error: could not find project root (no lakefile.toml or lakefile.lean found)."}
	}

	res, err := r.Run(root, BuildTimeout, toolchain.LakeBinary, "build")
	if err != nil {
		if errors.Is(err, toolchain.ErrNotFound) {
			return Result{Message: "Error: `lake` command not found.\nPlease install Lean first."}
		}

		return Result{Message: fmt.Sprintf("Error running lake build: %v", err)}
	}

	if res.TimedOut {
		return Result{Message: fmt.Sprintf("✗ Build timed out after %s.", BuildTimeout)}
	}

	if res.ExitCode != 0 {
		output := res.Stderr
		if strings.TrimSpace(output) == "" {
			output = res.Stdout
		}

		return Result{Message: fmt.Sprintf("✗ Build failed:\n%s", output)}
	}

	return Result{
		Success: true,
		Message: "✓ Project built successfully! All proofs verified.",
	}
}
