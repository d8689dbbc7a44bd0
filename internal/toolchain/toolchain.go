// Package toolchain wraps the external Lean executables (lean, lake) behind
// a narrow process-runner interface so every caller can be tested with a
// substitutable fake instead of a real subprocess.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Binary names invoked on the PATH.
const (
	LeanBinary = "lean"
	LakeBinary = "lake"
)

// ErrNotFound indicates the requested executable is not on the PATH.
var ErrNotFound = errors.New("executable not found")

// Result captures the outcome of a single toolchain invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Runner executes a toolchain command in a working directory with a bounded
// timeout. Implementations must return ErrNotFound when the executable is
// missing, and a Result with TimedOut set when the deadline expired.
type Runner interface {
	Run(dir string, timeout time.Duration, name string, args ...string) (*Result, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return &execRunner{}
}

func (execRunner) Run(dir string, timeout time.Duration, name string, args ...string) (*Result, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.ExitCode = -1
		return res, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}

		return nil, err
	}

	return res, nil
}
