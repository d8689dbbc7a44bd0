package toolchain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ProbeTimeout bounds each version-check invocation.
const ProbeTimeout = 5 * time.Second

// CheckInstallation verifies that both lean and lake respond to --version.
// It never has side effects beyond the two subprocess calls.
func CheckInstallation(r Runner) (bool, string) {
	var versions []string

	for _, binary := range []string{LeanBinary, LakeBinary} {
		res, err := r.Run("", ProbeTimeout, binary, "--version")
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return false, fmt.Sprintf("`%s` not found. Please install Lean 4 and make sure it is on your PATH.", binary)
			}

			return false, fmt.Sprintf("unexpected error running `%s --version`: %v", binary, err)
		}

		if res.TimedOut {
			return false, fmt.Sprintf("`%s --version` timed out after %s; the toolchain appears to be hung or misconfigured.", binary, ProbeTimeout)
		}

		if res.ExitCode != 0 {
			detail := strings.TrimSpace(res.Stderr)
			if detail == "" {
				detail = strings.TrimSpace(res.Stdout)
			}

			return false, fmt.Sprintf("`%s --version` exited with code %d: %s", binary, res.ExitCode, detail)
		}

		versions = append(versions, strings.TrimSpace(res.Stdout))
	}

	return true, strings.Join(versions, "\n")
}
