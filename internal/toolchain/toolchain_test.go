package toolchain

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_MissingExecutable(t *testing.T) {
	r := NewRunner()

	_, err := r.Run("", time.Second, "definitely-not-a-real-binary-xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRunner_CapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	r := NewRunner()

	res, err := r.Run("", 5*time.Second, "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.False(t, res.TimedOut)
}

func TestRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	r := NewRunner()

	res, err := r.Run("", 5*time.Second, "sh", "-c", "echo broken >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "broken\n", res.Stderr)
}

func TestRunner_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	r := NewRunner()

	res, err := r.Run("", 100*time.Millisecond, "sh", "-c", "sleep 5")
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
}

func TestRunner_WorkingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on pwd")
	}

	dir := t.TempDir()
	r := NewRunner()

	res, err := r.Run(dir, 5*time.Second, "pwd")
	require.NoError(t, err)

	// TempDir may sit behind a symlink (e.g. /var on darwin)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, resolved)
}
