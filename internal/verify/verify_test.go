package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lean-forge/proofcheck/internal/toolchain"
)

// fakeRunner records every invocation and serves canned results per binary.
type fakeRunner struct {
	results map[string]*toolchain.Result
	errs    map[string]error
	calls   []invocation
}

type invocation struct {
	dir  string
	name string
	args []string
}

func (f *fakeRunner) Run(dir string, timeout time.Duration, name string, args ...string) (*toolchain.Result, error) {
	f.calls = append(f.calls, invocation{dir: dir, name: name, args: args})

	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}

	if err, ok := f.errs[key]; ok {
		return nil, err
	}

	if res, ok := f.results[key]; ok {
		return res, nil
	}

	return &toolchain.Result{ExitCode: 0, Stdout: "ok"}, nil
}

// writeProject lays out a minimal project tree: root marker plus a source
// file nested two levels below it.
func writeProject(t *testing.T, marker string) (root, file string) {
	t.Helper()

	root = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, marker), []byte(""), 0o644))

	nested := filepath.Join(root, "MyProofs", "Basic")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	file = filepath.Join(nested, "Theorem.lean")
	require.NoError(t, os.WriteFile(file, []byte("theorem t : True := trivial"), 0o644))

	return root, file
}

func TestFindProjectRoot(t *testing.T) {
	root, file := writeProject(t, "lakefile.toml")

	found := FindProjectRoot(filepath.Dir(file))
	assert.Equal(t, root, found, "marker two levels up must be discovered")
}

func TestFindProjectRoot_LakefileLean(t *testing.T) {
	root, file := writeProject(t, "lakefile.lean")

	found := FindProjectRoot(filepath.Dir(file))
	assert.Equal(t, root, found)
}

func TestFindProjectRoot_NotFound(t *testing.T) {
	dir := t.TempDir()

	found := FindProjectRoot(dir)
	assert.Equal(t, "", found)
}

func TestCheckFile_MissingFile(t *testing.T) {
	r := &fakeRunner{}

	result := CheckFile(r, filepath.Join(t.TempDir(), "ghost.lean"))
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "file not found")
	assert.Empty(t, r.calls, "no subprocess before the existence check passes")
}

func TestCheckFile_WrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := &fakeRunner{}

	result := CheckFile(r, path)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, ".lean")
	assert.Empty(t, r.calls, "no subprocess for an unrecognized extension")
}

func TestCheckFile_ToolchainMissing(t *testing.T) {
	_, file := writeProject(t, "lakefile.toml")

	r := &fakeRunner{
		errs: map[string]error{
			"lean --version": fmt.Errorf("%w: lean", toolchain.ErrNotFound),
		},
	}

	result := CheckFile(r, file)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not found")
}

func TestCheckFile_NoProjectRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Orphan.lean")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := &fakeRunner{}

	result := CheckFile(r, path)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "could not find project root")
}

func TestCheckFile_BuildSuccess(t *testing.T) {
	root, file := writeProject(t, "lakefile.toml")

	r := &fakeRunner{
		results: map[string]*toolchain.Result{
			"lake build": {ExitCode: 0, Stdout: "Build completed successfully."},
		},
	}

	result := CheckFile(r, file)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "All proofs verified")

	// lake build must run from the discovered project root
	last := r.calls[len(r.calls)-1]
	assert.Equal(t, "lake", last.name)
	assert.Equal(t, []string{"build"}, last.args)
	assert.Equal(t, root, last.dir)
}

func TestCheckFile_BuildFailureCarriesStderr(t *testing.T) {
	_, file := writeProject(t, "lakefile.toml")

	stderr := "file.lean:1:1: error: x"
	r := &fakeRunner{
		results: map[string]*toolchain.Result{
			"lake build": {ExitCode: 1, Stderr: stderr},
		},
	}

	result := CheckFile(r, file)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, stderr, "diagnostics must be carried verbatim")
}

func TestCheckFile_BuildFailureFallsBackToStdout(t *testing.T) {
	_, file := writeProject(t, "lakefile.toml")

	r := &fakeRunner{
		results: map[string]*toolchain.Result{
			"lake build": {ExitCode: 1, Stdout: "error output on stdout"},
		},
	}

	result := CheckFile(r, file)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "error output on stdout")
}

func TestCheckFile_BuildTimeout(t *testing.T) {
	_, file := writeProject(t, "lakefile.toml")

	r := &fakeRunner{
		results: map[string]*toolchain.Result{
			"lake build": {ExitCode: -1, TimedOut: true},
		},
	}

	result := CheckFile(r, file)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "timed out")
}
