package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lean-forge/proofcheck/internal/toolchain"
)

type fakeRunner struct {
	results map[string]*toolchain.Result
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(dir string, timeout time.Duration, name string, args ...string) (*toolchain.Result, error) {
	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}

	f.calls = append(f.calls, key)

	if err, ok := f.errs[key]; ok {
		return nil, err
	}

	if res, ok := f.results[key]; ok {
		return res, nil
	}

	return &toolchain.Result{ExitCode: 0}, nil
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"myproject", false},
		{"my_project", false},
		{"_private", false},
		{"MyProofs2", false},
		{"", true},
		{"123project", true},
		{"my project", true},
		{"my/project", true},
		{`my\project`, true},
		{"my:project", true},
		{"my*project", true},
		{"what?", true},
		{`say"hi"`, true},
		{"a<b", true},
		{"a>b", true},
		{"a|b", true},
	}

	for _, test := range tests {
		err := ValidateName(test.name)
		if test.wantErr {
			assert.ErrorIs(t, err, ErrInvalidName, "ValidateName(%q)", test.name)
		} else {
			assert.NoError(t, err, "ValidateName(%q)", test.name)
		}
	}
}

func TestCreate_Success(t *testing.T) {
	chdir(t, t.TempDir())
	name := "myproject"

	r := &fakeRunner{}

	err := Create(r, name, "math")
	require.NoError(t, err)

	// lake init ran after the probe
	assert.Equal(t, []string{"lean --version", "lake --version", "lake init"}, r.calls)

	// Starter file was written
	data, err := os.ReadFile(filepath.Join(name, "Proofs.lean"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import Mathlib")
}

func TestCreate_ValidationRunsBeforeFilesystem(t *testing.T) {
	r := &fakeRunner{}

	err := Create(r, "123project", "math")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Empty(t, r.calls, "validation failure must not invoke the toolchain")
}

func TestCreate_ExistingDirectoryFailsBeforeInit(t *testing.T) {
	chdir(t, t.TempDir())
	name := "taken"
	require.NoError(t, os.Mkdir(name, 0o755))

	r := &fakeRunner{}

	err := Create(r, name, "math")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, r.calls, "pre-existing directory must not invoke the initializer")
}

func TestCreate_InitFailureRollsBack(t *testing.T) {
	chdir(t, t.TempDir())
	name := "doomed"

	r := &fakeRunner{
		results: map[string]*toolchain.Result{
			"lake init": {ExitCode: 1, Stderr: "error: invalid template"},
		},
	}

	err := Create(r, name, "math")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid template")

	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr), "failed create must remove the directory")
}

func TestCreate_InitTimeoutRollsBack(t *testing.T) {
	chdir(t, t.TempDir())
	name := "slow"

	r := &fakeRunner{
		results: map[string]*toolchain.Result{
			"lake init": {ExitCode: -1, TimedOut: true},
		},
	}

	err := Create(r, name, "math")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")

	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreate_ToolchainMissing(t *testing.T) {
	chdir(t, t.TempDir())
	name := "nolean"

	r := &fakeRunner{
		errs: map[string]error{
			"lean --version": fmt.Errorf("%w: lean", toolchain.ErrNotFound),
		},
	}

	err := Create(r, name, "math")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr), "probe failure must leave no directory behind")
	assert.NotContains(t, r.calls, "lake init")
}

func TestCreate_UnexpectedInitErrorRollsBack(t *testing.T) {
	chdir(t, t.TempDir())
	name := "weird"

	r := &fakeRunner{
		errs: map[string]error{
			"lake init": errors.New("fork/exec: resource temporarily unavailable"),
		},
	}

	err := Create(r, name, "math")
	require.Error(t, err)

	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr))
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}
