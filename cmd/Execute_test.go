package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStderr redirects os.Stderr for the duration of fn and returns what
// was written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = orig }()
	fn()
	require.NoError(t, w.Close())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestExecute_ValidationFailureExitsOne(t *testing.T) {
	resetConfig()
	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })

	var code = -1
	exitFunc = func(c int) { code = c }

	rootCmd.SetArgs([]string{"--host", "r1.lab"}) // --script missing
	Execute()
	require.Equal(t, 1, code)
}

func TestExecute_UnknownFlagPrintsUsage(t *testing.T) {
	resetConfig()
	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	var code = -1
	exitFunc = func(c int) { code = c }

	rootCmd.SetArgs([]string{"--bogus"})
	out := captureStderr(t, Execute)

	require.Equal(t, 1, code)
	require.Contains(t, out, "Usage:")
}

func TestExecute_MissingScriptPrintsUsage(t *testing.T) {
	resetConfig()
	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	var code = -1
	exitFunc = func(c int) { code = c }

	rootCmd.SetArgs([]string{"--host", "r1.lab"})
	out := captureStderr(t, Execute)

	require.Equal(t, 1, code)
	require.Contains(t, out, "--script is required")
	require.Contains(t, out, "Usage:")
}

func TestExecute_DeployFailureDoesNotPrintUsage(t *testing.T) {
	resetConfig()
	sd := &stubDeploy{fail: map[string]deployStatus{"r1.lab": statusUploadFailed}}
	sd.install(t)

	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	var code = -1
	exitFunc = func(c int) { code = c }

	tmp := t.TempDir()
	script := writeTemp(t, tmp, "setup.rsc", "x\n")
	rootCmd.SetArgs([]string{"--host", "r1.lab", "--script", script, "--no-color"})
	out := captureStderr(t, Execute)

	require.Equal(t, 1, code)
	require.NotContains(t, out, "Usage:")
}

func TestExecute_DeployFailureExitsOne(t *testing.T) {
	resetConfig()
	sd := &stubDeploy{fail: map[string]deployStatus{"r1.lab": statusUploadFailed}}
	sd.install(t)

	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	var code = -1
	exitFunc = func(c int) { code = c }

	tmp := t.TempDir()
	script := writeTemp(t, tmp, "setup.rsc", "x\n")
	rootCmd.SetArgs([]string{"--host", "r1.lab", "--script", script, "--no-color"})
	Execute()
	require.Equal(t, 1, code)
}

func TestExecute_SuccessDoesNotExit(t *testing.T) {
	resetConfig()
	sd := &stubDeploy{}
	sd.install(t)

	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	called := false
	exitFunc = func(int) { called = true }

	tmp := t.TempDir()
	script := writeTemp(t, tmp, "setup.rsc", "x\n")
	rootCmd.SetArgs([]string{"--host", "r1.lab", "--script", script, "--no-color"})
	Execute()
	require.False(t, called)
}
