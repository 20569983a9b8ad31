package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureRun redirects run()'s stdout/stderr through os.Pipe so the test can
// assert on what the CLI printed, since run takes *os.File (matching the
// real os.Stdout/os.Stderr it's called with from main1).
func captureRun(t *testing.T, args []string) (code int, stdout, stderr string) {
	t.Helper()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	code = run(args, outW, errW)
	outW.Close()
	errW.Close()

	var outBuf, errBuf bytes.Buffer
	_, err = outBuf.ReadFrom(outR)
	require.NoError(t, err)
	_, err = errBuf.ReadFrom(errR)
	require.NoError(t, err)

	return code, outBuf.String(), errBuf.String()
}

func TestRunUsageError(t *testing.T) {
	code, _, stderr := captureRun(t, nil)
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "usage: lainc compile")
}

func TestRunUnknownSubcommand(t *testing.T) {
	code, _, stderr := captureRun(t, []string{"run", "main.lain"})
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "usage:")
}

func TestRunMissingFile(t *testing.T) {
	code, _, stderr := captureRun(t, []string{"compile", "/no/such/file.lain"})
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Error:")
}

// TestRunNoFrontendLinked exercises the default frontend.Parse seam: with no
// lexer/parser linked into this build, compiling an existing file fails with
// the sentinel error rather than panicking or silently producing nothing.
func TestRunNoFrontendLinked(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/main.lain"
	require.NoError(t, os.WriteFile(path, []byte("proc main() {}\n"), 0o644))

	code, _, stderr := captureRun(t, []string{"compile", path})
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "no lexer/parser linked")
}
