package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// isolateConfig keeps the caller's config files and ULIDKIT_* variables out
// of the test. It returns the working directory, where .ulidkit.yaml is read.
func isolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, env := range []string{
		"ULIDKIT_LOWERCASE", "ULIDKIT_MONOTONIC", "ULIDKIT_STRICT", "ULIDKIT_COUNT",
		"ULIDKIT_JSON", "ULIDKIT_LOG_LEVEL", "ULIDKIT_LOG_FORMAT", "ULIDKIT_LOG_FILE",
		"ULIDKIT_CONFIG",
	} {
		t.Setenv(env, "")
	}

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes a fresh command tree with stdin and returns what it wrote.
// Config must already be isolated.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	root, opts := newRootCmd()
	defer opts.close()

	var stdout, stderr bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(t.Context())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// lines splits stdout into non-empty lines.
func lines(s string) []string {
	return strings.Fields(s)
}
