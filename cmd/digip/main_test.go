package main

import (
	"strings"
	"testing"

	"digip/pkg/config"
)

// newTestHome points the CLI at a throwaway state directory and returns it.
func newTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	return home
}

// runCLI executes the root command with the given args and returns combined
// output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// mustRun executes the root command and fails the test on error.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("digip %s: %v", strings.Join(args, " "), err)
	}
	return out
}
