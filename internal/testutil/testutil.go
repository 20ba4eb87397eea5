// Package testutil provides common test helpers for the zpick project.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// QueryOutput builds the newline-delimited stdout of `zoxide query --list`
// from the given paths, including the trailing newline zoxide emits.
func QueryOutput(paths ...string) string {
	if len(paths) == 0 {
		return ""
	}
	return strings.Join(paths, "\n") + "\n"
}

// ScoredOutput builds the stdout of `zoxide query --list --score`.
// Scores are rendered right-aligned the way zoxide prints them.
func ScoredOutput(entries map[string]float64, order ...string) string {
	var b strings.Builder
	for _, p := range order {
		fmt.Fprintf(&b, "%10.1f %s\n", entries[p], p)
	}
	return b.String()
}

// WriteConfig writes a config.toml with the given content into dir and
// returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	return path
}
