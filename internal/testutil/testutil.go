package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a small file named name in dir and returns its path
func CreateTestFile(t *testing.T, dir string, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return path
}

// CreateTestFolder creates a temporary folder holding the named files and
// returns the folder and the created paths, in the order given
func CreateTestFolder(t *testing.T, names ...string) (string, []string) {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(names))

	for _, name := range names {
		paths = append(paths, CreateTestFile(t, dir, name))
	}

	return dir, paths
}
