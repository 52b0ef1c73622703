package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content, creating parent directories
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateDataDirectory lays out a data directory with one mental model, one
// English quote, one song and one vocabulary word and returns its path.
func CreateDataDirectory(t *testing.T) string {
	t.Helper()

	dataDir := filepath.Join(t.TempDir(), "data")

	files := map[string]string{
		"mental_models.json": `[{"name": "Inversion", "description": "Think about the problem **backwards**."}]`,
		"quotes.json":        `[{"content": "Simplicity is prerequisite for reliability.", "author": "Edsger Dijkstra"}]`,
		"words.json":         `[{"word": "ephemeral", "meaning": "lasting a very short time"}]`,
		"lyrics/Yesterday.txt": "Yesterday, all my troubles seemed so far away\n" +
			"Now it looks as though they're here to stay\n",
	}

	for name, content := range files {
		CreateTestFile(t, filepath.Join(dataDir, name), []byte(content))
	}

	return dataDir
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
