package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the consentgen binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "consentgen"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/consentgen ./cmd/consentgen'", binaryPath)
	}

	return binaryPath
}

// writeRoster writes content to a roster file named name inside a temp dir
func writeRoster(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}
	return path
}
