package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_optimizer binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_optimizer"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// withoutAPIKey returns an environment for exec.Command with GEMINI_API_KEY
// cleared, so tests exercise the TF-IDF path deterministically.
func withoutAPIKey() []string {
	env := os.Environ()
	filtered := env[:0]
	for _, kv := range env {
		if len(kv) >= 15 && kv[:15] == "GEMINI_API_KEY=" {
			continue
		}
		filtered = append(filtered, kv)
	}
	return filtered
}
