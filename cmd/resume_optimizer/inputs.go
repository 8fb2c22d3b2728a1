package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
)

// loadResume reads a resume text file.
func loadResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--resume is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(content), nil
}

// loadJob resolves the job posting text from either a local file or a URL.
// Exactly one of jobFile and jobURL must be set.
func loadJob(ctx context.Context, jobFile, jobURL, apiKey string, useBrowser, verbose bool) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		text, _, err := ingestion.IngestFromFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to ingest job posting: %w", err)
		}
		return text, nil
	}

	text, _, err := ingestion.IngestFromURL(ctx, jobURL, apiKey, useBrowser, verbose)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// resolveAPIKey prefers the flag value over the GEMINI_API_KEY env var.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
