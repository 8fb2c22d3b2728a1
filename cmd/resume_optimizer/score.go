package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long: `Score a resume against a job posting across text similarity, skill
coverage, experience level, and education. With an API key the text axis uses
semantic embeddings; without one it falls back to TF-IDF cosine similarity.`,
	RunE: runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobURL     string
	scoreOutputFile string
	scoreAPIKey     string
	scoreUseBrowser bool
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (prints a summary to stdout if omitted)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key for semantic scoring (optional, defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	apiKey := resolveAPIKey(scoreAPIKey)

	resumeText, err := loadResume(scoreResumeFile)
	if err != nil {
		return err
	}
	jobText, err := loadJob(ctx, scoreJobFile, scoreJobURL, apiKey, scoreUseBrowser, scoreVerbose)
	if err != nil {
		return err
	}

	engine, closeClient, err := newEngine(ctx, apiKey)
	if err != nil {
		return err
	}
	defer closeClient()

	profile, err := analyze.Job(jobText)
	if err != nil {
		return fmt.Errorf("failed to analyze job posting: %w", err)
	}

	report, err := engine.ScoreProfile(ctx, resumeText, jobText, profile)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if scoreVerbose {
		printer.PrintJobProfile(profile)
	}

	if scoreOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Match report written to %s\n", scoreOutputFile)
		return nil
	}

	printer.PrintMatchReport(report)
	return nil
}

// newEngine builds a similarity engine, backed by a Gemini embedder when an
// API key is available. The returned func closes the client (a no-op in
// TF-IDF mode).
func newEngine(ctx context.Context, apiKey string) (*similarity.Engine, func(), error) {
	if apiKey == "" {
		return similarity.NewEngine(nil), func() {}, nil
	}

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return similarity.NewEngine(client), func() { _ = client.Close() }, nil
}
