// Package main implements the resume_optimizer CLI: analyze job postings,
// score resumes against them, build improvement plans, run the agentic
// optimizer, and serve the REST API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume Optimizer CLI and HTTP API Server",
	Long: `resume_optimizer matches resumes against job postings and iteratively
rewrites them to improve the match.

Commands cover each stage on its own (ingest-job, analyze-job, score, plan),
the full agentic optimization loop (optimize), and the REST API (serve).`,
}

func main() {
	// Load .env if present; a missing file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
