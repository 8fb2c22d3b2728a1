package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/plan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a prioritized improvement plan for a resume",
	Long: `Score a resume against a job posting and turn the gap analysis into a
prioritized list of recommendations: which skills to add, which keywords to
mirror, and how to reframe experience.`,
	RunE: runPlan,
}

var (
	planResumeFile  string
	planJobFile     string
	planJobURL      string
	planOutputFile  string
	planTargetScore float64
	planAPIKey      string
	planUseBrowser  bool
	planVerbose     bool
)

func init() {
	planCmd.Flags().StringVarP(&planResumeFile, "resume", "r", "", "Path to resume text file (required)")
	planCmd.Flags().StringVarP(&planJobFile, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	planCmd.Flags().StringVar(&planJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	planCmd.Flags().StringVarP(&planOutputFile, "out", "o", "", "Path to output JSON file (prints a summary to stdout if omitted)")
	planCmd.Flags().Float64Var(&planTargetScore, "target", plan.DefaultTargetScore, "Match score the plan aims for (0-100)")
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API key for semantic scoring (optional, defaults to GEMINI_API_KEY env var)")
	planCmd.Flags().BoolVar(&planUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = planCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	if planTargetScore <= 0 || planTargetScore > 100 {
		return fmt.Errorf("--target must be between 0 and 100")
	}

	ctx := context.Background()
	apiKey := resolveAPIKey(planAPIKey)

	resumeText, err := loadResume(planResumeFile)
	if err != nil {
		return err
	}
	jobText, err := loadJob(ctx, planJobFile, planJobURL, apiKey, planUseBrowser, planVerbose)
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

	improvementPlan := plan.Build(report, profile, resumeText, planTargetScore)

	printer := observability.NewPrinter(os.Stdout)
	if planVerbose {
		printer.PrintJobProfile(profile)
		printer.PrintMatchReport(report)
	}

	if planOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(improvementPlan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(planOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Improvement plan written to %s\n", planOutputFile)
		return nil
	}

	printer.PrintImprovementPlan(improvementPlan)
	return nil
}
