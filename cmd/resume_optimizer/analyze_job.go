package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job posting into a structured JobProfile",
	Long:  "Analyze a cleaned job posting text file into a structured JobProfile JSON that validates against the job_profile schema.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to job posting text file (required)")
	analyzeJobCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (prints a summary to stdout if omitted)")

	_ = analyzeJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	cleanedText, _, err := ingestion.IngestFromFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	profile, err := analyze.Job(cleanedText)
	if err != nil {
		return fmt.Errorf("failed to analyze job posting: %w", err)
	}

	if analyzeOutputFile == "" {
		observability.NewPrinter(os.Stdout).PrintJobProfile(profile)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate against schema (if the schema file can be located)
	schemaPath := schemas.ResolveSchemaPath("schemas/job_profile.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, analyzeOutputFile); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			switch {
			case errors.As(err, &validationErr):
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			case errors.As(err, &schemaLoadErr):
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			default:
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed job posting\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)

	return nil
}
