package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a resume or job posting text file",
	Long:  "Extract, normalize, and deduplicate skill names from a text file. Prints one skill per line, or a JSON array with --out.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (prints one skill per line if omitted)")

	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	skills := extract.Skills(string(content))

	if extractOutputFile == "" {
		for _, skill := range skills {
			fmt.Fprintln(os.Stdout, skill)
		}
		return nil
	}

	jsonBytes, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Extracted %d skills\n", len(skills))
	fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)

	return nil
}
