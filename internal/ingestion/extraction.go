package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
)

// ExtractedPosting is the structured output of LLM-backed posting extraction.
// It mirrors the JobPostingSchema fields.
type ExtractedPosting struct {
	Title            string   `json:"title,omitempty"`
	Company          string   `json:"company,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	RequiredSkills   []string `json:"required_skills"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications,omitempty"`
}

// ExtractWithLLM separates the core posting content from boilerplate using the
// posting extraction schema. The lite tier is enough for this task.
func ExtractWithLLM(ctx context.Context, text string, apiKey string) (*ExtractedPosting, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required for LLM extraction")
	}

	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	prompt := llm.BuildExtractionPrompt(llm.JobPostingSchema(), text)

	jsonResp, err := client.CompleteJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	var extracted ExtractedPosting
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &extracted); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, jsonResp)
	}
	return &extracted, nil
}

// FormatPosting renders an extracted posting back into the canonical labeled
// text layout the deterministic analyzer parses best.
func FormatPosting(extracted *ExtractedPosting) string {
	var sb strings.Builder

	if extracted.Title != "" {
		sb.WriteString(extracted.Title)
		sb.WriteString("\n")
	}
	if extracted.Company != "" {
		sb.WriteString("Company: ")
		sb.WriteString(extracted.Company)
		sb.WriteString("\n")
	}
	if extracted.ExperienceLevel != "" {
		sb.WriteString("Experience Level: ")
		sb.WriteString(extracted.ExperienceLevel)
		sb.WriteString("\n")
	}

	writeSection := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n")
		sb.WriteString(header)
		sb.WriteString(":\n")
		for _, item := range items {
			sb.WriteString("- ")
			sb.WriteString(item)
			sb.WriteString("\n")
		}
	}

	writeSection("Responsibilities", extracted.Responsibilities)
	writeSection("Requirements", extracted.RequiredSkills)
	writeSection("Qualifications", extracted.Qualifications)

	return strings.TrimSpace(sb.String()) + "\n"
}
