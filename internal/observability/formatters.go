// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the analyzed job posting.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.Title))
	if profile.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company))
	}
	sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	sb.WriteString("\n")

	if len(profile.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(profile.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.RequiredSkills[i]))
		}
		if len(profile.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Responsibilities) > 0 {
		sb.WriteString("Responsibilities:\n")
		count := min(len(profile.Responsibilities), 3)
		for i := 0; i < count; i++ {
			resp := profile.Responsibilities[i]
			if len(resp) > 50 {
				resp = resp[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", resp))
		}
		if len(profile.Responsibilities) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Responsibilities)-3))
		}
	}

	p.printBox("ANALYZED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the scoring breakdown for one resume/job pair.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %.1f%%\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Method:      %s\n", report.Method))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Text:        %.1f%%\n", report.LexicalScore))
	if report.Method == types.MethodSemanticEmbedding {
		sb.WriteString(fmt.Sprintf("Semantic:    %.1f%%\n", report.SemanticScore))
	}
	sb.WriteString(fmt.Sprintf("Skills:      %.1f%%\n", report.SkillScore))
	sb.WriteString(fmt.Sprintf("Experience:  %.1f%%\n", report.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:   %.1f%%\n", report.EducationScore))
	sb.WriteString("\n")

	if len(report.MatchedSkills) > 0 {
		skills := strings.Join(report.MatchedSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", skills))
	}
	if len(report.MissingSkills) > 0 {
		skills := strings.Join(report.MissingSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", skills))
	}

	sb.WriteString("\n")
	sb.WriteString(report.Recommendation)

	p.printBox("MATCH REPORT", sb.String())
}

// PrintImprovementPlan outputs the prioritized recommendations.
func (p *Printer) PrintImprovementPlan(plan *types.ImprovementPlan) {
	if plan == nil {
		return
	}

	if !plan.Needed {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME ALREADY MEETS THE TARGET")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Current:  %.1f%%   Target: %.1f%%   Gap: %.1f%%\n",
		plan.CurrentScore, plan.TargetScore, plan.ScoreGap))
	sb.WriteString("\n")

	count := min(len(plan.Recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := plan.Recommendations[i]
		action := rec.Action
		if len(action) > 45 {
			action = action[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(rec.Priority)), action))
		if rec.EstimatedImpact != "" {
			sb.WriteString(fmt.Sprintf("  impact: %s\n", rec.EstimatedImpact))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(plan.Recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(plan.Recommendations)-maxItemsToShow))
	}

	p.printBox("IMPROVEMENT PLAN", sb.String())
}

// PrintOptimizationResult outputs the optimizer outcome and attempt log.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %.1f%% → %.1f%% (%+.1f%%)\n",
		result.OriginalScore, result.FinalScore, result.Improvement))
	sb.WriteString(fmt.Sprintf("Target:   %.1f%%", result.TargetScore))
	if result.TargetReached {
		sb.WriteString("  ✓ reached")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Rounds:   %d/%d\n", result.IterationsUsed, result.MaxIterations))
	sb.WriteString("\n")

	count := min(len(result.Attempts), maxItemsToShow)
	for i := 0; i < count; i++ {
		attempt := result.Attempts[i]
		marker := "✗"
		if attempt.Accepted {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s #%d %s (%+.1f%%)\n",
			marker, attempt.Iteration, attempt.Strategy, attempt.Delta))
	}
	if len(result.Attempts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more attempts\n", len(result.Attempts)-maxItemsToShow))
	}

	sb.WriteString("\n")
	sb.WriteString(result.Summary)

	p.printBox("OPTIMIZATION RESULT", sb.String())
}
