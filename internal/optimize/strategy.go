package optimize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Prompt caps keep the selection prompt compact regardless of posting size.
const (
	maxPromptSkills        = 15
	maxPromptMissingSkills = 10
	maxActionSkills        = 20
)

// stepPlan is the reasoning output for one iteration: which strategy to apply,
// where to focus, and what improvement the planner expects.
type stepPlan struct {
	Strategy            types.Strategy
	Focus               string
	ExpectedImprovement float64
	Reasoning           string
}

// planResponse is the JSON shape the selection model is asked to produce.
type planResponse struct {
	StrategyName        string  `json:"strategy_name"`
	FocusArea           string  `json:"focus_area"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Reasoning           string  `json:"reasoning"`
}

// selectStrategy asks the generator to pick the next strategy given the run so
// far. Any failure (transport, malformed JSON, a strategy outside the closed
// set) falls back to the deterministic local plan.
func (o *Optimizer) selectStrategy(ctx context.Context, run *types.OptimizationRun, profile *types.JobProfile) stepPlan {
	if o.generator == nil {
		return fallbackPlan(run)
	}

	raw, err := o.generator.Complete(ctx, selectionPrompt(run, profile), llm.TierStandard)
	if err != nil {
		return fallbackPlan(run)
	}

	var resp planResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return fallbackPlan(run)
	}

	strategy := types.Strategy(strings.TrimSpace(resp.StrategyName))
	if !strategy.Valid() {
		return fallbackPlan(run)
	}

	plan := stepPlan{
		Strategy:            strategy,
		Focus:               resp.FocusArea,
		ExpectedImprovement: resp.ExpectedImprovement,
		Reasoning:           resp.Reasoning,
	}
	if plan.Focus == "" {
		plan.Focus = "general improvement"
	}
	if plan.ExpectedImprovement <= 0 {
		plan.ExpectedImprovement = 5
	}
	return plan
}

// fallbackPlan is the deterministic strategy ladder used when the selection
// model is unavailable or returns garbage.
func fallbackPlan(run *types.OptimizationRun) stepPlan {
	switch {
	case run.Iteration <= 1:
		return stepPlan{
			Strategy:            types.StrategyKeywordOptimization,
			Focus:               "experience rewording",
			ExpectedImprovement: 8,
			Reasoning:           "First iteration - optimize keywords",
		}
	case run.Succeeded(types.StrategyKeywordOptimization):
		return stepPlan{
			Strategy:            types.StrategyProfessionalSummary,
			Focus:               "summary creation",
			ExpectedImprovement: 5,
			Reasoning:           "Keywords worked, now add summary",
		}
	default:
		return stepPlan{
			Strategy:            types.StrategySkillsEmphasis,
			Focus:               "skills reorganization",
			ExpectedImprovement: 6,
			Reasoning:           "Emphasize matching skills",
		}
	}
}

func selectionPrompt(run *types.OptimizationRun, profile *types.JobProfile) string {
	missing := missingSkills(run.CurrentResume, profile.RequiredSkills)

	var tried, succeeded, failed []string
	for _, attempt := range run.Attempts {
		tried = append(tried, string(attempt.Strategy))
	}
	for _, s := range run.Successful {
		succeeded = append(succeeded, string(s))
	}
	for _, s := range run.Failed {
		failed = append(failed, string(s))
	}

	return fmt.Sprintf(`You are an intelligent resume optimization agent. Analyze the situation and decide the BEST strategy for this iteration.

CURRENT SITUATION:
- Current Score: %.1f%%
- Target Score: %.1f%%
- Gap: %.1f%%
- Iteration: %d
- Previous Strategies Tried: %s
- Successful Strategies: %s
- Failed Strategies: %s

JOB REQUIREMENTS:
- Position: %s
- Required Skills: %s
- Missing Skills: %s

AVAILABLE STRATEGIES:
1. keyword_optimization - Rewrite experience bullets using job keywords
2. skills_emphasis - Reorganize to highlight matching skills
3. professional_summary - Add or improve the summary section
4. ats_formatting - Improve structure and formatting
5. experience_expansion - Elaborate on relevant experiences

INSTRUCTIONS:
Based on the gap, previous attempts, and job requirements, choose ONE strategy that will be most effective NOW.

Respond in JSON format:
{
    "strategy_name": "chosen_strategy",
    "focus_area": "specific aspect to improve",
    "expected_improvement": estimated_percentage_points,
    "reasoning": "why this strategy now"
}`,
		run.CurrentScore, run.TargetScore, run.TargetScore-run.CurrentScore,
		run.Iteration,
		orNone(tried), orNone(succeeded), orNone(failed),
		profile.Title,
		strings.Join(capped(profile.RequiredSkills, maxPromptSkills), ", "),
		strings.Join(capped(missing, maxPromptMissingSkills), ", "))
}

// actionPrompt builds the rewrite instruction for one strategy. Every prompt
// insists on keeping facts unchanged; the optimizer improves presentation, it
// never invents history.
func actionPrompt(strategy types.Strategy, resume string, profile *types.JobProfile) string {
	skills := strings.Join(capped(profile.RequiredSkills, maxActionSkills), ", ")

	switch strategy {
	case types.StrategyKeywordOptimization:
		return fmt.Sprintf(`Rewrite this resume to use more keywords from the job description.

RESUME:
%s

JOB KEYWORDS: %s

INSTRUCTIONS:
- Reword experience bullets to include job keywords
- Keep all facts unchanged (companies, dates, education)
- Use action verbs from the job description
- Do NOT add fake information

Return ONLY the rewritten resume.`, resume, skills)

	case types.StrategyProfessionalSummary:
		return fmt.Sprintf(`Add or improve the professional summary section at the top of this resume.

RESUME:
%s

TARGET JOB: %s
KEY SKILLS: %s

INSTRUCTIONS:
- Add a 2-3 sentence professional summary highlighting relevant experience
- Keep all other content unchanged
- Focus on match to the target role

Return ONLY the resume with the improved summary.`, resume, profile.Title, strings.Join(capped(profile.RequiredSkills, maxPromptMissingSkills), ", "))

	case types.StrategySkillsEmphasis:
		return fmt.Sprintf(`Reorganize the skills section to emphasize job-relevant skills.

RESUME:
%s

REQUIRED SKILLS: %s

INSTRUCTIONS:
- Move matching skills to the top of the skills section
- Group related skills together
- Keep all facts unchanged

Return ONLY the reorganized resume.`, resume, strings.Join(capped(profile.RequiredSkills, maxPromptSkills), ", "))

	case types.StrategyATSFormatting:
		return fmt.Sprintf(`Improve the ATS-friendly formatting of this resume.

RESUME:
%s

INSTRUCTIONS:
- Use clear section headers (EXPERIENCE, EDUCATION, SKILLS)
- Remove any complex formatting
- Use bullet points consistently
- Keep content unchanged

Return ONLY the reformatted resume.`, resume)

	default: // experience_expansion
		return fmt.Sprintf(`Expand on the experiences most relevant to the target job.

RESUME:
%s

TARGET JOB: %s

INSTRUCTIONS:
- Elaborate on job-relevant experiences with more detail
- Keep facts unchanged, just add more context
- Use keywords from the job description

Return ONLY the expanded resume.`, resume, profile.Title)
	}
}

// missingSkills returns the required skills the resume doesn't surface, by
// case-insensitive exact comparison against the extracted resume skills.
func missingSkills(resumeText string, required []string) []string {
	have := make(map[string]bool)
	for _, skill := range extract.Skills(resumeText) {
		have[strings.ToLower(skill)] = true
	}

	var missing []string
	for _, skill := range required {
		if !have[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	return missing
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
