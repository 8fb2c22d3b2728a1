// Package plan turns a match report into an actionable improvement plan:
// prioritized recommendations, a short list of priority actions and a summary
// sentence. The plan is advisory only and never changes the underlying scores.
package plan

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultTargetScore is the match threshold a plan aims for when the caller
// doesn't specify one.
const DefaultTargetScore = 80.0

const (
	// criticalSkillThreshold promotes the skill-gap recommendation to
	// critical when the skill axis scores below it.
	criticalSkillThreshold = 60.0

	// perSkillImpact approximates the overall-score impact of one missing
	// required skill, given the skill axis weight.
	perSkillImpact = 3.5

	maxNamedSkills     = 5
	maxPriorityActions = 3
)

// skillFamilies maps a skill to vocabulary that signals the candidate already
// works in the same area, which softens the "add this skill" advice.
var skillFamilies = map[string][]string{
	"python":           {"programming", "scripting", "backend"},
	"javascript":       {"frontend", "web", "react", "node"},
	"aws":              {"cloud", "azure", "gcp", "devops"},
	"docker":           {"containerization", "kubernetes", "devops"},
	"sql":              {"database", "mysql", "postgresql"},
	"react":            {"frontend", "javascript", "ui"},
	"machine learning": {"ai", "data science", "deep learning"},
}

// jobActionVerbs are echoed back to the candidate when they appear in the
// posting, so the resume can mirror the posting's own language.
var jobActionVerbs = []string{
	"collaborate", "lead", "develop", "implement", "manage",
	"design", "optimize", "build", "create", "deliver",
}

// Build generates an improvement plan from a match report. targetScore <= 0
// selects DefaultTargetScore. At or above target the plan reports Needed=false
// with no recommendations.
func Build(report *types.MatchReport, profile *types.JobProfile, resumeText string, targetScore float64) *types.ImprovementPlan {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	if report.OverallScore >= targetScore {
		return &types.ImprovementPlan{
			Needed:          false,
			CurrentScore:    report.OverallScore,
			TargetScore:     targetScore,
			Recommendations: []types.Recommendation{},
			PriorityActions: []string{},
			Summary: fmt.Sprintf(
				"Your resume already meets or exceeds the %.0f%% match threshold.",
				targetScore),
		}
	}

	scoreGap := targetScore - report.OverallScore
	signals := analyze.Graduate(resumeText)

	var recommendations []types.Recommendation
	var priorityActions []string

	if rec, ok := skillRecommendation(report, resumeText, scoreGap); ok {
		recommendations = append(recommendations, rec)
		priorityActions = append(priorityActions, "Add missing required skills to your resume")
	}

	if report.ExperienceScore < 100 || report.OverallScore < 70 {
		recommendations = append(recommendations, experienceRecommendation(report, profile, signals))
		priorityActions = append(priorityActions, "Emphasize relevant experience")
	}

	recommendations = append(recommendations, keywordRecommendation(profile))
	priorityActions = append(priorityActions, "Optimize resume keywords")

	if report.EducationScore < 100 {
		recommendations = append(recommendations, educationRecommendation(report))
	}

	if len(priorityActions) > maxPriorityActions {
		priorityActions = priorityActions[:maxPriorityActions]
	}

	return &types.ImprovementPlan{
		Needed:          true,
		CurrentScore:    report.OverallScore,
		TargetScore:     targetScore,
		ScoreGap:        round2(scoreGap),
		RecentGraduate:  signals.RecentGraduate,
		Recommendations: recommendations,
		PriorityActions: priorityActions,
		Summary:         summarize(report.OverallScore, targetScore, recommendations),
	}
}

// skillRecommendation covers the skill axis, the heaviest-weighted one. The
// missing required skills are named outright, and the priority escalates to
// critical when the axis itself is failing.
func skillRecommendation(report *types.MatchReport, resumeText string, scoreGap float64) (types.Recommendation, bool) {
	if len(report.MissingSkills) == 0 {
		return types.Recommendation{}, false
	}

	priority := types.PriorityHigh
	if report.SkillScore < criticalSkillThreshold {
		priority = types.PriorityCritical
	}

	impact := float64(len(report.MissingSkills)) * perSkillImpact
	if impact > scoreGap {
		impact = scoreGap
	}

	named := report.MissingSkills
	if len(named) > maxNamedSkills {
		named = named[:maxNamedSkills]
	}

	return types.Recommendation{
		Category:        "Skills",
		Priority:        priority,
		Action:          "Add Missing Skills to Resume",
		Details:         skillDetails(named, resumeText),
		Skills:          named,
		CurrentStatus:   fmt.Sprintf("%d/%d skills matched", len(report.MatchedSkills), report.TotalRequired),
		EstimatedImpact: fmt.Sprintf("+%.1f%%", impact),
	}, true
}

// skillDetails writes one line per missing skill, noting related skills the
// candidate already lists where a family is known.
func skillDetails(missing []string, resumeText string) string {
	haveJoined := strings.ToLower(strings.Join(extract.Skills(resumeText), " "))

	lines := make([]string, 0, len(missing))
	for _, skill := range missing {
		var related []string
		for _, term := range skillFamilies[strings.ToLower(skill)] {
			if strings.Contains(haveJoined, term) {
				related = append(related, term)
			}
		}
		if len(related) > 0 {
			sort.Strings(related)
			lines = append(lines, fmt.Sprintf(
				"- %s: add to skills section (you have related: %s)",
				skill, strings.Join(related, ", ")))
		} else {
			lines = append(lines, fmt.Sprintf(
				"- %s: add to skills section or gain this skill through training", skill))
		}
	}
	return strings.Join(lines, "\n")
}

// experienceRecommendation adapts its tone to the candidate: recent graduates
// get advice that leans on academic work instead of a penalizing rewrite list.
func experienceRecommendation(report *types.MatchReport, profile *types.JobProfile, signals types.GraduateSignals) types.Recommendation {
	var details []string
	status := fmt.Sprintf("%.1f years of experience detected", report.CandidateYears)

	if signals.RecentGraduate {
		status = "Recent graduate profile detected"
		details = []string{
			"- Present internships, co-ops and part-time roles as professional experience",
			"- Describe academic and capstone projects with the technologies used",
			"- Lead with relevant coursework, certifications and hands-on projects",
		}
		if signals.HasInternship {
			details = append(details,
				"- Expand internship entries with concrete outcomes and tools")
		}
	} else {
		rewrite := "- Rewrite job descriptions to emphasize skills relevant to the role"
		if profile != nil && profile.Title != types.TitleNotSpecified {
			rewrite = fmt.Sprintf(
				"- Rewrite job descriptions to emphasize skills relevant to %s", profile.Title)
		}
		details = []string{
			rewrite,
			"- Add quantifiable achievements (percentages, numbers, metrics)",
			"- Use action verbs: Led, Developed, Implemented, Improved",
		}
	}

	return types.Recommendation{
		Category:        "Experience",
		Priority:        types.PriorityMedium,
		Action:          "Optimize Experience Descriptions",
		Details:         strings.Join(details, "\n"),
		CurrentStatus:   status,
		EstimatedImpact: "+5-10%",
	}
}

// keywordRecommendation mirrors the posting's own vocabulary back at the
// candidate for ATS keyword alignment.
func keywordRecommendation(profile *types.JobProfile) types.Recommendation {
	var verbs []string
	if profile != nil {
		haystack := strings.ToLower(profile.RawExcerpt + " " +
			strings.Join(profile.Responsibilities, " "))
		for _, verb := range jobActionVerbs {
			if strings.Contains(haystack, verb) {
				verbs = append(verbs, verb)
			}
		}
	}
	if len(verbs) > maxNamedSkills {
		verbs = verbs[:maxNamedSkills]
	}

	details := []string{}
	if profile != nil && profile.Title != types.TitleNotSpecified {
		details = append(details,
			fmt.Sprintf("- Include the exact job title in your resume: %q", profile.Title))
	}
	details = append(details,
		"- Mirror key phrases from the job description in your resume")
	if len(verbs) > 0 {
		details = append(details,
			fmt.Sprintf("- Use the posting's action verbs: %s", strings.Join(verbs, ", ")))
	}
	details = append(details,
		"- Match terminology exactly (if they say 'collaborate', use 'collaborate')",
		"- Add industry-specific keywords from the job posting")

	return types.Recommendation{
		Category:        "Keywords & Formatting",
		Priority:        types.PriorityMedium,
		Action:          "Improve ATS Compatibility",
		Details:         strings.Join(details, "\n"),
		CurrentStatus:   "Keyword optimization needed",
		EstimatedImpact: "+5-8%",
	}
}

func educationRecommendation(report *types.MatchReport) types.Recommendation {
	return types.Recommendation{
		Category:        "Education",
		Priority:        types.PriorityLow,
		Action:          "Clarify Education Credentials",
		Details:         "- State your highest degree, field of study and graduation year explicitly\n- List certifications or in-progress coursework that approach the requirement",
		CurrentStatus:   fmt.Sprintf("Education alignment at %.0f%%", report.EducationScore),
		EstimatedImpact: "+2-5%",
	}
}

// summarize writes the one-sentence plan summary, splitting recommendations
// into high-priority and supporting counts.
func summarize(currentScore, targetScore float64, recommendations []types.Recommendation) string {
	highPriority := 0
	for _, rec := range recommendations {
		if rec.Priority == types.PriorityCritical || rec.Priority == types.PriorityHigh {
			highPriority++
		}
	}
	plural := ""
	if highPriority != 1 {
		plural = "s"
	}
	return fmt.Sprintf(
		"To increase your match from %.1f%% to %.1f%% (gap of %.1f%%), focus on %d high-priority action%s and %d supporting improvements. Start with the highest impact actions first.",
		currentScore, targetScore, targetScore-currentScore,
		highPriority, plural, len(recommendations)-highPriority)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
