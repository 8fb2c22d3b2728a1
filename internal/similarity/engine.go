package similarity

import (
	"context"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Axis weights for the overall score. In enhanced mode the semantic score
// takes the lexical weight; the other axes keep theirs.
const (
	lexicalWeight    = 0.30
	skillWeight      = 0.35
	experienceWeight = 0.25
	educationWeight  = 0.10
)

// Skill-score blend: coverage of required skills dominates, raw Jaccard
// overlap tempers it.
const (
	coverageWeight = 0.7
	jaccardWeight  = 0.3
)

// Experience bracket scoring.
const (
	overqualifiedScore  = 90.0
	underqualifiedBase  = 50.0
	underqualifiedSlope = 10.0
)

// experienceBrackets maps a required level to its acceptable year range.
var experienceBrackets = map[types.ExperienceLevel][2]float64{
	types.LevelJunior: {0, 2},
	types.LevelMid:    {2, 5},
	types.LevelSenior: {5, 10},
}

// Engine scores resumes against job postings. A nil embedder means basic
// (TF-IDF) mode; with an embedder the engine attempts enhanced scoring and
// silently falls back to basic when the embedding round trip fails.
type Engine struct {
	embedder llm.Embedder
}

// NewEngine creates a scoring engine. Pass nil to run without embeddings.
func NewEngine(embedder llm.Embedder) *Engine {
	return &Engine{embedder: embedder}
}

// Score analyzes the job posting, extracts resume skills, computes every axis
// and blends them into a MatchReport. A job posting that fails plausibility
// checks surfaces as *analyze.ValidationError.
func (e *Engine) Score(ctx context.Context, resumeText, jobText string) (*types.MatchReport, error) {
	profile, err := analyze.Job(jobText)
	if err != nil {
		return nil, err
	}
	return e.ScoreProfile(ctx, resumeText, jobText, profile)
}

// ScoreProfile is Score with a pre-analyzed job profile, so callers looping
// over the same posting don't re-analyze it every iteration.
func (e *Engine) ScoreProfile(ctx context.Context, resumeText, jobText string, profile *types.JobProfile) (*types.MatchReport, error) {
	resumeSkills := extract.Skills(resumeText)

	skillScore, matched, missing := computeSkillScore(resumeSkills, profile.RequiredSkills)

	years := analyze.TotalExperienceYears(resumeText)
	experienceScore := computeExperienceScore(years, profile.ExperienceLevel)

	educationScore := computeEducationScore(
		analyze.HighestDegreeLevel(resumeText),
		analyze.DegreeRequirementLevel(jobText),
	)

	lexicalScore := lexicalSimilarity(resumeText, jobText) * 100

	method := types.MethodBasicTFIDF
	textScore := lexicalScore
	semanticScore := 0.0
	if e.embedder != nil {
		if score, ok := e.semanticScore(ctx, resumeText, jobText); ok {
			semanticScore = score
			textScore = score
			method = types.MethodSemanticEmbedding
		}
	}

	overall := textScore*lexicalWeight +
		skillScore*skillWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight

	return &types.MatchReport{
		OverallScore:    round2(overall),
		LexicalScore:    round2(lexicalScore),
		SemanticScore:   round2(semanticScore),
		SkillScore:      round2(skillScore),
		ExperienceScore: round2(experienceScore),
		EducationScore:  round2(educationScore),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		TotalRequired:   len(profile.RequiredSkills),
		CandidateYears:  years,
		Method:          method,
		Recommendation:  Recommendation(overall),
	}, nil
}

// semanticScore embeds both documents concurrently and rescales their cosine
// similarity from [-1, 1] to [0, 100]. Any failure reports ok=false; the
// caller falls back to the lexical axis.
func (e *Engine) semanticScore(ctx context.Context, resumeText, jobText string) (float64, bool) {
	var resumeVec, jobVec []float32

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vec, err := e.embedder.Embed(gctx, resumeText)
		resumeVec = vec
		return err
	})
	g.Go(func() error {
		vec, err := e.embedder.Embed(gctx, jobText)
		jobVec = vec
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, false
	}

	score := (cosine32(resumeVec, jobVec) + 1) / 2 * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, true
}

// computeSkillScore blends required-skill coverage with Jaccard overlap of the
// two skill sets. A required skill is covered by an exact (case-insensitive)
// or substring match. An empty requirement set scores 0.
func computeSkillScore(resumeSkills, requiredSkills []string) (score float64, matched, missing []string) {
	matched = []string{}
	missing = []string{}
	if len(requiredSkills) == 0 {
		return 0, matched, missing
	}

	resumeLower := make([]string, len(resumeSkills))
	resumeSet := make(map[string]bool, len(resumeSkills))
	for i, skill := range resumeSkills {
		lower := strings.ToLower(skill)
		resumeLower[i] = lower
		resumeSet[lower] = true
	}

	requiredSet := make(map[string]bool, len(requiredSkills))
	for _, required := range requiredSkills {
		reqLower := strings.ToLower(required)
		requiredSet[reqLower] = true

		found := false
		for _, have := range resumeLower {
			if reqLower == have || strings.Contains(have, reqLower) || strings.Contains(reqLower, have) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	coverage := float64(len(matched)) / float64(len(requiredSet))

	intersection := 0
	for lower := range requiredSet {
		if resumeSet[lower] {
			intersection++
		}
	}
	union := len(requiredSet) + len(resumeSet) - intersection
	jaccard := 0.0
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}

	return (coverageWeight*coverage + jaccardWeight*jaccard) * 100, matched, missing
}

// computeExperienceScore places the candidate's years against the bracket for
// the required level: inside scores 100, above scores slightly less, below
// decays linearly with the shortfall down to 0.
func computeExperienceScore(years float64, level types.ExperienceLevel) float64 {
	bracket, ok := experienceBrackets[level]
	if !ok {
		return 100
	}
	minYears, maxYears := bracket[0], bracket[1]
	switch {
	case years >= minYears && years <= maxYears:
		return 100
	case years > maxYears:
		return overqualifiedScore
	default:
		gap := minYears - years
		score := underqualifiedBase - gap*underqualifiedSlope
		if score < 0 {
			score = 0
		}
		return score
	}
}

// computeEducationScore compares degree levels on the ordinal ladder. An
// unstated requirement is a free pass; one level short earns partial credit.
func computeEducationScore(candidateLevel, requiredLevel int) float64 {
	switch {
	case requiredLevel == 0:
		return 100
	case candidateLevel >= requiredLevel:
		return 100
	case candidateLevel == requiredLevel-1:
		return 75
	default:
		return 50
	}
}

// Recommendation maps an overall score to a hiring recommendation band.
func Recommendation(score float64) string {
	switch {
	case score >= 85:
		return "Strong Match - Highly recommend proceeding with interview"
	case score >= 70:
		return "Good Match - Recommend reviewing in detail"
	case score >= 55:
		return "Moderate Match - Consider for interview if other candidates are limited"
	default:
		return "Weak Match - May not meet core requirements"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
