package types

// Strategy identifies one rewrite approach the optimizer may apply in an
// iteration. The set is closed; anything else from the selection model is
// rejected and replaced by the deterministic fallback.
type Strategy string

const (
	StrategyKeywordOptimization  Strategy = "keyword_optimization"
	StrategyProfessionalSummary  Strategy = "professional_summary"
	StrategySkillsEmphasis       Strategy = "skills_emphasis"
	StrategyATSFormatting        Strategy = "ats_formatting"
	StrategyExperienceExpansion  Strategy = "experience_expansion"
)

// AllStrategies returns the closed strategy set in its canonical order.
func AllStrategies() []Strategy {
	return []Strategy{
		StrategyKeywordOptimization,
		StrategyProfessionalSummary,
		StrategySkillsEmphasis,
		StrategyATSFormatting,
		StrategyExperienceExpansion,
	}
}

// Valid reports whether s is a member of the closed strategy set.
func (s Strategy) Valid() bool {
	for _, known := range AllStrategies() {
		if s == known {
			return true
		}
	}
	return false
}

// Reflection outcome buckets for a single attempt.
const (
	OutcomeMetExpectation = "met_expectation"
	OutcomePartialSuccess = "partial_success"
	OutcomeNegligible     = "negligible"
	OutcomeBackfire       = "backfire"
	OutcomeActionFailed   = "action_failed"
)

// OptimizationAttempt records one iteration of the optimizer loop.
type OptimizationAttempt struct {
	Iteration           int      `json:"iteration"`
	Strategy            Strategy `json:"strategy"`
	Focus               string   `json:"focus,omitempty"`
	ExpectedImprovement float64  `json:"expected_improvement"`
	PreviousScore       float64  `json:"previous_score"`
	NewScore            float64  `json:"new_score"`
	Delta               float64  `json:"delta"`
	Accepted            bool     `json:"accepted"`
	Outcome             string   `json:"outcome"`
	Assessment          string   `json:"assessment,omitempty"`
}

// OptimizationRun is the loop state for a single optimization. It is owned by
// the caller of the loop and passed explicitly; nothing about a run survives it.
type OptimizationRun struct {
	OriginalResume string
	CurrentResume  string
	JobText        string

	OriginalScore float64
	CurrentScore  float64
	TargetScore   float64

	Iteration     int
	MaxIterations int

	Attempts   []OptimizationAttempt
	Successful []Strategy
	Failed     []Strategy
}

// Tried reports whether the run already attempted the given strategy.
func (r *OptimizationRun) Tried(s Strategy) bool {
	for _, a := range r.Attempts {
		if a.Strategy == s {
			return true
		}
	}
	return false
}

// Succeeded reports whether the given strategy produced a positive delta earlier
// in this run.
func (r *OptimizationRun) Succeeded(s Strategy) bool {
	for _, done := range r.Successful {
		if done == s {
			return true
		}
	}
	return false
}

// OptimizationResult is the final artifact of an optimizer run.
type OptimizationResult struct {
	OptimizedResume string  `json:"optimized_resume"`
	OriginalScore   float64 `json:"original_score"`
	FinalScore      float64 `json:"final_score"`
	Improvement     float64 `json:"improvement"`
	TargetScore     float64 `json:"target_score"`
	TargetReached   bool    `json:"target_reached"`

	IterationsUsed int `json:"iterations_used"`
	MaxIterations  int `json:"max_iterations"`

	Attempts             []OptimizationAttempt `json:"attempts"`
	SuccessfulStrategies []Strategy            `json:"successful_strategies"`
	FailedStrategies     []Strategy            `json:"failed_strategies"`

	// StrategyUsed is "none" when the loop never ran (already at target) or when
	// no attempt was accepted; otherwise the last accepted strategy.
	StrategyUsed string `json:"strategy_used"`
	Summary      string `json:"summary"`
}
