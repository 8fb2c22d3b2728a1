// Package optimize runs the agentic resume-optimization loop: reason about
// the current match, apply one rewrite strategy, rescore, reflect on the
// outcome, and repeat until the target score is reached or the iteration
// budget runs out. Every attempt is recorded; a rewrite that lowers the score
// beyond tolerance is reverted.
package optimize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	DefaultTargetScore   = 85.0
	DefaultMaxIterations = 3

	// minActionLength guards against degenerate completions; anything
	// shorter can't plausibly be a full resume.
	minActionLength = 100

	// acceptTolerance: a rewrite is kept unless it costs more than this many
	// points, so near-neutral changes survive to compound with later ones.
	acceptTolerance = -1.0

	// negligibleFloor separates a negligible outcome from a backfire.
	negligibleFloor = -2.0
)

// StrategyNone is reported when the loop never changed the resume.
const StrategyNone = "none"

// ActionError reports a rewrite attempt that produced no usable resume.
type ActionError struct {
	Strategy types.Strategy
	Err      error
}

func (e *ActionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("strategy %s failed: %v", e.Strategy, e.Err)
	}
	return fmt.Sprintf("strategy %s produced no usable resume", e.Strategy)
}

func (e *ActionError) Unwrap() error { return e.Err }

// Options control a single optimization run. Zero values select defaults.
type Options struct {
	TargetScore   float64
	MaxIterations int
	Verbose       bool
}

func (o Options) withDefaults() Options {
	if o.TargetScore <= 0 {
		o.TargetScore = DefaultTargetScore
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Optimizer drives the loop. The generator performs strategy selection and
// the rewrites; the engine rescore each candidate against the same posting.
type Optimizer struct {
	generator llm.Generator
	engine    *similarity.Engine
	verbose   bool
}

// New creates an optimizer. A nil generator disables LLM strategy selection
// (the deterministic fallback ladder is used) but rewrites then always fail,
// so callers normally pass a real client.
func New(generator llm.Generator, engine *similarity.Engine) *Optimizer {
	return &Optimizer{generator: generator, engine: engine}
}

// Run executes the optimization loop and returns the full run artifact. The
// job posting is analyzed once and reused for every rescore. A posting that
// fails plausibility checks surfaces as *analyze.ValidationError.
func (o *Optimizer) Run(ctx context.Context, resumeText, jobText string, opts Options) (*types.OptimizationResult, error) {
	opts = opts.withDefaults()
	o.verbose = opts.Verbose

	profile, err := analyze.Job(jobText)
	if err != nil {
		return nil, err
	}

	report, err := o.engine.ScoreProfile(ctx, resumeText, jobText, profile)
	if err != nil {
		return nil, err
	}

	run := &types.OptimizationRun{
		OriginalResume: resumeText,
		CurrentResume:  resumeText,
		JobText:        jobText,
		OriginalScore:  report.OverallScore,
		CurrentScore:   report.OverallScore,
		TargetScore:    opts.TargetScore,
		MaxIterations:  opts.MaxIterations,
		Successful:     []types.Strategy{},
		Failed:         []types.Strategy{},
	}

	o.logf("initial score %.1f%%, target %.1f%%", run.OriginalScore, run.TargetScore)

	if run.OriginalScore >= run.TargetScore {
		return o.result(run, StrategyNone, "Resume already meets the target score."), nil
	}

	lastAccepted := StrategyNone

	for run.Iteration < run.MaxIterations && run.CurrentScore < run.TargetScore {
		run.Iteration++

		plan := o.selectStrategy(ctx, run, profile)
		o.logf("iteration %d/%d: strategy %s (%s), expecting +%.1f%%",
			run.Iteration, run.MaxIterations, plan.Strategy, plan.Focus, plan.ExpectedImprovement)

		improved, err := o.applyStrategy(ctx, run.CurrentResume, profile, plan.Strategy)
		if err != nil {
			o.logf("iteration %d: %v", run.Iteration, err)
			run.Attempts = append(run.Attempts, types.OptimizationAttempt{
				Iteration:           run.Iteration,
				Strategy:            plan.Strategy,
				Focus:               plan.Focus,
				ExpectedImprovement: plan.ExpectedImprovement,
				PreviousScore:       run.CurrentScore,
				NewScore:            run.CurrentScore,
				Outcome:             types.OutcomeActionFailed,
				Assessment:          err.Error(),
			})
			run.Failed = append(run.Failed, plan.Strategy)
			continue
		}

		newReport, err := o.engine.ScoreProfile(ctx, improved, jobText, profile)
		if err != nil {
			return nil, err
		}
		delta := newReport.OverallScore - run.CurrentScore
		outcome, assessment := reflect(delta, plan.ExpectedImprovement)
		accepted := delta > acceptTolerance

		run.Attempts = append(run.Attempts, types.OptimizationAttempt{
			Iteration:           run.Iteration,
			Strategy:            plan.Strategy,
			Focus:               plan.Focus,
			ExpectedImprovement: plan.ExpectedImprovement,
			PreviousScore:       run.CurrentScore,
			NewScore:            newReport.OverallScore,
			Delta:               delta,
			Accepted:            accepted,
			Outcome:             outcome,
			Assessment:          assessment,
		})

		o.logf("iteration %d: %.1f%% -> %.1f%% (%+.1f), %s",
			run.Iteration, run.CurrentScore, newReport.OverallScore, delta, outcome)

		if accepted {
			run.CurrentResume = improved
			run.CurrentScore = newReport.OverallScore
			lastAccepted = string(plan.Strategy)
			if delta > 0 {
				run.Successful = append(run.Successful, plan.Strategy)
			}
		} else {
			run.Failed = append(run.Failed, plan.Strategy)
		}

		if run.CurrentScore >= run.TargetScore {
			o.logf("target reached at %.1f%%", run.CurrentScore)
			break
		}
	}

	return o.result(run, lastAccepted, summarize(run)), nil
}

// applyStrategy runs one rewrite. A transport failure or an implausibly short
// completion both surface as *ActionError.
func (o *Optimizer) applyStrategy(ctx context.Context, resume string, profile *types.JobProfile, strategy types.Strategy) (string, error) {
	if o.generator == nil {
		return "", &ActionError{Strategy: strategy, Err: fmt.Errorf("no generator configured")}
	}

	raw, err := o.generator.Complete(ctx, actionPrompt(strategy, resume, profile), llm.TierStandard)
	if err != nil {
		return "", &ActionError{Strategy: strategy, Err: err}
	}

	improved := strings.TrimSpace(raw)
	if len(improved) < minActionLength {
		return "", &ActionError{Strategy: strategy}
	}
	return improved, nil
}

// reflect buckets an attempt's actual delta against its expectation.
func reflect(delta, expected float64) (outcome, assessment string) {
	switch {
	case delta >= expected:
		return types.OutcomeMetExpectation, "Strategy met or exceeded expectations"
	case delta > 0:
		return types.OutcomePartialSuccess, "Improved, but less than expected"
	case delta > negligibleFloor:
		return types.OutcomeNegligible, "Score barely changed"
	default:
		return types.OutcomeBackfire, "Score decreased; avoid this strategy for similar matches"
	}
}

func (o *Optimizer) result(run *types.OptimizationRun, strategyUsed, summary string) *types.OptimizationResult {
	if run.Attempts == nil {
		run.Attempts = []types.OptimizationAttempt{}
	}
	return &types.OptimizationResult{
		OptimizedResume:      run.CurrentResume,
		OriginalScore:        run.OriginalScore,
		FinalScore:           run.CurrentScore,
		Improvement:          run.CurrentScore - run.OriginalScore,
		TargetScore:          run.TargetScore,
		TargetReached:        run.CurrentScore >= run.TargetScore,
		IterationsUsed:       run.Iteration,
		MaxIterations:        run.MaxIterations,
		Attempts:             run.Attempts,
		SuccessfulStrategies: run.Successful,
		FailedStrategies:     run.Failed,
		StrategyUsed:         strategyUsed,
		Summary:              summary,
	}
}

// summarize writes the closing reflection, bucketed by total improvement.
func summarize(run *types.OptimizationRun) string {
	improvement := run.CurrentScore - run.OriginalScore

	switch {
	case improvement >= 15:
		names := make([]string, len(run.Successful))
		for i, s := range run.Successful {
			names[i] = string(s)
		}
		return fmt.Sprintf(
			"Excellent optimization: improved %.1f%% through strategic iterations. Successful strategies: %s.",
			improvement, strings.Join(names, ", "))
	case improvement >= 5:
		return fmt.Sprintf(
			"Good optimization: improved %.1f%% through careful adjustments. Some strategies worked better than others.",
			improvement)
	case improvement > 0:
		return fmt.Sprintf(
			"Modest improvement of %.1f%%. The resume may already be well optimized, or the job requirements are very specific.",
			improvement)
	default:
		return "No improvement achieved. The original resume may already be optimal for this job, or different strategies are needed."
	}
}

func (o *Optimizer) logf(format string, args ...any) {
	if o.verbose {
		log.Printf("optimize: "+format, args...)
	}
}
