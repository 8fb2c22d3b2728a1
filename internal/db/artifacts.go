package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Typed artifact accessors. Each loads one well-known artifact step for a run
// and returns nil (not an error) when the artifact has not been saved yet.

// SaveJobProfile stores the analyzed job profile for a run
func (db *DB) SaveJobProfile(ctx context.Context, runID uuid.UUID, profile *types.JobProfile) error {
	return db.SaveArtifact(ctx, runID, StepJobProfile, "analysis", profile)
}

// GetJobProfileByRunID loads the job profile from the database for a run
func (db *DB) GetJobProfileByRunID(ctx context.Context, runID uuid.UUID) (*types.JobProfile, error) {
	content, err := db.GetArtifact(ctx, runID, StepJobProfile)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var profile types.JobProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job profile: %w", err)
	}
	return &profile, nil
}

// SaveMatchReport stores a similarity report for a run
func (db *DB) SaveMatchReport(ctx context.Context, runID uuid.UUID, report *types.MatchReport) error {
	return db.SaveArtifact(ctx, runID, StepMatchReport, "scoring", report)
}

// GetMatchReportByRunID loads the match report from the database for a run
func (db *DB) GetMatchReportByRunID(ctx context.Context, runID uuid.UUID) (*types.MatchReport, error) {
	content, err := db.GetArtifact(ctx, runID, StepMatchReport)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var report types.MatchReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match report: %w", err)
	}
	return &report, nil
}

// SaveImprovementPlan stores the improvement plan for a run
func (db *DB) SaveImprovementPlan(ctx context.Context, runID uuid.UUID, plan *types.ImprovementPlan) error {
	return db.SaveArtifact(ctx, runID, StepImprovementPlan, "planning", plan)
}

// GetImprovementPlanByRunID loads the improvement plan from the database for a run
func (db *DB) GetImprovementPlanByRunID(ctx context.Context, runID uuid.UUID) (*types.ImprovementPlan, error) {
	content, err := db.GetArtifact(ctx, runID, StepImprovementPlan)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var plan types.ImprovementPlan
	if err := json.Unmarshal(content, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal improvement plan: %w", err)
	}
	return &plan, nil
}

// SaveOptimizationResult stores the final optimizer output for a run
func (db *DB) SaveOptimizationResult(ctx context.Context, runID uuid.UUID, result *types.OptimizationResult) error {
	if err := db.SaveArtifact(ctx, runID, StepOptimizationResult, "optimization", result); err != nil {
		return err
	}
	return db.SaveTextArtifact(ctx, runID, StepOptimizedResume, "optimization", result.OptimizedResume)
}

// GetOptimizationResultByRunID loads the optimizer output from the database for a run
func (db *DB) GetOptimizationResultByRunID(ctx context.Context, runID uuid.UUID) (*types.OptimizationResult, error) {
	content, err := db.GetArtifact(ctx, runID, StepOptimizationResult)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.OptimizationResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal optimization result: %w", err)
	}
	return &result, nil
}

// GetOptimizedResumeByRunID loads the optimized resume text for a run
func (db *DB) GetOptimizedResumeByRunID(ctx context.Context, runID uuid.UUID) (string, error) {
	return db.GetTextArtifact(ctx, runID, StepOptimizedResume)
}
