package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents an optimization run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	RoleTitle   string     `json:"role_title"`
	JobURL      string     `json:"job_url"`
	Status      string     `json:"status"`
	TargetScore float64    `json:"target_score"`
	FinalScore  *float64   `json:"final_score,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepJobPosting         = "job_posting"
	StepJobMetadata        = "job_metadata"
	StepJobProfile         = "job_profile"
	StepMatchReport        = "match_report"
	StepImprovementPlan    = "improvement_plan"
	StepOptimizationResult = "optimization_result"
	StepOptimizedResume    = "optimized_resume"
)
