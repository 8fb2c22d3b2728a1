package types

// Priority levels for improvement-plan recommendations.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Recommendation is a single advisory item in an improvement plan. It never
// mutates the resume; acting on it is up to the candidate (or the optimizer).
type Recommendation struct {
	Category        string   `json:"category"`
	Priority        Priority `json:"priority"`
	Action          string   `json:"action"`
	Details         string   `json:"details,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	CurrentStatus   string   `json:"current_status,omitempty"`
	EstimatedImpact string   `json:"estimated_impact,omitempty"`
}

// ImprovementPlan is the rule-based advisory output built from a MatchReport.
type ImprovementPlan struct {
	Needed          bool             `json:"improvement_needed"`
	CurrentScore    float64          `json:"current_score"`
	TargetScore     float64          `json:"target_score"`
	ScoreGap        float64          `json:"score_gap"`
	RecentGraduate  bool             `json:"recent_graduate"`
	Recommendations []Recommendation `json:"recommendations"`
	PriorityActions []string         `json:"priority_actions"`
	Summary         string           `json:"summary"`
}

// GraduateSignals carries the individual signals behind the recent-graduate
// classification, so plan text can reference what was actually detected.
type GraduateSignals struct {
	RecentGraduate      bool    `json:"recent_graduate"`
	GraduationYear      int     `json:"graduation_year,omitempty"`
	HasInternship       bool    `json:"has_internship"`
	HasAcademicProjects bool    `json:"has_academic_projects"`
	ExperienceYears     float64 `json:"experience_years"`
}
