// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel is the seniority bucket inferred from a job posting.
type ExperienceLevel string

// Experience levels, ordered Senior > Mid > Junior when text matches more than one.
const (
	LevelSenior       ExperienceLevel = "Senior"
	LevelMid          ExperienceLevel = "Mid-Level"
	LevelJunior       ExperienceLevel = "Junior"
	LevelNotSpecified ExperienceLevel = "Not Specified"
)

// TitleNotSpecified is the sentinel title when no plausible title is found.
const TitleNotSpecified = "Position Not Specified"

// JobProfile represents a structured job posting extracted from raw text
type JobProfile struct {
	Title            string          `json:"title"`
	Company          string          `json:"company,omitempty"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	RequiredSkills   []string        `json:"required_skills"`
	Responsibilities []string        `json:"responsibilities"`
	Qualifications   []string        `json:"qualifications"`
	RawExcerpt       string          `json:"raw_excerpt,omitempty"`
}
