// Package analyze turns raw job-posting and resume text into structured
// profiles and signals: titles, experience levels, required skills,
// responsibilities, education levels and recent-graduate detection.
package analyze

import "fmt"

// ValidationError reports that a document failed plausibility checks before
// analysis (too short, numeric-dominated, or missing expected vocabulary).
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
