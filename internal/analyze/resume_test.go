package analyze

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com

SUMMARY
Backend developer with 4 years of experience.

SKILLS
Go, Python, Docker

EXPERIENCE
Software Engineer, Acme Corp
2019 - 2022
- Built internal services

EDUCATION
Bachelor of Science in Computer Science, State University
`

func TestValidateResume_Valid(t *testing.T) {
	require.NoError(t, ValidateResume(sampleResume))
}

func TestValidateResume_TooShort(t *testing.T) {
	err := ValidateResume("Jane Doe, engineer")
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "too short")
}

func TestValidateResume_NoIndicators(t *testing.T) {
	text := strings.Repeat("Nothing relevant here at all whatsoever in this line. ", 5)
	err := ValidateResume(text)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "resume-related")
}

func TestValidateResume_NoContactInfo(t *testing.T) {
	text := strings.Repeat("Experience with education and skills across many projects. ", 5)
	err := ValidateResume(text)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "contact information")
}

func TestTotalExperienceYears_ExplicitStatementWins(t *testing.T) {
	// Explicit statement beats the 2019-2022 date range in the same text.
	assert.Equal(t, 4.0, TotalExperienceYears(sampleResume))
}

func TestTotalExperienceYears_DateRanges(t *testing.T) {
	text := `EXPERIENCE
Engineer at One
2018 - 2020
Engineer at Two
2020 - 2023
`
	assert.Equal(t, 5.0, TotalExperienceYears(text))
}

func TestTotalExperienceYears_NoSignal(t *testing.T) {
	assert.Equal(t, 0.0, TotalExperienceYears("A short profile with no dates"))
}

func TestHighestDegreeLevel(t *testing.T) {
	assert.Equal(t, 3, HighestDegreeLevel(sampleResume))
	assert.Equal(t, 5, HighestDegreeLevel("PhD in Computer Science"))
	assert.Equal(t, 4, HighestDegreeLevel("Master of Science, 2020"))
	assert.Equal(t, 0, HighestDegreeLevel("no formal credentials listed"))
}

func TestDegreeRequirementLevel(t *testing.T) {
	assert.Equal(t, 3, DegreeRequirementLevel("Bachelor degree required"))
	assert.Equal(t, 0, DegreeRequirementLevel("no degree requirement mentioned"))
}

func TestGraduate_RecentByYear(t *testing.T) {
	year := time.Now().Year()
	text := fmt.Sprintf(`Sam Student
sam@example.com
EDUCATION
Bachelor of Science, class of %d
Capstone project on search ranking
`, year)

	signals := Graduate(text)
	assert.True(t, signals.RecentGraduate)
	assert.Equal(t, year, signals.GraduationYear)
	assert.True(t, signals.HasAcademicProjects)
}

func TestGraduate_ExperiencedCandidate(t *testing.T) {
	text := `Pat Veteran
pat@example.com
10 years of experience building backend systems.
EXPERIENCE
Principal Engineer, 2012 - 2020
`
	signals := Graduate(text)
	assert.False(t, signals.RecentGraduate)
	assert.Equal(t, 10.0, signals.ExperienceYears)
}

func TestGraduate_LimitedExperienceWithInternship(t *testing.T) {
	text := `Lee Junior
lee@example.com
Software engineering internship at a local startup.
Worked on a university project for course credit.
`
	signals := Graduate(text)
	assert.True(t, signals.HasInternship)
	assert.True(t, signals.RecentGraduate)
	assert.Less(t, signals.ExperienceYears, 2.0)
}
