package analyze

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const samplePosting = `Senior Software Engineer
Company: Acme Systems

We are looking for a senior engineer to join our platform team.

Responsibilities:
- Design and build backend services in Go and Python
- Operate Kubernetes clusters in AWS
- Mentor junior engineers on the team

Requirements:
- 5+ years experience building distributed systems
- Strong knowledge of PostgreSQL and Redis
- Bachelor degree in Computer Science or equivalent
`

func TestJob_ParsesProfile(t *testing.T) {
	profile, err := Job(samplePosting)
	require.NoError(t, err)

	assert.Equal(t, "Senior Software Engineer", profile.Title)
	assert.Equal(t, types.LevelSenior, profile.ExperienceLevel)
	assert.Contains(t, profile.RequiredSkills, "Go")
	assert.Contains(t, profile.RequiredSkills, "Python")
	assert.Contains(t, profile.RequiredSkills, "Kubernetes")
	assert.NotEmpty(t, profile.Responsibilities)
	assert.NotEmpty(t, profile.Qualifications)
	assert.NotEmpty(t, profile.RawExcerpt)
}

func TestJob_TooShortFailsValidation(t *testing.T) {
	_, err := Job("Short job ad")
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "job_text", vErr.Field)
	assert.Contains(t, vErr.Message, "too short")
}

func TestJob_NumericDominatedFailsValidation(t *testing.T) {
	numeric := strings.Repeat("12345 67890 ", 20) + "job position"
	_, err := Job(numeric)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "numeric")
}

func TestJob_NoJobVocabularyFailsValidation(t *testing.T) {
	prose := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 10)
	_, err := Job(prose)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "job posting")
}

func TestExtractExperienceLevel_SeniorWinsOverJunior(t *testing.T) {
	// Both appear; the more senior bucket is checked first.
	text := "Senior engineer to mentor junior staff"
	assert.Equal(t, types.LevelSenior, extractExperienceLevel(text))
}

func TestExtractExperienceLevel_Mid(t *testing.T) {
	assert.Equal(t, types.LevelMid, extractExperienceLevel("We want someone with 3+ years of backend work"))
}

func TestExtractExperienceLevel_Default(t *testing.T) {
	assert.Equal(t, types.LevelNotSpecified, extractExperienceLevel("An engineer for our backend"))
}

func TestExtractTitle_Sentinel(t *testing.T) {
	long := strings.Repeat("this line is far too long and rambling to ever be treated as a job title because it just keeps going ", 3)
	assert.Equal(t, types.TitleNotSpecified, extractTitle(long))
}

func TestExtractTitle_FallsBackToFirstLine(t *testing.T) {
	text := "platform team opening at acme\nmore details below"
	assert.Equal(t, "platform team opening at acme", extractTitle(text))
}

func TestJob_ResponsibilitiesCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Backend Engineer\nResponsibilities:\n")
	for i := 0; i < 12; i++ {
		sb.WriteString("- Deliver well tested backend features for the product team\n")
	}
	sb.WriteString("\nRequirements:\n- experience with Go\n- skills in SQL\n")

	profile, err := Job(sb.String())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(profile.Responsibilities), maxResponsibilities)
}

func TestJob_QualificationsCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Backend Engineer\nQualifications:\n")
	for i := 0; i < 10; i++ {
		sb.WriteString("- Demonstrated professional experience with distributed systems\n")
	}
	sb.WriteString("\nResponsibilities:\n- Build the skills platform for the team\n")

	profile, err := Job(sb.String())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(profile.Qualifications), maxQualifications)
}

func TestExtractCompany_FromLabel(t *testing.T) {
	assert.Equal(t, "Acme Systems", extractCompany("Backend Engineer\nCompany: Acme Systems\n"))
}

func TestJob_RawExcerptCutsOnRuneBoundary(t *testing.T) {
	// Place a two-byte rune so it straddles the excerpt cut-off.
	prefix := strings.TrimSpace(samplePosting)
	pad := rawExcerptLength - 1 - len(prefix)
	require.Greater(t, pad, 0)
	text := prefix + strings.Repeat("a", pad) + strings.Repeat("é", 10)

	profile, err := Job(text)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(profile.RawExcerpt))
	assert.True(t, strings.HasSuffix(profile.RawExcerpt, "..."))
	assert.LessOrEqual(t, len(profile.RawExcerpt), rawExcerptLength+len("..."))
}

func TestJob_Deterministic(t *testing.T) {
	first, err := Job(samplePosting)
	require.NoError(t, err)
	second, err := Job(samplePosting)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
