package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureResume = `Jane Smith
Senior Software Engineer with 7 years of experience building backend systems.
Skills: Python, Go, Docker, PostgreSQL, Kubernetes.
Led a team of 5 engineers delivering REST APIs and data pipelines.
Education: Bachelor of Science in Computer Science.`

const fixtureJob = `Senior Backend Engineer
Acme Corp is hiring a senior backend engineer to join our platform team.
Requirements:
- 5+ years of experience with Python and Go
- Experience with Docker and PostgreSQL
Responsibilities:
- Design and develop backend services
- Mentor junior engineers
Qualifications: Bachelor's degree in Computer Science preferred.`

// writeFixtures writes resume and job posting files into a temp dir and
// returns their paths.
func writeFixtures(t *testing.T) (resumePath, jobPath string) {
	t.Helper()
	tmpDir := t.TempDir()

	resumePath = filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(fixtureResume), 0644))

	jobPath = filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(fixtureJob), 0644))

	return resumePath, jobPath
}
