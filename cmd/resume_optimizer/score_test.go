package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score", "--job", "job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScoreCommand_JobSourcesMutuallyExclusive(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath := writeFixtures(t)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath, "--job-url", "https://example.com")
	cmd.Env = withoutAPIKey()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestScoreCommand_PrintsReport(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath := writeFixtures(t)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath)
	cmd.Env = withoutAPIKey()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	assert.Contains(t, string(output), "MATCH REPORT")
	assert.Contains(t, string(output), "basic_tfidf")
}

func TestScoreCommand_WritesReportJSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath := writeFixtures(t)
	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath, "--out", outPath)
	cmd.Env = withoutAPIKey()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report types.MatchReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Greater(t, report.OverallScore, 0.0)
	assert.Equal(t, types.MethodBasicTFIDF, report.Method)
}

func TestScoreCommand_VerbosePrintsProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath := writeFixtures(t)

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath, "--verbose")
	cmd.Env = withoutAPIKey()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	assert.Contains(t, string(output), "ANALYZED JOB POSTING")
}
