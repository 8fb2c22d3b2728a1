package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestExtractCommand_PrintsSkills(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, _ := writeFixtures(t)

	cmd := exec.Command(binaryPath, "extract", "--in", resumePath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	assert.Contains(t, string(output), "Python")
	assert.Contains(t, string(output), "Docker")
}

func TestExtractCommand_WritesJSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, _ := writeFixtures(t)
	outPath := filepath.Join(t.TempDir(), "skills.json")

	cmd := exec.Command(binaryPath, "extract", "--in", resumePath, "--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var skills []string
	require.NoError(t, json.Unmarshal(data, &skills))
	assert.NotEmpty(t, skills)
	assert.Contains(t, skills, "PostgreSQL")
}
