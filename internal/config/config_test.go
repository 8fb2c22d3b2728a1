package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"target_score": 90,
		"max_iterations": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, 90.0, cfg.TargetScore)
	assert.Equal(t, 5, cfg.MaxIterations)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Job:    "job.txt",
		JobURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_TargetScoreOutOfRange(t *testing.T) {
	cfg := &Config{TargetScore: 150}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "target_score")
}

func TestValidate_NegativeIterations(t *testing.T) {
	cfg := &Config{MaxIterations: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_iterations")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		JobURL:        "https://example.com/job",
		TargetScore:   85,
		MaxIterations: 3,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:        "resume.txt",
		APIKey:        "default-key",
		TargetScore:   85,
		MaxIterations: 3,
	}

	partial := Config{
		JobURL: "https://example.com/job",
		APIKey: "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values win.
	assert.Equal(t, "custom-key", merged.APIKey)
	assert.Equal(t, "https://example.com/job", merged.JobURL)

	// Empty fields fill in from defaults.
	assert.Equal(t, "resume.txt", merged.Resume)
	assert.Equal(t, 85.0, merged.TargetScore)
	assert.Equal(t, 3, merged.MaxIterations)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Resume: "mine.txt",
		JobURL: "https://example.com/job",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "mine.txt", merged.Resume)
	assert.Equal(t, "https://example.com/job", merged.JobURL)
}
