package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/fetch"
)

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"malformed URL", "not-a-url"},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), tt.urlStr, "", false, false)
			assert.Error(t, err)
		})
	}
}

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		html := `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Job Title</h1>
<p>Job description</p>
</main>
<footer>Footer</footer>
</body>
</html>`
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	cleanedText, metadata, err := IngestFromURL(context.Background(), server.URL, "", false, false)
	require.NoError(t, err)

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, string(fetch.PlatformUnknown), metadata.Platform)
	assert.Contains(t, cleanedText, "Job Title")
	assert.Contains(t, cleanedText, "Job description")
	assert.NotContains(t, cleanedText, "Nav")
	assert.NotContains(t, cleanedText, "Footer")
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, "", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestFromURL_NetworkError(t *testing.T) {
	_, _, err := IngestFromURL(context.Background(), "http://localhost:1/nonexistent", "", false, false)
	assert.Error(t, err)
}

func TestIngestFromURL_WithTestFixture(t *testing.T) {
	htmlContent, err := os.ReadFile("testdata/sample_job_html.html")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(htmlContent)
	}))
	defer server.Close()

	cleanedText, metadata, err := IngestFromURL(context.Background(), server.URL, "", false, false)
	require.NoError(t, err)

	require.NotNil(t, metadata)
	assert.Contains(t, cleanedText, "Senior Software Engineer")
	assert.Contains(t, cleanedText, "About the Role")
	assert.Contains(t, cleanedText, "Requirements")
	assert.NotContains(t, cleanedText, "Copyright")
}

func TestFormatPosting_CanonicalLayout(t *testing.T) {
	extracted := &ExtractedPosting{
		Title:            "Backend Engineer",
		Company:          "Initech",
		ExperienceLevel:  "Senior",
		RequiredSkills:   []string{"Go", "PostgreSQL"},
		Responsibilities: []string{"Build services"},
		Qualifications:   []string{"Bachelor degree in CS"},
	}

	text := FormatPosting(extracted)

	assert.Contains(t, text, "Backend Engineer\n")
	assert.Contains(t, text, "Company: Initech")
	assert.Contains(t, text, "Experience Level: Senior")
	assert.Contains(t, text, "Responsibilities:\n- Build services")
	assert.Contains(t, text, "Requirements:\n- Go\n- PostgreSQL")
	assert.Contains(t, text, "Qualifications:\n- Bachelor degree in CS")
}

func TestFormatPosting_SkipsEmptySections(t *testing.T) {
	extracted := &ExtractedPosting{
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go"},
	}

	text := FormatPosting(extracted)

	assert.NotContains(t, text, "Company:")
	assert.NotContains(t, text, "Responsibilities:")
	assert.Contains(t, text, "Requirements:\n- Go")
}

func TestExtractWithLLM_RequiresAPIKey(t *testing.T) {
	_, err := ExtractWithLLM(context.Background(), "posting text", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key required")
}
