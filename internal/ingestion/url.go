// Package ingestion turns job postings, whether fetched from a URL or read
// from a file, into clean normalized text ready for analysis and scoring.
package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-optimizer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting, extracts its main text using
// platform-aware selectors, and cleans it. With an API key the cleaned text is
// additionally run through LLM extraction and re-rendered in the canonical
// posting layout; without one (or when extraction fails) the cleaned text is
// returned as is. useBrowser enables the headless-browser fallback for pages
// that render client-side.
func IngestFromURL(ctx context.Context, urlStr string, apiKey string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering",
				len(textContent), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			// Keep the HTTP content; a failed render is not fatal.
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
			if verbose {
				log.Printf("[VERBOSE] Browser extracted text: %d chars", len(textContent))
			}
		}
	}

	cleanedText := CleanText(textContent)

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)

	if apiKey != "" {
		if verbose {
			log.Printf("[VERBOSE] Calling LLM for structured extraction")
		}
		extracted, err := ExtractWithLLM(ctx, cleanedText, apiKey)
		if err != nil {
			if verbose {
				log.Printf("[VERBOSE] LLM extraction failed: %v, using cleaned text", err)
			}
		} else {
			cleanedText = FormatPosting(extracted)
			metadata.Company = extracted.Company
			metadata.Title = extracted.Title
			if verbose {
				log.Printf("[VERBOSE] LLM extraction: %d skills, %d responsibilities",
					len(extracted.RequiredSkills), len(extracted.Responsibilities))
			}
		}
	}

	return cleanedText, metadata, nil
}
