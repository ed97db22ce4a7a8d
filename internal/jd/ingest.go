package jd

import (
	"context"
	"fmt"
	"log"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be fetched.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be extracted.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptyDescription is returned when the extracted description is empty.
	ErrEmptyDescription = fmt.Errorf("empty job description")
)

// FromURL fetches a job posting, extracts its text and returns the cleaned
// description. When useBrowser is true and the HTTP fetch yields too little
// text, it retries with a headless browser before giving up.
func FromURL(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	result, err := Fetch(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := ExtractText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && needsBrowser(text) {
		browserHTML, browserErr := renderWithBrowser(ctx, urlStr, DefaultTimeout)
		if browserErr != nil {
			// Keep whatever the plain fetch produced.
			log.Printf("browser rendering failed for %s: %v", urlStr, browserErr)
		} else {
			rendered, extractErr := ExtractText(browserHTML)
			if extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyDescription, urlStr)
	}

	return text, nil
}
