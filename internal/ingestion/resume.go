// Package ingestion extracts raw text from uploaded resume documents.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractUpload returns the text content of an uploaded resume. PDF uploads
// go through the PDF extractor; anything else is treated as plain text.
func ExtractUpload(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("uploaded file is empty")
	}

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return ExtractPDFText(data)
	}

	text := CleanText(string(data))
	if text == "" {
		return "", fmt.Errorf("no text content found in %s", filename)
	}
	return text, nil
}

// ExtractPDFText concatenates the plain text of every page. Pages that fail
// to decode are skipped; an entirely empty document is an error.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

// CleanText trims each line and drops empty ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
