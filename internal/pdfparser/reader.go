package pdfparser

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ExtractFromReader copies r to a temporary PDF file and extracts its text.
func ExtractFromReader(r io.Reader, extractor PDFExtractor) (string, error) {
	tempFile, err := os.CreateTemp("", "ah-csv-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() { _ = os.Remove(tempFile.Name()) }()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("failed to write to temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	return extractor.ExtractText(tempFile.Name())
}

// normalizePageBreaks converts form feeds and CRLF line endings to plain
// newlines.
func normalizePageBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	return text
}
