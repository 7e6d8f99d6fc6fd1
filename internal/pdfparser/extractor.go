// Package pdfparser turns PDF documents into plain text for the document
// parsers. Pages are joined with newlines in reading order.
package pdfparser

import (
	"fmt"
	"strings"
)

// PDFExtractor defines the interface for extracting text from PDF files.
type PDFExtractor interface {
	// ExtractText extracts text content from a PDF file at the given path.
	ExtractText(pdfPath string) (string, error)
}

// Extractor names accepted by NewExtractor and the pdf.extractor setting.
const (
	ExtractorNative    = "native"
	ExtractorPdftotext = "pdftotext"
)

// NewExtractor returns the extractor registered under name. An empty name
// selects the native extractor.
func NewExtractor(name string) (PDFExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ExtractorNative:
		return NewNativeExtractor(), nil
	case ExtractorPdftotext:
		return NewPdftotextExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown PDF extractor %q (want %s or %s)", name, ExtractorNative, ExtractorPdftotext)
	}
}

// MockPDFExtractor implements PDFExtractor for testing purposes.
// It returns predefined mock data instead of actually extracting from PDF files.
type MockPDFExtractor struct {
	MockText string
	MockErr  error
	// Calls records every path passed to ExtractText.
	Calls []string
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(mockText string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractText returns the predefined mock text or error.
func (e *MockPDFExtractor) ExtractText(pdfPath string) (string, error) {
	e.Calls = append(e.Calls, pdfPath)
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
