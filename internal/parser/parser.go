// Package parser defines the interfaces shared by the invoice and receipt
// parsers and the plumbing they have in common.
package parser

import (
	"io"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
)

// DocumentParser turns already extracted document text into a Document.
type DocumentParser interface {
	// ParseText parses the full text of one document. Lines that match no
	// grammar are skipped; a missing document date is an error.
	ParseText(text string) (*models.Document, error)
}

// LoggerConfigurable is implemented by parsers whose logger can be swapped.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is a DocumentParser that can also read PDFs and write CSV.
type FullParser interface {
	DocumentParser
	LoggerConfigurable

	// Parse extracts text from a PDF read from r and parses it.
	Parse(r io.Reader) (*models.Document, error)
	// ParseFile parses the PDF at path and fills in its file name.
	ParseFile(path string) (*models.Document, error)
	// ConvertToCSV parses inputFile and writes its items to outputFile.
	ConvertToCSV(inputFile, outputFile string) error
	// ValidateFormat reports whether file looks like this parser's kind.
	ValidateFormat(file string) (bool, error)
	// Kind is the document kind this parser handles.
	Kind() models.DocumentKind
}
