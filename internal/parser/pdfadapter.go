package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/ah-csv/internal/fileutils"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
	"fjacquet/ah-csv/internal/pdfparser"
)

// PDFAdapter turns a DocumentParser into a FullParser by extracting PDF
// text first. detect reports whether extracted text belongs to kind.
type PDFAdapter struct {
	BaseParser
	kind      models.DocumentKind
	text      DocumentParser
	detect    func(text string) bool
	extractor pdfparser.PDFExtractor
}

var _ FullParser = (*PDFAdapter)(nil)

// NewPDFAdapter wires a text parser to a PDF extractor. A nil extractor
// selects the native one.
func NewPDFAdapter(kind models.DocumentKind, text DocumentParser, detect func(string) bool,
	extractor pdfparser.PDFExtractor, logger logging.Logger) *PDFAdapter {
	if extractor == nil {
		extractor = pdfparser.NewNativeExtractor()
	}
	a := &PDFAdapter{
		BaseParser: NewBaseParser(logger),
		kind:       kind,
		text:       text,
		detect:     detect,
		extractor:  extractor,
	}
	a.SetLogger(a.GetLogger())
	return a
}

// SetLogger replaces the logger of the adapter and of its text parser.
func (a *PDFAdapter) SetLogger(logger logging.Logger) {
	a.BaseParser.SetLogger(logger)
	if lc, ok := a.text.(LoggerConfigurable); ok {
		lc.SetLogger(a.GetLogger())
	}
}

// Kind implements FullParser.
func (a *PDFAdapter) Kind() models.DocumentKind {
	return a.kind
}

// ParseText implements DocumentParser.
func (a *PDFAdapter) ParseText(text string) (*models.Document, error) {
	return a.text.ParseText(text)
}

// Parse reads a PDF from r and parses it.
func (a *PDFAdapter) Parse(r io.Reader) (*models.Document, error) {
	text, err := pdfparser.ExtractFromReader(r, a.extractor)
	if err != nil {
		return nil, fmt.Errorf("error extracting %s text: %w", a.kind, err)
	}
	return a.ParseText(text)
}

// ParseFile parses the PDF at path and records its name and content hash.
func (a *PDFAdapter) ParseFile(path string) (*models.Document, error) {
	text, err := a.extractor.ExtractText(path)
	if err != nil {
		return nil, fmt.Errorf("error extracting %s text from %s: %w", a.kind, path, err)
	}

	doc, err := a.ParseText(text)
	if err != nil {
		var extractErr *parsererror.DataExtractionError
		if errors.As(err, &extractErr) {
			extractErr.FilePath = path
		}
		return nil, err
	}

	hash, err := fileutils.HashFile(path)
	if err != nil {
		return nil, err
	}
	doc.Metadata.FileName = filepath.Base(path)
	doc.Metadata.FileHash = hash
	return doc, nil
}

// ConvertToCSV implements FullParser.
func (a *PDFAdapter) ConvertToCSV(inputFile, outputFile string) error {
	if _, err := os.Stat(inputFile); err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}

	doc, err := a.ParseFile(inputFile)
	if err != nil {
		return err
	}
	return a.WriteToCSV(doc, outputFile)
}

// ValidateFormat extracts the text of file and runs the kind detector on it.
// An unreadable PDF is reported as invalid rather than as an error.
func (a *PDFAdapter) ValidateFormat(file string) (bool, error) {
	a.GetLogger().Debug("Validating format",
		logging.F(logging.FieldFile, file),
		logging.F(logging.FieldDocumentKind, string(a.kind)))

	text, err := a.extractor.ExtractText(file)
	if err != nil {
		a.GetLogger().WithError(err).Warn("Format validation failed", logging.F(logging.FieldFile, file))
		return false, nil
	}
	return a.detect != nil && a.detect(text), nil
}
