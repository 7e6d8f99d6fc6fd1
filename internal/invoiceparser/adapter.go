package invoiceparser

import (
	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/pdfparser"
)

// Adapter implements parser.FullParser for invoice PDFs.
type Adapter struct {
	*parser.PDFAdapter
}

var _ parser.FullParser = (*Adapter)(nil)

// NewAdapter creates a new adapter for the invoice parser with dependency injection.
func NewAdapter(classifier categorizer.Classifier, extractor pdfparser.PDFExtractor, logger logging.Logger) *Adapter {
	return &Adapter{
		PDFAdapter: parser.NewPDFAdapter(models.KindInvoice, NewParser(classifier, logger), looksLikeInvoice, extractor, logger),
	}
}
