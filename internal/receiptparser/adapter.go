package receiptparser

import (
	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/pdfparser"
)

// Adapter implements parser.FullParser for ticket PDFs.
type Adapter struct {
	*parser.PDFAdapter
}

var _ parser.FullParser = (*Adapter)(nil)

// NewAdapter creates a new adapter for the receipt parser with dependency injection.
func NewAdapter(classifier categorizer.Classifier, expander Expander, extractor pdfparser.PDFExtractor, logger logging.Logger) *Adapter {
	return &Adapter{
		PDFAdapter: parser.NewPDFAdapter(models.KindReceipt, NewParser(classifier, expander, logger), looksLikeReceipt, extractor, logger),
	}
}
