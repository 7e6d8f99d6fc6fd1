// Package invoiceparser parses the formal online-order invoices of the
// supermarket: one product per line in fixed columns, with the document
// date, invoice number and totals in the header and footer.
package invoiceparser

import (
	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/parsererror"
)

// Parser turns invoice text into a Document.
type Parser struct {
	classifier categorizer.Classifier
	logger     logging.Logger
}

// NewParser creates a parser that classifies items with classifier.
func NewParser(classifier categorizer.Classifier, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{classifier: classifier, logger: logger}
}

// ParseText parses the full text of one invoice. A document without a
// parseable date is rejected with a DataExtractionError.
func (p *Parser) ParseText(text string) (*models.Document, error) {
	meta := ExtractMetadata(text)
	if !meta.HasDate() {
		return nil, &parsererror.DataExtractionError{
			FieldName:      "date",
			RawDataSnippet: parser.Snippet(text),
			Msg:            "could not extract date from invoice",
		}
	}

	doc := &models.Document{
		Metadata: meta,
		Items:    ExtractLines(text, p.classifier, p.logger),
		RawText:  text,
	}

	p.logger.Info("Parsed invoice",
		logging.F(logging.FieldDocumentKind, string(models.KindInvoice)),
		logging.F("number", meta.Number),
		logging.F("date", meta.Date.Format(models.DateLayout)),
		logging.F(logging.FieldCount, len(doc.Items)),
		logging.F("discrepancy", doc.Discrepancy().StringFixed(2)))

	return doc, nil
}

// SetLogger implements parser.LoggerConfigurable.
func (p *Parser) SetLogger(logger logging.Logger) {
	if logger != nil {
		p.logger = logger
	}
}
