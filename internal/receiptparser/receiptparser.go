// Package receiptparser parses in-store tickets. Ticket lines are terse and
// positional: product names are truncated, weighed goods carry their
// weight and no line prints its VAT rate.
package receiptparser

import (
	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/parsererror"
)

// Parser turns ticket text into a Document.
type Parser struct {
	classifier categorizer.Classifier
	expander   Expander
	logger     logging.Logger
}

// NewParser creates a ticket parser. expander may be nil, in which case
// ticket names are only normalized.
func NewParser(classifier categorizer.Classifier, expander Expander, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{classifier: classifier, expander: expander, logger: logger}
}

// ParseText parses the full text of one ticket.
func (p *Parser) ParseText(text string) (*models.Document, error) {
	meta := ExtractMetadata(text)
	if !meta.HasDate() {
		return nil, &parsererror.DataExtractionError{
			FieldName:      "date",
			RawDataSnippet: parser.Snippet(text),
			Msg:            "could not extract date from receipt",
		}
	}

	doc := &models.Document{
		Metadata: meta,
		Items:    ExtractLines(text, p.classifier, p.expander, p.logger),
		RawText:  text,
	}

	p.logger.Info("Parsed receipt",
		logging.F(logging.FieldDocumentKind, string(models.KindReceipt)),
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
