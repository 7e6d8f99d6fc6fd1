package parser

import (
	"fjacquet/ah-csv/internal/common"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
)

// BaseParser provides the logger and CSV output shared by all parsers.
//
// Parsers should embed BaseParser to inherit common functionality:
//
//	type Adapter struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser instance with the provided logger.
// If logger is nil, a default logger will be used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return BaseParser{logger: logger}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV writes the document's items to csvFile.
func (b *BaseParser) WriteToCSV(doc *models.Document, csvFile string) error {
	b.logger.Info("Writing items to CSV",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(doc.Items)))

	return common.WriteItemsToCSV(doc.Rows(), csvFile)
}

// Snippet returns the first runes of text for error reports.
func Snippet(text string) string {
	const maxRunes = 80
	r := []rune(text)
	if len(r) > maxRunes {
		return string(r[:maxRunes])
	}
	return text
}
