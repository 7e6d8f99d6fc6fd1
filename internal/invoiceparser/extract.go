package invoiceparser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/textutils"
)

// minNameLength is the shortest name accepted as a product.
const minNameLength = 3

// skipTokens mark matched lines that are charges, headers or summaries
// rather than products. Matched against the lower-cased name.
var skipTokens = []string{
	"statiegeld", "retour", "klapkrat", "bezorgkosten", "verpakkingsmateriaal",
	"plastic verpakking", "koopzegels", "pagina ", "datum ", "factuurnummer",
	"debiteurnummer", "bestelling", "afleverdatum", "bezorgadres", "totaal",
	"boodschappen", "alle bedragen", "vragen over",
}

// ExtractLines returns the classified product lines of an invoice, in
// document order. A line repeated with the same normalized name, quantity
// and price is emitted once.
func ExtractLines(text string, classifier categorizer.Classifier, logger logging.Logger) []models.ClassifiedItem {
	if logger == nil {
		logger = logging.GetLogger()
	}

	items := []models.ClassifiedItem{}
	seen := make(map[string]bool)

	for n, line := range strings.Split(text, "\n") {
		match := MatchLine(line)
		if !match.Matched {
			continue
		}
		c := match.Candidate
		lineLog := logger.WithFields(
			logging.F(logging.FieldLine, n+1),
			logging.F(logging.FieldProduct, c.Name))

		if reason, skip := rejectName(c.Name); skip {
			lineLog.Debug("Skipping non-product line", logging.F(logging.FieldReason, reason))
			continue
		}
		if err := c.Validate(); err != nil {
			lineLog.Debug("Dropping invalid line", logging.F(logging.FieldReason, err.Error()))
			continue
		}

		displayName := textutils.NormalizeProductName(c.Name)
		key := fmt.Sprintf("%s_%d_%s", displayName, c.Quantity, c.TotalAmount.String())
		if seen[key] {
			lineLog.Debug("Skipping duplicate line")
			continue
		}
		seen[key] = true

		cls := classifier.Classify(c.Name)
		items = append(items, models.ClassifiedItem{
			DisplayName:     displayName,
			OriginalRawName: c.Name,
			Quantity:        c.Quantity,
			Price:           c.TotalAmount,
			TaxRate:         c.TaxHint,
			Category:        cls.Category,
			Subcategory:     cls.Subcategory,
		})
	}

	return items
}

// rejectName reports why a matched name is not a product, if it is not.
func rejectName(name string) (string, bool) {
	if token, ok := textutils.ContainsAny(strings.ToLower(name), skipTokens); ok {
		return "skip token " + token, true
	}
	if utf8.RuneCountInString(name) < minNameLength {
		return "name too short", true
	}
	if isAllDigits(strings.ReplaceAll(name, " ", "")) {
		return "name is numeric", true
	}
	return "", false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
