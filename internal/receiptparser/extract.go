package receiptparser

import (
	"fmt"
	"strings"

	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/textutils"
)

// Expander resolves truncated ticket names to full product names.
type Expander interface {
	Expand(token string) string
}

var (
	headerTokens = []string{"OMSCHRIJVING", "BONUSKAART", "AIRMILES"}
	// stopMarkers end the product section; nothing after them is a product.
	stopMarkers = []string{"SUBTOTAAL", "BONUS ", "UW VOORDEEL", "TOTAAL", "BETAALD", "SPAARACTIES", "KOOPZEGELS"}
)

const depositToken = "STATIEGELD"

// ExtractLines returns the classified product lines of a ticket in the
// order they appear, up to the first stop marker.
func ExtractLines(text string, classifier categorizer.Classifier, expander Expander, logger logging.Logger) []models.ClassifiedItem {
	if logger == nil {
		logger = logging.GetLogger()
	}

	items := []models.ClassifiedItem{}
	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, ok := textutils.ContainsAny(line, headerTokens); ok {
			continue
		}

		upper := strings.ToUpper(line)
		if marker, ok := textutils.ContainsAny(upper, stopMarkers); ok {
			logger.Debug("Reached end of product section",
				logging.F(logging.FieldLine, n+1),
				logging.F(logging.FieldReason, marker))
			break
		}
		if strings.Contains(upper, depositToken) {
			logger.Debug("Skipping deposit line", logging.F(logging.FieldLine, n+1))
			continue
		}

		match := MatchLine(line)
		if !match.Matched {
			continue
		}
		if err := match.Candidate.Validate(); err != nil {
			logger.Debug("Dropping invalid line",
				logging.F(logging.FieldLine, n+1),
				logging.F(logging.FieldReason, err.Error()))
			continue
		}
		items = append(items, classify(match.Candidate, classifier, expander))
	}

	return items
}

// resolveName turns a ticket name into a display name.
func resolveName(name string, expander Expander, stripMarker bool) string {
	if stripMarker {
		name = textutils.StripTrailingMarker(name)
	}
	if expander != nil {
		name = expander.Expand(name)
	}
	return textutils.NormalizeProductName(name)
}

func classify(c models.LineItemCandidate, classifier categorizer.Classifier, expander Expander) models.ClassifiedItem {
	weighed := c.WeightKg != nil
	name := resolveName(c.Name, expander, !weighed)
	cls := classifier.Classify(name)

	item := models.ClassifiedItem{
		DisplayName:     name,
		OriginalRawName: c.Name,
		Quantity:        c.Quantity,
		Price:           c.TotalAmount,
		Category:        cls.Category,
		Subcategory:     cls.Subcategory,
	}

	if weighed {
		weight := *c.WeightKg
		item.DisplayName = fmt.Sprintf("%s (%s)", name, weightLabel(weight))
		item.TaxRate = models.TaxRateLow
		item.WeightKg = &weight
		return item
	}

	item.TaxRate = GuessTaxRate(name)
	return item
}
