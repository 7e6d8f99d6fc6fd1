package invoiceparser

import (
	"regexp"

	"fjacquet/ah-csv/internal/dateutils"
	"fjacquet/ah-csv/internal/models"
)

var (
	dateRe    = regexp.MustCompile(`Datum\s+(\d{1,2}\s+\w+\s+\d{4})`)
	numberRe  = regexp.MustCompile(`Factuurnummer\s+(\S+)`)
	totalRe   = regexp.MustCompile(`Totaal inclusief btw\s+([\d,]+)`)
	savingsRe = regexp.MustCompile(`Uw voordeel\s+([\d,]+)`)
)

// ExtractMetadata reads the invoice header and footer fields. Each field is
// searched independently; a missing field keeps its zero value.
func ExtractMetadata(text string) models.DocumentMetadata {
	meta := models.DocumentMetadata{Kind: models.KindInvoice}

	if m := dateRe.FindStringSubmatch(text); m != nil {
		if date, err := dateutils.ParseDutchDate(m[1]); err == nil {
			meta.Date = date
		}
	}
	if m := numberRe.FindStringSubmatch(text); m != nil {
		meta.Number = m[1]
	}
	if m := totalRe.FindStringSubmatch(text); m != nil {
		meta.Total = models.ParseAmount(m[1])
	}
	if m := savingsRe.FindStringSubmatch(text); m != nil {
		meta.Savings = models.ParseAmount(m[1])
	}
	return meta
}

// looksLikeInvoice reports whether text carries an invoice header.
func looksLikeInvoice(text string) bool {
	return numberRe.MatchString(text) || totalRe.MatchString(text)
}
