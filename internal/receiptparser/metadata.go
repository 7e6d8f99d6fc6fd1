package receiptparser

import (
	"regexp"

	"fjacquet/ah-csv/internal/dateutils"
	"fjacquet/ah-csv/internal/models"
)

// NumberPrefix is prepended to the four-digit ticket number.
const NumberPrefix = "BON-"

var (
	numberRe  = regexp.MustCompile(`(?m)^(\d{4})\s*$`)
	dateRe    = regexp.MustCompile(`(\d{1,2}:\d{2}\s+)?(\d{1,2})-(\d{1,2})-(\d{4})`)
	totalRe   = regexp.MustCompile(`TOTAAL\s+(\d+[,.]\d{2})`)
	savingsRe = regexp.MustCompile(`UW VOORDEEL\s+(\d+[,.]\d{2})`)
)

// ExtractMetadata reads the ticket number, date and totals. A missing or
// impossible field keeps its zero value.
func ExtractMetadata(text string) models.DocumentMetadata {
	meta := models.DocumentMetadata{Kind: models.KindReceipt}

	if m := numberRe.FindStringSubmatch(text); m != nil {
		meta.Number = NumberPrefix + m[1]
	}
	if m := dateRe.FindStringSubmatch(text); m != nil {
		if date, err := dateutils.ParseNumericDate(m[2], m[3], m[4]); err == nil {
			meta.Date = date
		}
	}
	// The first TOTAAL also matches inside SUBTOTAAL.
	if m := totalRe.FindStringSubmatch(text); m != nil {
		meta.Total = models.ParseAmount(m[1])
	}
	if m := savingsRe.FindStringSubmatch(text); m != nil {
		meta.Savings = models.ParseAmount(m[1])
	}
	return meta
}

func looksLikeReceipt(text string) bool {
	return numberRe.MatchString(text) && dateRe.MatchString(text)
}
