package invoiceparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/ah-csv/internal/models"
)

// invoiceLine is the column grammar of a product line:
// <name> <quantity> <rate> <excl> <tax> <incl>. The name starts with an
// upper-case letter and ends right before the numeric tail.
var invoiceLine = regexp.MustCompile(
	`^([A-Z][A-Za-z0-9àáâãäåæçèéêëìíîïðñòóôõöøùúûüýþÿÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖØÙÚÛÜÝÞß'&\s\-\+\.%]+?)` +
		`\s+(\d+)\s+(9%|21%|Geen)\s+([\d,]+)\s+([\d,]+)\s+([\d,]+)$`)

// LineMatch is the tagged result of matching one invoice line.
type LineMatch struct {
	Matched   bool
	Candidate models.LineItemCandidate
	// ExclAmount and TaxAmount are the other two printed columns;
	// Candidate.TotalAmount holds the tax-inclusive price.
	ExclAmount decimal.Decimal
	TaxAmount  decimal.Decimal
}

// NoMatch is the LineMatch of a line that is not a product line.
var NoMatch = LineMatch{}

// MatchLine applies the invoice column grammar to a single line.
func MatchLine(line string) LineMatch {
	m := invoiceLine.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
	if m == nil {
		return NoMatch
	}

	quantity, err := strconv.Atoi(m[2])
	if err != nil {
		return NoMatch
	}

	return LineMatch{
		Matched: true,
		Candidate: models.LineItemCandidate{
			Name:        strings.TrimSpace(m[1]),
			Quantity:    quantity,
			TotalAmount: models.ParseAmount(m[6]),
			TaxHint:     models.TaxRate(m[3]),
		},
		ExclAmount: models.ParseAmount(m[4]),
		TaxAmount:  models.ParseAmount(m[5]),
	}
}
