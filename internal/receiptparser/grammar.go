package receiptparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/ah-csv/internal/models"
)

// Line shapes of a ticket, tried in this order. Amounts use a comma or a
// dot with two decimals; a trailing lone B marks a bonus price.
var (
	weighedLine   = regexp.MustCompile(`(?i)^(\d+[.,]\d+)KG\s+(.+?)\s+(\d+[,.]\d{2})\s+(\d+[,.]\d{2})(?:\s+B)?$`)
	multiUnitLine = regexp.MustCompile(`^(\d+)\s+(.+?)\s+(\d+[,.]\d{2})\s+(\d+[,.]\d{2})(?:\s+B)?$`)
	singleLine    = regexp.MustCompile(`^(\d+)\s+(.+?)\s+(\d+[,.]\d{2})(?:\s+B)?$`)
)

// LineMatch is the tagged result of one line-shape grammar.
type LineMatch struct {
	Matched   bool
	Candidate models.LineItemCandidate
}

// NoMatch is returned by a grammar that does not accept the line.
var NoMatch = LineMatch{}

// A Grammar matches one trimmed ticket line.
type Grammar func(line string) LineMatch

// grammars lists the line shapes in priority order; the first match wins.
var grammars = []Grammar{MatchWeighedLine, MatchMultiUnitLine, MatchSingleUnitLine}

// MatchWeighedLine accepts "<weight>KG <name> <price per kg> <total> [B]".
// The candidate has quantity 1 and carries the weight.
func MatchWeighedLine(line string) LineMatch {
	m := weighedLine.FindStringSubmatch(line)
	if m == nil {
		return NoMatch
	}

	weight := models.ParseAmount(m[1])
	if !weight.IsPositive() {
		return NoMatch
	}
	perKg := models.ParseAmount(m[3])

	return LineMatch{
		Matched: true,
		Candidate: models.LineItemCandidate{
			Name:        strings.TrimSpace(m[2]),
			Quantity:    1,
			UnitAmount:  &perKg,
			TotalAmount: models.ParseAmount(m[4]),
			TaxHint:     models.TaxRateLow,
			WeightKg:    &weight,
		},
	}
}

// MatchMultiUnitLine accepts "<quantity> <name> <unit price> <total> [B]".
func MatchMultiUnitLine(line string) LineMatch {
	m := multiUnitLine.FindStringSubmatch(line)
	if m == nil {
		return NoMatch
	}
	quantity, err := strconv.Atoi(m[1])
	if err != nil {
		return NoMatch
	}

	unit := models.ParseAmount(m[3])
	return LineMatch{
		Matched: true,
		Candidate: models.LineItemCandidate{
			Name:        strings.TrimSpace(m[2]),
			Quantity:    quantity,
			UnitAmount:  &unit,
			TotalAmount: models.ParseAmount(m[4]),
		},
	}
}

// MatchSingleUnitLine accepts "<quantity> <name> <price> [B]".
func MatchSingleUnitLine(line string) LineMatch {
	m := singleLine.FindStringSubmatch(line)
	if m == nil {
		return NoMatch
	}
	quantity, err := strconv.Atoi(m[1])
	if err != nil {
		return NoMatch
	}

	return LineMatch{
		Matched: true,
		Candidate: models.LineItemCandidate{
			Name:        strings.TrimSpace(m[2]),
			Quantity:    quantity,
			TotalAmount: models.ParseAmount(m[3]),
		},
	}
}

// MatchLine runs the grammars in priority order.
func MatchLine(line string) LineMatch {
	for _, grammar := range grammars {
		if match := grammar(line); match.Matched {
			return match
		}
	}
	return NoMatch
}

// weightLabel formats a weight the way it is appended to display names.
func weightLabel(weight decimal.Decimal) string {
	return weight.StringFixed(3) + "kg"
}
