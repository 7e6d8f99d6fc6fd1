package categorizer

import (
	"fmt"
	"strings"

	"fjacquet/ah-csv/internal/models"
)

// StrategyResult is the outcome of one strategy for one name.
type StrategyResult struct {
	Strategy string
	Category string
	Found    bool
}

// StrategyResults aggregates the outcomes of all strategies, in run order.
type StrategyResults struct {
	Input   string
	Results []StrategyResult
}

// Winner returns the result that decides the category: the first match, or
// the Overig fallback when no strategy matched.
func (sr StrategyResults) Winner() StrategyResult {
	for _, r := range sr.Results {
		if r.Found {
			return r
		}
	}
	return StrategyResult{Strategy: "Fallback", Category: models.CategoryOther}
}

// Summary returns a human-readable summary of all strategy attempts.
func (sr StrategyResults) Summary() string {
	parts := make([]string, 0, len(sr.Results))
	for _, r := range sr.Results {
		status := "no_match"
		if r.Found {
			status = r.Category
		}
		parts = append(parts, fmt.Sprintf("%s:%s", r.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
