package categorizer

import (
	"strings"

	"fjacquet/ah-csv/internal/taxonomy"
)

// PriorityStrategy resolves ambiguous names before the general keyword pass.
// Rules are tried in declared order, and keywords within a rule in order.
type PriorityStrategy struct {
	rules []taxonomy.PriorityRule
}

// NewPriorityStrategy creates a strategy over the given rules.
func NewPriorityStrategy(rules []taxonomy.PriorityRule) *PriorityStrategy {
	return &PriorityStrategy{rules: rules}
}

// Name returns the name of this strategy for logging and debugging.
func (s *PriorityStrategy) Name() string {
	return "Priority"
}

// Categorize returns the category of the first rule with a keyword that is
// a substring of lowerName.
func (s *PriorityStrategy) Categorize(lowerName string) (string, bool) {
	for _, rule := range s.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowerName, kw) {
				return rule.Category, true
			}
		}
	}
	return "", false
}
