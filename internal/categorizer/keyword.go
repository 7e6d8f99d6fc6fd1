package categorizer

import (
	"strings"

	"fjacquet/ah-csv/internal/taxonomy"
)

// KeywordStrategy is the general pass: substring containment of category
// keywords, categories and keywords both in declared order.
type KeywordStrategy struct {
	categories []taxonomy.CategoryKeywords
}

// NewKeywordStrategy creates a strategy over the given category table.
func NewKeywordStrategy(categories []taxonomy.CategoryKeywords) *KeywordStrategy {
	return &KeywordStrategy{categories: categories}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize attempts to categorize a product name using keyword matching.
func (s *KeywordStrategy) Categorize(lowerName string) (string, bool) {
	for _, c := range s.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lowerName, kw) {
				return c.Name, true
			}
		}
	}
	return "", false
}
