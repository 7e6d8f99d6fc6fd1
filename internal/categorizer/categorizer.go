// Package categorizer assigns a category and optional subcategory to product
// names. Classification is a pure function of a taxonomy snapshot: the
// Categorizer never observes later changes to the store it was built from.
package categorizer

import (
	"strings"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/taxonomy"
	"fjacquet/ah-csv/internal/textutils"
)

// Classification is the outcome of classifying one product name.
type Classification struct {
	Category    string
	Subcategory *string
	// Strategy names the layer that matched, empty for the Overig fallback.
	Strategy string
}

// Classifier is what the document parsers need from a categorizer.
type Classifier interface {
	Classify(rawName string) Classification
	Category(rawName string) string
	DetermineSubcategory(name, category string) *string
}

// Categorizer runs the priority layer, then the keyword layer, then falls
// back to models.CategoryOther.
type Categorizer struct {
	strategies    []Strategy
	subcategories subcategoryIndex
	snapshot      taxonomy.Snapshot
	logger        logging.Logger
}

// New builds a categorizer over a copy of snapshot.
func New(snapshot taxonomy.Snapshot, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	snap := snapshot.Clone()
	return &Categorizer{
		strategies: []Strategy{
			NewPriorityStrategy(snap.PriorityRules),
			NewKeywordStrategy(snap.Categories),
		},
		subcategories: newSubcategoryIndex(snap.Subcategories),
		snapshot:      snap,
		logger:        logger,
	}
}

// NewFromStore builds a categorizer over the store's current snapshot.
func NewFromStore(store *taxonomy.Store, logger logging.Logger) *Categorizer {
	return New(store.Snapshot(), logger)
}

// Version is the taxonomy version this categorizer was built from.
func (c *Categorizer) Version() uint64 {
	return c.snapshot.Version
}

// Category returns the category of rawName. The name is normalized before
// matching, so "Chips Tortilla BONUS" and "Chips Tortilla" agree.
func (c *Categorizer) Category(rawName string) string {
	category, _ := c.categorize(rawName)
	return category
}

// DetermineSubcategory matches the subcategory keywords of category against
// name as given, without normalizing it.
func (c *Categorizer) DetermineSubcategory(name, category string) *string {
	return c.subcategories.resolve(name, category)
}

// Classify returns the category of the normalized name and the subcategory
// of the name as given.
func (c *Categorizer) Classify(rawName string) Classification {
	category, strategy := c.categorize(rawName)
	result := Classification{
		Category:    category,
		Subcategory: c.DetermineSubcategory(rawName, category),
		Strategy:    strategy,
	}

	c.logger.WithFields(
		logging.F(logging.FieldProduct, rawName),
		logging.F(logging.FieldCategory, result.Category),
		logging.F(logging.FieldSubcategory, derefOrEmpty(result.Subcategory)),
		logging.F(logging.FieldStrategy, strategy),
	).Debug("Product classified")

	return result
}

// Explain runs every strategy against rawName and reports each outcome,
// including strategies that would not have been reached.
func (c *Categorizer) Explain(rawName string) StrategyResults {
	lower := strings.ToLower(textutils.NormalizeProductName(rawName))
	results := StrategyResults{Input: lower}
	for _, s := range c.strategies {
		category, ok := s.Categorize(lower)
		results.Results = append(results.Results, StrategyResult{
			Strategy: s.Name(),
			Category: category,
			Found:    ok,
		})
	}
	return results
}

func (c *Categorizer) categorize(rawName string) (category, strategy string) {
	lower := strings.ToLower(textutils.NormalizeProductName(rawName))
	for _, s := range c.strategies {
		if category, ok := s.Categorize(lower); ok {
			return category, s.Name()
		}
	}
	return models.CategoryOther, ""
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
