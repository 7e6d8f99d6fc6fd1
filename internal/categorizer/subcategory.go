package categorizer

import (
	"strings"

	"fjacquet/ah-csv/internal/taxonomy"
)

// subcategoryIndex looks up subcategory tables by category name.
type subcategoryIndex map[string][]taxonomy.SubcategoryKeywords

func newSubcategoryIndex(tables []taxonomy.CategorySubcategories) subcategoryIndex {
	idx := make(subcategoryIndex, len(tables))
	for _, t := range tables {
		idx[t.Category] = t.Subcategories
	}
	return idx
}

// resolve returns the first subcategory of category with a keyword contained
// in the lower-cased name. Categories without a table never have one.
func (idx subcategoryIndex) resolve(name, category string) *string {
	subs, ok := idx[category]
	if !ok {
		return nil
	}
	lower := strings.ToLower(name)
	for _, sub := range subs {
		for _, kw := range sub.Keywords {
			if strings.Contains(lower, kw) {
				found := sub.Name
				return &found
			}
		}
	}
	return nil
}
