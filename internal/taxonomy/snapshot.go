// Package taxonomy holds the ordered keyword tables that drive product
// classification and receipt abbreviation expansion.
//
// Order is significant everywhere: classification takes the first rule and
// the first keyword that matches, so every table is a slice, never a map.
package taxonomy

// PriorityRule maps a set of keywords to a category ahead of the general
// keyword pass.
type PriorityRule struct {
	Category string   `yaml:"category" json:"category"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategoryKeywords lists the keywords of one category.
type CategoryKeywords struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// SubcategoryKeywords lists the keywords of one subcategory.
type SubcategoryKeywords struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategorySubcategories is the subcategory taxonomy of one category.
type CategorySubcategories struct {
	Category      string                `yaml:"category" json:"category"`
	Subcategories []SubcategoryKeywords `yaml:"subcategories" json:"subcategories"`
}

// Abbreviation maps an upper-case receipt token to a full product name.
type Abbreviation struct {
	Short string `yaml:"short" json:"short"`
	Full  string `yaml:"full" json:"full"`
}

// Snapshot is a point-in-time copy of the whole taxonomy. Treat it as
// read-only; use Clone before changing anything.
type Snapshot struct {
	Version       uint64                  `yaml:"version" json:"version"`
	PriorityRules []PriorityRule          `yaml:"priority_rules" json:"priority_rules"`
	Categories    []CategoryKeywords      `yaml:"categories" json:"categories"`
	Subcategories []CategorySubcategories `yaml:"subcategories" json:"subcategories"`
	Abbreviations []Abbreviation          `yaml:"abbreviations" json:"abbreviations"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Version: s.Version}

	if s.PriorityRules != nil {
		out.PriorityRules = make([]PriorityRule, len(s.PriorityRules))
		for i, r := range s.PriorityRules {
			out.PriorityRules[i] = PriorityRule{Category: r.Category, Keywords: cloneStrings(r.Keywords)}
		}
	}
	if s.Categories != nil {
		out.Categories = make([]CategoryKeywords, len(s.Categories))
		for i, c := range s.Categories {
			out.Categories[i] = CategoryKeywords{Name: c.Name, Keywords: cloneStrings(c.Keywords)}
		}
	}
	if s.Subcategories != nil {
		out.Subcategories = make([]CategorySubcategories, len(s.Subcategories))
		for i, c := range s.Subcategories {
			subs := make([]SubcategoryKeywords, len(c.Subcategories))
			for j, sub := range c.Subcategories {
				subs[j] = SubcategoryKeywords{Name: sub.Name, Keywords: cloneStrings(sub.Keywords)}
			}
			out.Subcategories[i] = CategorySubcategories{Category: c.Category, Subcategories: subs}
		}
	}
	if s.Abbreviations != nil {
		out.Abbreviations = make([]Abbreviation, len(s.Abbreviations))
		copy(out.Abbreviations, s.Abbreviations)
	}
	return out
}

// CategoryNames returns the category names in declared order.
func (s Snapshot) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Category returns the keyword entry of the named category.
func (s Snapshot) Category(name string) (CategoryKeywords, bool) {
	for _, c := range s.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryKeywords{}, false
}

// SubcategoriesOf returns the subcategory taxonomy of a category, if any.
func (s Snapshot) SubcategoriesOf(category string) ([]SubcategoryKeywords, bool) {
	for _, c := range s.Subcategories {
		if c.Category == category {
			return c.Subcategories, true
		}
	}
	return nil, false
}

func (s Snapshot) categoryIndex(name string) int {
	for i, c := range s.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
