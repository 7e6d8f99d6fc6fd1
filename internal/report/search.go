package report

import (
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// SearchMatch is a product name with the search terms it contains.
type SearchMatch struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// SearchProducts returns the names containing every one of terms, case
// insensitively, in the order of names. Blank and repeated terms are
// ignored.
func SearchProducts(names, terms []string) []SearchMatch {
	patterns := uniqueTerms(terms)
	if len(patterns) == 0 {
		return []SearchMatch{}
	}

	dict := make([][]byte, len(patterns))
	for i, p := range patterns {
		dict[i] = []byte(p)
	}
	matcher := ahocorasick.NewMatcher(dict)

	matches := []SearchMatch{}
	for _, name := range names {
		hits := matcher.Match([]byte(strings.ToLower(name)))
		if len(hits) != len(patterns) {
			continue
		}
		sort.Ints(hits)
		found := make([]string, 0, len(hits))
		for _, idx := range hits {
			found = append(found, patterns[idx])
		}
		matches = append(matches, SearchMatch{Name: name, Terms: found})
	}
	return matches
}

func uniqueTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
