package categorizer

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"fjacquet/ah-csv/internal/textutils"
)

// minSuggestTokenLen skips short tokens such as "ah" or "x2" that match
// almost any keyword at a small distance.
const minSuggestTokenLen = 3

// Suggestion proposes a category for a name that fell through to Overig,
// together with the closest existing keyword.
type Suggestion struct {
	Category string
	Keyword  string
	Token    string
	Distance int
}

// Suggest ranks categories by the edit distance between any token of name
// and any of the category's keywords. At most limit suggestions are
// returned, one per category, closest first; ties keep declared order.
func (c *Categorizer) Suggest(name string, limit int) []Suggestion {
	if limit <= 0 {
		return nil
	}
	tokens := suggestTokens(name)
	if len(tokens) == 0 {
		return nil
	}

	var out []Suggestion
	for _, cat := range c.snapshot.Categories {
		best := Suggestion{Category: cat.Name, Distance: -1}
		for _, kw := range cat.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			for _, tok := range tokens {
				d := fuzzy.LevenshteinDistance(tok, kw)
				if best.Distance < 0 || d < best.Distance {
					best.Keyword, best.Token, best.Distance = kw, tok, d
				}
			}
		}
		if best.Distance >= 0 && best.Distance <= maxDistance(best.Keyword) {
			out = append(out, best)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func suggestTokens(name string) []string {
	fields := strings.Fields(strings.ToLower(textutils.NormalizeProductName(name)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,()%+-'")
		if len([]rune(f)) >= minSuggestTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// maxDistance allows roughly one edit per three characters of keyword.
func maxDistance(keyword string) int {
	n := len([]rune(keyword)) / 3
	if n < 1 {
		return 1
	}
	return n
}
