// Package abbreviation expands the truncated product names printed on
// in-store receipt tickets.
package abbreviation

import (
	"strings"

	"fjacquet/ah-csv/internal/taxonomy"
)

// Expander looks tokens up in an ordered abbreviation table.
type Expander struct {
	entries []taxonomy.Abbreviation
	exact   map[string]string
}

// NewExpander builds an expander over a copy of entries. Keys are matched
// upper-cased; when a key appears twice the first entry wins.
func NewExpander(entries []taxonomy.Abbreviation) *Expander {
	e := &Expander{
		entries: make([]taxonomy.Abbreviation, 0, len(entries)),
		exact:   make(map[string]string, len(entries)),
	}
	for _, a := range entries {
		key := strings.ToUpper(a.Short)
		if _, dup := e.exact[key]; dup || key == "" {
			continue
		}
		e.exact[key] = a.Full
		e.entries = append(e.entries, taxonomy.Abbreviation{Short: key, Full: a.Full})
	}
	return e
}

// NewFromSnapshot builds an expander over the snapshot's abbreviations.
func NewFromSnapshot(snapshot taxonomy.Snapshot) *Expander {
	return NewExpander(snapshot.Abbreviations)
}

// Expand returns the full name for token. An exact key match wins; otherwise
// the first key in table order that prefixes the token is replaced and the
// rest of the token is kept as printed. Unknown tokens come back trimmed
// but otherwise unchanged.
func (e *Expander) Expand(token string) string {
	token = strings.TrimSpace(token)
	upper := strings.ToUpper(token)

	if full, ok := e.exact[upper]; ok {
		return full
	}
	for _, a := range e.entries {
		if strings.HasPrefix(upper, a.Short) {
			return a.Full + remainder(token, upper, a.Short)
		}
	}
	return token
}

// Len returns the number of table entries.
func (e *Expander) Len() int {
	return len(e.entries)
}

// remainder returns the part of token after the matched key. Upper-casing
// can change byte lengths outside ASCII, so the cut is made by rune count
// when the two forms differ.
func remainder(token, upper, key string) string {
	if len(token) == len(upper) {
		return token[len(key):]
	}
	runes := []rune(token)
	n := len([]rune(key))
	if n > len(runes) {
		return ""
	}
	return string(runes[n:])
}
