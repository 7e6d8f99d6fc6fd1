// Package textutils provides product name clean-up shared by the document parsers.
package textutils

import (
	"regexp"
	"strings"
)

const bonusSuffix = " BONUS"

var trailingMarker = regexp.MustCompile(`\s+B$`)

// NormalizeProductName trims the name and drops a trailing " BONUS" marker
// (any case), so a promoted line collapses onto the regular product.
// Only trailing markers are affected. Normalizing twice is a no-op.
func NormalizeProductName(name string) string {
	name = strings.TrimSpace(name)
	for hasBonusSuffix(name) {
		name = strings.TrimSpace(name[:len(name)-len(bonusSuffix)])
	}
	return name
}

func hasBonusSuffix(name string) bool {
	if len(name) < len(bonusSuffix) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(bonusSuffix):], bonusSuffix)
}

// StripTrailingMarker removes the lone "B" that receipt tickets print after
// bonus-discounted lines.
func StripTrailingMarker(name string) string {
	return trailingMarker.ReplaceAllString(name, "")
}

// ContainsAny returns the first needle that occurs in s, and whether one did.
func ContainsAny(s string, needles []string) (string, bool) {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return n, true
		}
	}
	return "", false
}
