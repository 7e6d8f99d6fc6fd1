// Package dateutils parses the date formats printed on invoices and receipts.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the storage and export layout.
const DateLayoutISO = "2006-01-02"

var dutchMonths = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maart":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"augustus":  time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseDutchDate parses "12 januari 2025". An unrecognized month name falls
// back to January, matching how existing invoices were imported.
func ParseDutchDate(s string) (time.Time, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("expected '<day> <month> <year>', got %q", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	month, ok := dutchMonths[strings.ToLower(parts[1])]
	if !ok {
		month = time.January
	}

	return newDate(year, month, day)
}

// ParseNumericDate builds a date from the day, month and year fields of a
// "dd-mm-yyyy" receipt stamp.
func ParseNumericDate(day, month, year string) (time.Time, error) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	if m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("month out of range: %d", m)
	}
	return newDate(y, time.Month(m), d)
}

// newDate rejects days that time.Date would silently roll over.
func newDate(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return t, nil
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ParseISODate parses a YYYY-MM-DD date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(DateLayoutISO, strings.TrimSpace(s))
}

// StartOfYear returns January 1st of the given year.
func StartOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
