package models

import (
	"fmt"
	"strings"
)

// TaxRate is the BTW (Dutch VAT) rate printed on or inferred for a line.
type TaxRate string

const (
	TaxRateLow    TaxRate = "9%"
	TaxRateHigh   TaxRate = "21%"
	TaxRateExempt TaxRate = "Geen"
)

// ParseTaxRate accepts exactly one of the three rates used on invoices.
func ParseTaxRate(s string) (TaxRate, error) {
	switch TaxRate(strings.TrimSpace(s)) {
	case TaxRateLow:
		return TaxRateLow, nil
	case TaxRateHigh:
		return TaxRateHigh, nil
	case TaxRateExempt:
		return TaxRateExempt, nil
	}
	return "", fmt.Errorf("unknown tax rate %q", s)
}

// String implements fmt.Stringer.
func (r TaxRate) String() string {
	return string(r)
}

// Valid reports whether r is one of the known rates.
func (r TaxRate) Valid() bool {
	_, err := ParseTaxRate(string(r))
	return err == nil
}
