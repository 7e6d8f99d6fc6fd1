package receiptparser

import (
	"strings"

	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/textutils"
)

// highRateKeywords identify alcohol, soft drinks and non-food, which are
// taxed at the high rate. Tickets do not print a per-line rate.
var highRateKeywords = []string{
	"leffe", "wijn", "bier", "whisky", "vodka", "rum", "gin",
	"red bull", "cola", "fanta", "sprite", "pepsi", "7up",
	"statiegeld", "plastic", "verpakking",
	"shampoo", "tandpasta", "zeep", "douche", "deo",
	"schoonmaak", "afwasmiddel",
}

// GuessTaxRate infers the VAT rate of a product from its display name.
func GuessTaxRate(name string) models.TaxRate {
	if _, ok := textutils.ContainsAny(strings.ToLower(name), highRateKeywords); ok {
		return models.TaxRateHigh
	}
	return models.TaxRateLow
}
