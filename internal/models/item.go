package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItemCandidate is a matched line before classification.
type LineItemCandidate struct {
	Name        string
	Quantity    int
	UnitAmount  *decimal.Decimal
	TotalAmount decimal.Decimal
	TaxHint     TaxRate
	// WeightKg is set only for weighed goods, whose quantity is always 1.
	WeightKg *decimal.Decimal
}

// Validate checks the amount and quantity invariants of a candidate.
func (c LineItemCandidate) Validate() error {
	if c.TotalAmount.IsNegative() {
		return fmt.Errorf("line %q: negative total %s", c.Name, c.TotalAmount)
	}
	if c.WeightKg != nil {
		if !c.WeightKg.IsPositive() {
			return fmt.Errorf("line %q: weight must be positive, got %s", c.Name, c.WeightKg)
		}
		if c.Quantity != 1 {
			return fmt.Errorf("line %q: weighed items have quantity 1, got %d", c.Name, c.Quantity)
		}
		return nil
	}
	if c.Quantity < 1 {
		return fmt.Errorf("line %q: quantity must be at least 1, got %d", c.Name, c.Quantity)
	}
	return nil
}

// ClassifiedItem is one product line of a document with its category.
type ClassifiedItem struct {
	DisplayName     string           `json:"name" yaml:"name"`
	OriginalRawName string           `json:"original_name_raw" yaml:"original_name_raw"`
	Quantity        int              `json:"quantity" yaml:"quantity"`
	Price           decimal.Decimal  `json:"price" yaml:"price"`
	TaxRate         TaxRate          `json:"btw" yaml:"btw"`
	Category        string           `json:"category" yaml:"category"`
	Subcategory     *string          `json:"subcategory" yaml:"subcategory"`
	WeightKg        *decimal.Decimal `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
}

// SubcategoryOrEmpty returns the subcategory or "" when there is none.
func (i ClassifiedItem) SubcategoryOrEmpty() string {
	if i.Subcategory == nil {
		return ""
	}
	return *i.Subcategory
}

// ItemRow is the flat CSV representation of a ClassifiedItem.
type ItemRow struct {
	Date        string `csv:"Date"`
	Document    string `csv:"Document"`
	Name        string `csv:"Name"`
	OriginalRaw string `csv:"OriginalName"`
	Quantity    int    `csv:"Quantity"`
	WeightKg    string `csv:"WeightKg"`
	Price       string `csv:"Price"`
	TaxRate     string `csv:"TaxRate"`
	Category    string `csv:"Category"`
	Subcategory string `csv:"Subcategory"`
}

// ToRow flattens the item for CSV export. Dates use YYYY-MM-DD.
func (i ClassifiedItem) ToRow(meta DocumentMetadata) ItemRow {
	row := ItemRow{
		Document:    meta.Number,
		Name:        i.DisplayName,
		OriginalRaw: i.OriginalRawName,
		Quantity:    i.Quantity,
		Price:       FormatAmount(i.Price),
		TaxRate:     i.TaxRate.String(),
		Category:    i.Category,
		Subcategory: i.SubcategoryOrEmpty(),
	}
	if !meta.Date.IsZero() {
		row.Date = meta.Date.Format(DateLayout)
	}
	if i.WeightKg != nil {
		row.WeightKg = i.WeightKg.StringFixed(3)
	}
	return row
}
