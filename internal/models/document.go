package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO date form used for storage and export.
const DateLayout = "2006-01-02"

// DocumentKind distinguishes the two supported source layouts.
type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice"
	KindReceipt DocumentKind = "receipt"
)

// ParseDocumentKind accepts "invoice" or "receipt" (and the Dutch
// "factuur" and "kassabon").
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch s {
	case "invoice", "factuur":
		return KindInvoice, nil
	case "receipt", "kassabon", "bon":
		return KindReceipt, nil
	}
	return "", fmt.Errorf("unknown document kind %q (want invoice or receipt)", s)
}

// DocumentMetadata holds the header and footer values of one document.
// A zero Date means no date could be extracted.
type DocumentMetadata struct {
	Kind     DocumentKind    `json:"kind"`
	Number   string          `json:"number"`
	Date     time.Time       `json:"date"`
	Total    decimal.Decimal `json:"total"`
	Savings  decimal.Decimal `json:"savings"`
	FileName string          `json:"filename"`
	FileHash string          `json:"file_hash"`
}

// HasDate reports whether a document date was found.
func (m DocumentMetadata) HasDate() bool {
	return !m.Date.IsZero()
}

// Document is a parsed invoice or receipt.
type Document struct {
	Metadata DocumentMetadata `json:"metadata"`
	Items    []ClassifiedItem `json:"items"`
	RawText  string           `json:"-"`
}

// ParsedTotal sums the prices of all extracted items.
func (d *Document) ParsedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Price)
	}
	return total
}

// Discrepancy is the printed total minus the parsed total. Deposits and
// bonus discounts are not line items, so a non-zero value is normal.
func (d *Document) Discrepancy() decimal.Decimal {
	return d.Metadata.Total.Sub(d.ParsedTotal())
}

// Rows flattens the document's items for CSV export.
func (d *Document) Rows() []ItemRow {
	rows := make([]ItemRow, 0, len(d.Items))
	for _, item := range d.Items {
		rows = append(rows, item.ToRow(d.Metadata))
	}
	return rows
}
