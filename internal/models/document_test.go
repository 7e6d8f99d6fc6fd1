package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDocumentTotals(t *testing.T) {
	doc := &Document{
		Metadata: DocumentMetadata{Total: decimal.RequireFromString("5.00")},
		Items: []ClassifiedItem{
			{DisplayName: "Melk", Price: decimal.RequireFromString("1.09")},
			{DisplayName: "Brood", Price: decimal.RequireFromString("2.49")},
		},
	}

	assert.Equal(t, "3.58", doc.ParsedTotal().StringFixed(2))
	assert.Equal(t, "1.42", doc.Discrepancy().StringFixed(2))
}

func TestDocumentRows(t *testing.T) {
	weight := decimal.RequireFromString("0.962")
	doc := &Document{
		Metadata: DocumentMetadata{
			Number: "BON-1234",
			Date:   time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		},
		Items: []ClassifiedItem{
			{
				DisplayName: "AH Trostomaten (0.962kg)",
				Quantity:    1,
				Price:       decimal.RequireFromString("2.29"),
				TaxRate:     TaxRateLow,
				Category:    CategoryProduce,
				Subcategory: strPtr("Groente"),
				WeightKg:    &weight,
			},
			{DisplayName: "Theedoek", Quantity: 1, Price: decimal.RequireFromString("3"), Category: CategoryOther},
		},
	}

	rows := doc.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-12-20", rows[0].Date)
	assert.Equal(t, "BON-1234", rows[0].Document)
	assert.Equal(t, "0.962", rows[0].WeightKg)
	assert.Equal(t, "Groente", rows[0].Subcategory)
	assert.Equal(t, "9%", rows[0].TaxRate)
	assert.Equal(t, "", rows[1].WeightKg)
	assert.Equal(t, "", rows[1].Subcategory)
	assert.Equal(t, "3.00", rows[1].Price)
}

func TestParseDocumentKind(t *testing.T) {
	kind, err := ParseDocumentKind("kassabon")
	require.NoError(t, err)
	assert.Equal(t, KindReceipt, kind)

	kind, err = ParseDocumentKind("invoice")
	require.NoError(t, err)
	assert.Equal(t, KindInvoice, kind)

	_, err = ParseDocumentKind("statement")
	assert.Error(t, err)
}

func TestLineItemCandidateValidate(t *testing.T) {
	weight := decimal.RequireFromString("0.5")
	zero := decimal.Zero

	tests := []struct {
		name      string
		candidate LineItemCandidate
		wantErr   bool
	}{
		{name: "Plain", candidate: LineItemCandidate{Name: "x", Quantity: 2, TotalAmount: decimal.NewFromInt(1)}},
		{name: "Weighed", candidate: LineItemCandidate{Name: "x", Quantity: 1, WeightKg: &weight}},
		{name: "ZeroQuantity", candidate: LineItemCandidate{Name: "x"}, wantErr: true},
		{name: "NegativeTotal", candidate: LineItemCandidate{Name: "x", Quantity: 1, TotalAmount: decimal.NewFromInt(-1)}, wantErr: true},
		{name: "WeighedMultiple", candidate: LineItemCandidate{Name: "x", Quantity: 2, WeightKg: &weight}, wantErr: true},
		{name: "ZeroWeight", candidate: LineItemCandidate{Name: "x", Quantity: 1, WeightKg: &zero}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.candidate.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
