package invoiceparser

import (
	"strings"
	"testing"

	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
	"fjacquet/ah-csv/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) (*Parser, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	return NewParser(categorizer.New(taxonomy.Default(), logger), logger), logger
}

func TestMatchLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		matched  bool
		product  string
		quantity int
		rate     models.TaxRate
		price    string
	}{
		{name: "Plain", line: "AH Halfvolle melk 2 9% 2,00 0,18 2,18", matched: true, product: "AH Halfvolle melk", quantity: 2, rate: "9%", price: "2.18"},
		{name: "DigitsInName", line: "Leffe Blond 6x30cl 1 21% 7,44 1,56 9,00", matched: true, product: "Leffe Blond 6x30cl", quantity: 1, rate: "21%", price: "9.00"},
		{name: "Accents", line: "Crème fraîche 1 9% 1,10 0,10 1,20", matched: true, product: "Crème fraîche", quantity: 1, rate: "9%", price: "1.20"},
		{name: "ExemptRate", line: "Statiegeld 1 Geen 0,15 0,00 0,15", matched: true, product: "Statiegeld", quantity: 1, rate: "Geen", price: "0.15"},
		{name: "TrailingWhitespace", line: "AH Bananen 1 9% 1,73 0,16 1,89  \r", matched: true, product: "AH Bananen", quantity: 1, rate: "9%", price: "1.89"},
		{name: "LowercaseStart", line: "ah 1 9% 1,00 0,09 1,09"},
		{name: "UnknownRate", line: "AH Bananen 1 6% 1,73 0,16 1,89"},
		{name: "MissingColumn", line: "AH Bananen 1 9% 1,73 1,89"},
		{name: "Header", line: "Totaal inclusief btw 21,82"},
		{name: "Empty", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatchLine(tt.line)
			assert.Equal(t, tt.matched, m.Matched)
			if !tt.matched {
				assert.Equal(t, NoMatch, m)
				return
			}
			assert.Equal(t, tt.product, m.Candidate.Name)
			assert.Equal(t, tt.quantity, m.Candidate.Quantity)
			assert.Equal(t, tt.rate, m.Candidate.TaxHint)
			assert.Equal(t, tt.price, m.Candidate.TotalAmount.StringFixed(2))
			assert.NoError(t, m.Candidate.Validate())
		})
	}
}

func TestMatchLine_Columns(t *testing.T) {
	m := MatchLine("AH Halfvolle melk 2 9% 2,00 0,18 2,18")
	require.True(t, m.Matched)
	assert.Equal(t, "2.00", m.ExclAmount.StringFixed(2))
	assert.Equal(t, "0.18", m.TaxAmount.StringFixed(2))
}

func TestExtractLines(t *testing.T) {
	p, _ := newTestParser(t)
	items := ExtractLines(sampleInvoice, p.classifier, logging.NewMockLogger())

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.DisplayName)
	}
	assert.Equal(t, []string{
		"AH Halfvolle melk",
		"Chips Tortilla",
		"Leffe Blond 6x30cl",
		"Zaanse Hoeve kaas 48+ plakken",
		"Crème fraîche",
	}, names)

	chips := items[1]
	assert.Equal(t, "Chips Tortilla BONUS", chips.OriginalRawName)
	assert.Equal(t, models.CategorySnacks, chips.Category)
	require.NotNil(t, chips.Subcategory)
	assert.Equal(t, "Chips & Noten", *chips.Subcategory)

	leffe := items[2]
	assert.Equal(t, models.CategoryDrinks, leffe.Category)
	assert.Equal(t, models.TaxRateHigh, leffe.TaxRate)
	assert.Equal(t, "9.00", leffe.Price.StringFixed(2))

	assert.Equal(t, models.CategoryOther, items[4].Category)
	assert.Nil(t, items[4].Subcategory)
}

func TestExtractLines_DeduplicatesTriples(t *testing.T) {
	p, _ := newTestParser(t)
	text := strings.Join([]string{
		"AH Bananen 1 9% 1,73 0,16 1,89",
		"AH Bananen 1 9% 1,73 0,16 1,89",
		"AH Bananen 2 9% 3,47 0,31 3,78",
		"AH Bananen BONUS 1 9% 1,73 0,16 1,89",
		"AH Bananen 1 9% 1,60 0,14 1,74",
	}, "\n")

	items := ExtractLines(text, p.classifier, nil)
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, "1.74", items[2].Price.StringFixed(2))
}

func TestExtractLines_DropsZeroQuantity(t *testing.T) {
	p, _ := newTestParser(t)
	logger := logging.NewMockLogger()
	text := "AH Halfvolle melk 0 9% 1,00 0,09 1,09\nAH Bananen 1 9% 1,73 0,16 1,89\n"

	items := ExtractLines(text, p.classifier, logger)
	require.Len(t, items, 1)
	assert.Equal(t, "AH Bananen", items[0].OriginalRawName)
	assert.True(t, logger.HasEntry("DEBUG", "Dropping invalid line"))
}

func TestExtractLines_NoProducts(t *testing.T) {
	p, _ := newTestParser(t)
	assert.Empty(t, ExtractLines("Factuur\nTotaal inclusief btw 0,00\n", p.classifier, nil))
}

func TestRejectName(t *testing.T) {
	_, skip := rejectName("Klapkrat Hertog Jan")
	assert.True(t, skip)
	_, skip = rejectName("Ab")
	assert.True(t, skip)
	_, skip = rejectName("AH Bananen")
	assert.False(t, skip)
	assert.True(t, isAllDigits("12345"))
	assert.False(t, isAllDigits(""))
	assert.False(t, isAllDigits("12a"))
}

func TestExtractMetadata(t *testing.T) {
	meta := ExtractMetadata(sampleInvoice)

	assert.Equal(t, models.KindInvoice, meta.Kind)
	assert.Equal(t, "2025-0012345", meta.Number)
	assert.Equal(t, "2025-01-12", meta.Date.Format(models.DateLayout))
	assert.Equal(t, "21.82", meta.Total.StringFixed(2))
	assert.Equal(t, "0.45", meta.Savings.StringFixed(2))
}

func TestExtractMetadata_Missing(t *testing.T) {
	meta := ExtractMetadata("nothing useful here")
	assert.False(t, meta.HasDate())
	assert.Empty(t, meta.Number)
	assert.True(t, meta.Total.IsZero())
}

func TestParser_ParseText(t *testing.T) {
	p, logger := newTestParser(t)

	doc, err := p.ParseText(sampleInvoice)
	require.NoError(t, err)
	assert.Len(t, doc.Items, 5)
	assert.Equal(t, sampleInvoice, doc.RawText)
	assert.Equal(t, "17.67", doc.ParsedTotal().StringFixed(2))
	assert.Equal(t, "4.15", doc.Discrepancy().StringFixed(2))
	assert.True(t, logger.HasEntry("INFO", "Parsed invoice"))
}

func TestParser_ParseTextWithoutDate(t *testing.T) {
	p, _ := newTestParser(t)

	_, err := p.ParseText("Factuurnummer 1\nAH Bananen 1 9% 1,73 0,16 1,89\n")
	require.Error(t, err)

	var extractErr *parsererror.DataExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "date", extractErr.FieldName)
}
