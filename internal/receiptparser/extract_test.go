package receiptparser

import (
	"strings"
	"testing"

	"fjacquet/ah-csv/internal/abbreviation"
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
	snapshot := taxonomy.Default()
	return NewParser(categorizer.New(snapshot, logger), abbreviation.NewFromSnapshot(snapshot), logger), logger
}

func extract(t *testing.T, text string) []models.ClassifiedItem {
	t.Helper()
	p, _ := newTestParser(t)
	return ExtractLines(text, p.classifier, p.expander, nil)
}

func TestExtractLines(t *testing.T) {
	items := extract(t, sampleReceipt)
	require.Len(t, items, 5)

	tomatoes := items[0]
	assert.Equal(t, "AH Trostomaten (0.962kg)", tomatoes.DisplayName)
	assert.Equal(t, "TROSTOMAAT", tomatoes.OriginalRawName)
	assert.Equal(t, 1, tomatoes.Quantity)
	assert.Equal(t, "2.29", tomatoes.Price.StringFixed(2))
	assert.Equal(t, models.TaxRateLow, tomatoes.TaxRate)
	assert.Equal(t, models.CategoryProduce, tomatoes.Category)
	require.NotNil(t, tomatoes.WeightKg)
	assert.Equal(t, "0.962", tomatoes.WeightKg.StringFixed(3))

	leffe := items[1]
	assert.Equal(t, "Leffe Blond bier", leffe.DisplayName)
	assert.Equal(t, 2, leffe.Quantity)
	assert.Equal(t, "2.22", leffe.Price.StringFixed(2))
	assert.Equal(t, models.TaxRateHigh, leffe.TaxRate)
	assert.Equal(t, models.CategoryDrinks, leffe.Category)
	assert.Equal(t, "Bier", leffe.SubcategoryOrEmpty())
	assert.Nil(t, leffe.WeightKg)

	milk := items[2]
	assert.Equal(t, "AH Halfvolle melk", milk.DisplayName)
	assert.Equal(t, models.CategoryDairy, milk.Category)
	assert.Equal(t, "Melk", milk.SubcategoryOrEmpty())
	assert.Equal(t, models.TaxRateLow, milk.TaxRate)

	assert.Equal(t, "AH Paprika geel", items[3].DisplayName)
	assert.Equal(t, "Groente", items[3].SubcategoryOrEmpty())

	redBull := items[4]
	assert.Equal(t, "Red Bull energy drink", redBull.DisplayName)
	assert.Equal(t, models.TaxRateHigh, redBull.TaxRate)
	assert.Equal(t, "Sportdranken", redBull.SubcategoryOrEmpty())
}

func TestExtractLines_StopMarkerEndsProducts(t *testing.T) {
	for _, marker := range stopMarkers {
		t.Run(strings.TrimSpace(marker), func(t *testing.T) {
			text := strings.Join([]string{
				"1 AH HV MELK 1,19",
				marker + "X 9,99",
				"1 PAPRIKA GEEL 1,29",
				"2 LEFFE BLOND 1,11 2,22 B",
			}, "\n")

			items := extract(t, text)
			require.Len(t, items, 1)
			assert.Equal(t, "AH Halfvolle melk", items[0].DisplayName)
		})
	}
}

func TestExtractLines_StopMarkerIsCaseInsensitive(t *testing.T) {
	items := extract(t, "1 AH HV MELK 1,19\nSubtotaal 1,19\n1 PAPRIKA GEEL 1,29")
	assert.Len(t, items, 1)
}

func TestExtractLines_SkipsHeadersAndDeposits(t *testing.T) {
	text := strings.Join([]string{
		"1 OMSCHRIJVING 1,00",
		"1 BONUSKAART 1,00",
		"+STATIEGELD 0,30",
		"1 STATIEGELD KRAT 3,90",
		"1 statiegeld fles 0,25",
		"1 AH HV MELK 1,19",
	}, "\n")

	items := extract(t, text)
	require.Len(t, items, 1)
	assert.Equal(t, "AH Halfvolle melk", items[0].DisplayName)
}

func TestExtractLines_KeepsDuplicates(t *testing.T) {
	items := extract(t, "1 AH HV MELK 1,19\n1 AH HV MELK 1,19\n")
	assert.Len(t, items, 2)
}

func TestExtractLines_WithoutExpander(t *testing.T) {
	p, _ := newTestParser(t)
	items := ExtractLines("1 AH HV MELK 1,19 B\n", p.classifier, nil, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "AH HV MELK", items[0].DisplayName)
}

type fixedExpander string

func (e fixedExpander) Expand(string) string { return string(e) }

func TestExtractLines_NormalizesExpandedName(t *testing.T) {
	p, _ := newTestParser(t)
	items := ExtractLines("1 ONBEKEND 2,00\n", p.classifier, fixedExpander("Onbekend ding Bonus"), nil)
	require.Len(t, items, 1)
	assert.Equal(t, "Onbekend ding", items[0].DisplayName)
	assert.Equal(t, "ONBEKEND", items[0].OriginalRawName)
	assert.Equal(t, models.CategoryOther, items[0].Category)
	assert.Nil(t, items[0].Subcategory)
}

func TestExtractLines_DropsZeroQuantity(t *testing.T) {
	p, _ := newTestParser(t)
	logger := logging.NewMockLogger()

	items := ExtractLines("0 AH HV MELK 1,19\n1 PAPRIKA GEEL 1,29\n", p.classifier, p.expander, logger)
	require.Len(t, items, 1)
	assert.Equal(t, "PAPRIKA GEEL", items[0].OriginalRawName)
	assert.True(t, logger.HasEntry("DEBUG", "Dropping invalid line"))
}

func TestExtractLines_BonusLineStops(t *testing.T) {
	assert.Empty(t, extract(t, "1 AH HV MELK BONUS 1,19\n1 PAPRIKA GEEL 1,29"))
}

func TestExtractLines_PrefixExpansionKeepsRemainder(t *testing.T) {
	items := extract(t, "1 AH KR MUESLI 750G 3,49\n")
	require.Len(t, items, 1)
	assert.Equal(t, "AH Krokante muesli 750G", items[0].DisplayName)
	assert.Equal(t, models.CategoryGrains, items[0].Category)
}

func TestExtractMetadata(t *testing.T) {
	meta := ExtractMetadata(sampleReceipt)

	assert.Equal(t, models.KindReceipt, meta.Kind)
	assert.Equal(t, "BON-1177", meta.Number)
	assert.Equal(t, "2025-12-20", meta.Date.Format(models.DateLayout))
	// SUBTOTAAL is the first line holding TOTAAL.
	assert.Equal(t, "8.74", meta.Total.StringFixed(2))
	assert.Equal(t, "0.20", meta.Savings.StringFixed(2))
}

func TestExtractMetadata_DateWithoutTime(t *testing.T) {
	meta := ExtractMetadata("5-3-2024\nTOTAAL 1.00")
	assert.Equal(t, "2024-03-05", meta.Date.Format(models.DateLayout))
	assert.Equal(t, "1.00", meta.Total.StringFixed(2))
	assert.Empty(t, meta.Number)
}

func TestExtractMetadata_ImpossibleDate(t *testing.T) {
	meta := ExtractMetadata("31-02-2025")
	assert.False(t, meta.HasDate())
}

func TestParser_ParseText(t *testing.T) {
	p, logger := newTestParser(t)

	doc, err := p.ParseText(sampleReceipt)
	require.NoError(t, err)
	assert.Len(t, doc.Items, 5)
	assert.Equal(t, "8.44", doc.ParsedTotal().StringFixed(2))
	assert.Equal(t, "0.30", doc.Discrepancy().StringFixed(2))
	assert.True(t, logger.HasEntry("INFO", "Parsed receipt"))
	assert.True(t, logger.HasEntry("DEBUG", "Reached end of product section"))
}

func TestParser_ParseTextWithoutDate(t *testing.T) {
	p, _ := newTestParser(t)

	_, err := p.ParseText("1177\n1 AH HV MELK 1,19\n")
	var extractErr *parsererror.DataExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "date", extractErr.FieldName)
}

func TestLooksLikeReceipt(t *testing.T) {
	assert.True(t, looksLikeReceipt(sampleReceipt))
	assert.False(t, looksLikeReceipt("Factuurnummer 1\nDatum 12 januari 2025\n"))
}
