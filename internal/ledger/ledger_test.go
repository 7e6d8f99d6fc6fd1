package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "data", "ledger.db"), logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, l.Close()) })
	return l
}

func str(s string) *string { return &s }

func item(name, category string, sub *string, price string, qty int) models.ClassifiedItem {
	return models.ClassifiedItem{
		DisplayName:     name,
		OriginalRawName: name,
		Quantity:        qty,
		Price:           decimal.RequireFromString(price),
		TaxRate:         models.TaxRateLow,
		Category:        category,
		Subcategory:     sub,
	}
}

func testDocument(hash, date string, items ...models.ClassifiedItem) *models.Document {
	d, _ := time.Parse(models.DateLayout, date)
	return &models.Document{
		Metadata: models.DocumentMetadata{
			Kind:     models.KindInvoice,
			Number:   "F-" + hash,
			Date:     d,
			Total:    decimal.RequireFromString("10.00"),
			Savings:  decimal.RequireFromString("0.50"),
			FileName: hash + ".pdf",
			FileHash: hash,
		},
		Items:   items,
		RawText: "raw " + hash,
	}
}

func seed(t *testing.T, l *Ledger) {
	t.Helper()
	ctx := context.Background()
	weight := decimal.RequireFromString("0.962")
	tomatoes := item("AH Trostomaten (0.962kg)", models.CategoryProduce, nil, "2.29", 1)
	tomatoes.WeightKg = &weight

	docs := []*models.Document{
		testDocument("aaa", "2024-12-30",
			item("AH Halfvolle melk", models.CategoryDairy, str("Melk"), "2.18", 2)),
		testDocument("bbb", "2025-01-12",
			item("AH Halfvolle melk", models.CategoryDairy, str("Melk"), "1.09", 1),
			tomatoes,
			item("Leffe Blond bier", models.CategoryDrinks, str("Bier"), "9.00", 1)),
		testDocument("ccc", "2025-02-03",
			item("Leffe Blond bier", models.CategoryDrinks, str("Bier"), "4.50", 1),
			item("Onbekend", models.CategoryOther, nil, "0.99", 1)),
	}
	for _, doc := range docs {
		_, err := l.SaveDocument(ctx, doc, "run-1", false)
		require.NoError(t, err)
	}
}

func TestOpen_MigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	l, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())
	require.NoError(t, l.Close())

	l, err = Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	var versions int
	require.NoError(t, l.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&versions))
	assert.Equal(t, 1, versions)
}

func TestSaveDocument_DuplicateHash(t *testing.T) {
	l := setupTestLedger(t)
	ctx := context.Background()

	doc := testDocument("abc", "2025-01-12", item("AH Halfvolle melk", models.CategoryDairy, str("Melk"), "2.18", 2))
	_, err := l.SaveDocument(ctx, doc, "run-1", false)
	require.NoError(t, err)

	exists, err := l.DocumentExists(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = l.SaveDocument(ctx, doc, "run-2", false)
	assert.True(t, parsererror.IsConflict(err))

	doc.Items = append(doc.Items, item("Leffe Blond bier", models.CategoryDrinks, str("Bier"), "9.00", 1))
	_, err = l.SaveDocument(ctx, doc, "run-3", true)
	require.NoError(t, err)

	items, err := l.Items(ctx, ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSaveDocument_Validation(t *testing.T) {
	l := setupTestLedger(t)
	ctx := context.Background()

	noHash := testDocument("", "2025-01-12")
	_, err := l.SaveDocument(ctx, noHash, "", false)
	var validationErr *parsererror.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	noDate := testDocument("x", "2025-01-12")
	noDate.Metadata.Date = time.Time{}
	_, err = l.SaveDocument(ctx, noDate, "", false)
	assert.ErrorAs(t, err, &validationErr)

	exists, err := l.DocumentExists(ctx, "x")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestItems(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	all, err := l.Items(ctx, ItemFilter{})
	require.NoError(t, err)
	require.Len(t, all, 6)

	tomatoes := all[2]
	assert.Equal(t, "AH Trostomaten (0.962kg)", tomatoes.DisplayName)
	require.NotNil(t, tomatoes.WeightKg)
	assert.Equal(t, "0.962", tomatoes.WeightKg.String())
	assert.Nil(t, tomatoes.Subcategory)
	assert.Equal(t, "2025-01-12", tomatoes.Date.Format(models.DateLayout))
	assert.Equal(t, "F-bbb", tomatoes.DocumentNumber)

	milk := all[0]
	assert.Equal(t, "2.18", milk.Price.StringFixed(2))
	assert.Equal(t, 2, milk.Quantity)
	assert.Equal(t, "Melk", milk.SubcategoryOrEmpty())

	of2025, err := l.Items(ctx, ItemFilter{Year: 2025})
	require.NoError(t, err)
	assert.Len(t, of2025, 5)

	drinks, err := l.Items(ctx, ItemFilter{Category: models.CategoryDrinks, Limit: 1})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "9.00", drinks[0].Price.StringFixed(2))
}

func TestCategoryAndMonthlyTotals(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	cats, err := l.CategoryTotals(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, cats, 4)
	assert.Equal(t, models.CategoryDrinks, cats[0].Category)
	assert.Equal(t, "13.50", cats[0].Total.StringFixed(2))
	assert.Equal(t, 2, cats[0].Count)

	allCats, err := l.CategoryTotals(ctx, 0)
	require.NoError(t, err)
	var dairy CategoryTotal
	for _, c := range allCats {
		if c.Category == models.CategoryDairy {
			dairy = c
		}
	}
	assert.Equal(t, "3.27", dairy.Total.StringFixed(2))

	months, err := l.MonthlyTotals(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12", "2025-01", "2025-02"}, []string{months[0].Month, months[1].Month, months[2].Month})
	assert.Equal(t, "12.38", months[1].Total.StringFixed(2))
}

func TestTopProductsAndSummary(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	top, err := l.TopProducts(ctx, 0, "", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Leffe Blond bier", top[0].Name)
	assert.Equal(t, 2, top[0].Purchases)
	assert.Equal(t, "13.50", top[0].Total.StringFixed(2))
	assert.Equal(t, "AH Halfvolle melk", top[1].Name)
	assert.Equal(t, 3, top[1].Quantity)

	other, err := l.TopProducts(ctx, 0, models.CategoryOther, 0)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "Onbekend", other[0].Name)

	summary, err := l.Summary(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Documents)
	assert.Equal(t, "20.00", summary.Spent.StringFixed(2))
	assert.Equal(t, "1.00", summary.Savings.StringFixed(2))
	assert.Equal(t, "2025-01-12", summary.FirstDate)
	assert.Equal(t, "2025-02-03", summary.LastDate)

	empty, err := l.Summary(ctx, 1999)
	require.NoError(t, err)
	assert.Zero(t, empty.Documents)
	assert.True(t, empty.Spent.IsZero())
}

func TestProductNames(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)

	names, err := l.ProductNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AH Halfvolle melk", "AH Trostomaten (0.962kg)", "Leffe Blond bier", "Onbekend"}, names)
}

func TestSetCategory(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	n, err := l.SetCategory(ctx, "Onbekend", models.CategorySnacks, str("Chips & Noten"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	snacks, err := l.Items(ctx, ItemFilter{Category: models.CategorySnacks})
	require.NoError(t, err)
	require.Len(t, snacks, 1)
	assert.Equal(t, "Chips & Noten", snacks[0].SubcategoryOrEmpty())

	_, err = l.SetCategory(ctx, "Bestaat niet", models.CategorySnacks, nil)
	assert.True(t, parsererror.IsNotFound(err))
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(229), toCents(decimal.RequireFromString("2.29")))
	assert.Equal(t, int64(230), toCents(decimal.RequireFromString("2.295")))
	assert.Equal(t, "2.29", fromCents(229).StringFixed(2))
}

func TestOpen_EnablesForeignKeys(t *testing.T) {
	l := setupTestLedger(t)

	var on int
	require.NoError(t, l.db.QueryRow("PRAGMA foreign_keys").Scan(&on))
	assert.Equal(t, 1, on)
}

func TestSetCategory_WithoutSubcategoryDropsAutomaticOne(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	_, err := l.SetCategory(ctx, "AH Halfvolle melk", models.CategoryDrinks, nil)
	require.NoError(t, err)

	drinks, err := l.Items(ctx, ItemFilter{Category: models.CategoryDrinks})
	require.NoError(t, err)
	for _, it := range drinks {
		if it.DisplayName == "AH Halfvolle melk" {
			assert.Nil(t, it.Subcategory)
		}
	}

	totals, err := l.SubcategoryTotals(ctx, 0)
	require.NoError(t, err)
	for _, st := range totals {
		assert.False(t, st.Category == models.CategoryDrinks && st.Subcategory == "Melk")
	}
}

func TestSubcategoryTotals(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)

	totals, err := l.SubcategoryTotals(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, totals, 4)

	assert.Equal(t, models.CategoryDrinks, totals[0].Category)
	assert.Equal(t, "Bier", totals[0].Subcategory)
	assert.Equal(t, "13.5", totals[0].Total.String())
	assert.Equal(t, 2, totals[0].Count)

	assert.Equal(t, models.CategoryProduce, totals[1].Category)
	assert.Empty(t, totals[1].Subcategory)

	assert.Equal(t, models.CategoryDairy, totals[3].Category)
	assert.Equal(t, "Melk", totals[3].Subcategory)
	assert.Equal(t, "1.09", totals[3].Total.String())
	assert.Equal(t, 1, totals[3].Count)
}

func TestProductDetail(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	leffe, err := l.ProductDetail(ctx, "Leffe Blond bier")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryDrinks, leffe.Category)
	assert.Equal(t, "Bier", leffe.Subcategory)
	assert.Equal(t, 2, leffe.Purchases)
	assert.Equal(t, "13.5", leffe.Total.String())
	assert.Equal(t, "4.5", leffe.MinUnitPrice.String())
	assert.Equal(t, "9", leffe.MaxUnitPrice.String())
	assert.Equal(t, "6.75", leffe.AvgUnitPrice.String())
	require.Len(t, leffe.History, 2)
	assert.Equal(t, "2025-01-12", leffe.History[0].Date)
	assert.Equal(t, "F-bbb", leffe.History[0].DocumentNumber)
	require.Len(t, leffe.Months, 2)
	assert.Equal(t, "2025-02", leffe.Months[1].Month)

	melk, err := l.ProductDetail(ctx, "AH Halfvolle melk")
	require.NoError(t, err)
	assert.Equal(t, 3, melk.Quantity)
	assert.Equal(t, "1.09", melk.History[0].UnitPrice.String())
	assert.True(t, melk.MinUnitPrice.Equal(melk.MaxUnitPrice))

	_, err = l.ProductDetail(ctx, "Bestaat niet")
	assert.True(t, parsererror.IsNotFound(err))
}

func TestDocuments(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	docs, err := l.Documents(ctx, models.KindInvoice)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "aaa.pdf", docs[0].FileName)
	assert.Equal(t, "F-aaa", docs[0].Number)
	assert.Equal(t, "raw aaa", docs[0].RawText)
	assert.Equal(t, 2024, docs[0].Date.Year())

	all, err := l.Documents(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	receipts, err := l.Documents(ctx, models.KindReceipt)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestReplaceItems_KeepsOverrides(t *testing.T) {
	l := setupTestLedger(t)
	seed(t, l)
	ctx := context.Background()

	_, err := l.SetCategory(ctx, "Leffe Blond bier", models.CategorySnacks, str("Chips & Noten"))
	require.NoError(t, err)

	docs, err := l.Documents(ctx, models.KindInvoice)
	require.NoError(t, err)
	ccc := docs[2]

	rep, err := l.ReplaceItems(ctx, ccc.ID, []models.ClassifiedItem{
		item("Leffe Blond bier", models.CategoryDrinks, str("Bier"), "4.50", 1),
		item("Onbekend", models.CategorySnacks, nil, "0.99", 1),
		item("Nieuw", models.CategoryOther, nil, "1.00", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Before)
	assert.Equal(t, 3, rep.After)
	assert.Equal(t, 2, rep.Recategorized)

	items, err := l.Items(ctx, ItemFilter{Year: 2025})
	require.NoError(t, err)
	byName := map[string]StoredItem{}
	for _, it := range items {
		if it.DocumentID == ccc.ID {
			byName[it.DisplayName] = it
		}
	}
	require.Len(t, byName, 3)
	assert.Equal(t, models.CategorySnacks, byName["Leffe Blond bier"].Category)
	assert.Equal(t, "Chips & Noten", byName["Leffe Blond bier"].SubcategoryOrEmpty())
	assert.Equal(t, models.CategorySnacks, byName["Onbekend"].Category)

	_, err = l.ReplaceItems(ctx, 999, nil)
	assert.True(t, parsererror.IsNotFound(err))
}
