package categorize_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/ah-csv/cmd/categorize"
	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/config"
	"fjacquet/ah-csv/internal/container"
	"fjacquet/ah-csv/internal/ledger"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
	"fjacquet/ah-csv/internal/pdfparser"
	"fjacquet/ah-csv/internal/store"
	"fjacquet/ah-csv/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *taxonomy.Snapshot {
	return &taxonomy.Snapshot{
		Categories: []taxonomy.CategoryKeywords{
			{Name: "Dranken", Keywords: []string{"thee"}},
			{Name: "Huishouden", Keywords: []string{"theedoek", "spons"}},
		},
		Subcategories: []taxonomy.CategorySubcategories{
			{Category: "Dranken", Subcategories: []taxonomy.SubcategoryKeywords{
				{Name: "Thee", Keywords: []string{"thee"}},
			}},
		},
		Abbreviations: []taxonomy.Abbreviation{{Short: "GR THEE", Full: "Groene thee"}},
	}
}

func run(t *testing.T, flags map[string]string) (string, error) {
	t.Helper()
	defaults := map[string]string{
		"name": "", "expand": "false", "explain": "false",
		"suggest": "3", "set": "", "subcategory": "",
	}
	for k, v := range flags {
		defaults[k] = v
	}
	for k, v := range defaults {
		require.NoError(t, categorize.Cmd.Flags().Set(k, v))
	}

	out := &bytes.Buffer{}
	categorize.Cmd.SetOut(out)
	t.Cleanup(func() { categorize.Cmd.SetOut(nil) })
	err := categorize.Cmd.RunE(categorize.Cmd, nil)
	return out.String(), err
}

func setup(t *testing.T) *container.Container {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")

	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithExtractor(pdfparser.NewMockPDFExtractor("", nil)),
		container.WithRepository(&store.MockRepository{Snapshot: testSnapshot()}))
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		_ = c.Close()
		root.SetContainer(nil)
	})
	return c
}

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize")
	assert.NotNil(t, categorize.Cmd.RunE)

	nameFlag := categorize.Cmd.Flags().Lookup("name")
	require.NotNil(t, nameFlag)
	assert.Equal(t, "n", nameFlag.Shorthand)

	suggestFlag := categorize.Cmd.Flags().Lookup("suggest")
	require.NotNil(t, suggestFlag)
	assert.Equal(t, "3", suggestFlag.DefValue)
}

func TestCategorizeCommand_Classifies(t *testing.T) {
	setup(t)

	out, err := run(t, map[string]string{"name": "Thee groen"})
	require.NoError(t, err)
	assert.Contains(t, out, "Category: Dranken")
	assert.Contains(t, out, "Subcategory: Thee")
	assert.NotContains(t, out, "Suggestions:")
}

func TestCategorizeCommand_ExpandAndExplain(t *testing.T) {
	setup(t)

	out, err := run(t, map[string]string{"name": "GR THEE", "expand": "true", "explain": "true"})
	require.NoError(t, err)
	assert.Contains(t, out, "Expanded: Groene thee")
	assert.Contains(t, out, "Category: Dranken")
	assert.Contains(t, out, "Keyword:Dranken")
	assert.Contains(t, out, "Decided by: Keyword")
}

func TestCategorizeCommand_Suggests(t *testing.T) {
	setup(t)

	out, err := run(t, map[string]string{"name": "AH Spns"})
	require.NoError(t, err)
	assert.Contains(t, out, "Category: "+models.CategoryOther)
	assert.Contains(t, out, "Suggestions:")
	assert.Contains(t, out, "Huishouden")

	out, err = run(t, map[string]string{"name": "AH Spns", "suggest": "0"})
	require.NoError(t, err)
	assert.NotContains(t, out, "Suggestions:")
}

func TestCategorizeCommand_SetOverridesLedger(t *testing.T) {
	c := setup(t)
	l, err := c.GetLedger()
	require.NoError(t, err)

	doc := &models.Document{
		Metadata: models.DocumentMetadata{
			Kind:     models.KindReceipt,
			Number:   "BON-0001",
			Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Total:    decimal.RequireFromString("1.99"),
			FileName: "bon.pdf",
			FileHash: "hash-1",
		},
		Items: []models.ClassifiedItem{{
			DisplayName:     "Spons groot",
			OriginalRawName: "SPONS GROOT",
			Quantity:        1,
			Price:           decimal.RequireFromString("1.99"),
			TaxRate:         models.TaxRateHigh,
			Category:        models.CategoryOther,
		}},
	}
	_, err = l.SaveDocument(root.Context(categorize.Cmd), doc, "run-1", false)
	require.NoError(t, err)

	out, err := run(t, map[string]string{"name": "Spons groot", "set": "Huishouden"})
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 items")

	_, err = run(t, map[string]string{"name": "Spons groot", "set": "Bestaat niet"})
	require.Error(t, err)
	assert.True(t, parsererror.IsNotFound(err))

	_, err = run(t, map[string]string{"name": "Nergens", "set": "Huishouden"})
	require.Error(t, err)
	assert.True(t, parsererror.IsNotFound(err))
}

func TestCategorizeCommand_SetDerivesSubcategory(t *testing.T) {
	c := setup(t)
	l, err := c.GetLedger()
	require.NoError(t, err)

	sub := "Schoonmaak"
	doc := &models.Document{
		Metadata: models.DocumentMetadata{
			Kind:     models.KindReceipt,
			Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Total:    decimal.RequireFromString("2.49"),
			FileName: "bon.pdf",
			FileHash: "hash-2",
		},
		Items: []models.ClassifiedItem{
			{DisplayName: "Theedoek ijsthee", OriginalRawName: "THEEDOEK", Quantity: 1,
				Price: decimal.RequireFromString("2.49"), TaxRate: models.TaxRateHigh,
				Category: "Huishouden", Subcategory: &sub},
			{DisplayName: "Spons", OriginalRawName: "SPONS", Quantity: 1,
				Price: decimal.RequireFromString("0.99"), TaxRate: models.TaxRateHigh,
				Category: "Huishouden", Subcategory: &sub},
		},
	}
	ctx := root.Context(categorize.Cmd)
	_, err = l.SaveDocument(ctx, doc, "run-1", false)
	require.NoError(t, err)

	out, err := run(t, map[string]string{"name": "Theedoek ijsthee", "set": "Dranken"})
	require.NoError(t, err)
	assert.Contains(t, out, "Subcategory: Thee")

	out, err = run(t, map[string]string{"name": "Spons", "set": "Dranken"})
	require.NoError(t, err)
	assert.NotContains(t, out, "Subcategory:")

	items, err := l.Items(ctx, ledger.ItemFilter{Category: "Dranken"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	subs := map[string]string{}
	for _, it := range items {
		subs[it.DisplayName] = it.SubcategoryOrEmpty()
	}
	assert.Equal(t, "Thee", subs["Theedoek ijsthee"])
	assert.Empty(t, subs["Spons"], "the automatic Huishouden subcategory does not leak")
}

func TestCategorizeCommand_RequiresName(t *testing.T) {
	setup(t)

	_, err := run(t, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product name is required")
}
