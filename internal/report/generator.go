// Package report builds spending reports from the ledger and renders them
// as text, JSON or an Excel workbook.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"fjacquet/ah-csv/internal/ledger"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
)

// Output formats understood by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// DefaultTopProducts is the number of products listed by default.
const DefaultTopProducts = 10

// Source is the part of the ledger a report reads.
type Source interface {
	Summary(ctx context.Context, year int) (ledger.Summary, error)
	CategoryTotals(ctx context.Context, year int) ([]ledger.CategoryTotal, error)
	SubcategoryTotals(ctx context.Context, year int) ([]ledger.SubcategoryTotal, error)
	MonthlyTotals(ctx context.Context, year int) ([]ledger.MonthlyTotal, error)
	TopProducts(ctx context.Context, year int, category string, limit int) ([]ledger.ProductTotal, error)
	ProductDetail(ctx context.Context, name string) (*ledger.ProductDetail, error)
}

// SpendingReport is the aggregated spending of one year, or of all years
// when Year is 0.
type SpendingReport struct {
	Year          int                       `json:"year,omitempty"`
	GeneratedAt   time.Time                 `json:"generated_at"`
	Summary       ledger.Summary            `json:"summary"`
	Categories    []ledger.CategoryTotal    `json:"categories"`
	Subcategories []ledger.SubcategoryTotal `json:"subcategories"`
	Months        []ledger.MonthlyTotal     `json:"months"`
	TopProducts   []ledger.ProductTotal     `json:"top_products"`
	Uncategorized []ledger.ProductTotal     `json:"uncategorized"`
}

// ItemsTotal is the sum of the category totals.
func (r *SpendingReport) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Categories {
		total = total.Add(c.Total)
	}
	return total
}

// Generator builds and renders spending reports.
type Generator struct {
	source Source
	logger logging.Logger
	topN   int
	now    func() time.Time
}

// NewGenerator creates a report generator reading from source.
func NewGenerator(source Source, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{source: source, logger: logger, topN: DefaultTopProducts, now: time.Now}
}

// SetTopProducts changes how many products the report lists.
func (g *Generator) SetTopProducts(n int) {
	if n > 0 {
		g.topN = n
	}
}

// Build queries the ledger for year.
func (g *Generator) Build(ctx context.Context, year int) (*SpendingReport, error) {
	summary, err := g.source.Summary(ctx, year)
	if err != nil {
		return nil, err
	}
	categories, err := g.source.CategoryTotals(ctx, year)
	if err != nil {
		return nil, err
	}
	subcategories, err := g.source.SubcategoryTotals(ctx, year)
	if err != nil {
		return nil, err
	}
	months, err := g.source.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, err
	}
	top, err := g.source.TopProducts(ctx, year, "", g.topN)
	if err != nil {
		return nil, err
	}
	other, err := g.source.TopProducts(ctx, year, models.CategoryOther, g.topN)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Built spending report",
		logging.F("year", year),
		logging.F(logging.FieldCount, summary.Documents))

	return &SpendingReport{
		Year:          year,
		GeneratedAt:   g.now(),
		Summary:       summary,
		Categories:    categories,
		Subcategories: subcategories,
		Months:        months,
		TopProducts:   top,
		Uncategorized: other,
	}, nil
}

// Product returns the purchase history of the product with the given
// display name.
func (g *Generator) Product(ctx context.Context, name string) (*ledger.ProductDetail, error) {
	detail, err := g.source.ProductDetail(ctx, name)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Built product report",
		logging.F(logging.FieldProduct, name),
		logging.F(logging.FieldCount, detail.Purchases))
	return detail, nil
}

// Render writes r to w in format.
func (g *Generator) Render(w io.Writer, r *SpendingReport, format string) error {
	switch format {
	case FormatText, "":
		return renderText(w, r)
	case FormatJSON:
		return g.renderJSON(w, r)
	case FormatXLSX:
		return renderXLSX(w, r)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// RenderProduct writes the product history d to w in format.
func (g *Generator) RenderProduct(w io.Writer, d *ledger.ProductDetail, format string) error {
	switch format {
	case FormatText, "":
		return renderProductText(w, d)
	case FormatJSON:
		return g.renderJSON(w, d)
	case FormatXLSX:
		return renderProductXLSX(w, d)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// FormatEUR formats an amount as euros.
func FormatEUR(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return money.New(cents, money.EUR).Display()
}
