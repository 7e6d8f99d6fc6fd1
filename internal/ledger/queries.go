package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/ah-csv/internal/dateutils"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
)

// effectiveCategory prefers a user override over the automatic category.
// An overridden item never falls back to the automatic subcategory, which
// belongs to the automatic category.
const (
	effectiveCategory    = "COALESCE(it.user_category, it.auto_category)"
	effectiveSubcategory = "CASE WHEN it.user_category IS NULL THEN it.auto_subcategory ELSE it.user_subcategory END"
)

// ItemFilter narrows Items. Zero fields do not filter.
type ItemFilter struct {
	Year     int
	Category string
	Kind     models.DocumentKind
	Limit    int
}

// StoredItem is an item read back from the ledger with its document.
type StoredItem struct {
	ID             int64
	DocumentID     int64
	DocumentKind   models.DocumentKind
	DocumentNumber string
	Date           time.Time
	models.ClassifiedItem
}

// CategoryTotal is the spending of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthlyTotal is the spending of one calendar month, "YYYY-MM".
type MonthlyTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// ProductTotal aggregates all purchases of one product.
type ProductTotal struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Purchases int             `json:"purchases"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// Summary describes the stored documents of a period.
type Summary struct {
	Documents int             `json:"documents"`
	Spent     decimal.Decimal `json:"spent"`
	Savings   decimal.Decimal `json:"savings"`
	FirstDate string          `json:"first_date,omitempty"`
	LastDate  string          `json:"last_date,omitempty"`
}

// yearClause returns a WHERE fragment restricting dates to year, or "".
// Dates are stored as YYYY-MM-DD, so a string range covers the year.
func yearClause(year int, column string, args *[]any) string {
	if year == 0 {
		return ""
	}
	*args = append(*args,
		dateutils.StartOfYear(year).Format(models.DateLayout),
		dateutils.StartOfYear(year+1).Format(models.DateLayout))
	return column + " >= ? AND " + column + " < ?"
}

func where(conds ...string) string {
	var parts []string
	for _, c := range conds {
		if c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

// Items returns stored items in import order.
func (l *Ledger) Items(ctx context.Context, filter ItemFilter) ([]StoredItem, error) {
	var args []any
	conds := []string{yearClause(filter.Year, "d.document_date", &args)}
	if filter.Category != "" {
		conds = append(conds, effectiveCategory+" = ?")
		args = append(args, filter.Category)
	}
	if filter.Kind != "" {
		conds = append(conds, "d.kind = ?")
		args = append(args, string(filter.Kind))
	}

	query := `
		SELECT it.id, d.id, d.kind, COALESCE(d.number, ''), d.document_date,
		       it.original_name, it.display_name, it.quantity, it.weight_kg, it.price_cents,
		       COALESCE(it.tax_rate, ''), ` + effectiveCategory + `, ` + effectiveSubcategory + `
		FROM items it
		JOIN documents d ON it.document_id = d.id` + where(conds...) + `
		ORDER BY d.document_date, d.id, it.position`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []StoredItem{}
	for rows.Next() {
		var (
			item       StoredItem
			kind, date string
			weight     sql.NullString
			cents      int64
			taxRate    string
			sub        sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.DocumentID, &kind, &item.DocumentNumber, &date,
			&item.OriginalRawName, &item.DisplayName, &item.Quantity, &weight, &cents,
			&taxRate, &item.Category, &sub); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		item.DocumentKind = models.DocumentKind(kind)
		item.Date, err = time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("item %d: bad document date %q: %w", item.ID, date, err)
		}
		item.Price = fromCents(cents)
		item.TaxRate = models.TaxRate(taxRate)
		if weight.Valid {
			w, err := decimal.NewFromString(weight.String)
			if err == nil {
				item.WeightKg = &w
			}
		}
		if sub.Valid {
			s := sub.String
			item.Subcategory = &s
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CategoryTotals sums item prices per category, largest first. Year 0
// covers all documents.
func (l *Ledger) CategoryTotals(ctx context.Context, year int) ([]CategoryTotal, error) {
	var args []any
	query := `
		SELECT ` + effectiveCategory + ` AS category, SUM(it.price_cents) AS total, COUNT(*)
		FROM items it
		JOIN documents d ON it.document_id = d.id` + where(yearClause(year, "d.document_date", &args)) + `
		GROUP BY category
		ORDER BY total DESC, category`

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := []CategoryTotal{}
	for rows.Next() {
		var (
			t     CategoryTotal
			cents int64
		)
		if err := rows.Scan(&t.Category, &cents, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}
		t.Total = fromCents(cents)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// MonthlyTotals sums item prices per month in calendar order.
func (l *Ledger) MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error) {
	var args []any
	query := `
		SELECT strftime('%Y-%m', d.document_date) AS month, SUM(it.price_cents)
		FROM items it
		JOIN documents d ON it.document_id = d.id` + where(yearClause(year, "d.document_date", &args)) + `
		GROUP BY month
		ORDER BY month`

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := []MonthlyTotal{}
	for rows.Next() {
		var (
			t     MonthlyTotal
			cents int64
		)
		if err := rows.Scan(&t.Month, &cents); err != nil {
			return nil, fmt.Errorf("scanning monthly total: %w", err)
		}
		t.Total = fromCents(cents)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TopProducts returns the products with the highest total spending.
// Category restricts the result when non-empty.
func (l *Ledger) TopProducts(ctx context.Context, year int, category string, limit int) ([]ProductTotal, error) {
	var args []any
	conds := []string{yearClause(year, "d.document_date", &args)}
	if category != "" {
		conds = append(conds, effectiveCategory+" = ?")
		args = append(args, category)
	}
	query := `
		SELECT it.display_name, MAX(` + effectiveCategory + `), COUNT(*), SUM(it.quantity), SUM(it.price_cents) AS total
		FROM items it
		JOIN documents d ON it.document_id = d.id` + where(conds...) + `
		GROUP BY it.display_name
		ORDER BY total DESC, it.display_name`
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying top products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := []ProductTotal{}
	for rows.Next() {
		var (
			p     ProductTotal
			cents int64
		)
		if err := rows.Scan(&p.Name, &p.Category, &p.Purchases, &p.Quantity, &cents); err != nil {
			return nil, fmt.Errorf("scanning product total: %w", err)
		}
		p.Total = fromCents(cents)
		products = append(products, p)
	}
	return products, rows.Err()
}

// Summary counts the documents of a year (0 for all) with their printed
// totals and savings.
func (l *Ledger) Summary(ctx context.Context, year int) (Summary, error) {
	var args []any
	query := `
		SELECT COUNT(*), COALESCE(SUM(d.total_cents), 0), COALESCE(SUM(d.savings_cents), 0),
		       COALESCE(MIN(d.document_date), ''), COALESCE(MAX(d.document_date), '')
		FROM documents d` + where(yearClause(year, "d.document_date", &args))

	var (
		s              Summary
		spent, savings int64
	)
	if err := l.db.QueryRowContext(ctx, query, args...).Scan(&s.Documents, &spent, &savings, &s.FirstDate, &s.LastDate); err != nil {
		return Summary{}, fmt.Errorf("querying summary: %w", err)
	}
	s.Spent = fromCents(spent)
	s.Savings = fromCents(savings)
	return s, nil
}

// ProductNames returns the distinct display names of all stored items,
// sorted.
func (l *Ledger) ProductNames(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, "SELECT DISTINCT display_name FROM items ORDER BY display_name")
	if err != nil {
		return nil, fmt.Errorf("querying product names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning product name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SubcategoryTotal is the spending of one subcategory within its category.
// Subcategory is empty for items that have none.
type SubcategoryTotal struct {
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

// SubcategoryTotals sums item prices per category and subcategory, ordered
// by category and then largest subcategory first.
func (l *Ledger) SubcategoryTotals(ctx context.Context, year int) ([]SubcategoryTotal, error) {
	var args []any
	query := `
		SELECT ` + effectiveCategory + ` AS category, COALESCE(` + effectiveSubcategory + `, '') AS subcategory,
		       SUM(it.price_cents) AS total, COUNT(*)
		FROM items it
		JOIN documents d ON it.document_id = d.id` + where(yearClause(year, "d.document_date", &args)) + `
		GROUP BY category, subcategory
		ORDER BY category, total DESC, subcategory`

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying subcategory totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := []SubcategoryTotal{}
	for rows.Next() {
		var (
			t     SubcategoryTotal
			cents int64
		)
		if err := rows.Scan(&t.Category, &t.Subcategory, &cents, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning subcategory total: %w", err)
		}
		t.Total = fromCents(cents)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// Purchase is one stored line of a product.
type Purchase struct {
	Date           string          `json:"date"`
	DocumentNumber string          `json:"document"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// ProductDetail is the purchase history of one product.
type ProductDetail struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory,omitempty"`
	Purchases    int             `json:"purchases"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	MinUnitPrice decimal.Decimal `json:"min_unit_price"`
	MaxUnitPrice decimal.Decimal `json:"max_unit_price"`
	AvgUnitPrice decimal.Decimal `json:"avg_unit_price"`
	History      []Purchase      `json:"history"`
	Months       []MonthlyTotal  `json:"months"`
}

// ProductDetail returns every purchase of the product with the given
// display name in date order, with unit price range and monthly spending.
// The category is the one of the latest purchase.
func (l *Ledger) ProductDetail(ctx context.Context, name string) (*ProductDetail, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT d.document_date, COALESCE(d.number, ''), it.quantity, it.price_cents,
		       `+effectiveCategory+`, COALESCE(`+effectiveSubcategory+`, '')
		FROM items it
		JOIN documents d ON it.document_id = d.id
		WHERE it.display_name = ?
		ORDER BY d.document_date, d.id, it.position`, name)
	if err != nil {
		return nil, fmt.Errorf("querying product %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	detail := &ProductDetail{Name: name, Total: decimal.Zero, History: []Purchase{}, Months: []MonthlyTotal{}}
	unitSum := decimal.Zero
	for rows.Next() {
		var (
			p     Purchase
			cents int64
		)
		if err := rows.Scan(&p.Date, &p.DocumentNumber, &p.Quantity, &cents, &detail.Category, &detail.Subcategory); err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}
		p.Price = fromCents(cents)
		p.UnitPrice = p.Price
		if p.Quantity > 1 {
			p.UnitPrice = p.Price.Div(decimal.NewFromInt(int64(p.Quantity))).Round(2)
		}

		if len(detail.History) == 0 || p.UnitPrice.LessThan(detail.MinUnitPrice) {
			detail.MinUnitPrice = p.UnitPrice
		}
		if len(detail.History) == 0 || p.UnitPrice.GreaterThan(detail.MaxUnitPrice) {
			detail.MaxUnitPrice = p.UnitPrice
		}
		unitSum = unitSum.Add(p.UnitPrice)
		detail.Total = detail.Total.Add(p.Price)
		detail.Quantity += p.Quantity

		month := p.Date[:7]
		if n := len(detail.Months); n > 0 && detail.Months[n-1].Month == month {
			detail.Months[n-1].Total = detail.Months[n-1].Total.Add(p.Price)
		} else {
			detail.Months = append(detail.Months, MonthlyTotal{Month: month, Total: p.Price})
		}
		detail.History = append(detail.History, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(detail.History) == 0 {
		return nil, &parsererror.NotFoundError{Kind: "product", Name: name}
	}

	detail.Purchases = len(detail.History)
	detail.AvgUnitPrice = unitSum.Div(decimal.NewFromInt(int64(detail.Purchases))).Round(2)
	return detail, nil
}
