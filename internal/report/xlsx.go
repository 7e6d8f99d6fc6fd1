package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fjacquet/ah-csv/internal/ledger"
)

// Sheet names of the workbooks.
const (
	SheetCategories    = "Categories"
	SheetSubcategories = "Subcategories"
	SheetMonths        = "Months"
	SheetProducts      = "Products"
	SheetPurchases     = "Purchases"
)

type sheet struct {
	name string
	rows [][]any
}

func renderXLSX(w io.Writer, r *SpendingReport) error {
	categories := [][]any{{"Category", "Items", "Total"}}
	for _, c := range r.Categories {
		categories = append(categories, []any{c.Category, c.Count, c.Total.InexactFloat64()})
	}
	subcategories := [][]any{{"Category", "Subcategory", "Items", "Total"}}
	for _, sc := range r.Subcategories {
		subcategories = append(subcategories, []any{sc.Category, sc.Subcategory, sc.Count, sc.Total.InexactFloat64()})
	}
	products := [][]any{{"Product", "Category", "Purchases", "Quantity", "Total"}}
	for _, p := range r.TopProducts {
		products = append(products, []any{p.Name, p.Category, p.Purchases, p.Quantity, p.Total.InexactFloat64()})
	}

	return writeWorkbook(w, []sheet{
		{SheetCategories, categories},
		{SheetSubcategories, subcategories},
		{SheetMonths, monthRows(r.Months)},
		{SheetProducts, products},
	})
}

func renderProductXLSX(w io.Writer, d *ledger.ProductDetail) error {
	purchases := [][]any{{"Date", "Document", "Quantity", "Unit price", "Price"}}
	for _, h := range d.History {
		purchases = append(purchases, []any{h.Date, h.DocumentNumber, h.Quantity,
			h.UnitPrice.InexactFloat64(), h.Price.InexactFloat64()})
	}
	return writeWorkbook(w, []sheet{
		{SheetPurchases, purchases},
		{SheetMonths, monthRows(d.Months)},
	})
}

func monthRows(months []ledger.MonthlyTotal) [][]any {
	rows := [][]any{{"Month", "Total"}}
	for _, m := range months {
		rows = append(rows, []any{m.Month, m.Total.InexactFloat64()})
	}
	return rows
}

// writeWorkbook writes sheets in order; the first replaces the default sheet.
func writeWorkbook(w io.Writer, sheets []sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("creating workbook: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
