package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"fjacquet/ah-csv/internal/ledger"
)

func renderText(w io.Writer, r *SpendingReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(tw, format, args...)
	}

	period := "all years"
	if r.Year != 0 {
		period = strconv.Itoa(r.Year)
	}
	p("Spending report\t%s\t\n", period)
	p("Documents\t%d\t\n", r.Summary.Documents)
	if r.Summary.FirstDate != "" {
		p("Period\t%s .. %s\t\n", r.Summary.FirstDate, r.Summary.LastDate)
	}
	p("Printed total\t%s\t\n", FormatEUR(r.Summary.Spent))
	p("Items total\t%s\t\n", FormatEUR(r.ItemsTotal()))
	p("Savings\t%s\t\n", FormatEUR(r.Summary.Savings))

	p("\nCategory\tItems\tTotal\tShare\t\n")
	itemsTotal := r.ItemsTotal()
	for _, c := range r.Categories {
		p("%s\t%d\t%s\t%s\t\n", c.Category, c.Count, FormatEUR(c.Total), share(c.Total, itemsTotal))
	}

	if len(r.Subcategories) > 0 {
		p("\nSubcategory\tItems\tTotal\t\n")
		for _, sc := range r.Subcategories {
			p("%s\t%d\t%s\t\n", subcategoryLabel(sc), sc.Count, FormatEUR(sc.Total))
		}
	}

	p("\nMonth\tTotal\t\n")
	for _, m := range r.Months {
		p("%s\t%s\t\n", m.Month, FormatEUR(m.Total))
	}

	p("\nTop products\tPurchases\tTotal\t\n")
	for _, prod := range r.TopProducts {
		p("%s\t%d\t%s\t\n", prod.Name, prod.Purchases, FormatEUR(prod.Total))
	}

	if len(r.Uncategorized) > 0 {
		p("\nUncategorized\tPurchases\tTotal\t\n")
		for _, prod := range r.Uncategorized {
			p("%s\t%d\t%s\t\n", prod.Name, prod.Purchases, FormatEUR(prod.Total))
		}
	}

	return tw.Flush()
}

func renderProductText(w io.Writer, d *ledger.ProductDetail) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(tw, format, args...)
	}

	p("Product\t%s\t\n", d.Name)
	category := d.Category
	if d.Subcategory != "" {
		category += " / " + d.Subcategory
	}
	p("Category\t%s\t\n", category)
	p("Purchases\t%d\t\n", d.Purchases)
	p("Quantity\t%d\t\n", d.Quantity)
	p("Total\t%s\t\n", FormatEUR(d.Total))
	p("Unit price\t%s .. %s\t\n", FormatEUR(d.MinUnitPrice), FormatEUR(d.MaxUnitPrice))
	p("Average unit price\t%s\t\n", FormatEUR(d.AvgUnitPrice))

	p("\nDate\tDocument\tQuantity\tUnit price\tPrice\t\n")
	for _, h := range d.History {
		p("%s\t%s\t%d\t%s\t%s\t\n", h.Date, h.DocumentNumber, h.Quantity, FormatEUR(h.UnitPrice), FormatEUR(h.Price))
	}

	p("\nMonth\tTotal\t\n")
	for _, m := range d.Months {
		p("%s\t%s\t\n", m.Month, FormatEUR(m.Total))
	}
	return tw.Flush()
}

func subcategoryLabel(sc ledger.SubcategoryTotal) string {
	if sc.Subcategory == "" {
		return sc.Category + " / -"
	}
	return sc.Category + " / " + sc.Subcategory
}

func share(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "-"
	}
	return part.Div(total).Shift(2).StringFixed(1) + "%"
}
