// Package items lists the products stored in the ledger
package items

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/common"
	"fjacquet/ah-csv/internal/ledger"
	"fjacquet/ah-csv/internal/models"

	"github.com/spf13/cobra"
)

var (
	year     int
	category string
	kind     string
	limit    int
	asCSV    bool
)

// Cmd represents the items command
var Cmd = &cobra.Command{
	Use:   "items",
	Short: "List stored products",
	Long: `List the products stored in the ledger in date order, with their
effective category. Category overrides set with "categorize --set" win
over the automatic category.

Example:
  ah-csv items --year 2025 --category Dranken --csv > dranken.csv`,
	RunE: itemsFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", 0, "Only list items of this year")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only list items of this category")
	Cmd.Flags().StringVar(&kind, "kind", "", "Only list items of invoices or receipts")
	Cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items (default all)")
	Cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV instead of a table")
}

func itemsFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}

	filter := ledger.ItemFilter{Year: year, Category: category, Limit: limit}
	if kind != "" {
		k, err := models.ParseDocumentKind(strings.ToLower(kind))
		if err != nil {
			return err
		}
		filter.Kind = k
	}

	l, err := appContainer.GetLedger()
	if err != nil {
		return err
	}
	stored, err := l.Items(root.Context(cmd), filter)
	if err != nil {
		return err
	}

	rows := make([]models.ItemRow, 0, len(stored))
	for _, it := range stored {
		rows = append(rows, it.ToRow(models.DocumentMetadata{Number: it.DocumentNumber, Date: it.Date}))
	}

	if asCSV {
		return common.WriteRows(cmd.OutOrStdout(), rows)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDOCUMENT\tPRODUCT\tQTY\tPRICE\tCATEGORY")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", r.Date, r.Document, r.Name, r.Quantity, r.Price, r.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%d items\n", len(rows))
	return err
}
