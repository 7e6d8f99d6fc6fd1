// Package report handles spending report commands
package report

import (
	"fmt"
	"io"
	"os"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/report"
	"fjacquet/ah-csv/internal/validation"

	"github.com/spf13/cobra"
)

var (
	year    int
	format  string
	top     int
	product string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show grocery spending per category, month and product",
	Long: `Summarize the imported documents: spending per category and per month,
the most bought products and the products that are still uncategorized.
With --product the purchase history of one product is shown instead: every
purchase by date, the unit price range and the spending per month.

The xlsx format needs an output file.

Examples:
  ah-csv report --year 2025
  ah-csv report --format json
  ah-csv report --year 2025 --format xlsx -o uitgaven-2025.xlsx
  ah-csv report --product "Leffe Blond bier"`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", 0, "Only include documents of this year (default all years)")
	Cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format: text, json or xlsx")
	Cmd.Flags().IntVar(&top, "top", report.DefaultTopProducts, "Number of products to list")
	Cmd.Flags().StringVar(&product, "product", "", "Show the purchase history of the product with this display name")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	output := root.SharedFlags.Output
	if format == report.FormatXLSX && output == "" {
		return fmt.Errorf("the xlsx format needs an output file, use --output")
	}

	generator, err := appContainer.NewReportGenerator()
	if err != nil {
		return err
	}
	generator.SetTopProducts(top)

	var render func(io.Writer) error
	if product != "" {
		detail, err := generator.Product(root.Context(cmd), product)
		if err != nil {
			return fmt.Errorf("failed to build product report: %w", err)
		}
		render = func(w io.Writer) error { return generator.RenderProduct(w, detail, format) }
	} else {
		r, err := generator.Build(root.Context(cmd), year)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		render = func(w io.Writer) error { return generator.Render(w, r, format) }
	}

	if output == "" {
		return render(cmd.OutOrStdout())
	}
	return writeFile(output, render, appContainer.GetLogger())
}

func writeFile(path string, write func(io.Writer) error, logger logging.Logger) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionConfigFile) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := write(file); err != nil {
		return err
	}
	logger.Info("Report written", logging.F(logging.FieldOutputFile, path))
	return nil
}
