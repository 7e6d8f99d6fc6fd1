// Package receipt handles in-store receipt conversion commands
package receipt

import (
	"fjacquet/ah-csv/cmd/common"
	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:     "receipt",
	Aliases: []string{"kassabon"},
	Short:   "Convert an in-store receipt PDF to CSV",
	Long: `Convert an Albert Heijn in-store receipt (kassabon) PDF to CSV.

Truncated ticket names are expanded to full product names before they are
classified. Weighed products keep their weight in the CSV.

Example:
  ah-csv receipt -i bon.pdf -o bon.csv`,
	RunE: receiptFunc,
}

func receiptFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}

	p, err := appContainer.GetParser(models.KindReceipt)
	if err != nil {
		return err
	}

	return common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, appContainer.GetLogger())
}
