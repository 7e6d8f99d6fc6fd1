// Package invoice handles online order invoice conversion commands
package invoice

import (
	"fjacquet/ah-csv/cmd/common"
	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the invoice command
var Cmd = &cobra.Command{
	Use:   "invoice",
	Short: "Convert an online order invoice PDF to CSV",
	Long: `Convert an Albert Heijn online order invoice (factuur) PDF to CSV.

Every product line is classified into a grocery category. Deposit,
delivery and duplicate lines are left out.

Example:
  ah-csv invoice -i factuur.pdf -o factuur.csv`,
	RunE: invoiceFunc,
}

func invoiceFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}

	p, err := appContainer.GetParser(models.KindInvoice)
	if err != nil {
		return err
	}

	return common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, appContainer.GetLogger())
}
