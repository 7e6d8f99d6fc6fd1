// Package reclassify re-runs classification over the documents in the ledger
package reclassify

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/batch"
	"fjacquet/ah-csv/internal/models"

	"github.com/spf13/cobra"
)

var kind string

// Cmd represents the reclassify command
var Cmd = &cobra.Command{
	Use:   "reclassify",
	Short: "Re-categorize stored documents with the current taxonomy",
	Long: `Re-parse the text stored with every document in the ledger and replace its
items, so that keywords and abbreviations learned since the import take
effect. Categories set with "categorize --set" are kept. A document whose
text no longer parses keeps its stored items.

Examples:
  ah-csv reclassify
  ah-csv reclassify --kind receipt`,
	RunE: reclassifyFunc,
}

func init() {
	Cmd.Flags().StringVar(&kind, "kind", "", "Only reclassify this document kind: invoice or receipt")
}

func reclassifyFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}

	var docKind models.DocumentKind
	if kind != "" {
		if docKind, err = models.ParseDocumentKind(strings.ToLower(kind)); err != nil {
			return err
		}
	}

	r, err := appContainer.NewReclassifier()
	if err != nil {
		return err
	}
	result, err := r.Run(root.Context(cmd), docKind)
	if err != nil {
		return err
	}

	if err := printResult(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed to reclassify", result.Failed, result.Documents)
	}
	return nil
}

func printResult(w io.Writer, result batch.Reclassification) error {
	for _, f := range result.Failures {
		fmt.Fprintf(w, "%s: %s\n", f.FileName, f.Message)
	}
	_, err := fmt.Fprintf(w, "%d documents: %d items, %d recategorized, %d failed\n",
		result.Documents, result.Items, result.Recategorized, result.Failed)
	return err
}
