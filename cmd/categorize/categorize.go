// Package categorize handles product categorization commands
package categorize

import (
	"fmt"
	"io"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/container"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"

	"github.com/spf13/cobra"
)

var (
	productName string
	expand      bool
	explain     bool
	suggest     int
	setCategory string
	setSub      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a product name",
	Long: `Categorize a product name with the priority rules and category keywords.

With --set the category of every stored item with that display name is
overridden in the ledger. Without --subcategory the subcategory is derived
from the keywords of the new category, or left empty. Overrides survive
re-classification.

Examples:
  ah-csv categorize --name "AH Halfvolle melk"
  ah-csv categorize --name "AH HV MELK" --expand --explain
  ah-csv categorize --name "Hummus naturel" --set "Sauzen & Specerijen"`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&productName, "name", "n", "", "Product name to categorize")
	Cmd.Flags().BoolVar(&expand, "expand", false, "Expand receipt abbreviations before classifying")
	Cmd.Flags().BoolVar(&explain, "explain", false, "Show the outcome of every strategy")
	Cmd.Flags().IntVar(&suggest, "suggest", 3, "Number of keyword suggestions for uncategorized names")
	Cmd.Flags().StringVar(&setCategory, "set", "", "Override the category of stored items with this name")
	Cmd.Flags().StringVar(&setSub, "subcategory", "", "Subcategory to store together with --set")
	_ = Cmd.MarkFlagRequired("name")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}
	if productName == "" {
		return fmt.Errorf("product name is required for categorization")
	}

	w := cmd.OutOrStdout()
	name := productName
	if expand {
		name = appContainer.GetExpander().Expand(name)
		fmt.Fprintf(w, "Expanded: %s\n", name)
	}

	if setCategory != "" {
		return override(cmd, appContainer, name)
	}

	cat := appContainer.GetCategorizer()
	result := cat.Classify(name)
	fmt.Fprintf(w, "Category: %s\n", result.Category)
	if result.Subcategory != nil {
		fmt.Fprintf(w, "Subcategory: %s\n", *result.Subcategory)
	}

	if explain {
		explanation := cat.Explain(name)
		fmt.Fprintf(w, "Input: %s\n", explanation.Input)
		fmt.Fprintf(w, "Strategies: %s\n", explanation.Summary())
		fmt.Fprintf(w, "Decided by: %s\n", explanation.Winner().Strategy)
	}

	if result.Category == models.CategoryOther && suggest > 0 {
		printSuggestions(w, appContainer, name)
	}
	return nil
}

func override(cmd *cobra.Command, appContainer *container.Container, name string) error {
	snapshot := appContainer.GetTaxonomy().Snapshot()
	if _, ok := snapshot.Category(setCategory); !ok {
		return &parsererror.NotFoundError{Kind: "category", Name: setCategory}
	}

	sub := appContainer.GetCategorizer().DetermineSubcategory(name, setCategory)
	if setSub != "" {
		sub = &setSub
	}

	l, err := appContainer.GetLedger()
	if err != nil {
		return err
	}
	n, err := l.SetCategory(root.Context(cmd), name, setCategory, sub)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Updated %d items named %q to %s\n", n, name, setCategory)
	if sub != nil {
		fmt.Fprintf(w, "Subcategory: %s\n", *sub)
	}
	return nil
}

func printSuggestions(w io.Writer, appContainer *container.Container, name string) {
	suggestions := appContainer.GetCategorizer().Suggest(name, suggest)
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, "Suggestions:")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s (token %q is close to keyword %q)\n", s.Category, s.Token, s.Keyword)
	}
}
