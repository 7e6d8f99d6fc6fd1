// Package search finds stored products by name
package search

import (
	"fmt"
	"strings"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search <term>...",
	Short: "Find stored products containing all of the terms",
	Long: `Search the names of all stored products for one or more terms,
case insensitively. A product is listed only when its name contains every
term.

Example:
  ah-csv search melk yoghurt`,
	Args: cobra.MinimumNArgs(1),
	RunE: searchFunc,
}

func searchFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}
	l, err := appContainer.GetLedger()
	if err != nil {
		return err
	}
	names, err := l.ProductNames(root.Context(cmd))
	if err != nil {
		return err
	}

	matches := report.SearchProducts(names, args)
	w := cmd.OutOrStdout()
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w, "No products match %s\n", strings.Join(args, ", "))
		return err
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t[%s]\n", m.Name, strings.Join(m.Terms, ", "))
	}
	return nil
}
