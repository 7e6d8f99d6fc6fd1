// Package keywords handles taxonomy maintenance commands
package keywords

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/parsererror"
	"fjacquet/ah-csv/internal/taxonomy"

	"github.com/spf13/cobra"
)

var listCategory string

// Cmd represents the keywords command
var Cmd = &cobra.Command{
	Use:   "keywords",
	Short: "Manage category keywords and receipt abbreviations",
	Long: `List, add and remove the keywords that map product names to categories,
and teach the receipt parser new abbreviations. Changes are written to the
taxonomy file.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the keywords of every category",
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

var addCmd = &cobra.Command{
	Use:     "add <category> <keyword>",
	Short:   "Add a keyword to a category",
	Example: `  ah-csv keywords add "Snacks & Zoetwaren" stroopwafel`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, fmt.Sprintf("Added keyword %q to %s", strings.ToLower(strings.TrimSpace(args[1])), args[0]),
			func(t *taxonomy.Store) error { return t.AddKeyword(args[0], args[1]) })
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <category> <keyword>",
	Short: "Remove a keyword from a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, fmt.Sprintf("Removed keyword %q from %s", strings.ToLower(strings.TrimSpace(args[1])), args[0]),
			func(t *taxonomy.Store) error { return t.RemoveKeyword(args[0], args[1]) })
	},
}

var learnCmd = &cobra.Command{
	Use:     "learn-abbreviation <short> <full>",
	Short:   "Teach the receipt parser an abbreviation",
	Example: `  ah-csv keywords learn-abbreviation "AH GEM GROENTE" "AH Gemengde groente"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, fmt.Sprintf("%s now expands to %s", strings.ToUpper(strings.TrimSpace(args[0])), strings.TrimSpace(args[1])),
			func(t *taxonomy.Store) error { return t.LearnAbbreviation(args[0], args[1]) })
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list this category")
	Cmd.AddCommand(listCmd, addCmd, removeCmd, learnCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}

	snapshot := appContainer.GetTaxonomy().Snapshot()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tKEYWORDS")
	found := false
	for _, c := range snapshot.Categories {
		if listCategory != "" && c.Name != listCategory {
			continue
		}
		found = true
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, strings.Join(c.Keywords, ", "))
	}
	if !found && listCategory != "" {
		return &parsererror.NotFoundError{Kind: "category", Name: listCategory}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if listCategory == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d abbreviations, taxonomy version %d\n",
			appContainer.GetExpander().Len(), snapshot.Version)
	}
	return nil
}

// mutate applies change to the taxonomy and persists it.
func mutate(cmd *cobra.Command, done string, change func(*taxonomy.Store) error) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}
	if err := change(appContainer.GetTaxonomy()); err != nil {
		return err
	}
	if err := appContainer.SaveTaxonomy(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}
