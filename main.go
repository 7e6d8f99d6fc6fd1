package main

import (
	"fmt"
	"os"

	"fjacquet/ah-csv/cmd/batch"
	"fjacquet/ah-csv/cmd/categorize"
	"fjacquet/ah-csv/cmd/invoice"
	"fjacquet/ah-csv/cmd/items"
	"fjacquet/ah-csv/cmd/keywords"
	"fjacquet/ah-csv/cmd/receipt"
	"fjacquet/ah-csv/cmd/reclassify"
	"fjacquet/ah-csv/cmd/report"
	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/cmd/search"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(invoice.Cmd)
	root.Cmd.AddCommand(receipt.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(keywords.Cmd)
	root.Cmd.AddCommand(items.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(reclassify.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
