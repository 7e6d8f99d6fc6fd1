// Package batch handles batch import of documents into the ledger
package batch

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/ah-csv/cmd/root"
	"fjacquet/ah-csv/internal/batch"
	"fjacquet/ah-csv/internal/fileutils"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	kind       string
	force      bool
	noProgress bool
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Import every PDF of a directory into the ledger",
	Long: `Import all invoice or receipt PDFs of a directory into the purchase ledger.

Files are parsed in parallel and stored in name order. A file whose content
is already in the ledger is skipped unless --force is given, in which case
the stored copy is replaced.

Example:
  ah-csv batch -i ~/Downloads/bonnen --kind receipt`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&kind, "kind", "", "Document kind: invoice or receipt")
	Cmd.Flags().BoolVar(&force, "force", false, "Re-import documents that are already in the ledger")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Do not draw a progress bar")
	_ = Cmd.MarkFlagRequired("kind")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	appContainer, err := root.RequireContainer()
	if err != nil {
		return err
	}
	logger := appContainer.GetLogger()

	inputDir := root.SharedFlags.Input
	if inputDir == "" {
		return fmt.Errorf("input directory must be specified with --input")
	}
	if !fileutils.DirectoryExists(inputDir) {
		return fmt.Errorf("directory %s does not exist", inputDir)
	}

	docKind, err := models.ParseDocumentKind(strings.ToLower(kind))
	if err != nil {
		return err
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No PDF files found in input directory", logging.F(logging.FieldFile, inputDir))
		return nil
	}

	var opts []batch.Option
	if !noProgress {
		opts = append(opts, batch.WithProgress(newProgressBar(cmd.ErrOrStderr(), len(files), docKind)))
	}
	importer, err := appContainer.NewImporter(docKind, opts...)
	if err != nil {
		return err
	}

	summary := importer.ImportFiles(root.Context(cmd), files, force)
	if err := printSummary(cmd.OutOrStdout(), summary); err != nil {
		return err
	}
	if summary.Errors > 0 {
		return fmt.Errorf("%d of %d files failed to import", summary.Errors, summary.Total)
	}
	return nil
}

func newProgressBar(w io.Writer, total int, kind models.DocumentKind) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("Importing %ss", kind)),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}

func printSummary(w io.Writer, summary batch.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSTATUS\tDATE\tITEMS\tTOTAL\tMESSAGE")
	for _, r := range summary.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.FileName, r.Status, r.Date, r.Items, r.Total.StringFixed(2), r.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d files: %d imported, %d skipped, %d failed (run %s)\n",
		summary.Total, summary.Success, summary.Skipped, summary.Errors, summary.RunID)
	return err
}
