// Package batch imports every PDF of a directory into the ledger.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/ah-csv/internal/fileutils"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/parsererror"
)

// Status is the outcome of importing one file.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Ledger is the persistence the importer writes to.
type Ledger interface {
	DocumentExists(ctx context.Context, hash string) (bool, error)
	SaveDocument(ctx context.Context, doc *models.Document, runID string, force bool) (int64, error)
}

// Progress receives one tick per parsed file from the worker goroutines, so
// it must be safe for concurrent use. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}

// Result describes the import of one file.
type Result struct {
	FileName   string          `json:"filename"`
	Status     Status          `json:"status"`
	Message    string          `json:"message,omitempty"`
	DocumentID int64           `json:"document_id,omitempty"`
	Items      int             `json:"products_count"`
	Date       string          `json:"date,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Err        error           `json:"-"`
}

// Summary counts the outcomes of one import run.
type Summary struct {
	RunID    string        `json:"run_id"`
	Total    int           `json:"total"`
	Success  int           `json:"success"`
	Skipped  int           `json:"skipped"`
	Errors   int           `json:"errors"`
	Duration time.Duration `json:"duration"`
	Results  []Result      `json:"results"`
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	s.Total++
	switch r.Status {
	case StatusSuccess:
		s.Success++
	case StatusSkipped:
		s.Skipped++
	default:
		s.Errors++
	}
}

// Importer parses documents of one kind and stores them in the ledger.
type Importer struct {
	parser   parser.FullParser
	ledger   Ledger
	logger   logging.Logger
	workers  int
	progress Progress
}

// Option configures an Importer.
type Option func(*Importer)

// WithWorkers sets how many files are parsed concurrently.
func WithWorkers(n int) Option {
	return func(im *Importer) {
		if n > 0 {
			im.workers = n
		}
	}
}

// WithProgress reports each finished file to p.
func WithProgress(p Progress) Option {
	return func(im *Importer) { im.progress = p }
}

// NewImporter creates an importer for the documents p understands.
func NewImporter(p parser.FullParser, ledger Ledger, logger logging.Logger, opts ...Option) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	im := &Importer{parser: p, ledger: ledger, logger: logger, workers: 1}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// parsed is a file after the concurrent stage: either a document ready to
// save or a final result.
type parsed struct {
	index int
	path  string
	doc   *models.Document
	done  *Result
}

// ImportDirectory imports the *.pdf files of dir in name order. Files are
// parsed by the worker pool and saved one at a time in that same order.
func (im *Importer) ImportDirectory(ctx context.Context, dir string, force bool) (Summary, error) {
	if !fileutils.DirectoryExists(dir) {
		return Summary{}, fmt.Errorf("directory %s does not exist", dir)
	}
	files, err := fileutils.ListFilesWithExtension(dir, ".pdf")
	if err != nil {
		return Summary{}, err
	}
	return im.ImportFiles(ctx, files, force), nil
}

// ImportFiles imports files in the given order.
func (im *Importer) ImportFiles(ctx context.Context, files []string, force bool) Summary {
	start := time.Now()
	summary := Summary{RunID: uuid.New().String(), Results: []Result{}}
	runLog := im.logger.WithFields(
		logging.F(logging.FieldRunID, summary.RunID),
		logging.F(logging.FieldDocumentKind, string(im.parser.Kind())))
	runLog.Info("Starting import", logging.F(logging.FieldCount, len(files)))

	staged := im.parseAll(ctx, files, force)
	for _, p := range staged {
		var r Result
		if p.done != nil {
			r = *p.done
		} else {
			r = im.save(ctx, p, summary.RunID, force)
		}
		im.report(runLog, r)
		summary.add(r)
	}

	summary.Duration = time.Since(start)
	runLog.Info("Import finished",
		logging.F("success", summary.Success),
		logging.F("skipped", summary.Skipped),
		logging.F("errors", summary.Errors),
		logging.F(logging.FieldDuration, summary.Duration.Milliseconds()))
	return summary
}

// ImportFile imports a single file.
func (im *Importer) ImportFile(ctx context.Context, path string, force bool) Result {
	s := im.ImportFiles(ctx, []string{path}, force)
	return s.Results[0]
}

func (im *Importer) parseAll(ctx context.Context, files []string, force bool) []parsed {
	out := make([]parsed, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < im.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = im.stage(ctx, i, files[i], force)
				im.tick()
			}
		}()
	}

	for i := range files {
		if ctx.Err() != nil {
			out[i] = failed(i, files[i], ctx.Err())
			im.tick()
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

func (im *Importer) tick() {
	if im.progress != nil {
		_ = im.progress.Add(1)
	}
}

// stage hashes, checks for duplicates and parses one file.
func (im *Importer) stage(ctx context.Context, index int, path string, force bool) parsed {
	if err := ctx.Err(); err != nil {
		return failed(index, path, err)
	}

	hash, err := fileutils.HashFile(path)
	if err != nil {
		return failed(index, path, err)
	}
	if !force {
		exists, err := im.ledger.DocumentExists(ctx, hash)
		if err != nil {
			return failed(index, path, err)
		}
		if exists {
			return parsed{index: index, path: path, done: skipped(path)}
		}
	}

	doc, err := im.parser.ParseFile(path)
	if err != nil {
		return failed(index, path, err)
	}
	return parsed{index: index, path: path, doc: doc}
}

func (im *Importer) save(ctx context.Context, p parsed, runID string, force bool) Result {
	id, err := im.ledger.SaveDocument(ctx, p.doc, runID, force)
	if parsererror.IsConflict(err) {
		return *skipped(p.path)
	}
	if err != nil {
		return *failed(p.index, p.path, err).done
	}

	meta := p.doc.Metadata
	return Result{
		FileName:   filepath.Base(p.path),
		Status:     StatusSuccess,
		Message:    fmt.Sprintf("imported %d products", len(p.doc.Items)),
		DocumentID: id,
		Items:      len(p.doc.Items),
		Date:       meta.Date.Format(models.DateLayout),
		Total:      meta.Total,
	}
}

func (im *Importer) report(logger logging.Logger, r Result) {
	fileLog := logger.WithFields(
		logging.F(logging.FieldFile, r.FileName),
		logging.F(logging.FieldStatus, string(r.Status)))
	switch r.Status {
	case StatusSuccess:
		fileLog.Info("Imported document", logging.F(logging.FieldCount, r.Items))
	case StatusSkipped:
		fileLog.Info("Skipped document", logging.F(logging.FieldReason, r.Message))
	default:
		fileLog.WithError(r.Err).Warn("Failed to import document")
	}
}

func skipped(path string) *Result {
	return &Result{FileName: filepath.Base(path), Status: StatusSkipped, Message: "document already imported"}
}

func failed(index int, path string, err error) parsed {
	msg := err.Error()
	var extractErr *parsererror.DataExtractionError
	if errors.As(err, &extractErr) && extractErr.FieldName == "date" {
		msg = "could not extract a date from the document"
	}
	return parsed{index: index, path: path, done: &Result{
		FileName: filepath.Base(path),
		Status:   StatusError,
		Message:  msg,
		Err:      err,
	}}
}
