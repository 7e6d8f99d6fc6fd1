package batch

import (
	"context"
	"fmt"
	"time"

	"fjacquet/ah-csv/internal/ledger"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
)

// Archive is the stored-document side of the ledger.
type Archive interface {
	Documents(ctx context.Context, kind models.DocumentKind) ([]ledger.StoredDocument, error)
	ReplaceItems(ctx context.Context, documentID int64, items []models.ClassifiedItem) (ledger.Replacement, error)
}

// Reclassification counts the outcome of one Reclassifier run.
type Reclassification struct {
	Documents     int           `json:"documents"`
	Items         int           `json:"items"`
	Recategorized int           `json:"recategorized"`
	Failed        int           `json:"failed"`
	Duration      time.Duration `json:"duration"`
	Failures      []Result      `json:"failures"`
}

// Reclassifier re-parses the stored text of documents with the current
// parsers and rewrites their items. User overrides survive.
type Reclassifier struct {
	archive Archive
	parsers map[models.DocumentKind]parser.DocumentParser
	logger  logging.Logger
}

// NewReclassifier creates a reclassifier that parses each document with the
// parser registered for its kind.
func NewReclassifier(archive Archive, parsers map[models.DocumentKind]parser.DocumentParser, logger logging.Logger) *Reclassifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Reclassifier{archive: archive, parsers: parsers, logger: logger}
}

// Run reclassifies the stored documents of kind, or all of them when kind
// is empty. A document that fails to parse keeps its stored items.
func (r *Reclassifier) Run(ctx context.Context, kind models.DocumentKind) (Reclassification, error) {
	start := time.Now()
	docs, err := r.archive.Documents(ctx, kind)
	if err != nil {
		return Reclassification{}, err
	}

	out := Reclassification{Failures: []Result{}}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out.Documents++

		docLog := r.logger.WithFields(
			logging.F(logging.FieldDocumentID, doc.ID),
			logging.F(logging.FieldFile, doc.FileName),
			logging.F(logging.FieldDocumentKind, string(doc.Kind)))

		rep, err := r.reclassify(ctx, doc)
		if err != nil {
			docLog.WithError(err).Warn("Failed to reclassify document")
			out.Failed++
			out.Failures = append(out.Failures, Result{
				FileName:   doc.FileName,
				Status:     StatusError,
				Message:    err.Error(),
				DocumentID: doc.ID,
				Err:        err,
			})
			continue
		}
		out.Items += rep.After
		out.Recategorized += rep.Recategorized
		docLog.Debug("Reclassified document",
			logging.F(logging.FieldCount, rep.After),
			logging.F("recategorized", rep.Recategorized))
	}

	out.Duration = time.Since(start)
	r.logger.Info("Reclassification finished",
		logging.F("documents", out.Documents),
		logging.F("recategorized", out.Recategorized),
		logging.F("errors", out.Failed),
		logging.F(logging.FieldDuration, out.Duration.Milliseconds()))
	return out, nil
}

func (r *Reclassifier) reclassify(ctx context.Context, doc ledger.StoredDocument) (ledger.Replacement, error) {
	p, ok := r.parsers[doc.Kind]
	if !ok {
		return ledger.Replacement{}, fmt.Errorf("no parser for document kind %q", doc.Kind)
	}
	if doc.RawText == "" {
		return ledger.Replacement{}, fmt.Errorf("document %d has no stored text", doc.ID)
	}
	parsed, err := p.ParseText(doc.RawText)
	if err != nil {
		return ledger.Replacement{}, err
	}
	return r.archive.ReplaceItems(ctx, doc.ID, parsed.Items)
}
