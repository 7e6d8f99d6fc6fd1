// Package container provides dependency injection for the ah-csv application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"sync"

	"fjacquet/ah-csv/internal/abbreviation"
	"fjacquet/ah-csv/internal/batch"
	"fjacquet/ah-csv/internal/categorizer"
	"fjacquet/ah-csv/internal/common"
	"fjacquet/ah-csv/internal/config"
	"fjacquet/ah-csv/internal/invoiceparser"
	"fjacquet/ah-csv/internal/ledger"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parser"
	"fjacquet/ah-csv/internal/pdfparser"
	"fjacquet/ah-csv/internal/receiptparser"
	"fjacquet/ah-csv/internal/report"
	"fjacquet/ah-csv/internal/store"
	"fjacquet/ah-csv/internal/taxonomy"
)

// Container holds all application dependencies and provides methods to access them.
//
// Parsers, the categorizer and the expander are built from the taxonomy
// snapshot current at construction or at the last SaveTaxonomy call. The
// ledger is opened on first use.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	repository store.Repository
	taxonomy   *taxonomy.Store
	extractor  pdfparser.PDFExtractor

	mu          sync.RWMutex
	categorizer *categorizer.Categorizer
	expander    *abbreviation.Expander
	parsers     map[models.DocumentKind]parser.FullParser

	ledgerMu sync.Mutex
	ledger   *ledger.Ledger
}

// Option customizes a Container during construction.
type Option func(*Container)

// WithLogger replaces the logger built from the log section.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithExtractor replaces the PDF extractor named by pdf.extractor.
func WithExtractor(extractor pdfparser.PDFExtractor) Option {
	return func(c *Container) { c.extractor = extractor }
}

// WithRepository replaces the YAML taxonomy repository.
func WithRepository(repo store.Repository) Option {
	return func(c *Container) { c.repository = repo }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}
	common.SetLogger(c.logger)
	common.SetDelimiter(cfg.DelimiterRune())

	if c.extractor == nil {
		extractor, err := pdfparser.NewExtractor(cfg.PDF.Extractor)
		if err != nil {
			return nil, err
		}
		c.extractor = extractor
	}

	if c.repository == nil {
		c.repository = store.NewTaxonomyStore(cfg.TaxonomyPath(), c.logger)
	}
	snapshot, err := c.repository.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	c.taxonomy = taxonomy.NewStore(snapshot, c.logger)
	c.rebuild()

	c.logger.Info("Container initialized successfully",
		logging.F("parsers_count", len(c.parsers)),
		logging.F(logging.FieldVersion, c.taxonomy.Version()),
		logging.F("pdf_extractor", cfg.PDF.Extractor))

	return c, nil
}

// rebuild derives the classifier, expander and parsers from the current
// taxonomy snapshot.
func (c *Container) rebuild() {
	snapshot := c.taxonomy.Snapshot()
	cat := categorizer.New(snapshot, c.logger)
	exp := abbreviation.NewFromSnapshot(snapshot)

	parsers := map[models.DocumentKind]parser.FullParser{
		models.KindInvoice: invoiceparser.NewAdapter(cat, c.extractor, c.logger),
		models.KindReceipt: receiptparser.NewAdapter(cat, exp, c.extractor, c.logger),
	}

	c.mu.Lock()
	c.categorizer = cat
	c.expander = exp
	c.parsers = parsers
	c.mu.Unlock()
}

// GetParser returns the parser for the given document kind.
func (c *Container) GetParser(kind models.DocumentKind) (parser.FullParser, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.parsers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", kind)
	}
	return p, nil
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[models.DocumentKind]parser.FullParser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[models.DocumentKind]parser.FullParser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the categorizer for the current taxonomy.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categorizer
}

// GetExpander returns the abbreviation expander for the current taxonomy.
func (c *Container) GetExpander() *abbreviation.Expander {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expander
}

// GetTaxonomy returns the in-memory taxonomy store.
func (c *Container) GetTaxonomy() *taxonomy.Store {
	return c.taxonomy
}

// SaveTaxonomy persists the current taxonomy snapshot and rebuilds every
// component derived from it.
func (c *Container) SaveTaxonomy() error {
	if err := c.repository.Save(c.taxonomy.Snapshot()); err != nil {
		return fmt.Errorf("failed to save taxonomy: %w", err)
	}
	c.rebuild()
	return nil
}

// GetLedger opens the purchase ledger at database.path on first use.
func (c *Container) GetLedger() (*ledger.Ledger, error) {
	c.ledgerMu.Lock()
	defer c.ledgerMu.Unlock()
	if c.ledger != nil {
		return c.ledger, nil
	}
	l, err := ledger.Open(c.config.DatabasePath(), c.logger)
	if err != nil {
		return nil, err
	}
	c.ledger = l
	return l, nil
}

// NewImporter returns a batch importer for kind that saves into the ledger.
// Extra options are applied after the configured worker count.
func (c *Container) NewImporter(kind models.DocumentKind, opts ...batch.Option) (*batch.Importer, error) {
	p, err := c.GetParser(kind)
	if err != nil {
		return nil, err
	}
	l, err := c.GetLedger()
	if err != nil {
		return nil, err
	}
	all := append([]batch.Option{batch.WithWorkers(c.config.Import.Workers)}, opts...)
	return batch.NewImporter(p, l, c.logger, all...), nil
}

// NewReclassifier returns a reclassifier that re-parses stored documents
// with the parsers of the current taxonomy.
func (c *Container) NewReclassifier() (*batch.Reclassifier, error) {
	l, err := c.GetLedger()
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	parsers := make(map[models.DocumentKind]parser.DocumentParser, len(c.parsers))
	for k, v := range c.parsers {
		parsers[k] = v
	}
	c.mu.RUnlock()
	return batch.NewReclassifier(l, parsers, c.logger), nil
}

// NewReportGenerator returns a spending report generator over the ledger.
func (c *Container) NewReportGenerator() (*report.Generator, error) {
	l, err := c.GetLedger()
	if err != nil {
		return nil, err
	}
	return report.NewGenerator(l, c.logger), nil
}

// Close releases the ledger if it was opened.
func (c *Container) Close() error {
	c.ledgerMu.Lock()
	defer c.ledgerMu.Unlock()
	if c.ledger == nil {
		return nil
	}
	err := c.ledger.Close()
	c.ledger = nil
	return err
}
