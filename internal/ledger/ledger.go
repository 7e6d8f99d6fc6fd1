// Package ledger stores imported documents and their items in SQLite and
// answers the spending queries the reports are built from. Amounts are kept
// as integer cents.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"fjacquet/ah-csv/internal/ledger/migrations"
	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
)

// Ledger is the SQLite-backed document store.
type Ledger struct {
	db     *sql.DB
	path   string
	logger logging.Logger
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(path string, logger logging.Logger) (*Ledger, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := &Ledger{db: db, path: path, logger: logger}
	if err := l.migrate(migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return l, nil
}

// dsn passes the pragmas to the driver, which runs them on every new
// connection.
func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Path returns the database file path.
func (l *Ledger) Path() string {
	return l.path
}

// migrate runs all pending migrations.
func (l *Ledger) migrate(fsys fs.FS) error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := l.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := l.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		l.logger.Debug("Applied migration", logging.F(logging.FieldVersion, version))
	}
	return nil
}

func (l *Ledger) applyMigration(version int, script string) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// DocumentExists reports whether a document with the given content hash
// has been imported.
func (l *Ledger) DocumentExists(ctx context.Context, hash string) (bool, error) {
	var n int
	err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents WHERE file_hash = ?", hash).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking document %s: %w", hash, err)
	}
	return n > 0, nil
}

// SaveDocument stores doc and its items in one transaction and returns the
// document ID. A document whose hash is already stored is a ConflictError
// unless force is set, in which case the old copy is replaced.
func (l *Ledger) SaveDocument(ctx context.Context, doc *models.Document, runID string, force bool) (int64, error) {
	meta := doc.Metadata
	if meta.FileHash == "" {
		return 0, &parsererror.ValidationError{Subject: "document", Reason: "file hash is empty"}
	}
	if !meta.HasDate() {
		return 0, &parsererror.ValidationError{Subject: "document", Reason: "document has no date"}
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM documents WHERE file_hash = ?", meta.FileHash).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return 0, fmt.Errorf("looking up document: %w", err)
	case !force:
		return 0, &parsererror.ConflictError{Kind: "document", Name: meta.FileName, In: "ledger"}
	default:
		if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", existing); err != nil {
			return 0, fmt.Errorf("replacing document: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO documents (file_hash, kind, filename, number, document_date,
		                       total_cents, savings_cents, raw_text, import_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.FileHash, string(meta.Kind), meta.FileName, nullString(meta.Number),
		meta.Date.Format(models.DateLayout), toCents(meta.Total), toCents(meta.Savings),
		doc.RawText, nullString(runID))
	if err != nil {
		return 0, fmt.Errorf("inserting document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading document id: %w", err)
	}

	if err := insertItems(ctx, tx, id, doc.Items, nil); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing document: %w", err)
	}

	l.logger.Debug("Saved document",
		logging.F(logging.FieldDocumentHash, meta.FileHash),
		logging.F(logging.FieldRunID, runID),
		logging.F(logging.FieldCount, len(doc.Items)))
	return id, nil
}

// SetCategory overrides the category of every stored item with the given
// display name and returns the number of items changed. The override
// replaces the automatic subcategory too: a nil subcategory means none.
func (l *Ledger) SetCategory(ctx context.Context, displayName, category string, subcategory *string) (int64, error) {
	var sub sql.NullString
	if subcategory != nil {
		sub = sql.NullString{String: *subcategory, Valid: true}
	}
	res, err := l.db.ExecContext(ctx,
		"UPDATE items SET user_category = ?, user_subcategory = ? WHERE display_name = ?",
		category, sub, displayName)
	if err != nil {
		return 0, fmt.Errorf("updating category of %q: %w", displayName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, &parsererror.NotFoundError{Kind: "product", Name: displayName}
	}
	return n, nil
}

// override is a user correction carried over when items are rewritten.
type override struct {
	category    string
	subcategory sql.NullString
}

// insertItems writes items for document id in order. Items whose display
// name has an entry in overrides get that user category.
func insertItems(ctx context.Context, tx *sql.Tx, id int64, items []models.ClassifiedItem, overrides map[string]override) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (document_id, position, original_name, display_name, quantity,
		                   weight_kg, price_cents, tax_rate, auto_category, auto_subcategory,
		                   user_category, user_subcategory)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing item insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, item := range items {
		var weight sql.NullString
		if item.WeightKg != nil {
			weight = sql.NullString{String: item.WeightKg.StringFixed(3), Valid: true}
		}
		var sub sql.NullString
		if item.Subcategory != nil {
			sub = sql.NullString{String: *item.Subcategory, Valid: true}
		}
		var userCat, userSub sql.NullString
		if o, ok := overrides[item.DisplayName]; ok {
			userCat = sql.NullString{String: o.category, Valid: true}
			userSub = o.subcategory
		}
		if _, err := stmt.ExecContext(ctx, id, i, item.OriginalRawName, item.DisplayName, item.Quantity,
			weight, toCents(item.Price), string(item.TaxRate), item.Category, sub, userCat, userSub); err != nil {
			return fmt.Errorf("inserting item %q: %w", item.DisplayName, err)
		}
	}
	return nil
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
