package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fjacquet/ah-csv/internal/logging"
	"fjacquet/ah-csv/internal/models"
	"fjacquet/ah-csv/internal/parsererror"
)

// StoredDocument is a document row with the text it was parsed from.
type StoredDocument struct {
	ID       int64
	Kind     models.DocumentKind
	FileName string
	Number   string
	Date     time.Time
	RawText  string
}

// Documents returns the stored documents of kind, or of every kind when
// kind is empty, in date order.
func (l *Ledger) Documents(ctx context.Context, kind models.DocumentKind) ([]StoredDocument, error) {
	var args []any
	var cond string
	if kind != "" {
		cond = "kind = ?"
		args = append(args, string(kind))
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, kind, filename, COALESCE(number, ''), document_date, COALESCE(raw_text, '')
		FROM documents`+where(cond)+`
		ORDER BY document_date, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	docs := []StoredDocument{}
	for rows.Next() {
		var (
			doc        StoredDocument
			kind, date string
		)
		if err := rows.Scan(&doc.ID, &kind, &doc.FileName, &doc.Number, &date, &doc.RawText); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.Kind = models.DocumentKind(kind)
		if doc.Date, err = time.Parse(models.DateLayout, date); err != nil {
			return nil, fmt.Errorf("document %d: bad date %q: %w", doc.ID, date, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Replacement counts what ReplaceItems changed.
type Replacement struct {
	Before int
	After  int
	// Recategorized counts new items whose automatic category differs from
	// the one stored for the same display name, or whose name is new.
	Recategorized int
}

// ReplaceItems swaps the items of a stored document for items in one
// transaction. User overrides are kept for items whose display name
// survives.
func (l *Ledger) ReplaceItems(ctx context.Context, documentID int64, items []models.ClassifiedItem) (Replacement, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return Replacement{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents WHERE id = ?", documentID).Scan(&n); err != nil {
		return Replacement{}, fmt.Errorf("looking up document %d: %w", documentID, err)
	}
	if n == 0 {
		return Replacement{}, &parsererror.NotFoundError{Kind: "document", Name: fmt.Sprint(documentID)}
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT display_name, auto_category, user_category, user_subcategory
		FROM items WHERE document_id = ? ORDER BY position`, documentID)
	if err != nil {
		return Replacement{}, fmt.Errorf("reading items of document %d: %w", documentID, err)
	}
	var rep Replacement
	previous := make(map[string]string)
	overrides := make(map[string]override)
	for rows.Next() {
		var (
			name, auto string
			userCat    sql.NullString
			userSub    sql.NullString
		)
		if err := rows.Scan(&name, &auto, &userCat, &userSub); err != nil {
			_ = rows.Close()
			return Replacement{}, fmt.Errorf("scanning item: %w", err)
		}
		rep.Before++
		if _, ok := previous[name]; !ok {
			previous[name] = auto
		}
		if _, ok := overrides[name]; !ok && userCat.Valid {
			overrides[name] = override{category: userCat.String, subcategory: userSub}
		}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return Replacement{}, err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE document_id = ?", documentID); err != nil {
		return Replacement{}, fmt.Errorf("deleting items of document %d: %w", documentID, err)
	}
	if err := insertItems(ctx, tx, documentID, items, overrides); err != nil {
		return Replacement{}, err
	}
	if err := tx.Commit(); err != nil {
		return Replacement{}, fmt.Errorf("committing items: %w", err)
	}

	rep.After = len(items)
	for _, item := range items {
		if auto, ok := previous[item.DisplayName]; !ok || auto != item.Category {
			rep.Recategorized++
		}
	}
	l.logger.Debug("Replaced document items",
		logging.F(logging.FieldDocumentID, documentID),
		logging.F(logging.FieldCount, rep.After))
	return rep, nil
}
