// Package store persists documents and their text blocks.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	dbutil "github.com/llehouerou/folio/internal/db"
	"github.com/llehouerou/folio/internal/document"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Store reads and writes documents.
type Store struct {
	db *sql.DB
}

// New wraps an open, migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const documentColumns = `
	d.id, d.ref, d.file_path, d.file_name, d.strategy, d.processed_at,
	(SELECT COUNT(*) FROM pages p WHERE p.document_id = d.id)`

func scanDocument(row interface{ Scan(...any) error }) (document.Document, error) {
	var doc document.Document
	var processedAt int64
	err := row.Scan(&doc.ID, &doc.Ref, &doc.FilePath, &doc.FileName, &doc.Strategy,
		&processedAt, &doc.PageCount)
	if err != nil {
		return document.Document{}, err
	}
	doc.ProcessedAt = dbutil.UnixTime(processedAt)
	return doc, nil
}

// ListDocuments returns all documents, most recently processed first.
func (s *Store) ListDocuments(ctx context.Context) ([]document.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents d
		ORDER BY d.processed_at DESC, d.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// GetDocument returns the document with id.
func (s *Store) GetDocument(ctx context.Context, id int64) (document.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents d WHERE d.id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return document.Document{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return doc, err
}

// GetDocumentByRef returns the document with the given ref.
func (s *Store) GetDocumentByRef(ctx context.Context, ref string) (document.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents d WHERE d.ref = ?`, ref)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return document.Document{}, fmt.Errorf("%w: ref %s", ErrNotFound, ref)
	}
	return doc, err
}

// Pages returns the pages of a document with their blocks in reading order.
func (s *Store) Pages(ctx context.Context, docID int64) ([]document.Page, error) {
	if _, err := s.GetDocument(ctx, docID); err != nil {
		return nil, err
	}

	dims, err := s.pageDims(ctx, docID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, page_number, text_content, x0, y0, x1, y1,
		       font_size, font_name, font_color, block_type
		FROM text_blocks
		WHERE document_id = ?
		ORDER BY page_number, y0, x0
	`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []document.Block
	for rows.Next() {
		var b document.Block
		var blockType string
		if err := rows.Scan(&b.ID, &b.DocumentID, &b.Page, &b.Text,
			&b.BBox.X0, &b.BBox.Y0, &b.BBox.X1, &b.BBox.Y1,
			&b.FontSize, &b.FontName, &b.FontColor, &blockType); err != nil {
			return nil, err
		}
		b.Type = document.BlockType(blockType)
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return document.GroupPages(blocks, dims), nil
}

func (s *Store) pageDims(ctx context.Context, docID int64) (map[int]document.BBox, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page_number, width, height FROM pages WHERE document_id = ?`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dims := make(map[int]document.BBox)
	for rows.Next() {
		var n int
		var w, h float64
		if err := rows.Scan(&n, &w, &h); err != nil {
			return nil, err
		}
		dims[n] = document.BBox{X1: w, Y1: h}
	}
	return dims, rows.Err()
}

// InsertDocument stores doc with its pages and returns it with ID and Ref
// set. An empty Ref gets a fresh UUID. A document whose Ref already exists
// is replaced, keeping the ref stable across re-imports.
func (s *Store) InsertDocument(ctx context.Context, doc document.Document, pages []document.Page) (document.Document, error) {
	if doc.Ref == "" {
		doc.Ref = uuid.NewString()
	}

	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE ref = ?`, doc.Ref); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO documents (ref, file_path, file_name, strategy, processed_at)
			VALUES (?, ?, ?, ?, ?)
		`, doc.Ref, doc.FilePath, doc.FileName, doc.Strategy, doc.ProcessedAt.Unix())
		if err != nil {
			return err
		}
		if doc.ID, err = res.LastInsertId(); err != nil {
			return err
		}

		pageStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO pages (document_id, page_number, width, height) VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer pageStmt.Close()

		blockStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO text_blocks (document_id, page_number, text_content, x0, y0, x1, y1,
			                         font_size, font_name, font_color, block_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer blockStmt.Close()

		for _, p := range pages {
			if _, err := pageStmt.ExecContext(ctx, doc.ID, p.Number, p.Width, p.Height); err != nil {
				return fmt.Errorf("page %d: %w", p.Number, err)
			}
			for _, b := range p.Blocks {
				if _, err := blockStmt.ExecContext(ctx, doc.ID, p.Number, b.Text,
					b.BBox.X0, b.BBox.Y0, b.BBox.X1, b.BBox.Y1,
					b.FontSize, b.FontName, b.FontColor, string(b.Type)); err != nil {
					return fmt.Errorf("page %d block: %w", p.Number, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return document.Document{}, err
	}
	doc.PageCount = len(pages)
	return doc, nil
}

// DeleteDocument removes a document with its pages, blocks and saved view
// position. Re-imports go through InsertDocument and keep the position.
func (s *Store) DeleteDocument(ctx context.Context, id int64) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var ref string
		err := tx.QueryRowContext(ctx, `SELECT ref FROM documents WHERE id = ?`, id).Scan(&ref)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM view_state WHERE document_ref = ?`, ref); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
		return err
	})
}
