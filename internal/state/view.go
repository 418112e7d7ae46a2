package state

import (
	"database/sql"
	"errors"
	"time"
)

// ViewState is the saved position of a document in the viewer.
type ViewState struct {
	DocumentRef string
	PageOffset  int
	TextOffset  int
	Focus       string // "page" or "text"
	SyncEnabled bool
}

func getView(db *sql.DB, ref string) (*ViewState, error) {
	row := db.QueryRow(`
		SELECT document_ref, page_offset, text_offset, focus, sync_enabled
		FROM view_state WHERE document_ref = ?
	`, ref)

	var v ViewState
	err := row.Scan(&v.DocumentRef, &v.PageOffset, &v.TextOffset, &v.Focus, &v.SyncEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved view is valid for a new document
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func saveView(db *sql.DB, v ViewState) error {
	_, err := db.Exec(`
		INSERT INTO view_state (document_ref, page_offset, text_offset, focus, sync_enabled, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_ref) DO UPDATE SET
			page_offset = excluded.page_offset,
			text_offset = excluded.text_offset,
			focus = excluded.focus,
			sync_enabled = excluded.sync_enabled,
			updated_at = excluded.updated_at
	`, v.DocumentRef, v.PageOffset, v.TextOffset, v.Focus, v.SyncEnabled, time.Now().Unix())
	return err
}

func getLastDocument(db *sql.DB) (string, error) {
	var ref string
	err := db.QueryRow(`SELECT document_ref FROM last_document WHERE id = 1`).Scan(&ref)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return ref, err
}

func saveLastDocument(db *sql.DB, ref string) error {
	_, err := db.Exec(`
		INSERT INTO last_document (id, document_ref) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET document_ref = excluded.document_ref
	`, ref)
	return err
}
