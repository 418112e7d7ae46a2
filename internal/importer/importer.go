// Package importer loads text extraction files into the document store.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/llehouerou/folio/internal/document"
)

// Store is the subset of the document store the importer writes to.
type Store interface {
	InsertDocument(ctx context.Context, doc document.Document, pages []document.Page) (document.Document, error)
}

// Importer reads extraction files and stores them.
type Importer struct {
	store Store
	now   func() time.Time
}

// New creates an importer writing to store.
func New(store Store) *Importer {
	return &Importer{store: store, now: time.Now}
}

// ImportFile imports the extraction at path. A file without a source path
// is attributed to itself.
func (im *Importer) ImportFile(ctx context.Context, path string) (document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return document.Document{}, err
	}
	defer f.Close()

	e, err := Parse(f)
	if err != nil {
		return document.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if e.FilePath == "" {
		e.FilePath = path
	}

	doc, pages := e.Convert(im.now())
	doc, err = im.store.InsertDocument(ctx, doc, pages)
	if err != nil {
		return document.Document{}, fmt.Errorf("store %s: %w", path, err)
	}

	slog.Info("document imported", "path", path, "ref", doc.Ref, "pages", len(pages))
	return doc, nil
}
