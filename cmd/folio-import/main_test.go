package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/db"
	"github.com/llehouerou/folio/internal/importer"
	"github.com/llehouerou/folio/internal/store"
)

const extraction = `{
  "file_path": "/docs/notes.pdf",
  "pages": [
    {"number": 1, "width": 612, "height": 792, "blocks": [
      {"text": "Hello", "bbox": {"x0": 72, "y0": 72, "x1": 200, "y1": 90}, "font_size": 11}
    ]},
    {"number": 2, "width": 612, "height": 792, "blocks": []}
  ]
}`

func TestImportAll(t *testing.T) {
	conn, err := db.Open(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	dir := t.TempDir()
	good := filepath.Join(dir, "notes.json")
	bad := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(good, []byte(extraction), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	var out, errOut bytes.Buffer
	failed := importAll(importer.New(store.New(conn)), []string{good, bad}, &out, &errOut)

	assert.Equal(t, 1, failed)
	fields := strings.Split(strings.TrimSpace(out.String()), "\t")
	require.Len(t, fields, 3)
	assert.NotEmpty(t, fields[0])
	assert.Equal(t, "notes.pdf", fields[1])
	assert.Equal(t, "2 pages", fields[2])
	assert.True(t, strings.HasPrefix(errOut.String(), "Failed to import file '"+bad+"'"))
}
