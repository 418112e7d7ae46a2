// Package logging sets up the application log file.
//
// The terminal belongs to the UI while folio runs, so logs always go to a
// file. Use slog's package-level functions after calling Setup.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const logFileName = "folio/folio.log"

// DefaultPath returns the log location under the XDG state dir.
func DefaultPath() (string, error) {
	return xdg.StateFile(logFileName)
}

// Setup opens path for appending (DefaultPath when empty), installs a JSON
// slog handler at level as the default logger and returns the file so the
// caller can close it on exit.
func Setup(path string, level slog.Level) (io.Closer, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(New(f, level))
	return f, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
