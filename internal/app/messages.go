// Package app contains the root model of the TUI and the messages it
// exchanges with its commands.
package app

import (
	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/state"
)

// DocumentsLoadedMsg carries a fresh document list.
type DocumentsLoadedMsg struct {
	Documents []document.Document
}

// DocumentOpenedMsg carries a document loaded for the viewer. View is the
// saved position, nil when the document was never viewed or ViewErr is set.
type DocumentOpenedMsg struct {
	Document document.Document
	Pages    []document.Page
	View     *state.ViewState
	ViewErr  error
}

// DocumentDeletedMsg reports a removed document.
type DocumentDeletedMsg struct {
	Document document.Document
}

// ImportedMsg reports a document imported from the inbox.
type ImportedMsg struct {
	Path     string
	Document document.Document
}

// InboxClosedMsg is sent when the inbox watcher stops.
type InboxClosedMsg struct{}

// CopiedMsg reports page text written to the clipboard.
type CopiedMsg struct {
	Page int
}

// ErrorMsg reports a failed operation to the status bar.
type ErrorMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
}

// Text returns the user-facing message.
func (e ErrorMsg) Text() string {
	return errmsg.FormatWith(e.Op, e.Context, e.Err)
}
