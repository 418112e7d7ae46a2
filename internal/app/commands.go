package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/notify"
)

func (m Model) loadDocuments() tea.Cmd {
	s := m.Store
	return func() tea.Msg {
		docs, err := s.ListDocuments(context.Background())
		if err != nil {
			return ErrorMsg{Op: errmsg.OpDocumentsLoad, Err: err}
		}
		return DocumentsLoadedMsg{Documents: docs}
	}
}

// openDocument loads the pages and saved position of doc.
func (m Model) openDocument(doc document.Document) tea.Cmd {
	s, st := m.Store, m.StateMgr
	return func() tea.Msg {
		pages, err := s.Pages(context.Background(), doc.ID)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpDocumentOpen, Context: doc.FileName, Err: err}
		}
		// The document opens at the top when its position cannot be read.
		view, err := st.GetView(doc.Ref)
		if err != nil {
			return DocumentOpenedMsg{Document: doc, Pages: pages, ViewErr: err}
		}
		return DocumentOpenedMsg{Document: doc, Pages: pages, View: view}
	}
}

// openLastDocument reopens the document viewed in the previous session.
// A document removed since then is skipped without a message.
func (m Model) openLastDocument() tea.Cmd {
	s, st := m.Store, m.StateMgr
	open := m.openDocument
	return func() tea.Msg {
		ref, err := st.GetLastDocument()
		if err != nil || ref == "" {
			return nil
		}
		doc, err := s.GetDocumentByRef(context.Background(), ref)
		if err != nil {
			slog.Debug("last document not reopened", "ref", ref, "error", err)
			return nil
		}
		return open(doc)()
	}
}

func (m Model) deleteDocument(doc document.Document) tea.Cmd {
	s := m.Store
	return func() tea.Msg {
		if err := s.DeleteDocument(context.Background(), doc.ID); err != nil {
			return ErrorMsg{Op: errmsg.OpDocumentDelete, Context: doc.FileName, Err: err}
		}
		return DocumentDeletedMsg{Document: doc}
	}
}

// waitForInbox blocks until the watcher reports a file, then imports it.
func (m Model) waitForInbox() tea.Cmd {
	ch, im := m.Inbox, m.Importer
	if ch == nil || im == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return InboxClosedMsg{}
		}
		doc, err := im.ImportFile(context.Background(), path)
		if err != nil {
			return importFailedMsg{ErrorMsg{Op: errmsg.OpImportFile, Context: path, Err: err}}
		}
		return ImportedMsg{Path: path, Document: doc}
	}
}

// importFailedMsg is an import error; the inbox keeps being watched.
type importFailedMsg struct {
	ErrorMsg
}

func (m Model) copyPage(page int, text string) tea.Cmd {
	write := m.copyText
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrorMsg{Op: errmsg.OpClipboardCp, Err: err}
		}
		return CopiedMsg{Page: page}
	}
}

// announce sends a desktop notification when a notifier is configured.
func (m Model) announce(n notify.Notification) tea.Cmd {
	notifier := m.Notifier
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		if err := notifier.Notify(n); err != nil {
			slog.Warn("desktop notification failed", "title", n.Title, "error", err)
		}
		return nil
	}
}
