package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/notify"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/confirm"
	"github.com/llehouerou/folio/internal/ui/doclist"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/helpbindings"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/statusbar"
	"github.com/llehouerou/folio/internal/ui/viewer"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case action.Msg:
		return m.handleAction(msg)
	case viewer.ScrolledMsg:
		return m.updateViewer(msg)
	case DocumentsLoadedMsg:
		m.Documents.SetDocuments(msg.Documents)
		return m, nil
	case DocumentOpenedMsg:
		return m.handleOpened(msg)
	case DocumentDeletedMsg:
		return m.handleDeleted(msg)
	case ImportedMsg:
		return m.handleImported(msg)
	case importFailedMsg:
		slog.Error("import failed", "path", msg.Context, "error", msg.Err)
		m.setStatus(msg.Text(), statusbar.LevelError)
		return m, tea.Batch(m.waitForInbox(), m.announce(notify.ImportFailed(msg.Context, msg.Err)))
	case InboxClosedMsg:
		slog.Info("inbox watcher stopped")
		m.Inbox = nil
		return m, nil
	case CopiedMsg:
		m.setStatus(fmt.Sprintf("Copied page %d to the clipboard", msg.Page), statusbar.LevelSuccess)
		return m, nil
	case ErrorMsg:
		slog.Error("operation failed", "op", msg.Op, "context", msg.Context, "error", msg.Err)
		m.setStatus(msg.Text(), statusbar.LevelError)
		return m, nil
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width, m.Height = msg.Width, msg.Height
	h := layout.ContentHeight(msg.Height, layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		StatusBarHeight: statusbar.Height,
	})
	m.Documents.SetSize(msg.Width, h)
	m.Viewer.SetSize(msg.Width, h)
	m.resizeHelp()

	if m.pending != nil {
		m.Viewer.Restore(*m.pending)
		m.pending = nil
	}
	m.saveView()
	return m, nil
}

func (m *Model) resizeHelp() {
	// Content area inside the large popup: border and padding take 6 columns
	// and 4 rows.
	w := m.Width*popup.SizeLarge.WidthPct/100 - 6
	h := m.Height*popup.SizeLarge.HeightPct/100 - 4
	m.Help.SetSize(max(w, 0), max(h, 0))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if p, _ := m.activePopup(); p != nil {
		_, cmd := p.Update(msg)
		return m, cmd
	}

	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	if m.ViewMode == headerbar.ModeDocuments && m.Documents.Filtering() {
		return m.updateDocuments(msg)
	}

	switch m.Keys.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.showHelp()
		return m, nil
	case keymap.ActionViewDocuments:
		m.setMode(headerbar.ModeDocuments)
		return m, nil
	case keymap.ActionViewViewer:
		if !m.Viewer.HasDocument() {
			m.setStatus("No document open", statusbar.LevelInfo)
			return m, nil
		}
		m.setMode(headerbar.ModeViewer)
		return m, nil
	}

	// Errors stay until the next key the views handle.
	m.setStatus("", statusbar.LevelInfo)

	if m.ViewMode == headerbar.ModeViewer {
		return m.updateViewer(msg)
	}
	return m.updateDocuments(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if p, _ := m.activePopup(); p != nil {
		return m, nil
	}
	if m.ViewMode == headerbar.ModeViewer {
		return m.updateViewer(msg)
	}
	return m.updateDocuments(msg)
}

func (m Model) updateDocuments(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Documents, cmd = m.Documents.Update(msg)
	return m, cmd
}

func (m Model) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewer, cmd = m.Viewer.Update(msg)
	m.saveView()
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case doclist.Open:
		return m, m.openDocument(a.Document)
	case doclist.Delete:
		m.Confirm.Show("Delete document",
			fmt.Sprintf("Delete %q and its saved position?", a.Document.FileName), a.Document)
	case doclist.Reload:
		return m, m.loadDocuments()
	case confirm.Result:
		if doc, ok := a.Context.(document.Document); ok && a.Confirmed {
			return m, m.deleteDocument(doc)
		}
	case viewer.Back:
		m.setMode(headerbar.ModeDocuments)
	case viewer.Yank:
		if a.Text == "" {
			m.setStatus(fmt.Sprintf("Page %d has no text", a.Page), statusbar.LevelInfo)
			return m, nil
		}
		return m, m.copyPage(a.Page, a.Text)
	case helpbindings.Close:
		m.HelpVisible = false
	}
	return m, nil
}

func (m Model) handleOpened(msg DocumentOpenedMsg) (tea.Model, tea.Cmd) {
	m.saveView()

	m.Viewer.SetDocument(msg.Document, msg.Pages)
	m.Documents.SelectRef(msg.Document.Ref)
	m.setMode(headerbar.ModeViewer)

	pos := viewer.Position{
		Focus:       m.Viewer.Focus(),
		SyncEnabled: m.Viewer.Synchronizer().Enabled(),
	}
	if msg.View != nil {
		pos = positionFromState(*msg.View)
	}
	m.lastSaved = state.ViewState{}
	if m.Width == 0 {
		m.pending = &pos
	} else {
		m.Viewer.Restore(pos)
		m.saveView()
	}

	name := msg.Document.FileName
	if msg.ViewErr != nil {
		slog.Warn("view state unavailable", "ref", msg.Document.Ref, "error", msg.ViewErr)
		m.setStatus(errmsg.FormatWith(errmsg.OpViewRestore, name, msg.ViewErr), statusbar.LevelError)
	}
	if err := m.StateMgr.SaveLastDocument(msg.Document.Ref); err != nil {
		slog.Warn("last document not saved", "ref", msg.Document.Ref, "error", err)
		if msg.ViewErr == nil {
			m.setStatus(errmsg.FormatWith(errmsg.OpViewSave, name, err), statusbar.LevelError)
		}
	}
	slog.Debug("document opened", "ref", msg.Document.Ref, "pages", len(msg.Pages))
	return m, nil
}

func (m Model) handleDeleted(msg DocumentDeletedMsg) (tea.Model, tea.Cmd) {
	if m.Viewer.Document().Ref == msg.Document.Ref {
		m.Viewer.SetDocument(document.Document{}, nil)
		m.pending = nil
		m.setMode(headerbar.ModeDocuments)
	}
	slog.Info("document deleted", "ref", msg.Document.Ref)
	m.setStatus(fmt.Sprintf("Deleted %s", msg.Document.FileName), statusbar.LevelSuccess)
	return m, m.loadDocuments()
}

func (m Model) handleImported(msg ImportedMsg) (tea.Model, tea.Cmd) {
	m.setStatus(fmt.Sprintf("Imported %s (%s)", msg.Document.FileName,
		pluralize(msg.Document.PageCount, "page")), statusbar.LevelSuccess)

	cmds := []tea.Cmd{m.loadDocuments(), m.waitForInbox(), m.announce(notify.Imported(msg.Document))}
	// A re-import replaces the open document; reload it at the same place.
	if m.Viewer.HasDocument() && m.Viewer.Document().Ref == msg.Document.Ref {
		m.saveView()
		cmds = append(cmds, m.openDocument(msg.Document))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) showHelp() {
	m.Help.SetContexts([]string{"global", m.ViewMode})
	m.resizeHelp()
	m.HelpVisible = true
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveView()
	return m, tea.Quit
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
