package app

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/statusbar"
)

var viewerHints = keymap.For("global", "viewer")

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	docName := ""
	if m.Viewer.HasDocument() {
		docName = m.Viewer.Document().FileName
	}
	header := headerbar.Render(m.ViewMode, docName, m.Width)

	var content string
	if m.ViewMode == headerbar.ModeViewer {
		content = m.Viewer.View()
	} else {
		content = m.Documents.View()
	}

	view := header + "\n" + content + "\n" + m.renderStatus()

	if p, size := m.activePopup(); p != nil {
		box := popup.Box(p.View(), m.Width, m.Height, size)
		view = popup.Overlay(view, box, m.Width, m.Height)
	}

	return m.Zone.Scan(view)
}

// activePopup returns the popup that owns the keyboard, or nil. The
// confirmation wins over the help.
func (m *Model) activePopup() (popup.Popup, popup.SizeConfig) {
	switch {
	case m.Confirm.Active():
		return &m.Confirm, popup.SizeAuto
	case m.HelpVisible:
		return &m.Help, popup.SizeLarge
	}
	return nil, popup.SizeConfig{}
}

func (m Model) renderStatus() string {
	msg := m.StatusMsg
	if msg == "" {
		msg = m.defaultStatus()
	}
	hint := m.Keys.Hints(
		keymap.Hint{Action: keymap.ActionHelp, Label: "help"},
		keymap.Hint{Action: keymap.ActionQuit, Label: "quit"},
	)
	if m.ViewMode == headerbar.ModeViewer && m.Viewer.HasDocument() {
		hint = viewerHints.Hints(
			keymap.Hint{Action: keymap.ActionSwitchFocus, Label: "pane"},
			keymap.Hint{Action: keymap.ActionToggleSync, Label: "sync"},
			keymap.Hint{Action: keymap.ActionHelp, Label: "help"},
		)
	}
	return statusbar.Render(msg, m.StatusLevel, hint, m.Width)
}

func (m Model) defaultStatus() string {
	if m.ViewMode == headerbar.ModeViewer && m.Viewer.HasDocument() {
		return m.Viewer.Status()
	}
	n := len(m.Documents.Documents())
	if n == 1 {
		return "1 document"
	}
	return fmt.Sprintf("%s documents", humanize.Comma(int64(n)))
}
