package viewer

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/scrollsync"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/pane"
)

// ScrolledMsg reports that a pane's offset changed. It is delivered for
// user scrolls and for offsets written by synchronization alike; the
// synchronizer drops the latter.
type ScrolledMsg struct {
	Source scrollsync.Source
}

func scrolled(src scrollsync.Source) tea.Cmd {
	return func() tea.Msg { return ScrolledMsg{Source: src} }
}

// Update handles keys, mouse events and scroll notifications.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScrolledMsg:
		return m, m.notify(msg.Source)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// notify propagates a scroll of src and, when the other pane moved,
// reports that pane's scroll in turn.
func (m Model) notify(src scrollsync.Source) tea.Cmd {
	wrote, err := m.sync.Notify(src)
	if err != nil {
		logSyncError(src, err)
		return nil
	}
	if !wrote {
		return nil
	}
	return scrolled(src.Other())
}

func (m Model) align(src scrollsync.Source) tea.Cmd {
	wrote, err := m.sync.Align(src)
	if err != nil {
		logSyncError(src, err)
		return nil
	}
	if !wrote {
		return nil
	}
	return scrolled(src.Other())
}

func logSyncError(src scrollsync.Source, err error) {
	if errors.Is(err, scrollsync.ErrNoScrollRange) {
		slog.Debug("scroll sync skipped", "source", src, "reason", err)
		return
	}
	slog.Error("scroll sync failed", "source", src, "error", err)
}

// scroll moves the pane for src and reports the scroll when it moved.
func (m Model) scroll(src scrollsync.Source, move func(p *pane.Model) bool) tea.Cmd {
	if !move(m.Pane(src)) {
		return nil
	}
	return scrolled(src)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.Pane(m.focus)
	_, visible := p.InnerSize()
	half := max(visible/2, 1)
	full := max(visible-1, 1)

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionSwitchFocus:
		m.focus = m.focus.Other()
		m.applyFocus()
		return m, nil
	case keymap.ActionScrollUp:
		return m, m.scrollFocused(-1)
	case keymap.ActionScrollDown:
		return m, m.scrollFocused(1)
	case keymap.ActionHalfPageUp:
		return m, m.scrollFocused(-half)
	case keymap.ActionHalfPageDown:
		return m, m.scrollFocused(half)
	case keymap.ActionPageUp:
		return m, m.scrollFocused(-full)
	case keymap.ActionPageDown:
		return m, m.scrollFocused(full)
	case keymap.ActionTop:
		return m, m.scroll(m.focus, func(p *pane.Model) bool { return p.ScrollTo(0) })
	case keymap.ActionBottom:
		return m, m.scroll(m.focus, func(p *pane.Model) bool { return p.ScrollTo(p.MaxLine()) })
	case keymap.ActionPrevPage:
		return m, m.jumpPage(-1)
	case keymap.ActionNextPage:
		return m, m.jumpPage(1)
	case keymap.ActionToggleSync:
		if m.sync.Toggle() {
			return m, m.align(m.focus)
		}
		return m, nil
	case keymap.ActionCycleSyncMode:
		if m.sync.Mode() == scrollsync.DenominatorRange {
			m.sync.SetMode(scrollsync.DenominatorContent)
		} else {
			m.sync.SetMode(scrollsync.DenominatorRange)
		}
		if m.sync.Enabled() {
			return m, m.align(m.focus)
		}
		return m, nil
	case keymap.ActionAlign:
		return m, m.align(m.focus)
	case keymap.ActionToggleHighlight:
		m.highlight = !m.highlight
		m.relayout()
		return m, nil
	case keymap.ActionYankPage:
		if !m.HasDocument() {
			return m, nil
		}
		n := m.CurrentPage()
		text := m.PageText(n)
		return m, emit(Yank{Page: n, Text: text})
	case keymap.ActionBack:
		return m, emit(Back{})
	}
	return m, nil
}

func (m Model) scrollFocused(delta int) tea.Cmd {
	return m.scroll(m.focus, func(p *pane.Model) bool { return p.ScrollBy(delta) })
}

func (m Model) jumpPage(delta int) tea.Cmd {
	l := m.layoutOf(m.focus)
	current := l.PageAt(m.Pane(m.focus).Line())
	start, ok := l.StartOf(l.Neighbor(current, delta))
	if !ok {
		return nil
	}
	return m.scroll(m.focus, func(p *pane.Model) bool { return p.ScrollTo(start) })
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	src, ok := m.paneAt(msg)
	if !ok {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m, m.scroll(src, func(p *pane.Model) bool { return p.ScrollBy(-ui.WheelStep) })
	case tea.MouseButtonWheelDown:
		return m, m.scroll(src, func(p *pane.Model) bool { return p.ScrollBy(ui.WheelStep) })
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && src != m.focus {
			m.focus = src
			m.applyFocus()
		}
	}
	return m, nil
}

// paneAt returns the pane under the mouse. Without zone information the
// wheel scrolls the focused pane.
func (m Model) paneAt(msg tea.MouseMsg) (scrollsync.Source, bool) {
	if m.page.InBounds(msg) {
		return scrollsync.SourcePage, true
	}
	if m.text.InBounds(msg) {
		return scrollsync.SourceText, true
	}
	if !m.page.HasZone() {
		return m.focus, true
	}
	return 0, false
}
