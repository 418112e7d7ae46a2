// Package doclist provides the filterable list of imported documents.
package doclist

import (
	"fmt"
	"strings"
	"time"

	textcursor "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/cursor"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

const zonePrefix = "doclist-row-"

// Model is the document list.
type Model struct {
	ui.Base
	docs      []document.Document
	visible   []int // indexes into docs after filtering
	cursor    cursor.Cursor
	filter    textinput.Model
	filtering bool
	keys      *keymap.Resolver
	zone      *zone.Manager
	now       func() time.Time
}

// New creates an empty document list.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.CharLimit = 128
	ti.Cursor.SetMode(textcursor.CursorStatic)
	return Model{
		cursor: cursor.New(ui.ScrollMargin),
		filter: ti,
		keys:   keymap.For("documents"),
		now:    time.Now,
	}
}

// SetZone sets the zone manager used for row clicks.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetDocuments replaces the list. The selection follows the previously
// selected document when it is still present.
func (m *Model) SetDocuments(docs []document.Document) {
	selected, hadSelection := m.Selected()
	m.docs = docs
	m.refilter()
	if hadSelection {
		m.SelectRef(selected.Ref)
	}
}

// Documents returns all documents, ignoring the filter.
func (m Model) Documents() []document.Document { return m.docs }

// Len returns the number of documents that pass the filter.
func (m Model) Len() int { return len(m.visible) }

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool { return m.filtering }

// Filter returns the current filter text.
func (m Model) Filter() string { return m.filter.Value() }

// Selected returns the document under the cursor.
func (m Model) Selected() (document.Document, bool) {
	if len(m.visible) == 0 {
		return document.Document{}, false
	}
	return m.docs[m.visible[m.cursor.Pos()]], true
}

// SelectRef moves the cursor to the document with ref and reports whether
// it is listed.
func (m *Model) SelectRef(ref string) bool {
	for row, i := range m.visible {
		if m.docs[i].Ref == ref {
			m.cursor.Jump(row, len(m.visible), m.listHeight())
			return true
		}
	}
	return false
}

// SelectRow selects the row shown at screen row y of the list area.
func (m *Model) SelectRow(y int) bool {
	return m.cursor.Click(y, len(m.visible), m.listHeight())
}

// SetSize resizes the list and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.filter.Width = max(width-6, 1)
	m.cursor.Clamp(len(m.visible), m.listHeight())
}

func (m *Model) refilter() {
	m.visible = Match(m.filter.Value(), m.docs)
	m.cursor.Clamp(len(m.visible), m.listHeight())
}

// listHeight is the number of rows available for documents.
func (m Model) listHeight() int {
	_, h := m.InnerSize()
	if m.filtering || m.filter.Value() != "" {
		h--
	}
	return max(h, 0)
}

// Update handles keys and mouse events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "up", "down":
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		m.cursor.Move(delta, len(m.visible), m.listHeight())
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor.Reset()
		m.refilter()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	a := m.keys.Resolve(msg.String())
	if m.cursor.HandleAction(a, len(m.visible), m.listHeight()) {
		return m, nil
	}

	switch a {
	case keymap.ActionFilter:
		m.filtering = true
		m.cursor.Clamp(len(m.visible), m.listHeight())
		return m, m.filter.Focus()
	case keymap.ActionSelect:
		if doc, ok := m.Selected(); ok {
			return m, emit(Open{Document: doc})
		}
	case keymap.ActionDelete:
		if doc, ok := m.Selected(); ok {
			return m, emit(Delete{Document: doc})
		}
	case keymap.ActionReload:
		return m, emit(Reload{})
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, len(m.visible), m.listHeight())
		return m, nil
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, len(m.visible), m.listHeight())
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || m.zone == nil {
		return m, nil
	}

	start, end := m.cursor.VisibleRange(len(m.visible), m.listHeight())
	for row := start; row < end; row++ {
		if !m.zone.Get(rowZoneID(row)).InBounds(msg) {
			continue
		}
		already := row == m.cursor.Pos()
		m.cursor.Jump(row, len(m.visible), m.listHeight())
		if already {
			doc, _ := m.Selected()
			return m, emit(Open{Document: doc})
		}
		return m, nil
	}
	return m, nil
}

func rowZoneID(row int) string {
	return fmt.Sprintf("%s%d", zonePrefix, row)
}

// View renders the list.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerW, _ := m.InnerSize()
	s := styles.T().S()

	var lines []string
	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
	}

	if len(m.visible) == 0 {
		msg := "No documents. Import extractions with folio-import."
		if len(m.docs) > 0 {
			msg = "No document matches the filter."
		}
		lines = append(lines, s.Muted.Render(render.Truncate(msg, innerW)))
	}

	start, end := m.cursor.VisibleRange(len(m.visible), m.listHeight())
	for row := start; row < end; row++ {
		line := m.renderRow(m.docs[m.visible[row]], innerW)
		if row == m.cursor.Pos() && m.IsFocused() {
			line = s.Cursor.Render(line)
		}
		if m.zone != nil {
			line = m.zone.Mark(rowZoneID(row), line)
		}
		lines = append(lines, line)
	}

	title := fmt.Sprintf("Documents (%d)", len(m.docs))
	if len(m.visible) != len(m.docs) {
		title = fmt.Sprintf("Documents (%d/%d)", len(m.visible), len(m.docs))
	}
	return styles.Panel(title, strings.Join(lines, "\n"), m.Width(), m.Height(), m.IsFocused())
}

func (m Model) renderRow(d document.Document, width int) string {
	meta := humanize.Comma(int64(d.PageCount)) + " " + plural(d.PageCount, "page")
	if !d.ProcessedAt.IsZero() {
		meta += " · " + humanize.RelTime(d.ProcessedAt, m.now(), "ago", "from now")
	}
	nameW := max(width-len([]rune(meta))-2, 1)
	return render.Row(" "+render.Truncate(d.FileName, nameW-1), meta+" ", width)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
