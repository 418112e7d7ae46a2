// Package viewer shows a document as rendered pages next to its extracted
// text and keeps the two panes scrolled to the same place.
package viewer

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/scrollsync"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/pageview"
	"github.com/llehouerou/folio/internal/ui/pane"
	"github.com/llehouerou/folio/internal/ui/textview"
)

// Zone identifiers of the two panes.
const (
	PageZone = "viewer-page"
	TextZone = "viewer-text"
)

// Options configures a viewer.
type Options struct {
	Scale       float64
	Denominator scrollsync.Denominator
	SyncEnabled bool
	Highlight   bool
}

// Position is the part of the viewer state worth restoring later.
type Position struct {
	PageOffset  int
	TextOffset  int
	Focus       scrollsync.Source
	SyncEnabled bool
}

// Model is the two-pane document viewer.
type Model struct {
	ui.Base
	page, text *pane.Model
	sync       *scrollsync.Synchronizer
	focus      scrollsync.Source
	keys       *keymap.Resolver

	doc        document.Document
	pages      []document.Page
	pageLayout pane.Layout
	textLayout pane.Layout
	scale      float64
	highlight  bool
	stacked    bool
}

// New creates an empty viewer.
func New(opts Options) Model {
	page := pane.New(PageZone, "Page")
	text := pane.New(TextZone, "Text")
	sync := scrollsync.New(page, text, opts.Denominator)
	sync.SetEnabled(opts.SyncEnabled)

	m := Model{
		page:      page,
		text:      text,
		sync:      sync,
		focus:     scrollsync.SourcePage,
		keys:      keymap.For("viewer"),
		scale:     opts.Scale,
		highlight: opts.Highlight,
	}
	m.applyFocus()
	return m
}

// SetZone sets the zone manager used to route mouse events to panes.
func (m *Model) SetZone(z *zone.Manager) {
	m.page.SetZone(z)
	m.text.SetZone(z)
}

// SetFocused sets whether the viewer has keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.applyFocus()
}

// Document returns the open document.
func (m Model) Document() document.Document { return m.doc }

// HasDocument reports whether a document is open.
func (m Model) HasDocument() bool { return m.doc.Ref != "" }

// SetDocument opens doc with its pages, scrolled to the top.
func (m *Model) SetDocument(doc document.Document, pages []document.Page) {
	m.doc = doc
	m.pages = pages
	m.page.SetTitle(doc.FileName)
	m.text.SetTitle("Text")
	m.relayout()
	m.page.ScrollTo(0)
	m.text.ScrollTo(0)
}

// Restore applies a saved position. The focused pane wins: when sync is
// on, the other pane is aligned to it.
func (m *Model) Restore(p Position) {
	m.page.ScrollTo(p.PageOffset)
	m.text.ScrollTo(p.TextOffset)
	m.focus = p.Focus
	m.applyFocus()
	m.sync.SetEnabled(p.SyncEnabled)
	if p.SyncEnabled {
		m.align(m.focus)
	}
}

// Position returns the current position.
func (m Model) Position() Position {
	return Position{
		PageOffset:  m.page.Line(),
		TextOffset:  m.text.Line(),
		Focus:       m.focus,
		SyncEnabled: m.sync.Enabled(),
	}
}

// Focus returns the pane that receives keyboard scrolling.
func (m Model) Focus() scrollsync.Source { return m.focus }

// Synchronizer returns the synchronizer linking the panes.
func (m Model) Synchronizer() *scrollsync.Synchronizer { return m.sync }

// Pane returns the pane for src.
func (m Model) Pane(src scrollsync.Source) *pane.Model {
	if src == scrollsync.SourceText {
		return m.text
	}
	return m.page
}

// Stacked reports whether the panes are drawn one above the other.
func (m Model) Stacked() bool { return m.stacked }

// Highlight reports whether block highlighting is on.
func (m Model) Highlight() bool { return m.highlight }

// SetSize resizes the viewer. Both layouts are rebuilt for the new width
// and the focused pane keeps its relative position.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.stacked = layout.IsNarrowMode(width)

	pw, ph, tw, th := layout.ViewerPanes(width, height, m.stacked)
	focused := m.Pane(m.focus)
	frac := focused.Fraction(scrollsync.DenominatorRange)

	m.page.SetSize(pw, ph)
	m.text.SetSize(tw, th)
	m.relayout()

	focused.ScrollTo(int(frac*float64(focused.MaxLine()) + 0.5))
	if m.sync.Enabled() {
		m.align(m.focus)
	}
}

func (m *Model) relayout() {
	pw, _ := m.page.InnerSize()
	tw, _ := m.text.InnerSize()
	m.pageLayout = pageview.Render(m.pages, pw, pageview.Options{Scale: m.scale, Highlight: m.highlight})
	m.textLayout = textview.Render(m.pages, tw, textview.Options{Highlight: m.highlight})
	m.page.SetLines(m.pageLayout.Lines)
	m.text.SetLines(m.textLayout.Lines)
}

func (m *Model) applyFocus() {
	m.page.SetFocused(m.IsFocused() && m.focus == scrollsync.SourcePage)
	m.text.SetFocused(m.IsFocused() && m.focus == scrollsync.SourceText)
}

func (m Model) layoutOf(src scrollsync.Source) pane.Layout {
	if src == scrollsync.SourceText {
		return m.textLayout
	}
	return m.pageLayout
}

// CurrentPage returns the number of the page at the top of the focused
// pane, or 0 without a document.
func (m Model) CurrentPage() int {
	return m.layoutOf(m.focus).PageAt(m.Pane(m.focus).Line())
}

// PageText returns the extracted text of page number.
func (m Model) PageText(number int) string {
	for _, p := range m.pages {
		if p.Number != number {
			continue
		}
		texts := make([]string, 0, len(p.Blocks))
		for _, b := range p.Blocks {
			texts = append(texts, b.Text)
		}
		return strings.Join(texts, "\n\n")
	}
	return ""
}

// Status summarizes the sync state for the status bar.
func (m Model) Status() string {
	state := "off"
	if m.sync.Enabled() {
		state = "on"
	}
	s := fmt.Sprintf("sync %s · %s · %s", state, m.sync.Mode(), m.focus)
	if n := len(m.pages); n > 0 {
		s += fmt.Sprintf(" · page %d/%d", m.CurrentPage(), n)
	}
	return s
}
