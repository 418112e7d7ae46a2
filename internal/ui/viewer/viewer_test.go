package viewer

import (
	"fmt"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/scrollsync"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func testPages(n int) []document.Page {
	pages := make([]document.Page, n)
	for i := range pages {
		p := document.Page{Number: i + 1, Width: 612, Height: 792}
		for j := range 6 {
			y := 72 + float64(j)*100
			p.Blocks = append(p.Blocks, document.Block{
				Page: i + 1,
				Text: fmt.Sprintf("Page %d paragraph %d with enough words to wrap inside a narrow pane", i+1, j+1),
				BBox: document.BBox{X0: 72, Y0: y, X1: 540, Y1: y + 60},
				Type: document.BlockBody,
			})
		}
		pages[i] = p
	}
	return pages
}

func newViewer(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	m.SetFocused(true)
	m.SetSize(120, 30)
	m.SetDocument(document.Document{Ref: "doc", FileName: "doc.pdf"}, testPages(5))
	return m
}

func defaultOpts() Options {
	return Options{Scale: 6, Denominator: scrollsync.DenominatorRange, SyncEnabled: true}
}

// run feeds the messages produced by cmd back into the viewer until none
// are left. It returns the viewer, the number of scroll notifications
// handled and any actions emitted.
func run(m Model, cmd tea.Cmd) (Model, int, []action.Action) {
	var scrolls int
	var actions []action.Action
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case ScrolledMsg:
			scrolls++
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		case action.Msg:
			actions = append(actions, msg.Action)
		}
	}
	return m, scrolls, actions
}

func press(m Model, keys ...string) (Model, int, []action.Action) {
	var total int
	var all []action.Action
	for _, k := range keys {
		var cmd tea.Cmd
		var n int
		var acts []action.Action
		m, cmd = m.Update(testutil.Key(k))
		m, n, acts = run(m, cmd)
		total += n
		all = append(all, acts...)
	}
	return m, total, all
}

func expectedLine(src, dst scrollsync.Pane, d scrollsync.Denominator) int {
	off, _ := scrollsync.Offset(src.ScrollOffset(), d.Height(src), d.Height(dst))
	return int(math.Round(off))
}

func TestScrollPageSyncsText(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)
	require.Positive(t, page.MaxLine())
	require.Positive(t, text.MaxLine())

	m, scrolls, _ := press(m, "ctrl+d", "ctrl+d", "j")

	assert.Positive(t, page.Line())
	assert.Equal(t, expectedLine(page, text, scrollsync.DenominatorRange), text.Line())
	// Each key: the page scroll, then the text echo that is dropped.
	assert.Equal(t, 6, scrolls)
}

func TestEchoDoesNotMoveSource(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page := m.Pane(scrollsync.SourcePage)

	for range 7 {
		before := page.Line()
		m, _, _ = press(m, "j")
		require.Equal(t, before+1, page.Line(), "page pane must only move by the key")
	}
}

func TestScrollTextSyncsPage(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)

	m, _, _ = press(m, "tab", "ctrl+d")

	assert.Equal(t, scrollsync.SourceText, m.Focus())
	assert.Positive(t, text.Line())
	assert.Equal(t, expectedLine(text, page, scrollsync.DenominatorRange), page.Line())
}

func TestBottomAlignsBothEnds(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)

	m, _, _ = press(m, "G")
	assert.Equal(t, page.MaxLine(), page.Line())
	assert.Equal(t, text.MaxLine(), text.Line())

	m, _, _ = press(m, "g")
	assert.Zero(t, page.Line())
	assert.Zero(t, text.Line())
}

func TestToggleSync(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)

	m, _, _ = press(m, "s")
	require.False(t, m.Synchronizer().Enabled())

	m, _, _ = press(m, "ctrl+d")
	assert.Positive(t, page.Line())
	assert.Zero(t, text.Line(), "text must stay put with sync off")

	m, _, _ = press(m, "s")
	require.True(t, m.Synchronizer().Enabled())
	assert.Equal(t, expectedLine(page, text, scrollsync.DenominatorRange), text.Line(),
		"enabling sync aligns the other pane")
}

func TestAlignWithSyncOff(t *testing.T) {
	m := newViewer(t, Options{Scale: 6, SyncEnabled: false})
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)

	m, _, _ = press(m, "ctrl+d", "ctrl+d")
	require.Zero(t, text.Line())

	m, _, _ = press(m, "a")
	assert.Equal(t, expectedLine(page, text, scrollsync.DenominatorRange), text.Line())
	assert.False(t, m.Synchronizer().Enabled())
}

func TestCycleSyncMode(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)

	m, _, _ = press(m, "ctrl+d", "m")
	require.Equal(t, scrollsync.DenominatorContent, m.Synchronizer().Mode())
	assert.Equal(t, expectedLine(page, text, scrollsync.DenominatorContent), text.Line())

	m, _, _ = press(m, "m")
	assert.Equal(t, scrollsync.DenominatorRange, m.Synchronizer().Mode())
	assert.Contains(t, m.Status(), "range")
}

func TestPageJumps(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page := m.Pane(scrollsync.SourcePage)

	m, _, _ = press(m, "]")
	start, ok := m.pageLayout.StartOf(2)
	require.True(t, ok)
	assert.Equal(t, start, page.Line())
	assert.Equal(t, 2, m.CurrentPage())

	m, _, _ = press(m, "[")
	assert.Equal(t, 1, m.CurrentPage())
}

func TestYankCurrentPage(t *testing.T) {
	m := newViewer(t, defaultOpts())

	m, _, _ = press(m, "]")
	_, _, acts := press(m, "y")

	require.Len(t, acts, 1)
	yank, ok := acts[0].(Yank)
	require.True(t, ok)
	assert.Equal(t, 2, yank.Page)
	assert.True(t, strings.HasPrefix(yank.Text, "Page 2 paragraph 1"))
	assert.Contains(t, yank.Text, "Page 2 paragraph 6")
}

func TestBack(t *testing.T) {
	m := newViewer(t, defaultOpts())

	_, _, acts := press(m, "esc")

	require.Len(t, acts, 1)
	assert.IsType(t, Back{}, acts[0])
}

func TestWheelWithoutZonesScrollsFocusedPane(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page := m.Pane(scrollsync.SourcePage)

	m, cmd := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	_, scrolls, _ := run(m, cmd)

	assert.Equal(t, ui.WheelStep, page.Line())
	assert.Equal(t, 2, scrolls)
}

func TestRestore(t *testing.T) {
	m := newViewer(t, defaultOpts())

	m.Restore(Position{PageOffset: 10, TextOffset: 3, Focus: scrollsync.SourceText, SyncEnabled: false})

	pos := m.Position()
	assert.Equal(t, 10, pos.PageOffset)
	assert.Equal(t, 3, pos.TextOffset)
	assert.Equal(t, scrollsync.SourceText, pos.Focus)
	assert.False(t, pos.SyncEnabled)
}

func TestRestore_SyncAlignsToFocusedPane(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page, text := m.Pane(scrollsync.SourcePage), m.Pane(scrollsync.SourceText)

	m.Restore(Position{PageOffset: 40, TextOffset: 0, Focus: scrollsync.SourcePage, SyncEnabled: true})

	assert.Equal(t, 40, page.Line())
	assert.Equal(t, expectedLine(page, text, scrollsync.DenominatorRange), text.Line())
}

func TestResizeKeepsRelativePosition(t *testing.T) {
	m := newViewer(t, defaultOpts())
	page := m.Pane(scrollsync.SourcePage)

	m, _, _ = press(m, "G")
	m.SetSize(80, 40)

	assert.True(t, m.Stacked())
	assert.Equal(t, page.MaxLine(), page.Line())
}

func TestToggleHighlightKeepsLayoutSize(t *testing.T) {
	m := newViewer(t, defaultOpts())
	before := len(m.textLayout.Lines)

	m, _, _ = press(m, "h")

	assert.True(t, m.Highlight())
	assert.Equal(t, before, len(m.textLayout.Lines))
}

func TestView(t *testing.T) {
	m := newViewer(t, defaultOpts())

	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 30)
	assert.Contains(t, lines[1], "doc.pdf")
	assert.Contains(t, lines[1], "Text")
	assert.Contains(t, m.Status(), "sync on · range · page · page 1/5")
}

func TestView_NoDocument(t *testing.T) {
	m := New(defaultOpts())
	m.SetSize(80, 20)

	assert.True(t, testutil.ContainsLine(m.View(), "No document open"))
	_, _, acts := press(m, "y")
	assert.Empty(t, acts)
}
