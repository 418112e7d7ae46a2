// Package pane provides a titled, bordered, scrollable region backed by the
// bubbles viewport. A pane satisfies scrollsync.Pane so that two panes can
// be kept aligned.
package pane

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/scrollsync"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/styles"
)

var _ scrollsync.Pane = (*Model)(nil)

// indicatorWidth is the width of the scroll track drawn in the title line.
const indicatorWidth = 12

// Model is a scrollable pane. Use it through a pointer: a synchronizer keeps
// a reference to it.
type Model struct {
	ui.Base
	id    string
	title string
	zone  *zone.Manager
	vp    viewport.Model
}

// New creates an empty pane. id names the pane's mouse zone.
func New(id, title string) *Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	vp.KeyMap = viewport.KeyMap{}
	return &Model{id: id, title: title, vp: vp}
}

// ID returns the pane's zone identifier.
func (m *Model) ID() string { return m.id }

// SetTitle replaces the title shown above the content.
func (m *Model) SetTitle(title string) { m.title = title }

// SetZone sets the zone manager used to mark the pane for mouse hit-testing.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// HasZone reports whether a zone manager is set.
func (m *Model) HasZone() bool { return m.zone != nil }

// InBounds reports whether a mouse event falls inside the pane as last
// rendered.
func (m *Model) InBounds(msg tea.MouseMsg) bool {
	if m.zone == nil {
		return false
	}
	return m.zone.Get(m.id).InBounds(msg)
}

// SetSize resizes the pane, keeping the viewport inside the panel frame.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	w, h := m.InnerSize()
	m.vp.Width = w
	m.vp.Height = h
	m.vp.SetYOffset(m.vp.YOffset)
}

// SetLines replaces the content. The offset is kept and clamped.
func (m *Model) SetLines(lines []string) {
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.vp.SetYOffset(m.vp.YOffset)
}

// Line returns the offset of the top visible line.
func (m *Model) Line() int { return m.vp.YOffset }

// ScrollBy moves the pane by delta lines and reports whether it moved.
func (m *Model) ScrollBy(delta int) bool {
	return m.ScrollTo(m.vp.YOffset + delta)
}

// ScrollTo moves the top of the pane to line and reports whether it moved.
func (m *Model) ScrollTo(line int) bool {
	before := m.vp.YOffset
	m.vp.SetYOffset(line)
	return m.vp.YOffset != before
}

// MaxLine returns the largest reachable top line.
func (m *Model) MaxLine() int {
	return max(m.vp.TotalLineCount()-m.vp.Height, 0)
}

// ScrollOffset implements scrollsync.Pane.
func (m *Model) ScrollOffset() float64 { return float64(m.vp.YOffset) }

// SetScrollOffset implements scrollsync.Pane. The offset is rounded to the
// nearest line and clamped to the scrollable range.
func (m *Model) SetScrollOffset(offset float64) {
	if math.IsNaN(offset) {
		return
	}
	m.vp.SetYOffset(int(math.Round(offset)))
}

// ContentHeight implements scrollsync.Pane.
func (m *Model) ContentHeight() float64 { return float64(m.vp.TotalLineCount()) }

// VisibleHeight implements scrollsync.Pane.
func (m *Model) VisibleHeight() float64 { return float64(m.vp.Height) }

// Fraction returns how far down the pane is scrolled under d.
func (m *Model) Fraction(d scrollsync.Denominator) float64 {
	return scrollsync.Snapshot(m).Fraction(d)
}

// View renders the pane with its title and scroll position.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	frac := m.Fraction(scrollsync.DenominatorRange)
	title := fmt.Sprintf("%s %s %3d%%", m.title,
		styles.ScrollIndicator(frac, indicatorWidth), int(math.Round(frac*100)))

	out := styles.Panel(title, m.vp.View(), m.Width(), m.Height(), m.IsFocused())
	if m.zone != nil {
		out = m.zone.Mark(m.id, out)
	}
	return out
}
