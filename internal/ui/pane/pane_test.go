package pane

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/scrollsync"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func newPane(t *testing.T, lines, height int) *Model {
	t.Helper()
	m := New("page", "Page")
	m.SetSize(40, height)
	m.SetLines(numbered(lines))
	return m
}

func TestPane_Heights(t *testing.T) {
	m := newPane(t, 100, 23)

	assert.Equal(t, 100.0, m.ContentHeight())
	assert.Equal(t, 20.0, m.VisibleHeight())
	assert.Equal(t, 80, m.MaxLine())
}

func TestPane_SetScrollOffsetRoundsAndClamps(t *testing.T) {
	m := newPane(t, 100, 23)

	m.SetScrollOffset(10.6)
	assert.Equal(t, 11.0, m.ScrollOffset())

	m.SetScrollOffset(500)
	assert.Equal(t, 80.0, m.ScrollOffset())

	m.SetScrollOffset(-4)
	assert.Equal(t, 0.0, m.ScrollOffset())
}

func TestPane_ScrollBy(t *testing.T) {
	m := newPane(t, 30, 13)

	assert.True(t, m.ScrollBy(5))
	assert.Equal(t, 5, m.Line())

	assert.True(t, m.ScrollBy(100))
	assert.Equal(t, 20, m.Line())
	assert.False(t, m.ScrollBy(1), "already at the bottom")

	assert.True(t, m.ScrollTo(0))
	assert.False(t, m.ScrollBy(-1), "already at the top")
}

func TestPane_ShortContentDoesNotScroll(t *testing.T) {
	m := newPane(t, 5, 23)

	assert.False(t, m.ScrollBy(3))
	assert.Zero(t, m.Fraction(scrollsync.DenominatorRange))
}

func TestPane_ResizeClampsOffset(t *testing.T) {
	m := newPane(t, 50, 13)
	m.ScrollTo(40)
	require.Equal(t, 40, m.Line())

	m.SetSize(40, 33)
	assert.Equal(t, 20, m.Line())
}

func TestPane_ViewSize(t *testing.T) {
	m := newPane(t, 100, 12)
	m.ScrollTo(3)

	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 12)
	for _, l := range lines {
		assert.Equal(t, 40, testutil.MeasureWidth(l), "line %q", l)
	}
	assert.Contains(t, lines[1], "Page")
	assert.Contains(t, lines[2], "line 3")
}

func TestPane_ViewShowsPercent(t *testing.T) {
	m := newPane(t, 30, 13)
	m.ScrollTo(20)

	assert.True(t, strings.Contains(testutil.StripANSI(m.View()), "100%"))
}

func TestPane_ZeroSizeRendersNothing(t *testing.T) {
	assert.Empty(t, New("text", "Text").View())
}

func TestPane_SyncBetweenPanes(t *testing.T) {
	page := newPane(t, 300, 23)
	text := newPane(t, 120, 23)

	page.ScrollTo(140)
	require.NoError(t, scrollsync.Sync(scrollsync.SourcePage, page, text, scrollsync.DenominatorRange))

	// 140/280 of the page range is half of the text range.
	assert.Equal(t, 50, text.Line())
}
