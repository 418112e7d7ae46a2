package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyles_CursorHighlightsRow(t *testing.T) {
	th := T()
	s := th.S()

	assert.Equal(t, th.BgCursor, s.Cursor.GetBackground())
	assert.Equal(t, th.FgBase, s.Cursor.GetForeground())
}

func TestS_BuiltOnce(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}
