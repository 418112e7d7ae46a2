package cursor

import (
	"testing"

	"github.com/llehouerou/folio/internal/keymap"
)

func TestNew(t *testing.T) {
	c := New(5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("New() = pos %d offset %d, want 0 0", c.Pos(), c.Offset())
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"move down within bounds no scroll", 2, 0, 1, 10, 5, 1, 0},
		{"move down triggers scroll with margin", 2, 0, 3, 10, 5, 3, 1},
		{"move up clamps to 0", 2, 2, -5, 10, 5, 0, 0},
		{"move down clamps to len-1", 2, 5, 15, 10, 5, 9, 5},
		{"list shorter than height", 2, 0, 3, 3, 10, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.initial, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Move() pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Move() offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMove_EmptyListResets(t *testing.T) {
	c := New(2)
	c.Jump(5, 10, 5)
	c.Move(1, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("Move() on empty list = pos %d offset %d, want 0 0", c.Pos(), c.Offset())
	}
}

func TestJump_Clamps(t *testing.T) {
	c := New(2)
	c.Jump(100, 10, 5)
	if c.Pos() != 9 {
		t.Errorf("Jump(100) pos = %d, want 9", c.Pos())
	}
	c.Jump(-5, 10, 5)
	if c.Pos() != 0 {
		t.Errorf("Jump(-5) pos = %d, want 0", c.Pos())
	}
}

func TestMarginLargerThanHeight(t *testing.T) {
	c := New(3)
	c.Jump(4, 10, 2)
	if start, end := c.VisibleRange(10, 2); c.Pos() < start || c.Pos() >= end {
		t.Errorf("cursor %d outside visible range [%d, %d)", c.Pos(), start, end)
	}
}

func TestClick(t *testing.T) {
	c := New(0)
	c.Jump(7, 20, 5) // offset becomes 3

	if !c.Click(1, 20, 5) {
		t.Fatal("Click(1) = false, want true")
	}
	if c.Pos() != 4 {
		t.Errorf("Click(1) pos = %d, want 4", c.Pos())
	}
	if c.Click(5, 20, 5) {
		t.Error("Click below the list area should miss")
	}
	if c.Click(2, 3, 5) {
		t.Error("Click past the last item should miss")
	}
}

func TestClamp(t *testing.T) {
	c := New(2)
	c.Jump(9, 10, 5)
	c.Clamp(4, 5)
	if c.Pos() != 3 || c.Offset() != 0 {
		t.Errorf("Clamp() = pos %d offset %d, want 3 0", c.Pos(), c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	if s, e := c.VisibleRange(0, 5); s != 0 || e != 0 {
		t.Errorf("empty VisibleRange = [%d, %d)", s, e)
	}
	c.Jump(9, 10, 4)
	if s, e := c.VisibleRange(10, 4); s != 6 || e != 10 {
		t.Errorf("VisibleRange = [%d, %d), want [6, 10)", s, e)
	}
}

func TestHandleAction(t *testing.T) {
	c := New(1)

	if !c.HandleAction(keymap.ActionJumpEnd, 10, 4) || c.Pos() != 9 {
		t.Errorf("JumpEnd pos = %d, want 9", c.Pos())
	}
	if !c.HandleAction(keymap.ActionMoveUp, 10, 4) || c.Pos() != 8 {
		t.Errorf("MoveUp pos = %d, want 8", c.Pos())
	}
	if !c.HandleAction(keymap.ActionJumpStart, 10, 4) || c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart = pos %d offset %d", c.Pos(), c.Offset())
	}
	if !c.HandleAction(keymap.ActionMoveDown, 10, 4) || c.Pos() != 1 {
		t.Errorf("MoveDown pos = %d, want 1", c.Pos())
	}
	if c.HandleAction(keymap.ActionSelect, 10, 4) {
		t.Error("HandleAction(select) = true, want false")
	}
}
