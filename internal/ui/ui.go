// Package ui holds what the panel components share: their size and focus
// state and the layout constants of a bordered panel.
package ui

const (
	// ScrollMargin is how many rows stay visible around a list cursor.
	ScrollMargin = 3

	// WheelStep is the number of lines one mouse wheel notch scrolls.
	WheelStep = 3

	// A panel spends one column per side on its border, and one row per
	// side plus a title row vertically.
	panelChromeW = 2
	panelChromeH = 3
)

// Base is embedded by panel components for size and focus bookkeeping.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

func (b *Base) SetSize(width, height int) { b.width, b.height = width, height }

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// InnerSize is the room left for content inside the panel border and
// title. Neither value goes below zero.
func (b Base) InnerSize() (width, height int) {
	return max(b.width-panelChromeW, 0), max(b.height-panelChromeH, 0)
}
