// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the viewer stacks the
// text pane under the page pane instead of beside it.
const NarrowThreshold = 100

// ContentOpts lists the fixed rows around the main content area.
type ContentOpts struct {
	HeaderHeight    int
	StatusBarHeight int
}

// ContentHeight is what remains of windowHeight for the active view.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.StatusBarHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// ViewerPanes splits the viewer area between the page pane and the text
// pane. Side by side, the page pane gets the left half; stacked, it gets
// the top half. Odd remainders go to the text pane.
func ViewerPanes(width, height int, stacked bool) (pageW, pageH, textW, textH int) {
	if stacked {
		pageH = height / 2
		return width, pageH, width, height - pageH
	}
	pageW = width / 2
	return pageW, height, width - pageW, height
}
