package viewer

import "github.com/llehouerou/folio/internal/ui/action"

// Back requests a return to the document list.
type Back struct{}

// ActionType implements action.Action.
func (a Back) ActionType() string { return "viewer.back" }

// Yank carries the text of the page in view, for the clipboard.
type Yank struct {
	Page int
	Text string
}

// ActionType implements action.Action.
func (a Yank) ActionType() string { return "viewer.yank" }

var emit = action.Emitter("viewer")
