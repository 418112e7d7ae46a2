package doclist

import (
	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/ui/action"
)

// Open requests that a document be opened in the viewer.
type Open struct {
	Document document.Document
}

// ActionType implements action.Action.
func (a Open) ActionType() string { return "doclist.open" }

// Delete requests that a document be removed from the store.
type Delete struct {
	Document document.Document
}

// ActionType implements action.Action.
func (a Delete) ActionType() string { return "doclist.delete" }

// Reload requests a fresh document list.
type Reload struct{}

// ActionType implements action.Action.
func (a Reload) ActionType() string { return "doclist.reload" }

var emit = action.Emitter("doclist")
