package app

import (
	"log/slog"

	"github.com/llehouerou/folio/internal/scrollsync"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/ui/viewer"
)

// saveView persists the viewer position of the open document when it
// changed since the last save. The state manager debounces the writes.
func (m *Model) saveView() {
	if !m.Viewer.HasDocument() || m.pending != nil {
		return
	}
	v := viewStateOf(m.Viewer.Document().Ref, m.Viewer.Position())
	if v == m.lastSaved {
		return
	}
	m.lastSaved = v
	m.StateMgr.SaveView(v)
}

func viewStateOf(ref string, p viewer.Position) state.ViewState {
	return state.ViewState{
		DocumentRef: ref,
		PageOffset:  p.PageOffset,
		TextOffset:  p.TextOffset,
		Focus:       p.Focus.String(),
		SyncEnabled: p.SyncEnabled,
	}
}

// positionFromState converts a saved view. An unknown focus falls back to
// the page pane.
func positionFromState(v state.ViewState) viewer.Position {
	focus, err := scrollsync.ParseSource(v.Focus)
	if err != nil {
		slog.Debug("saved focus ignored", "ref", v.DocumentRef, "error", err)
		focus = scrollsync.SourcePage
	}
	return viewer.Position{
		PageOffset:  v.PageOffset,
		TextOffset:  v.TextOffset,
		Focus:       focus,
		SyncEnabled: v.SyncEnabled,
	}
}
