package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "documents", "viewer"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionViewDocuments, []string{"f1"}, "Document list", "global"},
	{ActionViewViewer, []string{"f2"}, "Viewer", "global"},

	// Document list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "documents"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "documents"},
	{ActionJumpStart, []string{"g", "home"}, "First document", "documents"},
	{ActionJumpEnd, []string{"G", "end"}, "Last document", "documents"},
	{ActionSelect, []string{"enter"}, "Open document", "documents"},
	{ActionFilter, []string{"/"}, "Filter", "documents"},
	{ActionDelete, []string{"d", "delete"}, "Delete document", "documents"},
	{ActionReload, []string{"r"}, "Reload list", "documents"},

	// Viewer
	{ActionSwitchFocus, []string{"tab"}, "Switch pane", "viewer"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "viewer"},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "viewer"},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", "viewer"},
	{ActionHalfPageDown, []string{"ctrl+d"}, "Half page down", "viewer"},
	{ActionPageUp, []string{"pgup", "b"}, "Page up", "viewer"},
	{ActionPageDown, []string{"pgdown", " "}, "Page down", "viewer"},
	{ActionTop, []string{"g", "home"}, "Top", "viewer"},
	{ActionBottom, []string{"G", "end"}, "Bottom", "viewer"},
	{ActionPrevPage, []string{"["}, "Previous page", "viewer"},
	{ActionNextPage, []string{"]"}, "Next page", "viewer"},
	{ActionToggleSync, []string{"s"}, "Toggle scroll sync", "viewer"},
	{ActionCycleSyncMode, []string{"m"}, "Switch sync denominator", "viewer"},
	{ActionAlign, []string{"a"}, "Align other pane now", "viewer"},
	{ActionToggleHighlight, []string{"h"}, "Toggle block highlight", "viewer"},
	{ActionYankPage, []string{"y"}, "Copy current page text", "viewer"},
	{ActionBack, []string{"esc"}, "Back to documents", "viewer"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists binding contexts in display order.
var Contexts = []string{"global", "documents", "viewer"}
