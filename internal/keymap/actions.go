// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionViewDocuments Action = "view_documents"
	ActionViewViewer    Action = "view_viewer"

	// Document list actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - open document
	ActionFilter    Action = "filter" // / - filter documents
	ActionDelete    Action = "delete"
	ActionReload    Action = "reload"

	// Viewer actions
	ActionSwitchFocus     Action = "switch_focus"
	ActionScrollUp        Action = "scroll_up"
	ActionScrollDown      Action = "scroll_down"
	ActionHalfPageUp      Action = "half_page_up"
	ActionHalfPageDown    Action = "half_page_down"
	ActionPageUp          Action = "page_up"
	ActionPageDown        Action = "page_down"
	ActionTop             Action = "top"
	ActionBottom          Action = "bottom"
	ActionPrevPage        Action = "prev_page"
	ActionNextPage        Action = "next_page"
	ActionToggleSync      Action = "toggle_sync"
	ActionCycleSyncMode   Action = "cycle_sync_mode"
	ActionAlign           Action = "align" // align the other pane once, even with sync off
	ActionToggleHighlight Action = "toggle_highlight"
	ActionYankPage        Action = "yank_page"
	ActionBack            Action = "back"
)
