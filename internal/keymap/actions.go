// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playlist editing
	ActionAdd    Action = "add"    // a - prompt for title, artist, duration
	ActionRemove Action = "remove" // d - prompt for a title to remove
	ActionImport Action = "import" // i - prompt for a music file path
	ActionClear  Action = "clear"  // c - confirm, then empty the playlist

	// Cursor movement
	ActionPlay Action = "play" // enter - show the current song
	ActionNext Action = "next"
	ActionPrev Action = "prev"

	// Views
	ActionList    Action = "list"    // 1 - playlist order
	ActionShuffle Action = "shuffle" // s - new shuffled order
	ActionRepeat  Action = "repeat"  // r - playlist from the start

	// Scrolling
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
)
