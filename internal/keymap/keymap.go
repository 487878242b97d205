package keymap

import "strings"

// Binding maps keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playlist", "view"
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playlist
	{ActionAdd, []string{"a"}, "Add song", "playlist"},
	{ActionRemove, []string{"d", "delete"}, "Remove song", "playlist"},
	{ActionImport, []string{"i"}, "Import from file", "playlist"},
	{ActionClear, []string{"c"}, "Clear playlist", "playlist"},
	{ActionPlay, []string{"enter", "p"}, "Play current", "playlist"},
	{ActionNext, []string{"n", "right", "l"}, "Next song", "playlist"},
	{ActionPrev, []string{"b", "left", "h"}, "Previous song", "playlist"},

	// Views
	{ActionList, []string{"1", "esc"}, "Playlist order", "view"},
	{ActionShuffle, []string{"s"}, "Shuffle", "view"},
	{ActionRepeat, []string{"r"}, "Repeat", "view"},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "view"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "view"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ShortHelp renders "key description" pairs for the given actions using the
// first key bound to each. Unbound actions are skipped.
func ShortHelp(r *Resolver, actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		keys := r.KeysFor(a)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+strings.ToLower(r.Description(a)))
	}
	return strings.Join(parts, " • ")
}
