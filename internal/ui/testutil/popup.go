package testutil

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/plm/internal/ui/action"
	"github.com/llehouerou/plm/internal/ui/popup"
)

// specialKeys maps key names used in tests to bubbletea key types. Any
// other name is typed as runes.
var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
}

// PopupHarness drives a popup the way the app does and remembers the last
// command it returned.
type PopupHarness struct {
	popup popup.Popup
	last  tea.Cmd
}

// NewPopupHarness wraps p, keeping its Init command as the last command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	return &PopupHarness{popup: p, last: p.Init()}
}

// Press sends each key in turn and returns the command from the final one.
func (h *PopupHarness) Press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		if kt, ok := specialKeys[key]; ok {
			msg = tea.KeyMsg{Type: kt}
		}
		h.popup, cmd = h.popup.Update(msg)
		h.last = cmd
	}
	return cmd
}

// Result runs the last command and returns the action it delivered. It
// fails the test if there is none.
func (h *PopupHarness) Result(t *testing.T) action.Action {
	t.Helper()
	if h.last == nil {
		t.Fatal("popup returned no command")
	}
	msg := h.last()
	am, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("command produced %T, want action.Msg", msg)
	}
	return am.Action
}

// View returns the popup content without styling.
func (h *PopupHarness) View() string {
	return ansi.Strip(h.popup.View())
}

// ViewContains reports whether the unstyled content contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(h.View(), substr)
}
