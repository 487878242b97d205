//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 2},
		{"playlist context", "playlist", 6},
		{"view context", "view", 3},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}

func TestAll_BindingsComplete(t *testing.T) {
	for _, b := range All {
		if b.Action == "" {
			t.Errorf("binding %v has no action", b.Keys)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestShortHelp(t *testing.T) {
	r := NewResolver(All)

	got := ShortHelp(r, ActionAdd, ActionNext, Action("missing"), ActionQuit)
	want := "a add song • n next song • q quit"
	if got != want {
		t.Errorf("ShortHelp() = %q, want %q", got, want)
	}
}

func TestShortHelp_Empty(t *testing.T) {
	r := NewResolver(nil)

	if got := ShortHelp(r, ActionAdd); got != "" {
		t.Errorf("ShortHelp() = %q, want empty", got)
	}
}
