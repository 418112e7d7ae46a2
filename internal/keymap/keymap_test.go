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
		{"global context", "global", 3},
		{"documents context", "documents", 5},
		{"viewer context", "viewer", 10},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d bindings, want at least %d", tt.context, len(result), tt.expectMinLength)
			}
			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) = %v, want empty", tt.context, result)
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding %q has context %q, want %q", b.Action, b.Context, tt.context)
				}
			}
		})
	}
}

func TestBindings_NoDuplicateKeysWithinContext(t *testing.T) {
	for _, ctx := range Contexts {
		seen := make(map[string]Action)
		for _, b := range append(ByContext("global"), ByContext(ctx)...) {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok && prev != b.Action {
					t.Errorf("context %q: key %q bound to both %q and %q", ctx, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
}

func TestBindings_HaveDescriptions(t *testing.T) {
	for _, b := range Bindings {
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
	}
}
