package keymap

import (
	"slices"
	"strings"
)

// Resolver looks up the action bound to a key, and the keys of an action.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings. A key bound twice resolves to the later
// binding, so contexts passed to For should go from general to specific.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// For indexes the bindings of the given contexts.
func For(contexts ...string) *Resolver {
	var bindings []Binding
	for _, ctx := range contexts {
		bindings = append(bindings, ByContext(ctx)...)
	}
	return NewResolver(bindings)
}

// Resolve returns the action bound to key, or "" when there is none.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint labels an action in a status bar hint.
type Hint struct {
	Action Action
	Label  string
}

// Hints renders "key label" pairs using the first key of each action.
// Unbound actions are left out.
func (r *Resolver) Hints(hints ...Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		keys := r.keys[h.Action]
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+h.Label)
	}
	return strings.Join(parts, " · ")
}
