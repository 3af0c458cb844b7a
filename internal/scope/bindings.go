// Package scope builds the per-component provider map (the "Scope
// Resolver" of the resolution pipeline): it expands the transitive
// module and subcomponent closure of a component and constructs the
// immutable, parent-linked ComponentBindings that the dependency checker
// and cycle detector walk.
package scope

import "github.com/wiregraph/dilink/resolved"

// ComponentBindings is an immutable, read-only scope: a map from
// canonical TypeKey string to its bound providers, plus an optional
// parent scope. Lookup walks self then ancestors. A ComponentBindings
// chain is a singly-linked list; child resolutions hold a reference to
// their parent's bindings for the duration of the subtree walk, never
// mutating it.
type ComponentBindings struct {
	local  map[string][]resolved.CanonicalProvider
	order  []string
	parent *ComponentBindings
}

// NewBindings wraps local (already grouped by TypeKey.String()) and an
// optional parent into a ComponentBindings. order records the
// first-occurrence order of local's keys, so passes that must iterate
// "every locally bound key" do so deterministically instead of relying
// on Go's randomized map iteration.
func NewBindings(local map[string][]resolved.CanonicalProvider, order []string, parent *ComponentBindings) *ComponentBindings {
	return &ComponentBindings{local: local, order: order, parent: parent}
}

// Lookup walks self then ancestors, returning the first scope in the
// chain that binds key.
func (b *ComponentBindings) Lookup(key resolved.TypeKey) ([]resolved.CanonicalProvider, bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if ps, ok := cur.local[key.String()]; ok {
			return ps, true
		}
	}
	return nil, false
}

// Local returns the providers bound to key within this scope only,
// never consulting ancestors. The cycle detector relies on this to tell
// a locally-defined binding from one merely visible via an ancestor.
func (b *ComponentBindings) Local(key resolved.TypeKey) ([]resolved.CanonicalProvider, bool) {
	if b == nil {
		return nil, false
	}
	ps, ok := b.local[key.String()]
	return ps, ok
}

// LocalMap returns the scope's own provider map. Callers must not
// mutate the result.
func (b *ComponentBindings) LocalMap() map[string][]resolved.CanonicalProvider {
	return b.local
}

// LocalOrder returns the first-occurrence order of LocalMap's keys.
func (b *ComponentBindings) LocalOrder() []string {
	return b.order
}

// Parent returns the ancestor scope, or nil for a root component.
func (b *ComponentBindings) Parent() *ComponentBindings {
	return b.parent
}
