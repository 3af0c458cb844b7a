package resolved

// ResolvedComponent is an output node of the resolution pipeline: a
// component with its fully-built provider map, its installed
// subcomponents already resolved as children, and every diagnostic
// produced while resolving it (module/subcomponent closure, duplicate
// bindings, missing providers, cycles).
//
// ResolvedComponent exclusively owns ProvidersByType and Children.
// Parent is a non-owning back-edge set by the builder after a child is
// constructed; it is nil for a component entered as a resolution root.
// Cycles never exist structurally in a ResolvedComponent tree -- only
// the Parent edge points upward.
type ResolvedComponent struct {
	Type string

	// ProvidersByType is immutable once returned from the builder:
	// callers must not mutate it. A key maps to more than one provider
	// when several providers are bound to it; unless every one of them
	// is a collection contribution, the group also has a
	// DuplicateProvider diagnostic in Diagnostics.
	ProvidersByType map[string][]CanonicalProvider

	Children []*ResolvedComponent
	Parent   *ResolvedComponent

	// Diagnostics accumulated while resolving this component and its
	// module closure. Diagnostics produced while resolving a child
	// subcomponent live on that child's node, not here.
	Diagnostics []ResolutionError
}

// Lookup returns the providers bound to key within this component's own
// provider map (not walking ancestors). Use the scope chain during
// resolution; once a ResolvedComponent exists, every provider reachable
// from it through its ancestors has already been validated, so this
// method is only meant for post-resolution inspection/codegen.
func (c *ResolvedComponent) Lookup(key TypeKey) ([]CanonicalProvider, bool) {
	if c == nil {
		return nil, false
	}
	ps, ok := c.ProvidersByType[key.String()]
	return ps, ok
}

// HasDiagnostics reports whether this node (not its descendants) carries
// any diagnostic. The code generator policy documented on package
// dilink ("a non-empty diagnostics list means the generator should not emit
// code for that root") is the caller's to enforce; this is a convenience
// for that caller, nothing more.
func (c *ResolvedComponent) HasDiagnostics() bool {
	return c != nil && len(c.Diagnostics) > 0
}
