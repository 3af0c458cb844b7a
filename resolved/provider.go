package resolved

// Origin is the debug provenance of a CanonicalProvider: which
// module/component declared it, and the human label the front-end
// attached (if any). It has no effect on resolution and exists solely
// to make diagnostics actionable.
type Origin struct {
	ModuleOrComponent string
	Label             string
}

// CanonicalProvider is a binding after canonicalization: its target and
// dependency types have been rewritten into the uniform TypeKey space
// (lazy/weak/collection wrappers unwrapped exactly once).
type CanonicalProvider struct {
	Target TypeKey
	// Dependencies preserves declaration order; order affects
	// deterministic diagnostic ordering in the dependency checker and
	// cycle detector.
	Dependencies []TypeKey

	IsCollectionProvider bool
	IsWeak               bool

	Origin Origin
}
