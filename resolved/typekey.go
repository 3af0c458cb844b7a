package resolved

import "strings"

// TypeKey is an opaque, value-equal identifier for a bound type.
//
// Equality and hashing are by canonical string: anywhere a TypeKey is
// used as a map key, callers key by Key.String(), never by the struct
// value itself, so that the non-identifying flags explained below never
// perturb equality.
//
// isWeak and isProvider are derived predicates, not identity: a weak or
// lazy-indirection dependency on X unwraps to the very same key as a
// plain dependency on X, so it is satisfied by X's ordinary provider.
// isWeak's only effect is on cycle detection (weak edges are exempt);
// isProvider changes neither identity nor cycle detection, since
// lazy-indirection edges participate in cycles like any other edge.
// isCollection is the one flag that
// IS identity: a collection-aggregate binding for X is a distinct
// entity from any single provider of X, so its canonical string carries
// a dedicated "C:" prefix.
//
// Unwrapping is strictly one level: a TypeKey never carries more than
// one wrapper flag, because the canonicalizer's rules are
// first-match-wins (see internal/canon) and apply before a TypeKey is
// ever constructed.
type TypeKey struct {
	raw string

	weak       bool
	provider   bool
	collection bool
	// mapEntry distinguishes a collection-aggregate key populated from
	// key-value-of contributions from one populated from element-of
	// contributions. It carries no canonical-string marker of its own
	// and does not affect equality or hashing; it exists purely so
	// diagnostics and debug output can report "map" vs "set"
	// multibindings accurately.
	mapEntry bool
}

const collectionPrefix = "C:"

// Plain constructs an unwrapped TypeKey: the identity mapping case of
// canonicalization.
func Plain(name string) TypeKey {
	return TypeKey{raw: name}
}

// Weak constructs a TypeKey for a weak reference to name. Its canonical
// string is name itself -- weakness does not change identity, only
// cycle participation.
func Weak(name string) TypeKey {
	return TypeKey{raw: name, weak: true}
}

// Provider constructs a TypeKey for a lazy indirection to name. Its
// canonical string is name itself, for the same reason as Weak.
func Provider(name string) TypeKey {
	return TypeKey{raw: name, provider: true}
}

// Collection constructs a TypeKey for the collection-aggregate bound to
// name. isMapEntry marks whether this aggregate was populated by
// key-value-of (map) contributions as opposed to element-of (set/list)
// contributions. Unlike Weak and Provider, a collection-aggregate
// really is a distinct binding from any single provider of name, so its
// canonical string is prefixed to keep the two from colliding.
func Collection(name string, isMapEntry bool) TypeKey {
	return TypeKey{raw: collectionPrefix + name, collection: true, mapEntry: isMapEntry}
}

// String returns the canonical string form used for equality and
// hashing: the underlying type name, with a "C:" prefix for a
// collection-aggregate key and no prefix otherwise.
func (k TypeKey) String() string { return k.raw }

// IsWeak reports whether k is a weak reference. Does not affect k's
// identity.
func (k TypeKey) IsWeak() bool { return k.weak }

// IsProvider reports whether k is a lazy indirection. Does not affect
// k's identity.
func (k TypeKey) IsProvider() bool { return k.provider }

// IsCollection reports whether k is a collection-aggregate key.
func (k TypeKey) IsCollection() bool { return k.collection }

// IsMapEntry reports whether a collection-aggregate key was populated
// from key-value-of contributions. Always false for non-collection keys.
func (k TypeKey) IsMapEntry() bool { return k.mapEntry }

// Unwrapped returns the underlying type name with the collection prefix
// stripped, if present. For a weak or lazy-indirection key this is
// simply String(), since neither carries a prefix.
func (k TypeKey) Unwrapped() string {
	if k.collection {
		return strings.TrimPrefix(k.raw, collectionPrefix)
	}
	return k.raw
}
