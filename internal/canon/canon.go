// Package canon normalizes raw provider declarations into the uniform
// TypeKey space the rest of the pipeline operates on.
//
// The front-end is expected to spell lazy, weak, and multibinding
// wrapper types using a small set of generic-looking textual
// conventions on the TypeSpec string itself (the same way a real DI
// front-end would spell Lazy<T>/Provider<T>, Weak<T>, or a multibinding
// contribution type): Lazy<X> / Provider<X> for lazy indirection,
// Weak<X> for weak references, and CollectionElementOf<X> /
// MapEntryOf<X> for multibinding contributions referenced as a
// dependency rather than declared via RawProvider.Kind. Canonicalization
// checks the lazy and weak textual wrappers first, then a collection
// contribution declared via Kind, then the textual collection wrappers;
// a RawProvider's own Kind is consulted only for the
// collection-contribution rule, since that is a property of the binding
// declaration rather than of its type name.
package canon

import (
	"strings"

	"github.com/wiregraph/dilink/model"
	"github.com/wiregraph/dilink/resolved"
)

const (
	lazyPrefixA       = "Lazy<"
	lazyPrefixB       = "Provider<"
	weakPrefix        = "Weak<"
	collElementPrefix = "CollectionElementOf<"
	mapEntryPrefix    = "MapEntryOf<"
	wrapperSuffix     = ">"
)

func unwrapOnce(prefix, s string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, wrapperSuffix) {
		return "", false
	}
	return s[len(prefix) : len(s)-len(wrapperSuffix)], true
}

// Key canonicalizes a single TypeSpec into a TypeKey. kind is consulted
// only to detect a collection contribution declared via a RawProvider's
// own Kind field; everything else is decided from the type name's own
// text.
func Key(spec model.TypeSpec, kind model.ProviderKind) resolved.TypeKey {
	s := string(spec)

	if inner, ok := unwrapOnce(lazyPrefixA, s); ok {
		return resolved.Provider(inner)
	}
	if inner, ok := unwrapOnce(lazyPrefixB, s); ok {
		return resolved.Provider(inner)
	}
	if inner, ok := unwrapOnce(weakPrefix, s); ok {
		return resolved.Weak(inner)
	}

	switch kind {
	case model.CollectionElement:
		return resolved.Collection(s, false)
	case model.MapEntry:
		return resolved.Collection(s, true)
	}

	if inner, ok := unwrapOnce(collElementPrefix, s); ok {
		return resolved.Collection(inner, false)
	}
	if inner, ok := unwrapOnce(mapEntryPrefix, s); ok {
		return resolved.Collection(inner, true)
	}

	return resolved.Plain(s)
}

// Provider canonicalizes a full raw provider declaration, including
// every dependency, into a CanonicalProvider. origin carries the
// module/component name the binding was declared in plus its debug
// label, for diagnostics.
func Provider(raw model.RawProvider, originName string) resolved.CanonicalProvider {
	target := Key(raw.Type, raw.Kind)

	deps := make([]resolved.TypeKey, 0, len(raw.Dependencies))
	for _, d := range raw.Dependencies {
		// A dependency TypeSpec carries no RawProvider.Kind of its own;
		// only the textual wrapper conventions apply.
		deps = append(deps, Key(d, model.Standard))
	}

	return resolved.CanonicalProvider{
		Target:               target,
		Dependencies:         deps,
		IsCollectionProvider: target.IsCollection(),
		IsWeak:               target.IsWeak(),
		Origin: resolved.Origin{
			ModuleOrComponent: originName,
			Label:             raw.DebugOrigin,
		},
	}
}
