package model

import "fmt"

// TypeSpec is an opaque canonical-name string identifying a bound type.
//
// The front-end is responsible for normalizing generics, namespaces, and
// language-specific type syntax into this form before it ever reaches
// this module. Nothing downstream inspects a TypeSpec's structure beyond
// the wrapper-prefix conventions documented on resolved.TypeKey.
type TypeSpec string

// ProviderKind tags how a RawProvider's target type should be
// canonicalized. See the canon package for the unwrapping rules.
type ProviderKind int

const (
	// Standard is a plain binding: the provider produces its target type
	// directly.
	Standard ProviderKind = iota
	// CollectionElement contributes one element to a collection-aggregate
	// binding (e.g. a Set<Plugin> multibinding).
	CollectionElement
	// MapEntry contributes one key/value pair to a map-aggregate binding.
	MapEntry
	// Weak labels the binding as a weak reference. Canonicalization does
	// not consult this kind: a weak target is recognized only from a
	// Weak<X> spelling of the type name, and otherwise canonicalizes like
	// Standard.
	Weak
	// LazyIndirection labels the binding as a lazy/deferred reference.
	// Canonicalization does not consult this kind: a lazy target is
	// recognized only from a Lazy<X> or Provider<X> spelling of the type
	// name, and otherwise canonicalizes like Standard.
	LazyIndirection
)

// String renders a ProviderKind for logs and diagnostics.
func (k ProviderKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case CollectionElement:
		return "collectionElement"
	case MapEntry:
		return "mapEntry"
	case Weak:
		return "weak"
	case LazyIndirection:
		return "lazyIndirection"
	default:
		return "unknown"
	}
}

// UnmarshalYAML lets fixtures spell a ProviderKind as its string name
// (e.g. "weak", "collectionElement") instead of its underlying int,
// which is what any hand- or tool-authored RawInterface document would
// actually look like.
func (k *ProviderKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "standard", "":
		*k = Standard
	case "collectionElement":
		*k = CollectionElement
	case "mapEntry":
		*k = MapEntry
	case "weak":
		*k = Weak
	case "lazyIndirection":
		*k = LazyIndirection
	default:
		return fmt.Errorf("model: unknown provider kind %q", s)
	}
	return nil
}

// MarshalYAML renders a ProviderKind as its string name.
func (k ProviderKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// RawProvider is a single, uncanonicalized binding declaration as emitted
// by the front-end.
type RawProvider struct {
	// Type is the target type this provider produces, before any
	// wrapper unwrapping.
	Type TypeSpec
	// Dependencies are the types this provider needs, in declaration
	// order. Order is preserved because it affects deterministic
	// diagnostic ordering downstream.
	Dependencies []TypeSpec
	// DebugOrigin is a human label (source module/component name plus
	// whatever locator the front-end can attach) used only for
	// diagnostics; it has no effect on resolution.
	DebugOrigin string
	// Kind selects the canonicalization rule applied to Type. Entries of
	// Dependencies are canonicalized from their textual wrappers alone.
	Kind ProviderKind
}

// RawModule is a reusable bundle of bindings and subcomponent
// installations, as emitted by the front-end, before linking.
type RawModule struct {
	// Type is the module's canonical type name. Two RawModules sharing a
	// Type are distinct declarations of the same module and are merged
	// by the linker.
	Type             TypeSpec
	Providers        []RawProvider
	IncludedModules  []TypeSpec
	Subcomponents    []TypeSpec
}

// RawComponent is a named scope declaration, before linking.
type RawComponent struct {
	Type TypeSpec
	// IsRoot marks a component as constructible externally (entered as
	// a resolution root) rather than only installable as a subcomponent.
	IsRoot bool
	// RootType is the type this component is responsible for building.
	RootType TypeSpec
	Providers       []RawProvider
	IncludedModules []TypeSpec
	Subcomponents   []TypeSpec
	// SeedProvider is the external input handed into this scope by
	// whichever caller constructs it (parent component, for a
	// subcomponent, or the composition root, for a root component).
	SeedProvider RawProvider
	// ComponentFactoryProvider is injected into the parent scope so an
	// ancestor can instantiate this component. Unused on root
	// components.
	ComponentFactoryProvider RawProvider
}

// RawInterface is the complete, unlinked set of DI declarations gathered
// across every compilation unit the front-end processed.
type RawInterface struct {
	Modules    []RawModule
	Components []RawComponent
}
