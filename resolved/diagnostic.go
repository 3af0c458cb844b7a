package resolved

import "fmt"

// DiagnosticKind tags the variant carried by a ResolutionError.
type DiagnosticKind int

const (
	// MissingModule: a module name was referenced (via a component's or
	// a module's includedModules list) but is absent from the
	// LinkedInterface.
	MissingModule DiagnosticKind = iota
	// MissingSubcomponent: a component/module referenced a subcomponent
	// by name that is absent from the LinkedInterface.
	MissingSubcomponent
	// DuplicateProvider: more than one non-collection provider is bound
	// to the same TypeKey within a component's own scope.
	DuplicateProvider
	// MissingProvider: no provider in the scope chain satisfies a
	// declared dependency (or a component's rootType).
	MissingProvider
	// CyclicalDependency: an intra-scope dependency cycle was found.
	CyclicalDependency
)

func (k DiagnosticKind) String() string {
	switch k {
	case MissingModule:
		return "missingModule"
	case MissingSubcomponent:
		return "missingSubcomponent"
	case DuplicateProvider:
		return "duplicateProvider"
	case MissingProvider:
		return "missingProvider"
	case CyclicalDependency:
		return "cyclicalDependency"
	default:
		return "unknown"
	}
}

// ResolutionError is the single diagnostic sum type emitted by the
// resolution pipeline. Diagnostics are collected, never thrown: a
// ResolutionError value is data, not a Go error flow-control mechanism,
// though it implements the error interface so it composes cleanly with
// logging and %w-free formatting helpers.
type ResolutionError struct {
	Kind DiagnosticKind

	// ModuleName is set for MissingModule.
	ModuleName string
	// SubcomponentName is set for MissingSubcomponent.
	SubcomponentName string

	// Duplicates is set for DuplicateProvider: every provider bound to
	// the offending key, in discovery order.
	Duplicates []CanonicalProvider

	// Dependency is set for MissingProvider: the key that could not be
	// satisfied.
	Dependency TypeKey
	// DependedUpon is the provider whose declared dependency is
	// unsatisfied, or nil when the unsatisfied dependency is a
	// component's synthetic rootType requirement.
	DependedUpon *CanonicalProvider
	// SuggestedModules names modules anywhere in the LinkedInterface
	// whose providers could satisfy Dependency. This is a global hint,
	// not an assertion that installing the module would resolve the
	// component in scope.
	SuggestedModules []string

	// Chain is set for CyclicalDependency: the ordered key chain with
	// Chain[0] == Chain[len(Chain)-1].
	Chain []TypeKey
}

// Error implements the error interface.
func (e ResolutionError) Error() string {
	switch e.Kind {
	case MissingModule:
		return fmt.Sprintf("missing module %q", e.ModuleName)
	case MissingSubcomponent:
		return fmt.Sprintf("missing subcomponent %q", e.SubcomponentName)
	case DuplicateProvider:
		return fmt.Sprintf("duplicate provider for %q (%d bindings)", dupKey(e.Duplicates), len(e.Duplicates))
	case MissingProvider:
		if e.DependedUpon == nil {
			return fmt.Sprintf("missing provider for %q (required to construct the component's root type)", e.Dependency)
		}
		return fmt.Sprintf("missing provider for %q (depended on by %q)", e.Dependency, e.DependedUpon.Target)
	case CyclicalDependency:
		return fmt.Sprintf("cyclical dependency: %s", chainString(e.Chain))
	default:
		return "resolution error"
	}
}

func dupKey(dups []CanonicalProvider) string {
	if len(dups) == 0 {
		return ""
	}
	return dups[0].Target.String()
}

func chainString(chain []TypeKey) string {
	s := ""
	for i, k := range chain {
		if i > 0 {
			s += " -> "
		}
		s += k.String()
	}
	return s
}
