// Package depcheck verifies that every provider's declared dependencies,
// and a component's synthetic root-type requirement, are satisfiable
// somewhere in the component's scope chain (self union ancestors).
package depcheck

import (
	"github.com/go-logr/logr"

	"github.com/wiregraph/dilink/internal/canon"
	"github.com/wiregraph/dilink/internal/linker"
	"github.com/wiregraph/dilink/internal/scope"
	"github.com/wiregraph/dilink/resolved"
)

// BuildSuggestionIndex computes, once for an entire LinkedInterface, the
// set of module names whose providers could satisfy each TypeKey. This
// is a global hint used to populate ResolutionError.SuggestedModules; it
// asserts nothing about whether installing the module would actually
// resolve any particular component's scope.
//
// The source does not dedupe suggestions explicitly; this index dedupes
// while preserving first-occurrence order, which is an allowed
// implementation choice (see DESIGN.md).
func BuildSuggestionIndex(li *linker.LinkedInterface) map[string][]string {
	index := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, name := range li.ModuleOrder {
		m := li.ModulesByName[name]
		for _, p := range m.Providers {
			key := canon.Key(p.Type, p.Kind).String()
			if seen[key] == nil {
				seen[key] = make(map[string]bool)
			}
			if seen[key][m.Type] {
				continue
			}
			seen[key][m.Type] = true
			index[key] = append(index[key], m.Type)
		}
	}
	return index
}

// Check runs both dependency-checker passes for a single component and
// returns the diagnostics produced.
func Check(log logr.Logger, componentType string, bindings *scope.ComponentBindings, rootType resolved.TypeKey, suggested map[string][]string) []resolved.ResolutionError {
	var diags []resolved.ResolutionError

	// 1. Binding dependencies: only providers defined in this scope,
	// never ones merely visible via an ancestor.
	for _, key := range bindings.LocalOrder() {
		for _, cp := range bindings.LocalMap()[key] {
			binding := cp
			for _, dep := range binding.Dependencies {
				if _, ok := bindings.Lookup(dep); ok {
					continue
				}
				log.V(1).Info("missing provider", "component", componentType, "dependency", dep.String(), "dependedUponBy", binding.Target.String())
				diags = append(diags, resolved.ResolutionError{
					Kind:             resolved.MissingProvider,
					Dependency:       dep,
					DependedUpon:     &binding,
					SuggestedModules: suggested[dep.String()],
				})
			}
		}
	}

	// 2. Root dependency: the component's own rootType is a synthetic
	// external dependency.
	if _, ok := bindings.Lookup(rootType); !ok {
		log.V(1).Info("missing provider for root type", "component", componentType, "rootType", rootType.String())
		diags = append(diags, resolved.ResolutionError{
			Kind:             resolved.MissingProvider,
			Dependency:       rootType,
			DependedUpon:     nil,
			SuggestedModules: suggested[rootType.String()],
		})
	}

	return diags
}
