// Package builder assembles the resolved DAG: for each component it
// runs the scope resolver, dependency checker, and cycle detector (D-F),
// then recurses into every installed subcomponent with the parent's
// ComponentBindings as ancestor scope, wiring up the resulting
// resolved.ResolvedComponent tree (G).
package builder

import (
	"github.com/go-logr/logr"

	"github.com/wiregraph/dilink/internal/canon"
	"github.com/wiregraph/dilink/internal/cycle"
	"github.com/wiregraph/dilink/internal/depcheck"
	"github.com/wiregraph/dilink/internal/linker"
	"github.com/wiregraph/dilink/internal/scope"
	"github.com/wiregraph/dilink/model"
	"github.com/wiregraph/dilink/resolved"
)

// BuildRoots resolves every root component in li, in first-occurrence
// input order, and returns their fully-resolved trees. suggested is the
// module-suggestion index computed once for the whole LinkedInterface
// (see depcheck.BuildSuggestionIndex).
func BuildRoots(log logr.Logger, li *linker.LinkedInterface, suggested map[string][]string) []*resolved.ResolvedComponent {
	roots := li.RootComponents()
	out := make([]*resolved.ResolvedComponent, 0, len(roots))
	for _, root := range roots {
		out = append(out, build(log, li, root, nil, suggested))
	}
	return out
}

func build(log logr.Logger, li *linker.LinkedInterface, c *linker.LinkedComponent, parent *scope.ComponentBindings, suggested map[string][]string) *resolved.ResolvedComponent {
	scopeRes := scope.Resolve(log, li, c, parent)
	rootKey := canon.Key(c.RootType, model.Standard)

	diags := make([]resolved.ResolutionError, 0, len(scopeRes.Diagnostics))
	diags = append(diags, scopeRes.Diagnostics...)
	diags = append(diags, depcheck.Check(log, c.Type, scopeRes.Bindings, rootKey, suggested)...)
	diags = append(diags, cycle.Detect(log, c.Type, scopeRes.Bindings, rootKey)...)

	node := &resolved.ResolvedComponent{
		Type:            c.Type,
		ProvidersByType: scopeRes.Bindings.LocalMap(),
		Diagnostics:     diags,
	}

	for _, sub := range scopeRes.Subcomponents {
		child := build(log, li, sub, scopeRes.Bindings, suggested)
		child.Parent = node
		node.Children = append(node.Children, child)
	}

	if len(diags) > 0 {
		log.Info("component resolved with diagnostics", "component", c.Type, "diagnostics", len(diags))
	} else {
		log.V(1).Info("component resolved cleanly", "component", c.Type)
	}

	return node
}
