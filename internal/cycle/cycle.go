// Package cycle implements the intra-scope cycle detector: a DFS from a
// component's root type over its local provider map only. Cross-scope
// edges (a dependency satisfied by an ancestor scope) and weak edges
// cannot form cycles and are both break points; lazy-indirection edges
// participate like any other edge.
package cycle

import (
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/wiregraph/dilink/internal/scope"
	"github.com/wiregraph/dilink/resolved"
)

// Detect runs the DFS from rootType over bindings's local provider map
// and returns every cyclicalDependency diagnostic found.
func Detect(log logr.Logger, componentType string, bindings *scope.ComponentBindings, rootType resolved.TypeKey) []resolved.ResolutionError {
	d := &detector{
		bindings:      bindings,
		finished:      sets.New[string](),
		ancestorIndex: make(map[string]int),
		log:           log,
		componentType: componentType,
	}
	d.visit(rootType)
	return d.diagnostics
}

type detector struct {
	bindings *scope.ComponentBindings

	finished      sets.Set[string]
	ancestors     []resolved.TypeKey
	ancestorIndex map[string]int

	diagnostics []resolved.ResolutionError

	log           logr.Logger
	componentType string
}

func (d *detector) visit(k resolved.TypeKey) {
	// Weak edges are excluded from cycle participation; resolved nodes
	// (fully explored, or already reported through) are not revisited.
	if d.finished.Has(k.String()) || k.IsWeak() {
		return
	}

	if i, onPath := d.ancestorIndex[k.String()]; onPath {
		chain := make([]resolved.TypeKey, 0, len(d.ancestors)-i+1)
		chain = append(chain, d.ancestors[i:]...)
		chain = append(chain, k)
		d.log.Info("cyclical dependency", "component", d.componentType, "chain", chainStrings(chain))
		d.diagnostics = append(d.diagnostics, resolved.ResolutionError{
			Kind:  resolved.CyclicalDependency,
			Chain: chain,
		})
		d.finished.Insert(k.String())
		return
	}

	group, ok := d.bindings.Local(k)
	if !ok {
		// Satisfied only by an ancestor scope. Scopes form a tree, so a
		// cross-scope edge can never close a cycle.
		return
	}

	d.ancestorIndex[k.String()] = len(d.ancestors)
	d.ancestors = append(d.ancestors, k)

	for _, cp := range group {
		for _, dep := range cp.Dependencies {
			d.visit(dep)
		}
	}

	d.ancestors = d.ancestors[:len(d.ancestors)-1]
	delete(d.ancestorIndex, k.String())
	d.finished.Insert(k.String())
}

func chainStrings(chain []resolved.TypeKey) []string {
	out := make([]string, 0, len(chain))
	for _, k := range chain {
		out = append(out, k.String())
	}
	return out
}
