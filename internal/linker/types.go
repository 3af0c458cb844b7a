// Package linker deduplicates and merges declarations sharing a
// canonical type name across compilation units into a LinkedInterface.
//
// The linker never fails and never emits diagnostics: a malformed or
// incomplete graph only becomes visible once the scope resolver and
// dependency checker run over the linked form.
package linker

import "github.com/wiregraph/dilink/model"

// LinkedModule is a module after merging every RawModule sharing its
// Type. List fields are concatenations, in left-to-right input order,
// with duplicates allowed at this stage.
type LinkedModule struct {
	Type            string
	Providers       []model.RawProvider
	IncludedModules []string
	Subcomponents   []string
}

// LinkedComponent is a component after merging every RawComponent
// sharing its Type.
type LinkedComponent struct {
	Type                     string
	IsRoot                   bool
	RootType                 model.TypeSpec
	Providers                []model.RawProvider
	IncludedModules          []string
	Subcomponents            []string
	SeedProvider             model.RawProvider
	ComponentFactoryProvider model.RawProvider
}

// LinkedInterface is a bag of LinkedModules and LinkedComponents. After
// linking, every distinct type name occurs at most once in each bag
// (module and component namespaces are disjoint from each other).
type LinkedInterface struct {
	ModulesByName    map[string]*LinkedModule
	ComponentsByName map[string]*LinkedComponent

	// ModuleOrder and ComponentOrder record first-occurrence order so
	// that any pass iterating "every module/component" produces
	// deterministic output without relying on Go's randomized map
	// iteration.
	ModuleOrder    []string
	ComponentOrder []string
}

// RootComponents returns every linked component marked IsRoot, in
// first-occurrence order.
func (li *LinkedInterface) RootComponents() []*LinkedComponent {
	roots := make([]*LinkedComponent, 0)
	for _, name := range li.ComponentOrder {
		c := li.ComponentsByName[name]
		if c.IsRoot {
			roots = append(roots, c)
		}
	}
	return roots
}
