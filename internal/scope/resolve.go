package scope

import (
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/wiregraph/dilink/internal/canon"
	"github.com/wiregraph/dilink/internal/linker"
	"github.com/wiregraph/dilink/model"
	"github.com/wiregraph/dilink/resolved"
)

// Result is the output of resolving a single component's scope: the
// ComponentBindings itself, the diagnostics produced while building it,
// and the subcomponents it installs (already looked up in the
// LinkedInterface, in discovery order) so the builder can recurse into
// them.
type Result struct {
	Bindings      *ComponentBindings
	Diagnostics   []resolved.ResolutionError
	Subcomponents []*linker.LinkedComponent
}

// Resolve expands c's module and subcomponent closure and builds its
// provider map. parent is the enclosing component's bindings (nil for a
// root component).
func Resolve(log logr.Logger, li *linker.LinkedInterface, c *linker.LinkedComponent, parent *ComponentBindings) *Result {
	res := &Result{}

	// 1. Module closure: BFS from c.IncludedModules.
	seenModules := sets.New[string]()
	moduleQueue := append([]string(nil), c.IncludedModules...)
	moduleClosure := make([]*linker.LinkedModule, 0)
	for len(moduleQueue) > 0 {
		name := moduleQueue[0]
		moduleQueue = moduleQueue[1:]
		if seenModules.Has(name) {
			continue
		}
		seenModules.Insert(name)

		m, ok := li.ModulesByName[name]
		if !ok {
			res.Diagnostics = append(res.Diagnostics, resolved.ResolutionError{
				Kind:       resolved.MissingModule,
				ModuleName: name,
			})
			continue
		}
		moduleClosure = append(moduleClosure, m)
		moduleQueue = append(moduleQueue, m.IncludedModules...)
	}

	// 2. Subcomponent closure: c's own subcomponents, then every
	// module-in-closure's subcomponents, in discovery order, deduped.
	seenSubcomponents := sets.New[string]()
	subcomponentNames := make([]string, 0)
	addSubcomponentNames := func(names []string) {
		for _, n := range names {
			if seenSubcomponents.Has(n) {
				continue
			}
			seenSubcomponents.Insert(n)
			subcomponentNames = append(subcomponentNames, n)
		}
	}
	addSubcomponentNames(c.Subcomponents)
	for _, m := range moduleClosure {
		addSubcomponentNames(m.Subcomponents)
	}

	for _, name := range subcomponentNames {
		sub, ok := li.ComponentsByName[name]
		if !ok {
			res.Diagnostics = append(res.Diagnostics, resolved.ResolutionError{
				Kind:             resolved.MissingSubcomponent,
				SubcomponentName: name,
			})
			continue
		}
		res.Subcomponents = append(res.Subcomponents, sub)
	}

	// 3. Provider map: component-own providers, then module providers
	// in BFS order, then the seed provider, then the component's own
	// component-factory provider, then every resolved subcomponent's
	// component-factory provider. seedProvider and componentFactoryProvider
	// are always members of a component's final provider map, even
	// though componentFactoryProvider is unused within a root component's
	// own scope -- it exists so the root component's parent (the
	// composition entry point, conceptually) could construct it.
	grouped := make(map[string][]resolved.CanonicalProvider)
	order := make([]string, 0)
	add := func(raw model.RawProvider, originName string) {
		cp := canon.Provider(raw, originName)
		k := cp.Target.String()
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], cp)
	}

	for _, p := range c.Providers {
		add(p, c.Type)
	}
	for _, m := range moduleClosure {
		for _, p := range m.Providers {
			add(p, m.Type)
		}
	}
	add(c.SeedProvider, c.Type)
	add(c.ComponentFactoryProvider, c.Type)
	for _, sub := range res.Subcomponents {
		add(sub.ComponentFactoryProvider, sub.Type)
	}

	for _, k := range order {
		group := grouped[k]
		if len(group) <= 1 {
			continue
		}
		allCollection := true
		for _, cp := range group {
			if !cp.IsCollectionProvider {
				allCollection = false
				break
			}
		}
		if !allCollection {
			log.V(1).Info("duplicate provider", "component", c.Type, "key", k, "count", len(group))
			res.Diagnostics = append(res.Diagnostics, resolved.ResolutionError{
				Kind:       resolved.DuplicateProvider,
				Duplicates: append([]resolved.CanonicalProvider(nil), group...),
			})
		}
	}

	res.Bindings = NewBindings(grouped, order, parent)
	return res
}
