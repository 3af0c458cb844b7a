package linker

import (
	"github.com/go-logr/logr"

	"github.com/wiregraph/dilink/model"
)

// Link folds a RawInterface across compilation units into a
// LinkedInterface. Merging is associative and commutative in semantic
// effect but preserves left-to-right append order in every list field,
// which is what keeps later diagnostic ordering deterministic.
func Link(log logr.Logger, raw model.RawInterface) *LinkedInterface {
	li := &LinkedInterface{
		ModulesByName:    make(map[string]*LinkedModule),
		ComponentsByName: make(map[string]*LinkedComponent),
	}

	for _, rm := range raw.Modules {
		name := string(rm.Type)
		existing, ok := li.ModulesByName[name]
		if !ok {
			li.ModuleOrder = append(li.ModuleOrder, name)
			li.ModulesByName[name] = &LinkedModule{
				Type:            name,
				Providers:       append([]model.RawProvider(nil), rm.Providers...),
				IncludedModules: toStrings(rm.IncludedModules),
				Subcomponents:   toStrings(rm.Subcomponents),
			}
			continue
		}
		log.V(1).Info("merging module declaration", "module", name)
		existing.Providers = append(existing.Providers, rm.Providers...)
		existing.IncludedModules = append(existing.IncludedModules, toStrings(rm.IncludedModules)...)
		existing.Subcomponents = append(existing.Subcomponents, toStrings(rm.Subcomponents)...)
	}

	for _, rc := range raw.Components {
		name := string(rc.Type)
		existing, ok := li.ComponentsByName[name]
		if !ok {
			li.ComponentOrder = append(li.ComponentOrder, name)
			li.ComponentsByName[name] = &LinkedComponent{
				Type:                     name,
				IsRoot:                   rc.IsRoot,
				RootType:                 rc.RootType,
				Providers:                append([]model.RawProvider(nil), rc.Providers...),
				IncludedModules:          toStrings(rc.IncludedModules),
				Subcomponents:            toStrings(rc.Subcomponents),
				SeedProvider:             rc.SeedProvider,
				ComponentFactoryProvider: rc.ComponentFactoryProvider,
			}
			continue
		}
		log.V(1).Info("merging component declaration", "component", name)
		existing.IsRoot = existing.IsRoot || rc.IsRoot
		existing.Providers = append(existing.Providers, rc.Providers...)
		existing.IncludedModules = append(existing.IncludedModules, toStrings(rc.IncludedModules)...)
		existing.Subcomponents = append(existing.Subcomponents, toStrings(rc.Subcomponents)...)
	}

	log.Info("linked interface", "modules", len(li.ModuleOrder), "components", len(li.ComponentOrder))
	return li
}

func toStrings(specs []model.TypeSpec) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, string(s))
	}
	return out
}
