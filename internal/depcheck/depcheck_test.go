package depcheck

import (
	"testing"

	"github.com/go-logr/logr/testr"

	"github.com/wiregraph/dilink/internal/linker"
	"github.com/wiregraph/dilink/internal/scope"
	"github.com/wiregraph/dilink/model"
	"github.com/wiregraph/dilink/resolved"
)

func TestBuildSuggestionIndex_DedupesPreservingOrder(t *testing.T) {
	li := &linker.LinkedInterface{
		ModuleOrder: []string{"M1", "M2", "M3"},
		ModulesByName: map[string]*linker.LinkedModule{
			"M1": {Type: "M1", Providers: []model.RawProvider{{Type: "Svc"}}},
			"M2": {Type: "M2", Providers: []model.RawProvider{{Type: "Svc"}, {Type: "Svc"}, {Type: "Other"}}},
			"M3": {Type: "M3", Providers: []model.RawProvider{{Type: "Svc"}}},
		},
	}

	idx := BuildSuggestionIndex(li)
	got := idx["Svc"]
	if len(got) != 3 || got[0] != "M1" || got[1] != "M2" || got[2] != "M3" {
		t.Fatalf("expected [M1 M2 M3] in first-occurrence order, got %v", got)
	}
	if len(idx["Other"]) != 1 || idx["Other"][0] != "M2" {
		t.Fatalf("expected [M2] for Other, got %v", idx["Other"])
	}
}

func TestCheck_MissingLocalDependency(t *testing.T) {
	local := map[string][]resolved.CanonicalProvider{
		"App": {{Target: resolved.Plain("App"), Dependencies: []resolved.TypeKey{resolved.Plain("Svc")}}},
	}
	bindings := scope.NewBindings(local, []string{"App"}, nil)

	diags := Check(testr.New(t), "Root", bindings, resolved.Plain("App"), nil)
	if len(diags) != 1 || diags[0].Kind != resolved.MissingProvider {
		t.Fatalf("expected exactly one missingProvider diagnostic, got %+v", diags)
	}
	if diags[0].Dependency.String() != "Svc" {
		t.Fatalf("expected dependency=Svc, got %s", diags[0].Dependency.String())
	}
	if diags[0].DependedUpon == nil || diags[0].DependedUpon.Target.String() != "App" {
		t.Fatalf("expected dependedUpon=App, got %+v", diags[0].DependedUpon)
	}
}

func TestCheck_SatisfiedByAncestorScope(t *testing.T) {
	parent := scope.NewBindings(map[string][]resolved.CanonicalProvider{
		"Svc": {{Target: resolved.Plain("Svc")}},
	}, []string{"Svc"}, nil)
	local := map[string][]resolved.CanonicalProvider{
		"App": {{Target: resolved.Plain("App"), Dependencies: []resolved.TypeKey{resolved.Plain("Svc")}}},
	}
	child := scope.NewBindings(local, []string{"App"}, parent)

	diags := Check(testr.New(t), "Child", child, resolved.Plain("App"), nil)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
}

func TestCheck_RootTypeIsASyntheticDependency(t *testing.T) {
	bindings := scope.NewBindings(map[string][]resolved.CanonicalProvider{}, nil, nil)

	diags := Check(testr.New(t), "Root", bindings, resolved.Plain("App"), nil)
	if len(diags) != 1 || diags[0].Kind != resolved.MissingProvider {
		t.Fatalf("expected exactly one missingProvider diagnostic for the root type, got %+v", diags)
	}
	if diags[0].Dependency.String() != "App" {
		t.Fatalf("expected dependency=App, got %s", diags[0].Dependency.String())
	}
	if diags[0].DependedUpon != nil {
		t.Fatalf("expected dependedUpon=nil for a synthetic root-type requirement, got %+v", diags[0].DependedUpon)
	}
}

func TestCheck_SuggestedModulesArePopulated(t *testing.T) {
	local := map[string][]resolved.CanonicalProvider{
		"App": {{Target: resolved.Plain("App"), Dependencies: []resolved.TypeKey{resolved.Plain("Svc")}}},
	}
	bindings := scope.NewBindings(local, []string{"App"}, nil)
	suggested := map[string][]string{"Svc": {"MSvc"}}

	diags := Check(testr.New(t), "Root", bindings, resolved.Plain("App"), suggested)
	if len(diags) != 1 || len(diags[0].SuggestedModules) != 1 || diags[0].SuggestedModules[0] != "MSvc" {
		t.Fatalf("expected suggestedModules=[MSvc], got %+v", diags)
	}
}

func TestCheck_WeakAndLazyDependenciesAreStillCheckedForPresence(t *testing.T) {
	local := map[string][]resolved.CanonicalProvider{
		"App": {{
			Target: resolved.Plain("App"),
			Dependencies: []resolved.TypeKey{
				resolved.Weak("Svc"),
				resolved.Provider("Other"),
			},
		}},
	}
	bindings := scope.NewBindings(local, []string{"App"}, nil)

	diags := Check(testr.New(t), "Root", bindings, resolved.Plain("App"), nil)
	if len(diags) != 2 {
		t.Fatalf("expected both the weak and lazy dependency to be reported missing, got %+v", diags)
	}
}

func TestCheck_WeakAndLazyDependenciesAreSatisfiedByTheirUnwrappedProvider(t *testing.T) {
	local := map[string][]resolved.CanonicalProvider{
		"App": {{
			Target: resolved.Plain("App"),
			Dependencies: []resolved.TypeKey{
				resolved.Weak("Svc"),
				resolved.Provider("Other"),
			},
		}},
		"Svc":   {{Target: resolved.Plain("Svc")}},
		"Other": {{Target: resolved.Plain("Other")}},
	}
	bindings := scope.NewBindings(local, []string{"App", "Svc", "Other"}, nil)

	diags := Check(testr.New(t), "Root", bindings, resolved.Plain("App"), nil)
	if len(diags) != 0 {
		t.Fatalf("expected the weak and lazy dependencies to be satisfied by the ordinary providers of Svc and Other, got %+v", diags)
	}
}
