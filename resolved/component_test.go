package resolved

import "testing"

func TestResolvedComponent_LookupAndHasDiagnostics(t *testing.T) {
	c := &ResolvedComponent{
		Type: "Root",
		ProvidersByType: map[string][]CanonicalProvider{
			"Svc": {{Target: Plain("Svc")}},
		},
		Diagnostics: []ResolutionError{{Kind: MissingProvider, Dependency: Plain("Other")}},
	}

	if _, ok := c.Lookup(Plain("Svc")); !ok {
		t.Fatalf("expected Lookup to find a bound key")
	}
	if _, ok := c.Lookup(Plain("Missing")); ok {
		t.Fatalf("expected Lookup to report an unbound key as absent")
	}
	if !c.HasDiagnostics() {
		t.Fatalf("expected HasDiagnostics to be true")
	}

	clean := &ResolvedComponent{Type: "Clean"}
	if clean.HasDiagnostics() {
		t.Fatalf("expected a diagnostics-free component to report HasDiagnostics=false")
	}

	var nilComponent *ResolvedComponent
	if nilComponent.HasDiagnostics() {
		t.Fatalf("expected a nil receiver to be safe and report false")
	}
	if _, ok := nilComponent.Lookup(Plain("Svc")); ok {
		t.Fatalf("expected a nil receiver's Lookup to report absent")
	}
}
