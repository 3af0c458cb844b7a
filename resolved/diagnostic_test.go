package resolved

import "testing"

func TestResolutionError_ErrorFormatsEveryKind(t *testing.T) {
	cases := []struct {
		name string
		err  ResolutionError
	}{
		{"missingModule", ResolutionError{Kind: MissingModule, ModuleName: "M1"}},
		{"missingSubcomponent", ResolutionError{Kind: MissingSubcomponent, SubcomponentName: "Child"}},
		{"duplicateProvider", ResolutionError{Kind: DuplicateProvider, Duplicates: []CanonicalProvider{{Target: Plain("Svc")}, {Target: Plain("Svc")}}}},
		{"missingProviderNoDependedUpon", ResolutionError{Kind: MissingProvider, Dependency: Plain("App")}},
		{"missingProviderWithDependedUpon", ResolutionError{Kind: MissingProvider, Dependency: Plain("Svc"), DependedUpon: &CanonicalProvider{Target: Plain("App")}}},
		{"cyclicalDependency", ResolutionError{Kind: CyclicalDependency, Chain: []TypeKey{Plain("A"), Plain("B"), Plain("A")}}},
	}

	for _, c := range cases {
		got := c.err.Error()
		if got == "" {
			t.Errorf("%s: expected a non-empty error string", c.name)
		}
	}
}

func TestResolutionError_MissingProviderMentionsDependedUpon(t *testing.T) {
	err := ResolutionError{Kind: MissingProvider, Dependency: Plain("Svc"), DependedUpon: &CanonicalProvider{Target: Plain("App")}}
	msg := err.Error()
	if !contains(msg, "Svc") || !contains(msg, "App") {
		t.Fatalf("expected message to mention both keys, got %q", msg)
	}
}

func TestDiagnosticKind_String(t *testing.T) {
	if MissingModule.String() != "missingModule" {
		t.Fatalf("expected missingModule, got %s", MissingModule.String())
	}
	if DiagnosticKind(99).String() != "unknown" {
		t.Fatalf("expected an out-of-range kind to render as unknown")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
