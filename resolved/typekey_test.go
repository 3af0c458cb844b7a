package resolved

import "testing"

func TestTypeKey_Constructors(t *testing.T) {
	cases := []struct {
		name       string
		key        TypeKey
		wantString string
		wantWeak   bool
		wantProv   bool
		wantColl   bool
	}{
		{"plain", Plain("Svc"), "Svc", false, false, false},
		{"weak", Weak("Svc"), "Svc", true, false, false},
		{"provider", Provider("Svc"), "Svc", false, true, false},
		{"collection", Collection("Svc", false), "C:Svc", false, false, true},
	}

	for _, c := range cases {
		if c.key.String() != c.wantString {
			t.Errorf("%s: expected string %s, got %s", c.name, c.wantString, c.key.String())
		}
		if c.key.IsWeak() != c.wantWeak {
			t.Errorf("%s: expected IsWeak=%v", c.name, c.wantWeak)
		}
		if c.key.IsProvider() != c.wantProv {
			t.Errorf("%s: expected IsProvider=%v", c.name, c.wantProv)
		}
		if c.key.IsCollection() != c.wantColl {
			t.Errorf("%s: expected IsCollection=%v", c.name, c.wantColl)
		}
	}
}

func TestTypeKey_Unwrapped(t *testing.T) {
	for _, k := range []TypeKey{Plain("Svc"), Weak("Svc"), Provider("Svc"), Collection("Svc", true)} {
		if k.Unwrapped() != "Svc" {
			t.Errorf("expected Unwrapped()=Svc for %s, got %s", k.String(), k.Unwrapped())
		}
	}
}

func TestTypeKey_WeakAndProviderShareIdentityWithPlain(t *testing.T) {
	plain := Plain("Svc")
	weak := Weak("Svc")
	lazy := Provider("Svc")

	if plain.String() != weak.String() || plain.String() != lazy.String() {
		t.Fatalf("expected Plain, Weak, and Provider to share one canonical string for the same name, got %q, %q, %q", plain.String(), weak.String(), lazy.String())
	}
}

func TestTypeKey_MapEntryDoesNotAffectCanonicalString(t *testing.T) {
	set := Collection("Route", false)
	mapKey := Collection("Route", true)
	if set.String() != mapKey.String() {
		t.Fatalf("expected mapEntry flag to not change the canonical string, got %s vs %s", set.String(), mapKey.String())
	}
	if set.IsMapEntry() {
		t.Fatalf("expected the set-style constructor to leave IsMapEntry false")
	}
	if !mapKey.IsMapEntry() {
		t.Fatalf("expected the map-style constructor to set IsMapEntry true")
	}
}
