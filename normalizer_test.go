package bushel

import "testing"

func testNormalizer() *Normalizer {
	return NewNormalizer([]CommodityAlias{
		{Alias: "Yellow Corn", Standard: "Corn"},
		{Alias: "White Corn", Standard: "Corn"},
		{Alias: "Beans", Standard: "Soybeans"},
	})
}

func TestNormalizer_Normalize(t *testing.T) {
	n := testNormalizer()

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "exact alias", raw: "Yellow Corn", want: "Corn"},
		{name: "case insensitive", raw: "WHITE CORN", want: "Corn"},
		{name: "surrounding and inner whitespace", raw: "  yellow   corn ", want: "Corn"},
		{name: "second standard", raw: "beans", want: "Soybeans"},
		{name: "already standard", raw: "Corn", want: "Corn"},
		{name: "unmapped passes through", raw: "Wheat", want: "Wheat"},
		{name: "unmapped is cleaned", raw: "  Hard  Red Wheat ", want: "Hard Red Wheat"},
		{name: "blank is unknown", raw: "", want: Unknown},
		{name: "whitespace only is unknown", raw: "   ", want: Unknown},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := testNormalizer()
	for _, raw := range []string{"Yellow Corn", "beans", "Wheat", ""} {
		once := n.Normalize(raw)
		if twice := n.Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)): %q then %q, want stable", raw, once, twice)
		}
	}
}

func TestNormalizer_Lookup(t *testing.T) {
	n := testNormalizer()

	if std, mapped := n.Lookup("Yellow Corn"); std != "Corn" || !mapped {
		t.Errorf("Lookup(Yellow Corn) = %q, %v; want Corn, true", std, mapped)
	}
	if std, mapped := n.Lookup("Wheat"); std != "Wheat" || mapped {
		t.Errorf("Lookup(Wheat) = %q, %v; want Wheat, false", std, mapped)
	}
	// Blank counts as known: it has a defined destination, Unknown.
	if std, mapped := n.Lookup(""); std != Unknown || !mapped {
		t.Errorf("Lookup(\"\") = %q, %v; want %q, true", std, mapped, Unknown)
	}
}

func TestNormalizer_AliasesOf(t *testing.T) {
	n := testNormalizer()

	got := n.AliasesOf("Corn")
	want := map[string]bool{"Corn": true, "Yellow Corn": true, "White Corn": true}
	if len(got) != len(want) {
		t.Fatalf("AliasesOf(Corn) = %v, want the standard plus both aliases", got)
	}
	for _, a := range got {
		if !want[a] {
			t.Errorf("AliasesOf(Corn) includes unexpected %q", a)
		}
	}
}
