package domain

import (
	"encoding/json"
	"testing"
)

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"classic":  VariantClassic,
		"KILLER":   VariantKiller,
		" x ":      VariantX,
		"hyper":    VariantHyper,
		"mini":     VariantMini,
		"mega":     VariantMega,
		"":         VariantClassic,
		"whatever": VariantClassic,
	}
	for in, want := range cases {
		if got := ParseVariant(in); got != want {
			t.Errorf("ParseVariant(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"beginner": Beginner,
		"Easy":     Easy,
		"medium":   Medium,
		"HARD":     Hard,
		" expert ": Expert,
		"":         Medium,
		"nonsense": Medium,
	}
	for in, want := range cases {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestTiersAscending(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		if Tiers[i] <= Tiers[i-1] {
			t.Fatalf("Tiers not ascending at %d: %v", i, Tiers)
		}
	}
}

func TestTechniqueJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(XWing)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"x_wing"` {
		t.Fatalf("marshal = %s, want \"x_wing\"", data)
	}
	var back Technique
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != XWing {
		t.Fatalf("round trip = %s, want x_wing", back)
	}
	if err := json.Unmarshal([]byte(`"not_a_technique"`), &back); err == nil {
		t.Fatal("unknown technique name must fail to parse")
	}
}

func TestLadderCoversAllNames(t *testing.T) {
	if len(Ladder) != len(techniqueNames) {
		t.Fatalf("ladder has %d rungs, names table has %d", len(Ladder), len(techniqueNames))
	}
	for i, tech := range Ladder {
		if int(tech) != i {
			t.Fatalf("ladder out of order at %d: %s", i, tech)
		}
		if _, ok := techniqueNames[tech]; !ok {
			t.Fatalf("%d has no name", int(tech))
		}
	}
}
