package domain

import (
	"fmt"
	"strings"
)

// Variant names the rule set a puzzle belongs to. Only the base row/col/box
// rules are enforced by the engine; variant constraints ride along as data.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantKiller  Variant = "killer"
	VariantX       Variant = "x"
	VariantHyper   Variant = "hyper"
	VariantMini    Variant = "mini"
	VariantMega    Variant = "mega"
)

// ParseVariant maps a user-supplied string onto a Variant, defaulting to classic.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantKiller:
		return VariantKiller
	case VariantX:
		return VariantX
	case VariantHyper:
		return VariantHyper
	case VariantMini:
		return VariantMini
	case VariantMega:
		return VariantMega
	default:
		return VariantClassic
	}
}

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Expert
)

// Tiers lists all difficulties in ascending order.
var Tiers = []Difficulty{Beginner, Easy, Medium, Hard, Expert}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a user-supplied string onto a tier, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return Beginner
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// Technique is the closed ladder of logical deduction techniques, ordered by
// ascending complexity. The order is load-bearing: the solver always fires
// the lowest applicable rung, and difficulty scoring weights assume this
// ordering, so new rungs may only be appended.
type Technique int

const (
	NakedSingle Technique = iota
	HiddenSingle
	NakedPair
	HiddenPair
	PointingPair
	BoxLineReduction
	XWing
	Swordfish
	XYWing
	Coloring
	ForcingChain
)

// Ladder lists all techniques in ascending complexity order.
var Ladder = []Technique{
	NakedSingle, HiddenSingle, NakedPair, HiddenPair, PointingPair,
	BoxLineReduction, XWing, Swordfish, XYWing, Coloring, ForcingChain,
}

var techniqueNames = map[Technique]string{
	NakedSingle:      "naked_singles",
	HiddenSingle:     "hidden_singles",
	NakedPair:        "naked_pairs",
	HiddenPair:       "hidden_pairs",
	PointingPair:     "pointing_pairs",
	BoxLineReduction: "box_line_reduction",
	XWing:            "x_wing",
	Swordfish:        "swordfish",
	XYWing:           "xy_wing",
	Coloring:         "coloring",
	ForcingChain:     "forcing_chains",
}

func (t Technique) String() string {
	if s, ok := techniqueNames[t]; ok {
		return s
	}
	return fmt.Sprintf("technique(%d)", int(t))
}

// MarshalText renders the snake_case technique name (used in JSON).
func (t Technique) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a snake_case technique name.
func (t *Technique) UnmarshalText(b []byte) error {
	s := string(b)
	for k, v := range techniqueNames {
		if v == s {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown technique %q", s)
}
