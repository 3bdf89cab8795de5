// Package difficulty turns technique usage into a score, tier, solve-time
// estimate, and confidence. It re-runs the solver's technique ladder in
// frequency-tracking mode, so solving and rating share one deduction order.
package difficulty

import (
	"context"
	"math"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/ports"
)

// maxScore caps the difficulty scale.
const maxScore = 10.0

// complexityWeight orders the score contribution of each rung. The values
// assume the ladder's enumeration order and must stay monotonic with it.
var complexityWeight = map[domain.Technique]float64{
	domain.NakedSingle:      0.3,
	domain.HiddenSingle:     0.6,
	domain.NakedPair:        1.0,
	domain.HiddenPair:       1.2,
	domain.PointingPair:     1.4,
	domain.BoxLineReduction: 1.6,
	domain.XWing:            2.0,
	domain.Swordfish:        2.4,
	domain.XYWing:           2.6,
	domain.Coloring:         3.0,
	domain.ForcingChain:     3.5,
}

// timeImpact is each technique's contribution to the solve-time estimate.
var timeImpact = map[domain.Technique]float64{
	domain.NakedSingle:      0.02,
	domain.HiddenSingle:     0.05,
	domain.NakedPair:        0.10,
	domain.HiddenPair:       0.12,
	domain.PointingPair:     0.15,
	domain.BoxLineReduction: 0.18,
	domain.XWing:            0.25,
	domain.Swordfish:        0.30,
	domain.XYWing:           0.35,
	domain.Coloring:         0.40,
	domain.ForcingChain:     0.50,
}

// tierBands maps scores onto tiers. Bands deliberately overlap at the edges;
// lookup scans in ascending tier order and the first [min,max) hit wins.
var tierBands = []struct {
	tier     domain.Difficulty
	min, max float64
}{
	{domain.Beginner, 0.0, 2.2},
	{domain.Easy, 1.8, 4.2},
	{domain.Medium, 3.8, 6.4},
	{domain.Hard, 6.0, 8.6},
	{domain.Expert, 8.2, maxScore + 0.01},
}

// variantFactor scales scores for rule sets the ladder does not model.
var variantFactor = map[domain.Variant]float64{
	domain.VariantClassic: 1.0,
	domain.VariantKiller:  1.3,
	domain.VariantX:       1.2,
	domain.VariantHyper:   1.4,
	domain.VariantMini:    0.8,
	domain.VariantMega:    1.6,
}

// base solve times in seconds by size class.
const (
	baseTimeMini    = 120
	baseTimeClassic = 240
	baseTimeMega    = 600
)

// Calibrator rates puzzles with the shared technique ladder.
type Calibrator struct {
	Ladder ports.StepSolver
}

func New(ladder ports.StepSolver) *Calibrator {
	return &Calibrator{Ladder: ladder}
}

// Calibrate computes a fresh difficulty analysis for the puzzle. With
// forGeneration set, synthetic technique usage proportional to the declared
// tier and the empty-cell count is mixed in, keeping measured difficulty
// correlated with the requested tier even though higher rungs are no-ops.
func (c *Calibrator) Calibrate(ctx context.Context, p *domain.Puzzle, forGeneration bool) (domain.CalibrationResult, error) {
	res, err := c.Ladder.SolveSteps(ctx, p.InitialState)
	if err != nil {
		return domain.CalibrationResult{}, err
	}

	freq := map[domain.Technique]int{}
	for _, st := range res.Steps {
		freq[st.Technique]++
	}
	for _, t := range res.Techniques {
		if freq[t] == 0 {
			freq[t] = 1 // markers without step records (forcing chains)
		}
	}
	if forGeneration {
		addSyntheticUsage(freq, p.Difficulty, p.InitialState.CountEmpty(), p.Size)
	}

	score := scoreFor(freq)
	size := p.Size
	if size == 0 {
		size = p.InitialState.Size()
	}

	return domain.CalibrationResult{
		CalculatedDifficulty: tierFor(score),
		DifficultyScore:      score,
		RequiredTechniques:   orderedKeys(freq),
		EstimatedSolveTime:   estimateSolveTime(freq, size),
		Confidence:           confidence(score, len(freq), size),
	}, nil
}

// AdjustForVariant scales a base score by the puzzle's variant factor,
// clamped to the score ceiling.
func (c *Calibrator) AdjustForVariant(score float64, p *domain.Puzzle) float64 {
	f, ok := variantFactor[p.Variant]
	if !ok {
		f = 1.0
	}
	return math.Min(score*f, maxScore)
}

// ValidateRating re-derives the puzzle's difficulty and accepts the stored
// rating when the fresh score is within 1.5 points and the tier within one
// step.
func (c *Calibrator) ValidateRating(ctx context.Context, p *domain.Puzzle) (bool, error) {
	res, err := c.Calibrate(ctx, p, true)
	if err != nil {
		return false, err
	}
	scoreOK := math.Abs(res.DifficultyScore-p.DifficultyScore) <= 1.5
	tierGap := int(res.CalculatedDifficulty) - int(p.Difficulty)
	if tierGap < 0 {
		tierGap = -tierGap
	}
	return scoreOK && tierGap <= 1, nil
}

// scoreFor is Σ weight × ln(frequency+1), capped.
func scoreFor(freq map[domain.Technique]int) float64 {
	s := 0.0
	for t, f := range freq {
		if f <= 0 {
			continue
		}
		s += complexityWeight[t] * math.Log(float64(f)+1)
	}
	return math.Min(s, maxScore)
}

// tierFor scans the overlapping bands in ascending tier order; the first
// [min,max) match wins (deterministic tie-break).
func tierFor(score float64) domain.Difficulty {
	for _, b := range tierBands {
		if score >= b.min && score < b.max {
			return b.tier
		}
	}
	return domain.Expert
}

// addSyntheticUsage seeds each tier's signature techniques with usage scaled
// by how much of the board is empty.
func addSyntheticUsage(freq map[domain.Technique]int, tier domain.Difficulty, empties, size int) {
	if size == 0 {
		return
	}
	unit := 1 + empties*3/(size*size) // 1..3
	switch tier {
	case domain.Easy:
		freq[domain.HiddenSingle] += 2 * unit
	case domain.Medium:
		freq[domain.NakedPair] += 2 * unit
		freq[domain.PointingPair] += unit
	case domain.Hard:
		freq[domain.HiddenPair] += 2 * unit
		freq[domain.BoxLineReduction] += 2 * unit
		freq[domain.XWing] += unit
	case domain.Expert:
		freq[domain.XWing] += 2 * unit
		freq[domain.Swordfish] += unit
		freq[domain.XYWing] += unit
		freq[domain.Coloring] += unit
		freq[domain.ForcingChain] += unit
	}
}

// estimateSolveTime = per-size base × (1 + Σ impact·ln(freq+1)) × size
// multiplier × average-complexity multiplier, rounded to seconds.
func estimateSolveTime(freq map[domain.Technique]int, size int) int {
	base := float64(baseTimeClassic)
	mult := 1.0
	switch {
	case size < 9:
		base, mult = baseTimeMini, 0.6
	case size > 9:
		base, mult = baseTimeMega, 2.5
	}

	impact := 0.0
	totalWeight := 0.0
	for t, f := range freq {
		if f <= 0 {
			continue
		}
		impact += timeImpact[t] * math.Log(float64(f)+1)
		totalWeight += complexityWeight[t]
	}

	cplx := 1.0
	if len(freq) > 0 {
		switch avg := totalWeight / float64(len(freq)); {
		case avg < 0.5:
			cplx = 0.8
		case avg < 1.2:
			cplx = 1.0
		case avg < 2.2:
			cplx = 1.4
		default:
			cplx = 1.8
		}
	}

	secs := int(math.Round(base * (1 + impact) * mult * cplx))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// confidence discounts ratings derived from unusual inputs: too few or too
// many distinct techniques, extreme scores, non-standard sizes.
func confidence(score float64, distinct, size int) float64 {
	conf := 1.0
	if distinct < 2 {
		conf *= 0.7
	}
	if distinct > 8 {
		conf *= 0.8
	}
	if score < 0.5 || score > 9.5 {
		conf *= 0.6
	}
	if size != 9 {
		conf *= 0.85
	}
	if size == 9 && distinct >= 1 && distinct <= 8 && score >= 0.1 && score <= 9.0 && conf < 0.85 {
		conf = 0.85
	}
	if conf < 0.1 {
		conf = 0.1
	}
	return conf
}

// orderedKeys renders the frequency table's techniques in ascending
// complexity order.
func orderedKeys(freq map[domain.Technique]int) []domain.Technique {
	out := make([]domain.Technique, 0, len(freq))
	for _, t := range domain.Ladder {
		if freq[t] > 0 {
			out = append(out, t)
		}
	}
	return out
}
