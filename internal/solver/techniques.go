package solver

import (
	"fmt"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
)

// A rung pairs a technique with its detector. Detectors never mutate the
// grid; they report the single next placement the technique justifies.
type rung struct {
	technique domain.Technique
	apply     func(domain.Grid) (domain.SolveStep, bool)
}

// ladderRungs returns the detectors in ascending complexity order. Every
// technique of the closed enumeration is declared so classification and
// scoring can reference it; rungs above hidden singles are permanent no-ops
// here and such grids fall through to the backtracking fallback. That is a
// scope limit, not an oversight: the enumeration order must stay stable.
func ladderRungs() []rung {
	return []rung{
		{domain.NakedSingle, findNakedSingle},
		{domain.HiddenSingle, findHiddenSingle},
		{domain.NakedPair, noProgress},
		{domain.HiddenPair, noProgress},
		{domain.PointingPair, noProgress},
		{domain.BoxLineReduction, noProgress},
		{domain.XWing, noProgress},
		{domain.Swordfish, noProgress},
		{domain.XYWing, noProgress},
		{domain.Coloring, noProgress},
		// ForcingChain is a synthetic marker for "solved by exhaustive
		// search"; it has no detector.
	}
}

func noProgress(domain.Grid) (domain.SolveStep, bool) {
	return domain.SolveStep{}, false
}

// findNakedSingle scans row-major for the first empty cell with exactly one
// legal candidate.
func findNakedSingle(g domain.Grid) (domain.SolveStep, bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g[r][c] != 0 {
				continue
			}
			cands := grid.Candidates(g, r, c)
			if len(cands) == 1 {
				v := cands[0]
				return domain.SolveStep{
					Technique: domain.NakedSingle,
					Row:       r,
					Col:       c,
					Value:     v,
					Rationale: fmt.Sprintf("only %d fits at row %d, column %d", v, r+1, c+1),
				}, true
			}
		}
	}
	return domain.SolveStep{}, false
}

// findHiddenSingle looks for a value with exactly one legal home inside a
// row, column, or box, even though that cell has other candidates.
func findHiddenSingle(g domain.Grid) (domain.SolveStep, bool) {
	n := g.Size()
	bs := g.BoxSize()

	// rows
	for r := 0; r < n; r++ {
		for v := uint8(1); int(v) <= n; v++ {
			if step, ok := hiddenInUnit(g, v, rowCells(n, r),
				fmt.Sprintf("%d has a single place in row %d", v, r+1)); ok {
				return step, true
			}
		}
	}
	// columns
	for c := 0; c < n; c++ {
		for v := uint8(1); int(v) <= n; v++ {
			if step, ok := hiddenInUnit(g, v, colCells(n, c),
				fmt.Sprintf("%d has a single place in column %d", v, c+1)); ok {
				return step, true
			}
		}
	}
	// boxes
	for b := 0; b < n; b++ {
		for v := uint8(1); int(v) <= n; v++ {
			if step, ok := hiddenInUnit(g, v, boxCells(n, bs, b),
				fmt.Sprintf("%d has a single place in box %d", v, b+1)); ok {
				return step, true
			}
		}
	}
	return domain.SolveStep{}, false
}

func hiddenInUnit(g domain.Grid, v uint8, cells []domain.CellCoord, why string) (domain.SolveStep, bool) {
	spot := domain.CellCoord{Row: -1}
	count := 0
	for _, cc := range cells {
		if g[cc.Row][cc.Col] != 0 {
			if g[cc.Row][cc.Col] == v {
				return domain.SolveStep{}, false // already placed in unit
			}
			continue
		}
		if grid.ValidPlacement(g, cc.Row, cc.Col, v) {
			count++
			spot = cc
			if count > 1 {
				return domain.SolveStep{}, false
			}
		}
	}
	if count != 1 {
		return domain.SolveStep{}, false
	}
	return domain.SolveStep{
		Technique: domain.HiddenSingle,
		Row:       spot.Row,
		Col:       spot.Col,
		Value:     v,
		Rationale: why,
	}, true
}

func rowCells(n, r int) []domain.CellCoord {
	out := make([]domain.CellCoord, n)
	for c := 0; c < n; c++ {
		out[c] = domain.CellCoord{Row: r, Col: c}
	}
	return out
}

func colCells(n, c int) []domain.CellCoord {
	out := make([]domain.CellCoord, n)
	for r := 0; r < n; r++ {
		out[r] = domain.CellCoord{Row: r, Col: c}
	}
	return out
}

func boxCells(n, bs, b int) []domain.CellCoord {
	br, bc := (b/bs)*bs, (b%bs)*bs
	out := make([]domain.CellCoord, 0, n)
	for dr := 0; dr < bs; dr++ {
		for dc := 0; dc < bs; dc++ {
			out = append(out, domain.CellCoord{Row: br + dr, Col: bc + dc})
		}
	}
	return out
}
