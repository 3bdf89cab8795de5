package solver

import (
	"time"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
)

// Backtracking is a straightforward recursive solver. Legality checks are
// delegated to the grid package; this file only holds the engine and shared
// helpers, Solve and Unique live in backtrack_solve.go / backtrack_unique.go.
type Backtracking struct {
	// UniqueBudget bounds the wall clock of a uniqueness search. On
	// timeout the search reports "not unique" rather than raising.
	UniqueBudget time.Duration
}

// DefaultUniqueBudget is the uniqueness search ceiling.
const DefaultUniqueBudget = 5 * time.Second

func NewBacktracking() *Backtracking {
	return &Backtracking{UniqueBudget: DefaultUniqueBudget}
}

// givensConsistent reports whether every filled cell is legal where it
// stands. A grid with conflicting givens has zero completions, so the search
// must not treat its filled-out state as a solution.
func givensConsistent(g domain.Grid) bool {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := g[r][c]; v != 0 && !grid.ValidPlacement(g, r, c, v) {
				return false
			}
		}
	}
	return true
}

func findEmpty(g domain.Grid) (int, int, bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
