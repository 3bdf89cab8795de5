package solver

import (
	"context"
	"time"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
	"svw.info/gridforge/internal/ports"
)

// Unique counts completions up to 2 and reports whether exactly one exists.
// The search is bounded by UniqueBudget; on timeout it returns false, so a
// possibly-unique-but-slow grid is rejected rather than certified. Callers
// cannot distinguish "not unique" from "timed out" on purpose.
func (s *Backtracking) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckSize(); err != nil {
		return false, ports.Stats{}, err
	}
	if !givensConsistent(g) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	budget := s.UniqueBudget
	if budget <= 0 {
		budget = DefaultUniqueBudget
	}
	deadline := start.Add(budget)

	work := g.Clone()
	n := work.Size()
	nodes := 0
	count := 0
	timedOut := false

	var dfs func() bool
	dfs = func() bool {
		if count >= 2 {
			return true // stop early
		}
		if nodes&0xff == 0 && (ctx.Err() != nil || time.Now().After(deadline)) {
			timedOut = true
			return true
		}
		r, c, ok := findEmpty(work)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); int(v) <= n; v++ {
			nodes++
			if grid.ValidPlacement(work, r, c, v) {
				work[r][c] = v
				if dfs() {
					return true
				}
				work[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	if timedOut {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
