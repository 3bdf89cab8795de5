package solver

import (
	"context"
	"time"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
	"svw.info/gridforge/internal/ports"
)

// Solve finds one completion of the grid by depth-first search, trying
// values in ascending order. The input is cloned, never mutated.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckSize(); err != nil {
		return nil, ports.Stats{}, err
	}
	if !givensConsistent(g) {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	work := g.Clone()
	n := work.Size()
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(work)
		if !ok {
			return true
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
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	return work, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
