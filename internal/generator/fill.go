package generator

import (
	"context"
	"math/rand"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
)

// fillRandom completes the grid in place by row-major depth-first search,
// trying candidate values in shuffled order. Shuffled value order is the
// sole diversity source of generation. Returns false only on cancellation:
// an empty supported-size grid always has completions.
func fillRandom(ctx context.Context, rng *rand.Rand, g domain.Grid) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := firstEmpty(g)
	if !ok {
		return true
	}
	n := g.Size()
	vals := make([]uint8, n)
	for i := range vals {
		vals[i] = uint8(i + 1)
	}
	rng.Shuffle(n, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	for _, v := range vals {
		if grid.ValidPlacement(g, r, c, v) {
			g[r][c] = v
			if fillRandom(ctx, rng, g) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}

// completionExists reports whether the partial grid still has at least one
// completion. Works on a copy; the existence check of the gated removal
// policy (not a uniqueness check).
func completionExists(ctx context.Context, rng *rand.Rand, g domain.Grid) bool {
	work := g.Clone()
	return fillRandom(ctx, rng, work)
}

func firstEmpty(g domain.Grid) (int, int, bool) {
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
