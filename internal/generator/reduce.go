package generator

import (
	"context"
	"math/rand"

	"svw.info/gridforge/internal/domain"
)

// maxRemovalAttempts bounds clue reduction latency.
const maxRemovalAttempts = 200

// gateEvery is how often the solvability-gated policy re-checks that a
// completion still exists.
const gateEvery = 5

// nine-by-nine clue count targets, inclusive.
var clueRanges9 = map[domain.Difficulty][2]int{
	domain.Beginner: {50, 60},
	domain.Easy:     {36, 46},
	domain.Medium:   {32, 35},
	domain.Hard:     {28, 31},
	domain.Expert:   {22, 27},
}

// clue ratios of total cells for non-9×9 boards.
var clueRatios = map[domain.Difficulty]float64{
	domain.Beginner: 0.65,
	domain.Easy:     0.51,
	domain.Medium:   0.42,
	domain.Hard:     0.34,
	domain.Expert:   0.28,
}

// clueTarget picks the clue count for one generation run.
func clueTarget(rng *rand.Rand, tier domain.Difficulty, size int) int {
	if size == 9 {
		r := clueRanges9[tier]
		return r[0] + rng.Intn(r[1]-r[0]+1)
	}
	return int(clueRatios[tier] * float64(size*size))
}

// removalOrder spatially balances clue loss: positions are grouped by box
// and shuffled within it, boxes are shuffled, then cells are drawn
// round-robin across boxes with the traversal direction flipped each full
// pass so no region is drained first.
func removalOrder(rng *rand.Rand, size, boxSize int) []domain.CellCoord {
	boxes := make([][]domain.CellCoord, size)
	for b := range boxes {
		br, bc := (b/boxSize)*boxSize, (b%boxSize)*boxSize
		cells := make([]domain.CellCoord, 0, size)
		for dr := 0; dr < boxSize; dr++ {
			for dc := 0; dc < boxSize; dc++ {
				cells = append(cells, domain.CellCoord{Row: br + dr, Col: bc + dc})
			}
		}
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		boxes[b] = cells
	}
	order := rng.Perm(size)

	out := make([]domain.CellCoord, 0, size*size)
	for depth := 0; depth < size; depth++ {
		if depth%2 == 0 {
			for _, b := range order {
				out = append(out, boxes[b][depth])
			}
		} else {
			for i := len(order) - 1; i >= 0; i-- {
				out = append(out, boxes[order[i]][depth])
			}
		}
	}
	return out
}

// reduce strips the solved grid down to a tier-appropriate clue count and
// returns the puzzle grid plus the removed cells in removal order.
//
// Beginner/Easy/Medium run permissive: remove until the target is hit.
// Hard/Expert run solvability-gated: every 5th removal a full-completion
// search on a copy must still succeed or the removal is reverted. The gate
// checks solution existence, not uniqueness; final uniqueness certification
// happens in Generate.
func reduce(ctx context.Context, rng *rand.Rand, solution domain.Grid, tier domain.Difficulty) (domain.Grid, []domain.CellCoord) {
	puz := solution.Clone()
	size := puz.Size()
	target := clueTarget(rng, tier, size)
	gated := tier == domain.Hard || tier == domain.Expert

	var removed []domain.CellCoord
	filled := size * size
	attempts := 0
	for _, cc := range removalOrder(rng, size, puz.BoxSize()) {
		if filled <= target || attempts >= maxRemovalAttempts || ctx.Err() != nil {
			break
		}
		attempts++
		if puz[cc.Row][cc.Col] == 0 {
			continue
		}
		old := puz[cc.Row][cc.Col]
		puz[cc.Row][cc.Col] = 0
		removed = append(removed, cc)
		filled--
		if gated && len(removed)%gateEvery == 0 && !completionExists(ctx, rng, puz) {
			puz[cc.Row][cc.Col] = old
			removed = removed[:len(removed)-1]
			filled++
		}
	}
	return puz, removed
}
