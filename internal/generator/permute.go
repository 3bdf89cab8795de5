package generator

import (
	"math/rand"

	"svw.info/gridforge/internal/domain"
)

// Permutation reorders rows and columns without breaking sudoku validity:
// rows move only within their band, columns within their stack, and whole
// bands/stacks may swap. Rows[i] is the source row of destination row i.
type Permutation struct {
	Rows []int
	Cols []int
}

// RandomPermutation shuffles rows within each band and the band order, and
// independently the same for columns.
func RandomPermutation(rng *rand.Rand, size, boxSize int) Permutation {
	return Permutation{
		Rows: bandOrder(rng, size, boxSize),
		Cols: bandOrder(rng, size, boxSize),
	}
}

func bandOrder(rng *rand.Rand, size, boxSize int) []int {
	out := make([]int, 0, size)
	bands := rng.Perm(size / boxSize)
	for _, b := range bands {
		within := rng.Perm(boxSize)
		for _, w := range within {
			out = append(out, b*boxSize+w)
		}
	}
	return out
}

// Apply returns a new grid with rows and columns reordered.
func (p Permutation) Apply(g domain.Grid) domain.Grid {
	n := g.Size()
	out := make(domain.Grid, n)
	for r := 0; r < n; r++ {
		out[r] = make([]uint8, n)
		for c := 0; c < n; c++ {
			out[r][c] = g[p.Rows[r]][p.Cols[c]]
		}
	}
	return out
}

// Inverse returns the permutation that undoes p: Inverse().Apply(p.Apply(g))
// equals g.
func (p Permutation) Inverse() Permutation {
	inv := Permutation{
		Rows: make([]int, len(p.Rows)),
		Cols: make([]int, len(p.Cols)),
	}
	for i, src := range p.Rows {
		inv.Rows[src] = i
	}
	for i, src := range p.Cols {
		inv.Cols[src] = i
	}
	return inv
}
