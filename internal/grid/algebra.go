// Package grid is the single source of truth for move legality. Every other
// component delegates here instead of re-deriving row/col/box rules.
package grid

import "svw.info/gridforge/internal/domain"

// ValidPlacement reports whether v may be placed at (r, c): v must be absent
// from the row, the column, and the containing box. The cell's own current
// value is ignored so the check can be used both for empty and filled cells.
func ValidPlacement(g domain.Grid, r, c int, v uint8) bool {
	n := g.Size()
	if v < 1 || int(v) > n {
		return false
	}
	for i := 0; i < n; i++ {
		if i != c && g[r][i] == v {
			return false
		}
		if i != r && g[i][c] == v {
			return false
		}
	}
	bs := g.BoxSize()
	br, bc := (r/bs)*bs, (c/bs)*bs
	for dr := 0; dr < bs; dr++ {
		for dc := 0; dc < bs; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && g[rr][cc] == v {
				return false
			}
		}
	}
	return true
}

// Candidates returns all legal values for an empty cell in ascending order.
// Filled cells and out-of-range coordinates yield nothing.
func Candidates(g domain.Grid, r, c int) []uint8 {
	n := g.Size()
	if r < 0 || r >= n || c < 0 || c >= n || g[r][c] != 0 {
		return nil
	}
	out := make([]uint8, 0, n)
	for v := uint8(1); int(v) <= n; v++ {
		if ValidPlacement(g, r, c, v) {
			out = append(out, v)
		}
	}
	return out
}

// CandidateMask returns the candidates of an empty cell as a bitmask with
// bit v set for candidate value v. Zero for filled cells.
func CandidateMask(g domain.Grid, r, c int) uint32 {
	if g[r][c] != 0 {
		return 0
	}
	var m uint32
	n := g.Size()
	for v := uint8(1); int(v) <= n; v++ {
		if ValidPlacement(g, r, c, v) {
			m |= 1 << v
		}
	}
	return m
}
