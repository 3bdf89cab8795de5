package domain

// Grid is an n×n board of cell values, 0 = empty, 1..n = filled.
// Grids are value-like: routines that need to keep a caller's copy intact
// work on a Clone.
type Grid [][]uint8

// NewGrid allocates an empty grid of the given side length. The side length
// must have an integer square root (4, 9, 16, ...) so that box constraints
// are well defined.
func NewGrid(size int) (Grid, error) {
	if _, ok := intSquareRoot(size); !ok || size < 4 {
		return nil, ErrInvalidSize
	}
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]uint8, size)
	}
	return g, nil
}

// intSquareRoot returns the integer square root of val and whether val is a
// perfect square.
func intSquareRoot(val int) (int, bool) {
	for i := 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return 0, false
}

// CheckSize validates a grid received from outside (JSON, files): square
// shape and a side length with an integer square root.
func (g Grid) CheckSize() error {
	n := len(g)
	if _, ok := intSquareRoot(n); !ok || n < 4 {
		return ErrInvalidSize
	}
	for _, row := range g {
		if len(row) != n {
			return ErrInvalidSize
		}
	}
	return nil
}

// Size returns the side length.
func (g Grid) Size() int { return len(g) }

// BoxSize returns the side length of one box (√n).
func (g Grid) BoxSize() int {
	b, _ := intSquareRoot(len(g))
	return b
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]uint8, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// CountFilled returns the number of nonzero cells.
func (g Grid) CountFilled() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// CountEmpty returns the number of zero cells.
func (g Grid) CountEmpty() int {
	return g.Size()*g.Size() - g.CountFilled()
}

// IsComplete reports whether no cell is empty.
func (g Grid) IsComplete() bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// Equal reports cell-by-cell equality.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}
