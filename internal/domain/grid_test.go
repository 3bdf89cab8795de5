package domain

import (
	"errors"
	"testing"
)

func TestNewGridSizes(t *testing.T) {
	for _, size := range []int{4, 9, 16, 25} {
		g, err := NewGrid(size)
		if err != nil {
			t.Fatalf("NewGrid(%d): %v", size, err)
		}
		if g.Size() != size || len(g[0]) != size {
			t.Fatalf("NewGrid(%d) produced %dx%d", size, g.Size(), len(g[0]))
		}
	}
	for _, size := range []int{0, 1, 2, 3, 6, 8, 10, 15} {
		if _, err := NewGrid(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d): err = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestCheckSize(t *testing.T) {
	g, _ := NewGrid(9)
	if err := g.CheckSize(); err != nil {
		t.Fatalf("CheckSize on fresh grid: %v", err)
	}
	ragged := Grid{{0, 0, 0, 0}, {0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	if err := ragged.CheckSize(); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("ragged grid: err = %v, want ErrInvalidSize", err)
	}
}

func TestBoxSize(t *testing.T) {
	cases := map[int]int{4: 2, 9: 3, 16: 4, 25: 5}
	for size, want := range cases {
		g, _ := NewGrid(size)
		if got := g.BoxSize(); got != want {
			t.Errorf("BoxSize for %d = %d, want %d", size, got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(4)
	g[1][2] = 3
	c := g.Clone()
	c[1][2] = 4
	if g[1][2] != 3 {
		t.Fatal("mutating a clone changed the original")
	}
	if !g.Clone().Equal(g) {
		t.Fatal("clone not equal to its source")
	}
}

func TestCounts(t *testing.T) {
	g, _ := NewGrid(4)
	if g.CountFilled() != 0 || g.CountEmpty() != 16 || g.IsComplete() {
		t.Fatalf("empty grid counts wrong: filled=%d empty=%d", g.CountFilled(), g.CountEmpty())
	}
	for r := range g {
		for c := range g[r] {
			g[r][c] = 1
		}
	}
	if g.CountFilled() != 16 || g.CountEmpty() != 0 || !g.IsComplete() {
		t.Fatalf("full grid counts wrong: filled=%d empty=%d", g.CountFilled(), g.CountEmpty())
	}
}

func TestEqualShapeMismatch(t *testing.T) {
	a, _ := NewGrid(4)
	b, _ := NewGrid(9)
	if a.Equal(b) {
		t.Fatal("grids of different sizes reported equal")
	}
}
