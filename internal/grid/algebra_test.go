package grid

import (
	"testing"

	"svw.info/gridforge/internal/domain"
)

func mustGrid(t *testing.T, n int) domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(n)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", n, err)
	}
	return g
}

func TestValidPlacementRowColBox(t *testing.T) {
	g := mustGrid(t, 9)
	g[0][0] = 5 // row 0, col 0, box 0

	cases := []struct {
		name    string
		r, c    int
		v       uint8
		allowed bool
	}{
		{"same row", 0, 8, 5, false},
		{"same col", 8, 0, 5, false},
		{"same box", 1, 1, 5, false},
		{"unrelated cell", 4, 4, 5, true},
		{"different value", 0, 8, 6, true},
		{"value zero", 4, 4, 0, false},
		{"value too large", 4, 4, 10, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidPlacement(g, tc.r, tc.c, tc.v); got != tc.allowed {
				t.Fatalf("ValidPlacement(r=%d,c=%d,v=%d) = %v, want %v", tc.r, tc.c, tc.v, got, tc.allowed)
			}
		})
	}
}

func TestCandidatesEmptyCell(t *testing.T) {
	g := mustGrid(t, 9)
	// Constrain (0,0): row has 1..4, col has 5..6, box has 7.
	g[0][1], g[0][2], g[0][3], g[0][4] = 1, 2, 3, 4
	g[1][0], g[2][0] = 5, 6
	g[1][1] = 7

	got := Candidates(g, 0, 0)
	want := []uint8{8, 9}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Candidates = %v, want %v", got, want)
		}
	}
}

func TestCandidatesFilledCellEmpty(t *testing.T) {
	g := mustGrid(t, 9)
	g[3][3] = 2
	if got := Candidates(g, 3, 3); len(got) != 0 {
		t.Fatalf("filled cell candidates = %v, want none", got)
	}
}

func TestCandidatesOutOfRange(t *testing.T) {
	g := mustGrid(t, 9)
	if got := Candidates(g, -1, 0); got != nil {
		t.Fatalf("out-of-range candidates = %v, want nil", got)
	}
	if got := Candidates(g, 0, 9); got != nil {
		t.Fatalf("out-of-range candidates = %v, want nil", got)
	}
}

func TestCandidateMaskMatchesCandidates(t *testing.T) {
	g := mustGrid(t, 9)
	g[0][1], g[1][0], g[1][1] = 1, 2, 3

	mask := CandidateMask(g, 0, 0)
	for _, v := range Candidates(g, 0, 0) {
		if mask&(1<<v) == 0 {
			t.Fatalf("mask %b missing candidate %d", mask, v)
		}
		mask &^= 1 << v
	}
	if mask != 0 {
		t.Fatalf("mask has extra bits: %b", mask)
	}
}

func TestSixteenBySixteenBoxes(t *testing.T) {
	g := mustGrid(t, 16)
	g[0][0] = 12
	if ValidPlacement(g, 3, 3, 12) {
		t.Fatal("12 should be blocked within the 4x4 box")
	}
	if !ValidPlacement(g, 4, 4, 12) {
		t.Fatal("12 should be legal outside row/col/box")
	}
}
