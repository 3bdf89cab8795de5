package generator

import (
	"context"
	"math/rand"
	"testing"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/validator"
)

func TestPermutationInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{9, 16} {
		g, err := domain.NewGrid(size)
		if err != nil {
			t.Fatalf("NewGrid(%d): %v", size, err)
		}
		if !fillRandom(context.Background(), rng, g) {
			t.Fatalf("fill failed for size %d", size)
		}
		p := RandomPermutation(rng, size, g.BoxSize())
		permuted := p.Apply(g)
		back := p.Inverse().Apply(permuted)
		if !back.Equal(g) {
			t.Fatalf("inverse(permute(g)) != g for size %d", size)
		}
	}
}

func TestPermutationPreservesValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if !fillRandom(context.Background(), rng, g) {
		t.Fatal("fill failed")
	}
	p := RandomPermutation(rng, 9, 3)
	rep, err := validator.New().Validate(context.Background(), p.Apply(g))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !rep.IsValid || !rep.IsComplete {
		t.Fatalf("band/stack permutation broke the grid: %+v", rep.Errors)
	}
}

func TestPermutationMovesRowsWithinBands(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := RandomPermutation(rng, 9, 3)
	// A destination row's source must come from a whole band: the set of
	// source bands per destination band has exactly one element.
	for band := 0; band < 3; band++ {
		src := p.Rows[band*3] / 3
		for i := 1; i < 3; i++ {
			if p.Rows[band*3+i]/3 != src {
				t.Fatalf("rows of destination band %d drawn from multiple bands: %v", band, p.Rows)
			}
		}
	}
}
