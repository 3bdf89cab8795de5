package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/gridforge/internal/domain"
)

func TestDLXSolveMatchesBacktracking(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bt, _, err := NewBacktracking().Solve(ctx, sample)
	if err != nil {
		t.Fatalf("backtracking solve: %v", err)
	}
	dx, st, err := NewDLXSolver().Solve(ctx, sample)
	if err != nil {
		t.Fatalf("dlx solve: %v (nodes=%d)", err, st.Nodes)
	}
	// The sample has a unique solution, so both engines must agree.
	if !dx.Equal(bt) {
		t.Fatal("dlx and backtracking solutions differ on a unique puzzle")
	}
	// Givens must be preserved.
	for r := range sample {
		for c := range sample[r] {
			if sample[r][c] != 0 && dx[r][c] != sample[r][c] {
				t.Fatalf("dlx dropped given at r=%d c=%d", r, c)
			}
		}
	}
}

func TestDLXUnique(t *testing.T) {
	ctx := context.Background()
	s := NewDLXSolver()

	unique, _, err := s.Unique(ctx, sample)
	if err != nil || !unique {
		t.Fatalf("sample should be unique: unique=%v err=%v", unique, err)
	}

	empty, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	unique, _, err = s.Unique(ctx, empty)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("empty grid reported unique")
	}
}

func TestDLXSixteenBySixteen(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	empty, err := domain.NewGrid(16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	out, _, err := NewDLXSolver().Solve(ctx, empty)
	if err != nil {
		t.Fatalf("dlx 16x16 solve: %v", err)
	}
	ok, rerr := validSolution(ctx, out)
	if rerr != nil || !ok {
		t.Fatalf("invalid 16x16 completion: err=%v", rerr)
	}
}
