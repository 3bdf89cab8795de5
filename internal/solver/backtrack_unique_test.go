package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/gridforge/internal/domain"
)

func TestUniqueOnSolvedSampleDerivative(t *testing.T) {
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	solved, _, err := s.Solve(ctx, sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// A complete grid trivially has exactly one completion.
	unique, _, err := s.Unique(ctx, solved)
	if err != nil || !unique {
		t.Fatalf("complete grid not certified unique: unique=%v err=%v", unique, err)
	}
	// Removing one cell from a complete grid keeps it unique.
	oneHole := solved.Clone()
	oneHole[8][8] = 0
	unique, _, err = s.Unique(ctx, oneHole)
	if err != nil || !unique {
		t.Fatalf("one-hole grid not certified unique: unique=%v err=%v", unique, err)
	}
}

func TestUniqueEmptyGridIsFalse(t *testing.T) {
	s := NewBacktracking()
	empty, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	unique, st, err := s.Unique(context.Background(), empty)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatalf("empty grid reported unique (nodes=%d)", st.Nodes)
	}
}

func TestUniqueContradictoryGivensIsFalse(t *testing.T) {
	s := NewBacktracking()
	g, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g[0][0], g[0][1] = 1, 1 // duplicate in row: zero completions
	unique, _, err := s.Unique(context.Background(), g)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("contradictory grid reported unique")
	}
}

func TestUniqueCompleteInvalidGridIsFalse(t *testing.T) {
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	solved, _, err := s.Solve(ctx, sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// Swapping two row neighbours keeps the grid complete but duplicates
	// both values in their columns and boxes: zero legal completions.
	broken := solved.Clone()
	broken[0][0], broken[0][1] = broken[0][1], broken[0][0]

	unique, _, err := s.Unique(ctx, broken)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("complete grid with conflicting givens certified unique")
	}

	// The same holds with an empty cell left over: the conflict elsewhere
	// still rules out every completion.
	broken[8][8] = 0
	unique, _, err = s.Unique(ctx, broken)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("near-complete grid with conflicting givens certified unique")
	}

	// Both engines must agree behind the Solver port.
	unique, _, err = NewDLXSolver().Unique(ctx, broken)
	if err != nil {
		t.Fatalf("dlx Unique failed: %v", err)
	}
	if unique {
		t.Fatal("dlx certified a conflicting grid unique")
	}

	if _, _, err := s.Solve(ctx, broken); err == nil {
		t.Fatal("Solve accepted a grid with conflicting givens")
	}
}

func TestUniqueTimeoutIsConservative(t *testing.T) {
	s := &Backtracking{UniqueBudget: time.Nanosecond}
	unique, _, err := s.Unique(context.Background(), sample)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("timed-out search must report not-unique")
	}
}
