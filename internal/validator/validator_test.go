package validator

import (
	"context"
	"testing"

	"svw.info/gridforge/internal/domain"
)

func TestValidateCompleteSolutionRoundTrip(t *testing.T) {
	solved := domain.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	rep, err := New().Validate(context.Background(), solved)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !rep.IsValid || !rep.IsComplete {
		t.Fatalf("complete legal grid reported isValid=%v isComplete=%v", rep.IsValid, rep.IsComplete)
	}
	if len(rep.Errors) != 0 || len(rep.ConflictingCells) != 0 {
		t.Fatalf("unexpected errors %v / conflicts %v", rep.Errors, rep.ConflictingCells)
	}
}

func TestValidateDuplicateInRow(t *testing.T) {
	g, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g[0][0], g[0][1] = 1, 1

	rep, err := New().Validate(context.Background(), g)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rep.IsValid {
		t.Fatal("duplicate row values reported valid")
	}
	if rep.IsComplete {
		t.Fatal("grid with empty cells reported complete")
	}
	dupErrs := 0
	for _, e := range rep.Errors {
		if e.Kind == domain.DuplicateInRow {
			dupErrs++
		}
	}
	if dupErrs < 1 {
		t.Fatalf("errors = %v, want at least one duplicate_in_row", rep.Errors)
	}
	if len(rep.ConflictingCells) == 0 {
		t.Fatal("conflictingCells must not be empty")
	}
}

func TestValidateOutOfRangeValue(t *testing.T) {
	g, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g[4][4] = 10

	rep, err := New().Validate(context.Background(), g)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rep.IsValid {
		t.Fatal("out-of-range value reported valid")
	}
	found := false
	for _, e := range rep.Errors {
		if e.Kind == domain.InvalidValue && e.Row == 4 && e.Col == 4 && e.Value == 10 {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors = %v, want invalid_value at r4c4", rep.Errors)
	}
}

func TestValidateConflictingCellsAreDistinct(t *testing.T) {
	g, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	// (0,0) conflicts in row, column, and box at once; it must still be
	// listed once.
	g[0][0], g[0][5], g[5][0], g[1][1] = 7, 7, 7, 7

	rep, err := New().Validate(context.Background(), g)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	seen := map[domain.CellCoord]int{}
	for _, cc := range rep.ConflictingCells {
		seen[cc]++
		if seen[cc] > 1 {
			t.Fatalf("cell %+v listed %d times", cc, seen[cc])
		}
	}
	if seen[domain.CellCoord{Row: 0, Col: 0}] != 1 {
		t.Fatalf("conflicts = %v, want (0,0) exactly once", rep.ConflictingCells)
	}
}

func TestValidateCompleteButInvalid(t *testing.T) {
	g, err := domain.NewGrid(4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	// fill completely, then break one cell
	legal := domain.Grid{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r := range legal {
		copy(g[r], legal[r])
	}
	g[3][3] = 4 // duplicates in row 3 and column 3

	rep, verr := New().Validate(context.Background(), g)
	if verr != nil {
		t.Fatalf("Validate: %v", verr)
	}
	if !rep.IsComplete {
		t.Fatal("grid is complete")
	}
	if rep.IsValid {
		t.Fatal("broken grid reported valid")
	}
}
