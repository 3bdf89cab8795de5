// Package validator reports structured rule violations: one error per
// conflicting row/column/box duplicate and per out-of-range value, plus the
// set of distinct conflicting coordinates. Validation problems are values,
// never raised errors.
package validator

import (
	"context"

	"svw.info/gridforge/internal/domain"
)

type Structured struct{}

func New() *Structured { return &Structured{} }

// Validate checks every filled cell. IsComplete (no empty cell) and IsValid
// (no errors) are reported independently.
func (v *Structured) Validate(ctx context.Context, g domain.Grid) (domain.ValidationReport, error) {
	if err := g.CheckSize(); err != nil {
		return domain.ValidationReport{}, err
	}
	n := g.Size()
	bs := g.BoxSize()

	rep := domain.ValidationReport{IsComplete: true}
	conflictSet := map[domain.CellCoord]bool{}
	mark := func(r, c int) {
		cc := domain.CellCoord{Row: r, Col: c}
		if !conflictSet[cc] {
			conflictSet[cc] = true
			rep.ConflictingCells = append(rep.ConflictingCells, cc)
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			val := g[r][c]
			if val == 0 {
				rep.IsComplete = false
				continue
			}
			if int(val) > n {
				rep.Errors = append(rep.Errors, domain.ValidationError{
					Kind: domain.InvalidValue, Row: r, Col: c, Value: val,
				})
				mark(r, c)
				continue
			}
			if dupInRow(g, r, c, val) {
				rep.Errors = append(rep.Errors, domain.ValidationError{
					Kind: domain.DuplicateInRow, Row: r, Col: c, Value: val,
				})
				mark(r, c)
			}
			if dupInCol(g, r, c, val) {
				rep.Errors = append(rep.Errors, domain.ValidationError{
					Kind: domain.DuplicateInColumn, Row: r, Col: c, Value: val,
				})
				mark(r, c)
			}
			if dupInBox(g, bs, r, c, val) {
				rep.Errors = append(rep.Errors, domain.ValidationError{
					Kind: domain.DuplicateInBox, Row: r, Col: c, Value: val,
				})
				mark(r, c)
			}
		}
	}
	rep.IsValid = len(rep.Errors) == 0
	return rep, nil
}

func dupInRow(g domain.Grid, r, c int, val uint8) bool {
	for i := 0; i < g.Size(); i++ {
		if i != c && g[r][i] == val {
			return true
		}
	}
	return false
}

func dupInCol(g domain.Grid, r, c int, val uint8) bool {
	for i := 0; i < g.Size(); i++ {
		if i != r && g[i][c] == val {
			return true
		}
	}
	return false
}

func dupInBox(g domain.Grid, bs, r, c int, val uint8) bool {
	br, bc := (r/bs)*bs, (c/bs)*bs
	for dr := 0; dr < bs; dr++ {
		for dc := 0; dc < bs; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && g[rr][cc] == val {
				return true
			}
		}
	}
	return false
}
