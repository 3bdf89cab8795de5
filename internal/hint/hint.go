// Package hint surfaces the next logical step for the UI, reusing the
// solver's technique ladder so hints and difficulty grading never disagree.
package hint

import (
	"context"
	"fmt"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/solver"
)

type Ladder struct {
	Logical *solver.Logical
}

func NewLadder(l *solver.Logical) *Ladder { return &Ladder{Logical: l} }

// Hint returns the first step of the lowest applicable rung, if that rung
// does not exceed max.
func (h *Ladder) Hint(ctx context.Context, g domain.Grid, max domain.Technique) (domain.Hint, bool, error) {
	if err := g.CheckSize(); err != nil {
		return domain.Hint{}, false, err
	}
	step, ok := h.Logical.NextStep(g)
	if !ok || step.Technique > max {
		return domain.Hint{}, false, nil
	}
	return domain.Hint{
		Message:   fmt.Sprintf("%s: %s", step.Technique, step.Rationale),
		Cells:     []domain.CellCoord{{Row: step.Row, Col: step.Col}},
		Technique: step.Technique,
		Value:     step.Value,
	}, true, nil
}
