// Package generator builds puzzles: a randomized complete-grid fill, a
// validity-preserving band/stack permutation for pattern diversity, clue
// reduction per difficulty tier, and a final uniqueness certification.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/ports"
)

// Engine generates puzzles with a certified unique solution. Every call
// constructs fresh working state, so independent callers may generate
// concurrently.
type Engine struct {
	Oracle     ports.Solver
	Calibrator ports.Calibrator
}

// NewEngine wires a generator that certifies uniqueness with the given
// solver and rates results with the given calibrator (optional).
func NewEngine(oracle ports.Solver, cal ports.Calibrator) *Engine {
	return &Engine{Oracle: oracle, Calibrator: cal}
}

// Generate builds one puzzle for the request. The returned puzzle satisfies:
// the solution is complete and legal, every given equals the solution cell,
// and the initial state has exactly one completion.
func (e *Engine) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()

	size := req.Size
	if size == 0 {
		size = 9
	}
	full, err := domain.NewGrid(size)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	variant := req.Variant
	if variant == "" {
		variant = domain.VariantClassic
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	if !fillRandom(ctx, rng, full) {
		if ctx.Err() != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
		}
		// cannot happen for a supported size; a failure here is a bug
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrGenerationFailed
	}

	// 2) band/stack permutation for pattern diversity
	perm := RandomPermutation(rng, size, full.BoxSize())
	full = perm.Apply(full)

	// 3) carve out clues per tier
	initial, removedCells := reduce(ctx, rng, full, req.Difficulty)

	// 4) certify uniqueness; restore last removals until certain. The
	// loop terminates because a fully restored grid is trivially unique.
	nodes := 0
	for {
		unique, st, uerr := e.Oracle.Unique(ctx, initial)
		nodes += st.Nodes
		if uerr != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, uerr
		}
		if unique {
			break
		}
		if len(removedCells) == 0 {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrGenerationFailed
		}
		cc := removedCells[len(removedCells)-1]
		removedCells = removedCells[:len(removedCells)-1]
		initial[cc.Row][cc.Col] = full[cc.Row][cc.Col]
	}

	p := &domain.Puzzle{
		ID:           uuid.NewString(),
		Variant:      variant,
		Difficulty:   req.Difficulty,
		Size:         size,
		InitialState: initial,
		Solution:     full,
		Constraints:  req.Constraints,
		Seed:         seed,
		CreatedAt:    time.Now().Unix(),
	}

	// 5) attach difficulty analysis
	if e.Calibrator != nil {
		cal, cerr := e.Calibrator.Calibrate(ctx, p, true)
		if cerr != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, cerr
		}
		p.Metadata = domain.PuzzleMetadata{
			EstimatedSolveTime: cal.EstimatedSolveTime,
			Techniques:         cal.RequiredTechniques,
			Rating:             cal.DifficultyScore,
		}
		p.DifficultyScore = e.Calibrator.AdjustForVariant(cal.DifficultyScore, p)
	}

	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
