package solver

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
)

// Logical solves by repeatedly firing the lowest-complexity applicable
// technique, recording one step per placement. When no rung makes progress
// it falls back to randomized backtracking bounded by the remaining budget;
// a backtracking success is marked with the synthetic forcing-chains
// technique. The caller's grid is never mutated.
type Logical struct {
	// Budget is the total wall-clock ceiling, ladder and fallback included.
	Budget time.Duration
	// MaxIterations caps ladder firings per solve.
	MaxIterations int
}

const (
	// DefaultSolveBudget is the total logical-solve ceiling.
	DefaultSolveBudget = 10 * time.Second
	defaultMaxIters    = 1000
)

func NewLogical() *Logical {
	return &Logical{Budget: DefaultSolveBudget, MaxIterations: defaultMaxIters}
}

// NextStep returns the first placement the lowest applicable rung justifies,
// without mutating g. Used for hinting.
func (s *Logical) NextStep(g domain.Grid) (domain.SolveStep, bool) {
	for _, ru := range ladderRungs() {
		if step, ok := ru.apply(g); ok {
			return step, true
		}
	}
	return domain.SolveStep{}, false
}

// SolveSteps runs the ladder to completion or stall.
func (s *Logical) SolveSteps(ctx context.Context, g domain.Grid) (domain.SolveResult, error) {
	start := time.Now()
	if err := g.CheckSize(); err != nil {
		return domain.SolveResult{}, err
	}
	if !givensConsistent(g) {
		return domain.SolveResult{Elapsed: time.Since(start)}, nil
	}
	budget := s.Budget
	if budget <= 0 {
		budget = DefaultSolveBudget
	}
	maxIters := s.MaxIterations
	if maxIters <= 0 {
		maxIters = defaultMaxIters
	}
	deadline := start.Add(budget)

	work := g.Clone()
	var steps []domain.SolveStep
	used := map[domain.Technique]bool{}

	for iter := 0; iter < maxIters; iter++ {
		if work.IsComplete() || ctx.Err() != nil || time.Now().After(deadline) {
			break
		}
		step, ok := s.NextStep(work)
		if !ok {
			break // stalled; ladder exhausted
		}
		work[step.Row][step.Col] = step.Value
		steps = append(steps, step)
		used[step.Technique] = true
	}

	if !work.IsComplete() && ctx.Err() == nil {
		// stall: exhaust by randomized search within the remaining time
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if backtrackFill(ctx, rng, work, deadline) {
			used[domain.ForcingChain] = true
		}
	}

	res := domain.SolveResult{
		Solved:     work.IsComplete(),
		Steps:      steps,
		Techniques: orderedTechniques(used),
		Elapsed:    time.Since(start),
	}
	if res.Solved {
		res.Solution = work
	}
	return res, nil
}

// orderedTechniques renders the used set in ascending complexity order, so
// the technique list doubles as an ordinal difficulty signal.
func orderedTechniques(used map[domain.Technique]bool) []domain.Technique {
	out := make([]domain.Technique, 0, len(used))
	for t := range used {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// backtrackFill completes the grid in place by depth-first search with
// shuffled value order, restoring it fully on failure.
func backtrackFill(ctx context.Context, rng *rand.Rand, g domain.Grid, deadline time.Time) bool {
	if ctx.Err() != nil || time.Now().After(deadline) {
		return false
	}
	r, c, ok := findEmpty(g)
	if !ok {
		return true
	}
	n := g.Size()
	vals := make([]uint8, n)
	for i := range vals {
		vals[i] = uint8(i + 1)
	}
	rng.Shuffle(n, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	for _, v := range vals {
		if grid.ValidPlacement(g, r, c, v) {
			g[r][c] = v
			if backtrackFill(ctx, rng, g, deadline) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}
