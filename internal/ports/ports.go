package ports

import (
	"context"
	"time"

	"svw.info/gridforge/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs exhaustive search: full solve plus uniqueness certification.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// StepSolver solves with the ordered technique ladder, recording steps.
type StepSolver interface {
	SolveSteps(ctx context.Context, g domain.Grid) (domain.SolveResult, error)
}

// Generator creates new puzzles at a target tier.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Puzzle, Stats, error)
}

// Validator performs structured constraint checks (row/col/box/range).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (domain.ValidationReport, error)
}

// Calibrator turns technique usage into a difficulty analysis.
type Calibrator interface {
	Calibrate(ctx context.Context, p *domain.Puzzle, forGeneration bool) (domain.CalibrationResult, error)
	AdjustForVariant(score float64, p *domain.Puzzle) float64
	ValidateRating(ctx context.Context, p *domain.Puzzle) (bool, error)
}

// Hinter returns the next logical step up to a max technique rung.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid, max domain.Technique) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
