package usecase

import (
	"context"
	"errors"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/grid"
	"svw.info/gridforge/internal/ports"
)

// Service is the facade over every engine operation. It owns no state:
// every call constructs fresh working copies inside the providers.
type Service struct {
	Solver     ports.Solver
	StepSolver ports.StepSolver
	Generator  ports.Generator
	Validator  ports.Validator
	Calibrator ports.Calibrator
	Hinter     ports.Hinter
	Storage    ports.Storage
}

func NewService(s ports.Solver, ss ports.StepSolver, g ports.Generator, v ports.Validator, c ports.Calibrator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, StepSolver: ss, Generator: g, Validator: v, Calibrator: c, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, req)
}

// Solve runs exhaustive search and returns one completion.
func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

// SolvePuzzle runs the technique ladder, recording steps and techniques.
func (u *Service) SolvePuzzle(ctx context.Context, g domain.Grid) (domain.SolveResult, error) {
	if u.StepSolver == nil {
		return domain.SolveResult{}, errNotConfigured
	}
	return u.StepSolver.SolveSteps(ctx, g)
}

func (u *Service) ValidateGrid(ctx context.Context, g domain.Grid) (domain.ValidationReport, error) {
	if u.Validator == nil {
		return domain.ValidationReport{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// HasUniqueSolution certifies that exactly one completion exists.
func (u *Service) HasUniqueSolution(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

// ValidateUniqueSolution is the generation-side guarantee check: the grid
// must be consistent under the base rules and have exactly one completion.
func (u *Service) ValidateUniqueSolution(ctx context.Context, g domain.Grid) (bool, error) {
	if u.Validator == nil || u.Solver == nil {
		return false, errNotConfigured
	}
	rep, err := u.Validator.Validate(ctx, g)
	if err != nil {
		return false, err
	}
	if !rep.IsValid {
		return false, nil
	}
	unique, _, err := u.Solver.Unique(ctx, g)
	return unique, err
}

// Candidates enumerates the legal values for a cell.
func (u *Service) Candidates(ctx context.Context, g domain.Grid, row, col int) ([]uint8, error) {
	if err := g.CheckSize(); err != nil {
		return nil, err
	}
	return grid.Candidates(g, row, col), nil
}

func (u *Service) Calibrate(ctx context.Context, p *domain.Puzzle, forGeneration bool) (domain.CalibrationResult, error) {
	if u.Calibrator == nil {
		return domain.CalibrationResult{}, errNotConfigured
	}
	return u.Calibrator.Calibrate(ctx, p, forGeneration)
}

// CalculateDifficulty is the one-number view of calibration, adjusted for
// the puzzle's variant.
func (u *Service) CalculateDifficulty(ctx context.Context, p *domain.Puzzle) (float64, error) {
	if u.Calibrator == nil {
		return 0, errNotConfigured
	}
	res, err := u.Calibrator.Calibrate(ctx, p, false)
	if err != nil {
		return 0, err
	}
	return u.Calibrator.AdjustForVariant(res.DifficultyScore, p), nil
}

func (u *Service) ValidateDifficultyRating(ctx context.Context, p *domain.Puzzle) (bool, error) {
	if u.Calibrator == nil {
		return false, errNotConfigured
	}
	return u.Calibrator.ValidateRating(ctx, p)
}

func (u *Service) AdjustDifficultyForVariant(score float64, p *domain.Puzzle) (float64, error) {
	if u.Calibrator == nil {
		return 0, errNotConfigured
	}
	return u.Calibrator.AdjustForVariant(score, p), nil
}

func (u *Service) Hint(ctx context.Context, g domain.Grid, max domain.Technique) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
