package domain

import "time"

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Constraint is a structural variant constraint (killer cage, diagonal,
// hyper region). Carried as data on the puzzle; not enforced by the engine.
type Constraint struct {
	Type   string      `json:"type"`
	Cells  []CellCoord `json:"cells,omitempty"`
	Target int         `json:"target,omitempty"`
}

// PuzzleMetadata is analysis output attached to a generated puzzle.
// PlayCount and AverageSolveTime belong to external telemetry; the engine
// never writes them after creation.
type PuzzleMetadata struct {
	EstimatedSolveTime int         `json:"estimatedSolveTime"` // seconds
	Techniques         []Technique `json:"techniques,omitempty"`
	Rating             float64     `json:"rating"`
	PlayCount          int         `json:"playCount,omitempty"`
	AverageSolveTime   float64     `json:"averageSolveTime,omitempty"`
}

// Puzzle is a generated board with its certified solution and metadata.
// Invariant: every nonzero InitialState cell equals the Solution cell, and
// Solution is complete and legal under the base rules.
type Puzzle struct {
	ID              string         `json:"id,omitempty"`
	Variant         Variant        `json:"variant"`
	Difficulty      Difficulty     `json:"difficulty"`
	Size            int            `json:"size"`
	InitialState    Grid           `json:"initialState"`
	Solution        Grid           `json:"solution"`
	Constraints     []Constraint   `json:"constraints,omitempty"`
	Metadata        PuzzleMetadata `json:"metadata"`
	DifficultyScore float64        `json:"difficultyScore"`
	Seed            int64          `json:"seed,omitempty"`
	CreatedAt       int64          `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Variant    Variant    `json:"variant,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Size       int        `json:"size,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}

// GenerateRequest carries the parameters of one generation call.
type GenerateRequest struct {
	Variant     Variant
	Difficulty  Difficulty
	Size        int
	Seed        int64
	Constraints []Constraint
}

// SolveStep records one application of a technique.
type SolveStep struct {
	Technique Technique `json:"technique"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Value     uint8     `json:"value"`
	Rationale string    `json:"rationale,omitempty"`
}

// SolveResult is the outcome of a logical solve.
type SolveResult struct {
	Solved     bool          `json:"solved"`
	Solution   Grid          `json:"solution,omitempty"`
	Steps      []SolveStep   `json:"steps,omitempty"`
	Techniques []Technique   `json:"techniques,omitempty"`
	Elapsed    time.Duration `json:"elapsed"`
}

// ValidationKind classifies one validation error.
type ValidationKind string

const (
	DuplicateInRow    ValidationKind = "duplicate_in_row"
	DuplicateInColumn ValidationKind = "duplicate_in_column"
	DuplicateInBox    ValidationKind = "duplicate_in_box"
	InvalidValue      ValidationKind = "invalid_value"
)

// ValidationError describes one rule violation at one cell. Recoverable:
// returned in a list, never raised.
type ValidationError struct {
	Kind  ValidationKind `json:"kind"`
	Row   int            `json:"row"`
	Col   int            `json:"col"`
	Value uint8          `json:"value"`
}

// ValidationReport is the full validation outcome. IsComplete and IsValid
// are independent: a grid may be complete-and-invalid or incomplete-and-valid.
type ValidationReport struct {
	IsValid          bool              `json:"isValid"`
	IsComplete       bool              `json:"isComplete"`
	Errors           []ValidationError `json:"errors,omitempty"`
	ConflictingCells []CellCoord       `json:"conflictingCells,omitempty"`
}

// Hint describes the next suggested logical step for the UI.
type Hint struct {
	Message   string      `json:"message,omitempty"`
	Cells     []CellCoord `json:"cells,omitempty"`
	Technique Technique   `json:"technique"`
	Value     uint8       `json:"value,omitempty"`
}

// CalibrationResult is a fresh per-call difficulty analysis; never persisted
// by the engine.
type CalibrationResult struct {
	CalculatedDifficulty Difficulty  `json:"calculatedDifficulty"`
	DifficultyScore      float64     `json:"difficultyScore"`
	RequiredTechniques   []Technique `json:"requiredTechniques,omitempty"`
	EstimatedSolveTime   int         `json:"estimatedSolveTime"` // seconds
	Confidence           float64     `json:"confidence"`
}
