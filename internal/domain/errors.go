package domain

import "errors"

var (
	// ErrInvalidSize rejects side lengths without an integer square root.
	// Fatal, surfaced immediately, never retried.
	ErrInvalidSize = errors.New("invalid grid size: square root of side length must be an integer")

	// ErrGenerationFailed means no completion was found from an empty grid.
	// That cannot happen for supported sizes, so it signals a bug rather
	// than a user-recoverable condition.
	ErrGenerationFailed = errors.New("generation failed: no complete grid found")

	// ErrUnsolvable means a solve was requested for a grid with no
	// completion (or the search was canceled before finding one).
	ErrUnsolvable = errors.New("unsolvable or canceled")
)
