package board

import "errors"

// Validation errors returned by board operations. All of them leave the
// board untouched; callers match with errors.Is.
var (
	// ErrInvalidCoordinate means the rack id or the 1-based row/col is
	// outside the configured grid.
	ErrInvalidCoordinate = errors.New("invalid rack coordinate")

	// ErrInvalidQuantity means a mutation was requested with qty <= 0.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrConflict means an add targeted a cell already holding a
	// different part. Cells are strictly single-part.
	ErrConflict = errors.New("cell holds a different part")

	// ErrCapacityExceeded means an add would push the cell above
	// CellCapacity.
	ErrCapacityExceeded = errors.New("cell capacity exceeded")

	// ErrMismatch means a subtract targeted a cell with the wrong part or
	// with insufficient quantity. The two causes share one error kind;
	// the wrapped message says which one it was.
	ErrMismatch = errors.New("part or quantity mismatch")

	// ErrNotFound is returned by lookups with no eligible result.
	ErrNotFound = errors.New("not found")
)
