package matrix

import "errors"

// Sentinel errors for matrix package operations. Every exported function
// that fails for a reason a caller can act on returns one of these
// (wrapped with fmt.Errorf("...: %w", ...) where extra context helps);
// callers should match with errors.Is, not string comparison.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates two matrices have incompatible dimensions for the operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)
