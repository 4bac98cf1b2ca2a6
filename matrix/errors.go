package matrix

import "errors"

// Sentinel errors for the matrix package. All public operations return these
// sentinels (possibly wrapped with call-site context); callers match them
// via errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates that NewDenseFromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("matrix: all rows must have the same length")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between elementwise operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptySupport indicates that a support mask contains no nonzero entries.
	ErrEmptySupport = errors.New("matrix: empty support mask")
)
