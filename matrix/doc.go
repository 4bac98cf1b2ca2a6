// Package matrix provides the dense numeric container used by the
// Birkhoff–von Neumann decomposition.
//
// What:
//
//   - Dense: a row-major float64 matrix with O(1) element access.
//   - Constructors: NewDense, NewDenseFromRows, Identity.
//   - In-place numeric kernels: SubScaled (self -= q·other), AddScaled,
//     Clamp (flush near-zero noise to exact zero).
//   - Queries: IsZero, MinOverSupport, Equal.
//
// Why:
//
//   - The decomposition driver repeatedly subtracts scaled permutation
//     matrices from a single working copy; in-place mutation avoids an
//     O(n²) allocation per iteration.
//   - Clamp keeps floating-point residue from stalling the peeling loop:
//     entries that should be zero become exactly zero, so IsZero stays an
//     exact test.
//
// Complexity:
//
//   - At/Set/Rows/Cols: O(1).
//   - Clone, String, all elementwise kernels: O(r·c).
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrRaggedRows: NewDenseFromRows input rows differ in length.
//   - ErrIndexOutOfBounds: At/Set index outside the matrix.
//   - ErrDimensionMismatch: elementwise operands differ in shape.
//   - ErrNilMatrix: a nil *Dense operand was supplied.
//   - ErrEmptySupport: MinOverSupport mask selects no entries.
package matrix
