package matrix

import (
	"fmt"
	"math"
)

// validatePair checks that m and other are both non-nil and share a shape.
// Returns a plain sentinel so callers can wrap uniformly.
func validatePair(m, other *Dense) error {
	if m == nil || other == nil {
		return ErrNilMatrix
	}
	if m.r != other.r || m.c != other.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}

	return nil
}

// SubScaled performs m[i][j] -= coeff * other[i][j] for all i, j, in place.
// The receiver is mutated; other is read-only.
// Returns ErrNilMatrix or ErrDimensionMismatch on invalid operands.
// Complexity: O(r*c), single pass over the flat buffer.
func (m *Dense) SubScaled(coeff float64, other *Dense) error {
	if err := validatePair(m, other); err != nil {
		return fmt.Errorf("Dense.SubScaled: %w", err)
	}
	for idx := range m.data {
		m.data[idx] -= coeff * other.data[idx]
	}

	return nil
}

// AddScaled performs m[i][j] += coeff * other[i][j] for all i, j, in place.
// The inverse of SubScaled; used to reconstruct a matrix from its
// decomposition terms.
// Complexity: O(r*c).
func (m *Dense) AddScaled(coeff float64, other *Dense) error {
	if err := validatePair(m, other); err != nil {
		return fmt.Errorf("Dense.AddScaled: %w", err)
	}
	for idx := range m.data {
		m.data[idx] += coeff * other.data[idx]
	}

	return nil
}

// Clamp sets every entry with |value| ≤ tol to exactly 0, in place.
// Inclusive on the threshold, the exact complement of the strict |v| > tol
// support test, so every entry is either support or flushed to zero.
// Negative tolerances are treated as their absolute value.
// Complexity: O(r*c).
func (m *Dense) Clamp(tol float64) {
	if tol < 0 {
		tol = -tol
	}
	for idx, v := range m.data {
		if math.Abs(v) <= tol {
			m.data[idx] = 0
		}
	}
}

// IsZero reports whether every entry equals 0 exactly.
// Pair with Clamp so floating-point residue cannot keep this false forever.
// Complexity: O(r*c), early exit on the first nonzero entry.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// MinOverSupport returns the minimum entry of m over exactly the positions
// where mask is nonzero.
// Returns ErrNilMatrix or ErrDimensionMismatch on invalid operands and
// ErrEmptySupport when the mask has no nonzero entry.
// Complexity: O(r*c).
func (m *Dense) MinOverSupport(mask *Dense) (float64, error) {
	if err := validatePair(m, mask); err != nil {
		return 0, fmt.Errorf("Dense.MinOverSupport: %w", err)
	}
	min, found := math.Inf(1), false
	for idx, sel := range mask.data {
		if sel == 0 {
			continue
		}
		found = true
		if m.data[idx] < min {
			min = m.data[idx]
		}
	}
	if !found {
		return 0, fmt.Errorf("Dense.MinOverSupport: %w", ErrEmptySupport)
	}

	return min, nil
}

// Equal reports whether m and other share a shape and agree elementwise
// within tol (|a-b| ≤ tol). A nil operand or shape mismatch yields false.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense, tol float64) bool {
	if validatePair(m, other) != nil {
		return false
	}
	if tol < 0 {
		tol = -tol
	}
	for idx, v := range m.data {
		if math.Abs(v-other.data[idx]) > tol {
			return false
		}
	}

	return true
}
