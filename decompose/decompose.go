package decompose

import (
	"fmt"
	"math"

	"github.com/jfinkels/birkhoff/bipartite"
	"github.com/jfinkels/birkhoff/matching"
	"github.com/jfinkels/birkhoff/matrix"
)

// Decompose returns the Birkhoff–von Neumann decomposition of the doubly
// stochastic matrix m as an ordered slice of Terms whose weighted sum
// reconstructs m. The input is never mutated.
//
// Per iteration:
//  1. Build the pattern matrix of the working copy's support.
//  2. Derive the bipartite graph (rows = left block, columns = right block).
//  3. Compute a maximum matching and require it to be perfect.
//  4. Convert the matching into a permutation matrix P.
//  5. Extract q = min working entry over P's support (strictly positive).
//  6. Append (q, P), subtract q·P in place, clamp near-zero residue.
//
// The loop runs while the working matrix has a nonzero entry, at most n²
// times.
//
// Returns ErrNilMatrix or ErrNonSquare before any iteration for invalid
// shapes, ErrNotDoublyStochastic if WithStochasticCheck is set and the
// input violates it, ErrImperfectMatching when the support cannot be
// perfectly matched, or the context's error on cancellation. No partial
// result accompanies an error.
//
// Complexity: O(n² · E·√n) worst case over at most n² iterations; in
// practice far fewer iterations occur because each peel zeroes at least one
// support entry.
func Decompose(m *matrix.Dense, opts ...Option) ([]Term, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Shape validation precedes all other work.
	if !m.IsSquare() {
		return nil, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	if o.StochasticCheck {
		if err := validateStochastic(m, o.Epsilon); err != nil {
			return nil, err
		}
	}

	n := m.Rows()
	working := m.Clone() // private copy; the caller's matrix stays intact
	limit := n * n

	var terms []Term
	for it := 0; !working.IsZero(); it++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if it >= limit {
			return nil, fmt.Errorf("after %d iterations: %w", it, ErrIterationLimit)
		}

		// 1-2) Support pattern of the working matrix, then its graph.
		pattern, err := bipartite.PatternOf(working, o.Epsilon)
		if err != nil {
			return nil, err
		}
		g, err := bipartite.FromPattern(pattern)
		if err != nil {
			return nil, err
		}
		o.OnPattern(it, pattern)

		// 3) Maximum matching over the support graph; Birkhoff's theorem
		// guarantees perfection for doubly stochastic input.
		matched, err := matching.HopcroftKarp(g, matching.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		if !matched.Covers(g.Order()) {
			return nil, fmt.Errorf("iteration %d: %w", it, ErrImperfectMatching)
		}

		// 4) Matching → permutation matrix.
		perm, err := bipartite.ToPermutation(matched, n)
		if err != nil {
			return nil, err
		}
		o.OnMatching(it, matched)

		// 5) Coefficient: minimal working entry covered by the permutation.
		// Strictly positive, since every covered position is in the support.
		q, err := working.MinOverSupport(perm)
		if err != nil {
			return nil, err
		}

		// 6) Record the term, then peel q·P off the working matrix. The
		// clamp flushes subtraction residue so the entry attaining q
		// becomes exactly zero and the loop keeps shrinking the support.
		terms = append(terms, Term{Coefficient: q, Permutation: perm})
		o.OnIteration(it, q, perm.Clone())
		if err = working.SubScaled(q, perm); err != nil {
			return nil, err
		}
		working.Clamp(o.Epsilon)
	}

	return terms, nil
}

// validateStochastic checks that every entry of m is nonnegative and every
// row and column sums to 1 within tol. Accumulation error of an n-entry sum
// is far below any reasonable tol, so tol is applied to the sums directly.
// Complexity: O(n²).
func validateStochastic(m *matrix.Dense, tol float64) error {
	n := m.Rows()
	colSums := make([]float64, n)
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j) // in range by loop bounds
			if v < -tol || math.IsNaN(v) {
				return fmt.Errorf("entry (%d,%d) = %g: %w", i, j, v, ErrNotDoublyStochastic)
			}
			rowSum += v
			colSums[j] += v
		}
		if math.Abs(rowSum-1) > tol {
			return fmt.Errorf("row %d sums to %g: %w", i, rowSum, ErrNotDoublyStochastic)
		}
	}
	for j, sum := range colSums {
		if math.Abs(sum-1) > tol {
			return fmt.Errorf("column %d sums to %g: %w", j, sum, ErrNotDoublyStochastic)
		}
	}

	return nil
}
