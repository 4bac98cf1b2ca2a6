// Package decompose: result type, tunable options, and error definitions
// for the decomposition driver.
package decompose

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfinkels/birkhoff/matching"
	"github.com/jfinkels/birkhoff/matrix"
)

// DefaultEpsilon is the tolerance below which entries count as zero, both
// for support detection and for the post-subtraction clamp. A small
// multiple of machine epsilon would also work; 1e-9 matches the numeric
// policy used elsewhere in this module and leaves ample headroom for the
// accumulation error of at most n² subtractions.
const DefaultEpsilon = 1e-9

// Sentinel errors for decomposition.
var (
	// ErrNilMatrix is returned if a nil matrix pointer is passed.
	ErrNilMatrix = errors.New("decompose: matrix is nil")

	// ErrNonSquare is returned when the input has rows ≠ columns.
	ErrNonSquare = errors.New("decompose: matrix is not square")

	// ErrNotDoublyStochastic is returned by the opt-in stochastic check when
	// a row or column sum deviates from 1, or an entry is negative.
	ErrNotDoublyStochastic = errors.New("decompose: matrix is not doubly stochastic")

	// ErrImperfectMatching is returned when the support of the working
	// matrix admits no perfect matching. By Birkhoff's theorem this cannot
	// happen for a doubly stochastic input, so it signals a violated input
	// contract.
	ErrImperfectMatching = errors.New("decompose: support admits no perfect matching")

	// ErrIterationLimit is returned when the peeling loop exceeds its n²
	// bound, which only degenerate numeric input (NaN, Inf) can cause.
	ErrIterationLimit = errors.New("decompose: iteration limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("decompose: invalid option supplied")
)

// Term is one element of a decomposition: Coefficient ∈ (0, 1] and the
// permutation matrix it scales. Terms are never mutated after being
// appended; the slice is returned in generation order.
type Term struct {
	Coefficient float64
	Permutation *matrix.Dense
}

// Reconstruct sums coefficient·permutation over terms into a fresh n×n
// matrix. Useful for verifying a decomposition against its input.
// Complexity: O(len(terms)·n²).
func Reconstruct(terms []Term, n int) (*matrix.Dense, error) {
	sum, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("decompose: Reconstruct: %w", err)
	}
	for _, term := range terms {
		if err = sum.AddScaled(term.Coefficient, term.Permutation); err != nil {
			return nil, fmt.Errorf("decompose: Reconstruct: %w", err)
		}
	}

	return sum, nil
}

// Option configures the decomposition via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Decompose.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per iteration.
	Ctx context.Context

	// Epsilon is the zero tolerance for support detection and clamping.
	Epsilon float64

	// StochasticCheck enables row/column sum validation before iterating.
	StochasticCheck bool

	// OnPattern receives each iteration's pattern matrix. The matrix is no
	// longer used by the driver when the hook runs.
	OnPattern func(iteration int, pattern *matrix.Dense)

	// OnMatching receives each iteration's perfect matching.
	OnMatching func(iteration int, m matching.Matching)

	// OnIteration receives each appended term: the iteration index, the
	// extracted coefficient, and a copy of the permutation matrix.
	OnIteration func(iteration int, coeff float64, perm *matrix.Dense)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Epsilon = DefaultEpsilon
//   - stochastic check disabled (the permissive historical behavior)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Epsilon:     DefaultEpsilon,
		OnPattern:   func(int, *matrix.Dense) {},
		OnMatching:  func(int, matching.Matching) {},
		OnIteration: func(int, float64, *matrix.Dense) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon overrides the zero tolerance.
//
//	eps > 0: use eps
//	eps <= 0 or non-finite: invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) { // catches eps <= 0 and NaN
			o.err = fmt.Errorf("%w: Epsilon must be positive (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithStochasticCheck validates that every row and column of the input sums
// to 1 (within tolerance) and that no entry is negative, failing with
// ErrNotDoublyStochastic before the first iteration. Without this option
// malformed input surfaces later as ErrImperfectMatching, matching the
// permissive behavior of the reference implementation.
func WithStochasticCheck() Option {
	return func(o *Options) {
		o.StochasticCheck = true
	}
}

// WithOnPattern registers an observer for per-iteration pattern matrices.
func WithOnPattern(fn func(iteration int, pattern *matrix.Dense)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPattern = fn
		}
	}
}

// WithOnMatching registers an observer for per-iteration matchings.
func WithOnMatching(fn func(iteration int, m matching.Matching)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMatching = fn
		}
	}
}

// WithOnIteration registers an observer for appended terms.
func WithOnIteration(fn func(iteration int, coeff float64, perm *matrix.Dense)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
