// Package decompose computes the Birkhoff–von Neumann decomposition of a
// doubly stochastic matrix: an ordered list of (coefficient, permutation
// matrix) terms whose weighted sum reconstructs the input.
//
// What:
//
//   - Decompose(m): the peeling loop. Each iteration builds the support
//     pattern of the working matrix, matches the derived bipartite graph
//     (matching.HopcroftKarp), converts the perfect matching into a
//     permutation matrix, subtracts the minimal covered weight times that
//     permutation, and repeats until the working matrix is exactly zero.
//   - Term: one (Coefficient, Permutation) pair; coefficients lie in (0, 1]
//     and sum to 1 for a doubly stochastic input.
//
// Why it terminates: the coefficient is the exact minimum over the
// permutation's support, so every iteration zeroes at least one previously
// nonzero entry and never drives an entry negative; near-zero residue is
// clamped after each subtraction so floating-point noise cannot stall the
// loop. At most n² iterations occur.
//
// The caller's matrix is never mutated; the driver works on a private
// clone.
//
// Options:
//
//   - WithEpsilon: support/clamp tolerance (default DefaultEpsilon).
//   - WithStochasticCheck: validate row and column sums before iterating.
//   - WithContext: cancellation, checked once per iteration.
//   - WithOnPattern / WithOnMatching / WithOnIteration: observer hooks for
//     tracing intermediate state; they never affect results.
//
// Errors:
//
//   - ErrNilMatrix, ErrNonSquare: invalid input shape, reported before any
//     iteration.
//   - ErrNotDoublyStochastic: only with WithStochasticCheck.
//   - ErrImperfectMatching: the support admitted no perfect matching, which
//     means the input was not doubly stochastic.
//   - ErrIterationLimit: the n² bound was exceeded (degenerate numeric
//     input such as NaN entries).
package decompose
