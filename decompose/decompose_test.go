package decompose_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jfinkels/birkhoff/decompose"
	"github.com/jfinkels/birkhoff/matching"
	"github.com/jfinkels/birkhoff/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// requirePermutation asserts that p is a 0/1 matrix with exactly one 1 per
// row and per column.
func requirePermutation(t *testing.T, p *matrix.Dense) {
	t.Helper()
	n := p.Rows()
	require.Equal(t, n, p.Cols())
	colCount := make([]int, n)
	for i := 0; i < n; i++ {
		rowCount := 0
		for j := 0; j < n; j++ {
			v, err := p.At(i, j)
			require.NoError(t, err)
			require.Contains(t, []float64{0, 1}, v)
			if v == 1 {
				rowCount++
				colCount[j]++
			}
		}
		require.Equal(t, 1, rowCount, "row %d must contain exactly one 1", i)
	}
	for j, c := range colCount {
		require.Equal(t, 1, c, "column %d must contain exactly one 1", j)
	}
}

// requireDecomposition asserts the full result contract: coefficients in
// (0,1] summing to 1, valid permutations, length ≤ n², exact reconstruction.
func requireDecomposition(t *testing.T, input *matrix.Dense, terms []decompose.Term) {
	t.Helper()
	n := input.Rows()
	require.NotEmpty(t, terms)
	require.LessOrEqual(t, len(terms), n*n)

	total := 0.0
	for _, term := range terms {
		require.Greater(t, term.Coefficient, 0.0)
		require.LessOrEqual(t, term.Coefficient, 1.0)
		requirePermutation(t, term.Permutation)
		total += term.Coefficient
	}
	require.InDelta(t, 1.0, total, 1e-9, "coefficients must sum to 1")

	sum, err := decompose.Reconstruct(terms, n)
	require.NoError(t, err)
	require.True(t, input.Equal(sum, 1e-9), "weighted sum must reconstruct the input")
}

// DecomposeSuite exercises the peeling driver end to end.
type DecomposeSuite struct {
	suite.Suite
}

// TestFinkelsteinMatrix is the reference scenario: (1/6)·[[1,4,0,1],[2,1,3,0],
// [2,1,1,2],[1,0,2,3]] decomposes into exactly 4 terms with coefficient
// multiset {1/6, 1/6, 1/3, 1/3}.
func (s *DecomposeSuite) TestFinkelsteinMatrix() {
	input := mustDense(s.T(), [][]float64{
		{1.0 / 6, 4.0 / 6, 0, 1.0 / 6},
		{2.0 / 6, 1.0 / 6, 3.0 / 6, 0},
		{2.0 / 6, 1.0 / 6, 1.0 / 6, 2.0 / 6},
		{1.0 / 6, 0, 2.0 / 6, 3.0 / 6},
	})

	terms, err := decompose.Decompose(input)
	require.NoError(s.T(), err)
	require.Len(s.T(), terms, 4)
	requireDecomposition(s.T(), input, terms)

	coeffs := make([]float64, len(terms))
	for i, term := range terms {
		coeffs[i] = term.Coefficient
	}
	sort.Float64s(coeffs)
	require.InDeltaSlice(s.T(), []float64{1.0 / 6, 1.0 / 6, 1.0 / 3, 1.0 / 3}, coeffs, 1e-12)
}

// TestFinkelsteinFirstMatching verifies the first iteration's matching is a
// perfect matching over all 8 vertices of the pattern graph.
func (s *DecomposeSuite) TestFinkelsteinFirstMatching() {
	input := mustDense(s.T(), [][]float64{
		{1.0 / 6, 4.0 / 6, 0, 1.0 / 6},
		{2.0 / 6, 1.0 / 6, 3.0 / 6, 0},
		{2.0 / 6, 1.0 / 6, 1.0 / 6, 2.0 / 6},
		{1.0 / 6, 0, 2.0 / 6, 3.0 / 6},
	})

	var first matching.Matching
	_, err := decompose.Decompose(input, decompose.WithOnMatching(func(it int, m matching.Matching) {
		if it == 0 {
			first = m
		}
	}))
	require.NoError(s.T(), err)
	require.Len(s.T(), first, 8, "first matching must cover all 8 vertices")
	require.True(s.T(), first.Covers(8))
}

// TestIdentity decomposes the 4×4 identity into a single (1.0, I) term.
func (s *DecomposeSuite) TestIdentity() {
	id, err := matrix.Identity(4)
	require.NoError(s.T(), err)

	terms, err := decompose.Decompose(id)
	require.NoError(s.T(), err)
	require.Len(s.T(), terms, 1)
	require.Equal(s.T(), 1.0, terms[0].Coefficient)
	require.True(s.T(), terms[0].Permutation.Equal(id, 0))
}

// TestUniform2x2 peels the uniform matrix into two equal halves.
func (s *DecomposeSuite) TestUniform2x2() {
	input := mustDense(s.T(), [][]float64{{0.5, 0.5}, {0.5, 0.5}})

	terms, err := decompose.Decompose(input)
	require.NoError(s.T(), err)
	require.Len(s.T(), terms, 2)
	require.Equal(s.T(), 0.5, terms[0].Coefficient)
	require.Equal(s.T(), 0.5, terms[1].Coefficient)
	requireDecomposition(s.T(), input, terms)
}

// TestConvexCombination reconstructs a matrix deliberately assembled from
// known permutations.
func (s *DecomposeSuite) TestConvexCombination() {
	p1, err := matrix.Identity(3)
	require.NoError(s.T(), err)
	p2 := mustDense(s.T(), [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	p3 := mustDense(s.T(), [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}})

	input, err := matrix.NewDense(3, 3)
	require.NoError(s.T(), err)
	require.NoError(s.T(), input.AddScaled(0.25, p1))
	require.NoError(s.T(), input.AddScaled(0.25, p2))
	require.NoError(s.T(), input.AddScaled(0.5, p3))

	terms, err := decompose.Decompose(input)
	require.NoError(s.T(), err)
	requireDecomposition(s.T(), input, terms)
}

// TestNonSquare verifies the invalid-shape error with no partial result.
func (s *DecomposeSuite) TestNonSquare() {
	input := mustDense(s.T(), [][]float64{{0.5, 0.5}})

	terms, err := decompose.Decompose(input)
	require.ErrorIs(s.T(), err, decompose.ErrNonSquare)
	require.Nil(s.T(), terms)
}

// TestNilMatrix verifies the nil sentinel.
func (s *DecomposeSuite) TestNilMatrix() {
	_, err := decompose.Decompose(nil)
	require.ErrorIs(s.T(), err, decompose.ErrNilMatrix)
}

// TestInputNotMutated ensures the driver works on a private copy.
func (s *DecomposeSuite) TestInputNotMutated() {
	input := mustDense(s.T(), [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	snapshot := input.Clone()

	_, err := decompose.Decompose(input)
	require.NoError(s.T(), err)
	require.True(s.T(), input.Equal(snapshot, 0), "caller's matrix must stay intact")
}

// TestStochasticCheckRejects verifies the opt-in validation fails loudly on
// a row-sum violation, before any iteration.
func (s *DecomposeSuite) TestStochasticCheckRejects() {
	input := mustDense(s.T(), [][]float64{{0.9, 0.5}, {0.1, 0.5}})

	var iterations int
	_, err := decompose.Decompose(input,
		decompose.WithStochasticCheck(),
		decompose.WithOnIteration(func(int, float64, *matrix.Dense) { iterations++ }),
	)
	require.ErrorIs(s.T(), err, decompose.ErrNotDoublyStochastic)
	require.Zero(s.T(), iterations)
}

// TestStochasticCheckAccepts verifies a valid matrix passes the check.
func (s *DecomposeSuite) TestStochasticCheckAccepts() {
	input := mustDense(s.T(), [][]float64{{0.3, 0.7}, {0.7, 0.3}})

	terms, err := decompose.Decompose(input, decompose.WithStochasticCheck())
	require.NoError(s.T(), err)
	requireDecomposition(s.T(), input, terms)
}

// TestImperfectMatching verifies the permissive default surfaces degenerate
// support as ErrImperfectMatching: both rows pile onto column 0.
func (s *DecomposeSuite) TestImperfectMatching() {
	input := mustDense(s.T(), [][]float64{{1, 0}, {1, 0}})

	_, err := decompose.Decompose(input)
	require.ErrorIs(s.T(), err, decompose.ErrImperfectMatching)
}

// TestHooksObserveWithoutInterfering checks hook sequencing and that
// mutating hook arguments cannot change the result.
func (s *DecomposeSuite) TestHooksObserveWithoutInterfering() {
	input := mustDense(s.T(), [][]float64{{0.5, 0.5}, {0.5, 0.5}})

	var patterns, matchings, iterations int
	terms, err := decompose.Decompose(input,
		decompose.WithOnPattern(func(it int, p *matrix.Dense) {
			require.Equal(s.T(), patterns, it)
			patterns++
			_ = p.Set(0, 0, 42) // sabotage; the driver must be unaffected
		}),
		decompose.WithOnMatching(func(it int, m matching.Matching) {
			matchings++
			m[0] = -1
		}),
		decompose.WithOnIteration(func(it int, coeff float64, perm *matrix.Dense) {
			iterations++
			_ = perm.Set(0, 0, 42)
		}),
	)
	require.NoError(s.T(), err)
	require.Len(s.T(), terms, 2)
	require.Equal(s.T(), 2, patterns)
	require.Equal(s.T(), 2, matchings)
	require.Equal(s.T(), 2, iterations)
	requireDecomposition(s.T(), input, terms)
}

// TestContextCancelled verifies cancellation aborts the loop.
func (s *DecomposeSuite) TestContextCancelled() {
	input := mustDense(s.T(), [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decompose.Decompose(input, decompose.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestInvalidEpsilon verifies option validation.
func (s *DecomposeSuite) TestInvalidEpsilon() {
	input := mustDense(s.T(), [][]float64{{1}})

	_, err := decompose.Decompose(input, decompose.WithEpsilon(-1))
	require.ErrorIs(s.T(), err, decompose.ErrOptionViolation)

	_, err = decompose.Decompose(input, decompose.WithEpsilon(0))
	require.ErrorIs(s.T(), err, decompose.ErrOptionViolation)
}

func TestDecomposeSuite(t *testing.T) {
	suite.Run(t, new(DecomposeSuite))
}
