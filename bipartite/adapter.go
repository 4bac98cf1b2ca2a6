package bipartite

import (
	"fmt"
	"math"

	"github.com/jfinkels/birkhoff/matrix"
)

// PatternOf returns the 0/1 support matrix of m: entry (i,j) is 1 iff
// |m[i][j]| > tol. The result has the same shape as m; m is not mutated.
// Complexity: O(r*c).
func PatternOf(m *matrix.Dense, tol float64) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("PatternOf: %w", ErrNilMatrix)
	}
	if tol < 0 {
		tol = -tol
	}
	pattern, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, fmt.Errorf("PatternOf: %w", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j) // indices are in range by loop bounds
			if math.Abs(v) > tol {
				_ = pattern.Set(i, j, 1)
			}
		}
	}

	return pattern, nil
}

// FromPattern builds the bipartite graph of a pattern matrix: for every
// (i,j) with pattern[i][j] ≠ 0, the undirected edge {i, rows+j} connects
// left vertex i (row) to right vertex rows+j (column).
// Row-major iteration yields ascending neighbor lists, so downstream
// traversals are deterministic.
// Complexity: O(r*c).
func FromPattern(pattern *matrix.Dense) (*Graph, error) {
	if pattern == nil {
		return nil, fmt.Errorf("FromPattern: %w", ErrNilMatrix)
	}
	r, c := pattern.Rows(), pattern.Cols()
	g, err := NewGraph(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromPattern: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := pattern.At(i, j)
			if v == 0 {
				continue
			}
			if err = g.AddEdge(i, r+j); err != nil {
				return nil, fmt.Errorf("FromPattern: %w", err)
			}
		}
	}

	return g, nil
}

// ToPermutation converts a matching over a graph with n left and n right
// vertices into an n×n permutation matrix: each matched pair (u, v) with
// left vertex u sets entry (u, v-n) to 1.
//
// Pre-condition: matched must restrict to a bijection between the two
// blocks (guaranteed when it is a perfect matching of a graph built by
// FromPattern). Only structural range violations are reported; a partial
// matching produces a matrix with fewer than n ones.
// Complexity: O(n² ) for allocation, O(n) for the fill.
func ToPermutation(matched map[int]int, n int) (*matrix.Dense, error) {
	perm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ToPermutation: %w", err)
	}
	for u, v := range matched {
		if u >= n {
			continue // right-block key; its mirror entry handles the pair
		}
		if u < 0 || v < n || v >= 2*n {
			return nil, fmt.Errorf("ToPermutation: pair (%d,%d): %w", u, v, ErrVertexRange)
		}
		_ = perm.Set(u, v-n, 1)
	}

	return perm, nil
}
