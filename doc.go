// Package birkhoff computes the Birkhoff–von Neumann decomposition of
// doubly stochastic matrices: every such matrix is a convex combination of
// at most n² permutation matrices, and this module finds one.
//
// What lives where:
//
//	matrix/    — Dense float64 container with the in-place kernels the
//	             peeling loop needs (subtract-scaled, clamp, zero test)
//	bipartite/ — two-block graphs plus the matrix↔graph↔permutation adapters
//	matching/  — Hopcroft–Karp maximum bipartite matching
//	decompose/ — the peeling driver and its Term result type
//	cmd/       — the birkhoff command (decompose files, cut releases)
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0.5, 0.5}, {0.5, 0.5}})
//	terms, _ := decompose.Decompose(m)
//	// terms: 0.5·I + 0.5·(anti-diagonal)
//
// The decomposition produced is valid but not guaranteed minimal in length;
// greedy matching may use more terms than the Carathéodory bound requires.
package birkhoff
