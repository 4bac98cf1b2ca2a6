// Package bipartite models the two-block graphs the decomposition peels
// permutations from, plus the adapters between matrices, graphs, and
// matchings.
//
// What:
//
//   - Graph: an undirected bipartite graph over integer vertices, with the
//     left block {0..nLeft-1} and the right block {nLeft..nLeft+nRight-1}.
//     Edges may only cross blocks, so the graph is bipartite by construction.
//   - PatternOf: the 0/1 support matrix of a numeric matrix.
//   - FromPattern: pattern matrix → Graph (edge {i, n+j} iff pattern[i][j] ≠ 0).
//   - ToPermutation: perfect matching → n×n permutation matrix
//     (right vertices re-indexed to columns via v-n).
//
// Why:
//
//   - Birkhoff's theorem: the support of a doubly stochastic matrix always
//     admits a perfect matching, so each peeling iteration can convert the
//     current support into a graph, match it, and read a permutation back.
//
// Complexity:
//
//   - PatternOf, FromPattern, ToPermutation: O(n·m) over the matrix shape.
//   - AddEdge, Neighbors, Degree: O(1) (Neighbors returns the backing slice).
//
// Errors:
//
//   - ErrNegativeSize: a block size below zero was requested.
//   - ErrVertexRange: a vertex id lies outside the graph, or a matched
//     partner maps outside the permutation.
//   - ErrSameSide: an edge between two vertices of the same block.
//   - ErrNilMatrix: a nil matrix was passed to an adapter.
//
// ToPermutation does not verify that the matching is a bijection; that is
// guaranteed by construction when the matching is perfect, and the result is
// unspecified otherwise.
package bipartite
