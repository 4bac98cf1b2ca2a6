// Package matching computes maximum-cardinality matchings in bipartite
// graphs with the Hopcroft–Karp algorithm.
//
// What:
//
//   - HopcroftKarp(g): alternating BFS layering + DFS augmentation until no
//     augmenting path remains; returns a symmetric vertex→partner map
//     containing matched vertices only.
//   - Phase hooks (WithOnPhase) observe each completed round without
//     influencing the search.
//
// How:
//
//   - The BFS phase layers the graph from every unmatched left vertex and
//     tracks, via a virtual "nil vertex", the first depth at which an
//     unmatched right vertex is reached; if the nil vertex stays
//     unreachable, no augmenting path exists and the search stops.
//   - The DFS phase extends augmenting paths strictly along the layering
//     (dist(next) == dist(current)+1), flipping matched edges on success and
//     marking exhausted vertices unreachable so they are not retried within
//     the phase.
//   - All search state (distance labels, match pointers, queue) lives in a
//     per-invocation struct; nothing is shared across calls.
//
// Determinism: left vertices are tried in ascending order and neighbor
// lists are traversed in insertion order, so the returned matching is
// reproducible for a fixed graph.
//
// Complexity: O(E·√V) — each round costs O(V+E) and O(√V) rounds suffice.
//
// Errors:
//
//   - ErrGraphNil: a nil graph was supplied.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - Context errors: cancellation observed between phases.
//
// An empty graph yields an empty matching and a nil error; isolated
// vertices never appear in the result.
package matching
