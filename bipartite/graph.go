package bipartite

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and adapter conversions.
var (
	// ErrNegativeSize indicates a requested block size below zero.
	ErrNegativeSize = errors.New("bipartite: block size must be >= 0")

	// ErrVertexRange indicates a vertex id outside the graph's vertex set.
	ErrVertexRange = errors.New("bipartite: vertex id out of range")

	// ErrSameSide indicates an edge whose endpoints lie in the same block.
	ErrSameSide = errors.New("bipartite: edge endpoints must lie in different blocks")

	// ErrNilMatrix indicates a nil matrix passed to an adapter.
	ErrNilMatrix = errors.New("bipartite: nil matrix")
)

// Graph is an undirected bipartite graph over the vertex set
// {0..nLeft+nRight-1}. Vertices below nLeft form the left block; the rest
// form the right block. Neighbor lists preserve insertion order, which keeps
// every traversal over the graph deterministic.
type Graph struct {
	nLeft, nRight int
	adj           [][]int // adj[v] = neighbors of v, insertion order
}

// NewGraph creates an empty bipartite graph with nLeft left vertices and
// nRight right vertices.
// Returns ErrNegativeSize if either count is negative.
// Complexity: O(nLeft + nRight).
func NewGraph(nLeft, nRight int) (*Graph, error) {
	if nLeft < 0 || nRight < 0 {
		return nil, fmt.Errorf("NewGraph(%d,%d): %w", nLeft, nRight, ErrNegativeSize)
	}

	return &Graph{
		nLeft:  nLeft,
		nRight: nRight,
		adj:    make([][]int, nLeft+nRight),
	}, nil
}

// Order returns the total number of vertices, left block plus right block.
func (g *Graph) Order() int {
	return g.nLeft + g.nRight
}

// LeftSize returns the number of vertices in the left block.
func (g *Graph) LeftSize() int {
	return g.nLeft
}

// RightSize returns the number of vertices in the right block.
func (g *Graph) RightSize() int {
	return g.nRight
}

// IsLeft reports whether v belongs to the left block.
func (g *Graph) IsLeft(v int) bool {
	return v >= 0 && v < g.nLeft
}

// AddEdge inserts the undirected edge {u, w}. Exactly one endpoint must lie
// in each block; order of the arguments does not matter.
// Returns ErrVertexRange or ErrSameSide on invalid endpoints.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, w int) error {
	if u < 0 || u >= g.Order() || w < 0 || w >= g.Order() {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, w, ErrVertexRange)
	}
	if g.IsLeft(u) == g.IsLeft(w) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, w, ErrSameSide)
	}
	g.adj[u] = append(g.adj[u], w)
	g.adj[w] = append(g.adj[w], u)

	return nil
}

// Neighbors returns the neighbor list of v in insertion order.
// The returned slice is the graph's backing storage; callers must not
// mutate it.
// Returns ErrVertexRange for an unknown vertex.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.Order() {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexRange)
	}

	return g.adj[v], nil
}

// Degree returns the number of edges incident to v.
// Returns ErrVertexRange for an unknown vertex.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.Order() {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexRange)
	}

	return len(g.adj[v]), nil
}
