package matching

import (
	"math"

	"github.com/jfinkels/birkhoff/bipartite"
)

// unreachable marks a vertex not yet layered in the current BFS phase.
const unreachable = math.MaxInt

// searchState carries the mutable labels of one HopcroftKarp invocation.
// It is constructed per call and discarded afterwards, never shared.
type searchState struct {
	g *bipartite.Graph

	// nilVertex is a virtual vertex standing in for "unmatched". Unmatched
	// vertices point at it, and its distance label records the depth of the
	// shallowest augmenting path found by the BFS phase.
	nilVertex int

	match []int // match[v] = partner of v, or nilVertex; length Order()+1
	dist  []int // BFS layer of each vertex (and of nilVertex)
	queue []int // BFS frontier, reused across phases
}

// newSearchState allocates labels for g with every vertex unmatched.
func newSearchState(g *bipartite.Graph) *searchState {
	order := g.Order()
	s := &searchState{
		g:         g,
		nilVertex: order,
		match:     make([]int, order+1),
		dist:      make([]int, order+1),
		queue:     make([]int, 0, order),
	}
	for v := range s.match {
		s.match[v] = s.nilVertex
	}

	return s
}

// HopcroftKarp returns a maximum-cardinality matching of the bipartite
// graph g.
//
// The algorithm alternates two phases until no augmenting path remains:
//  1. BFS layering: every unmatched left vertex starts at distance 0; the
//     search advances through "neighbor, then that neighbor's match" hops,
//     so consecutive layers alternate unmatched and matched edges. Reaching
//     an unmatched right vertex sets the nil vertex's distance, proving an
//     augmenting path exists.
//  2. DFS augmentation: from each still-unmatched left vertex, follow only
//     edges that descend exactly one layer; on reaching the nil vertex,
//     flip every traversed edge into the matching.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for an invalid
// option, or the context's error if cancelled between phases. An empty
// graph yields an empty matching.
//
// Complexity: O(E·√V). Memory: O(V).
func HopcroftKarp(g *bipartite.Graph, opts ...Option) (Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := newSearchState(g)
	matched, round := 0, 0
	for {
		// Cancellation check once per round, before the BFS phase
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if !s.layer() {
			break // no augmenting path remains; matching is maximum
		}
		// Try to augment from every unmatched left vertex, leftmost first
		for v := 0; v < g.LeftSize(); v++ {
			if s.match[v] == s.nilVertex && s.augment(v) {
				matched++
			}
		}
		round++
		o.OnPhase(round, matched)
	}

	// Collect the symmetric result; unmatched vertices stay absent.
	result := make(Matching, 2*matched)
	for v := 0; v < g.Order(); v++ {
		if w := s.match[v]; w != s.nilVertex {
			result[v] = w
		}
	}

	return result, nil
}

// layer runs the BFS phase: it assigns a layer to every left vertex
// reachable along alternating paths and reports whether some augmenting
// path exists (the nil vertex received a finite distance).
// Complexity: O(V + E).
func (s *searchState) layer() bool {
	s.queue = s.queue[:0]
	for v := 0; v < s.g.LeftSize(); v++ {
		if s.match[v] == s.nilVertex {
			s.dist[v] = 0
			s.queue = append(s.queue, v)
		} else {
			s.dist[v] = unreachable
		}
	}
	s.dist[s.nilVertex] = unreachable

	for head := 0; head < len(s.queue); head++ {
		v := s.queue[head]
		// Once v's layer reaches the nil vertex's, any path through v is no
		// shorter than one already found; this also skips the nil vertex
		// itself when it gets enqueued.
		if s.dist[v] >= s.dist[s.nilVertex] {
			continue
		}
		nbrs, _ := s.g.Neighbors(v) // v is in range by construction
		for _, u := range nbrs {
			// Hop to the match of the right vertex u; if u is unmatched
			// this labels the nil vertex, recording the augmenting depth.
			w := s.match[u]
			if s.dist[w] == unreachable {
				s.dist[w] = s.dist[v] + 1
				s.queue = append(s.queue, w)
			}
		}
	}

	return s.dist[s.nilVertex] != unreachable
}

// augment runs the DFS phase from left vertex v: it extends an augmenting
// path one layer at a time and flips the matched edges on success.
// A vertex whose candidates are exhausted is marked unreachable so it is
// never retried within this phase.
// Complexity: O(V + E) amortized across one phase.
func (s *searchState) augment(v int) bool {
	if v == s.nilVertex {
		return true // walked off an unmatched right vertex: path complete
	}
	nbrs, _ := s.g.Neighbors(v)
	for _, u := range nbrs {
		w := s.match[u]
		if s.dist[w] == s.dist[v]+1 && s.augment(w) {
			// Flip the traversed edge into the matching.
			s.match[u] = v
			s.match[v] = u

			return true
		}
	}
	s.dist[v] = unreachable

	return false
}
