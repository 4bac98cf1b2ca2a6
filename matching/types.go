// Package matching: tunable options and error definitions for the
// Hopcroft–Karp search.
package matching

import (
	"context"
	"errors"
)

// Sentinel errors for matching execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Matching maps each matched vertex to its partner. The map is symmetric
// (m[v] == w implies m[w] == v) and unmatched vertices are absent.
type Matching map[int]int

// Cardinality returns the number of matched pairs.
func (m Matching) Cardinality() int {
	return len(m) / 2
}

// Covers reports whether every vertex in {0..n-1} is matched.
func (m Matching) Covers(n int) bool {
	for v := 0; v < n; v++ {
		if _, ok := m[v]; !ok {
			return false
		}
	}

	return true
}

// Option configures the matching search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per BFS/DFS round.
	Ctx context.Context

	// OnPhase is called after each completed BFS+DFS round with the round
	// number (1-based) and the total matched pairs so far. Purely
	// observational; it cannot affect the search.
	OnPhase func(round, matched int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnPhase hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnPhase: func(int, int) {},
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

// WithOnPhase registers a callback to run after each search round.
func WithOnPhase(fn func(round, matched int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}
