package matching_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jfinkels/birkhoff/bipartite"
	"github.com/jfinkels/birkhoff/matching"
)

// buildRandomBipartite constructs an n×n bipartite graph where each (i,j)
// pair carries an edge with probability p, plus a guaranteed diagonal so a
// perfect matching always exists.
func buildRandomBipartite(n int, p float64, seed int64) *bipartite.Graph {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	g, _ := bipartite.NewGraph(n, n)
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, n+i)
		for j := 0; j < n; j++ {
			if j != i && r.Float64() < p {
				_ = g.AddEdge(i, n+j)
			}
		}
	}
	return g
}

// BenchmarkHopcroftKarp measures matching throughput on graphs of
// increasing size and density.
func BenchmarkHopcroftKarp(b *testing.B) {
	cases := []struct {
		n int
		p float64
	}{
		{16, 0.1},
		{64, 0.1},
		{64, 0.5},
		{256, 0.05},
	}
	for _, tc := range cases {
		g := buildRandomBipartite(tc.n, tc.p, 42)
		b.Run(fmt.Sprintf("n=%d_p=%.2f", tc.n, tc.p), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matching.HopcroftKarp(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
