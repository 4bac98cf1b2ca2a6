package bipartite_test

import (
	"fmt"

	"github.com/jfinkels/birkhoff/bipartite"
	"github.com/jfinkels/birkhoff/matrix"
)

// ExamplePatternOf derives the support structure of a numeric matrix and
// lists the bipartite edges it induces.
func ExamplePatternOf() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0.5, 0.5},
		{1.0, 0.0},
	})

	pattern, _ := bipartite.PatternOf(m, 1e-9)
	g, _ := bipartite.FromPattern(pattern)
	for v := 0; v < g.LeftSize(); v++ {
		nbrs, _ := g.Neighbors(v)
		fmt.Printf("row %d -> columns %v\n", v, nbrs)
	}
	// Output:
	// row 0 -> columns [2 3]
	// row 1 -> columns [2]
}
