package bigraph_test

import (
	"fmt"

	"github.com/pacetools/ocmgraph/pkg/bigraph"
)

func ExampleGraph() {
	// Two fixed nodes {0, 1}, two free nodes {2, 3}, edges forming an X.
	g := bigraph.New(2, 2)
	_, _ = g.AddEdge(0, 3)
	_, _ = g.AddEdge(1, 2)

	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Default crossings:", g.CountCrossings())
	// Output:
	// Edges: 2
	// Default crossings: 1
}

func ExampleGraph_CountCrossingsOrdered() {
	// The X from ExampleGraph untangles when the free layer is flipped.
	g := bigraph.New(2, 2)
	_, _ = g.AddEdge(0, 3)
	_, _ = g.AddEdge(1, 2)

	crossings, _ := g.CountCrossingsOrdered([]int{3, 2})
	fmt.Println("Crossings with flipped layer:", crossings)
	// Output:
	// Crossings with flipped layer: 0
}
