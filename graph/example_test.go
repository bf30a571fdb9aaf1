package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/graph"
)

// ExampleGraph_MinimumSpanningTree runs Kruskal on the A-B-C triangle.
func ExampleGraph_MinimumSpanningTree() {
	g, err := graph.New(
		[]string{"A", "B", "C"},
		[]graph.WeightedEdge[string]{
			graph.NewEdge("A", "B", 1),
			graph.NewEdge("B", "C", 2),
			graph.NewEdge("A", "C", 5),
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree, total, err := g.MinimumSpanningTree()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range tree {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleGraph_ShortestPathBetween finds A→C through B.
func ExampleGraph_ShortestPathBetween() {
	g, _ := graph.New(
		[]string{"A", "B", "C"},
		[]graph.WeightedEdge[string]{
			graph.NewEdge("A", "B", 1),
			graph.NewEdge("B", "C", 2),
			graph.NewEdge("A", "C", 5),
		},
	)

	path, err := g.ShortestPathBetween("A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range path {
		fmt.Printf("%s→%s (%g)\n", e.From, e.To, e.Cost)
	}
	// Output:
	// A→B (1)
	// B→C (2)
}
