package core_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge auto-adds vertices A, B, C.
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 2)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	g.MakeUndirected(nil)
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? false
	// Edge B→A exists? true
	// Edges: 4
}

// ExampleGraph_Edge shows that the cheapest parallel edge is returned.
func ExampleGraph_Edge() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 3)

	e, err := g.Edge("A", "B")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(e.ID, e.Weight)
	// Output: e2 3
}
