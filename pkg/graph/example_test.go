package graph_test

import (
	"fmt"

	"github.com/matzehuels/assortwire/pkg/graph"
)

func ExampleAssortativity() {
	g := graph.New()
	g.AddEdge("hub", "a")
	g.AddEdge("hub", "b")
	g.AddEdge("hub", "c")

	fmt.Println(graph.DegreeSequence(g))
	fmt.Printf("%.1f\n", graph.Assortativity(g))
	// Output:
	// [1 1 1 3]
	// -1.0
}
