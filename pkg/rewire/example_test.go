package rewire_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/assortwire/pkg/graph"
	"github.com/matzehuels/assortwire/pkg/rewire"
)

func ExampleValidateCandidates() {
	g := graph.New()
	_ = g.AddEdge("1", "2")

	accepted, rej := rewire.ValidateCandidates(g, []graph.Edge{
		{U: "3", V: "4"},
		{U: "4", V: "3"},
		{U: "5", V: "5"},
		{U: "2", V: "1"},
		{U: "3", V: "5"},
	})

	fmt.Println("accepted:", accepted)
	fmt.Println("duplicate:", rej.Duplicate)
	fmt.Println("self:", rej.Self)
	fmt.Println("existing:", rej.Existing)
	// Output:
	// accepted: [{3 5}]
	// duplicate: 1
	// self: 1
	// existing: 1
}

func ExampleRewire() {
	g := graph.New()
	_ = g.AddEdge("hub", "a")
	_ = g.AddEdge("hub", "b")
	_ = g.AddEdge("hub", "c")

	// A star is already perfectly disassortative, so nothing needs to move.
	res, err := rewire.Rewire(context.Background(), g, rewire.Options{
		Target: -1,
		Method: rewire.MethodTune,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("final r: %.1f\n", res.Final)
	fmt.Println("reached:", res.TargetReached)
	fmt.Println("preserved:", res.Preserved)
	fmt.Println("records:", len(res.Records))
	// Output:
	// final r: -1.0
	// reached: true
	// preserved: true
	// records: 2
}
