package graph

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func star() *Graph {
	g, _ := FromEdges([]Edge{{"1", "2"}, {"1", "3"}, {"1", "4"}})
	return g
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		u, v    string
		wantErr error
	}{
		{name: "New", u: "2", v: "3"},
		{name: "SelfLoop", u: "2", v: "2", wantErr: ErrSelfLoop},
		{name: "Duplicate", u: "1", v: "2", wantErr: ErrDuplicateEdge},
		{name: "Mirrored", u: "2", v: "1", wantErr: ErrDuplicateEdge},
		{name: "EmptyID", u: "", v: "1", wantErr: ErrInvalidNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := star()
			err := g.AddEdge(tt.u, tt.v)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge(%q, %q) = %v, want %v", tt.u, tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestRemoveEdge(t *testing.T) {
	g := star()

	if err := g.RemoveEdge("2", "1"); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge("1", "2") {
		t.Error("edge 1-2 should be gone")
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
	if !g.HasNode("2") {
		t.Error("isolated node should be kept")
	}
	if g.Degree("1") != 2 {
		t.Errorf("Degree(1) = %d, want 2", g.Degree("1"))
	}
	if err := g.RemoveEdge("1", "2"); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("second RemoveEdge = %v, want ErrEdgeNotFound", err)
	}

	// Remaining edges must still be addressable after the swap-remove.
	for _, e := range g.Edges() {
		if err := g.RemoveEdge(e.U, e.V); err != nil {
			t.Errorf("RemoveEdge(%v): %v", e, err)
		}
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestEdgeAt(t *testing.T) {
	g := star()
	if err := g.RemoveEdge("1", "2"); err != nil {
		t.Fatal(err)
	}
	// Swap-remove moves the last edge into the freed slot.
	want := []Edge{{"1", "4"}, {"1", "3"}}
	for i, e := range want {
		if got := g.EdgeAt(i); got != e {
			t.Errorf("EdgeAt(%d) = %v, want %v", i, got, e)
		}
	}
	if !slices.Equal(g.Edges(), want) {
		t.Errorf("Edges() = %v, want %v", g.Edges(), want)
	}
}

func TestEdgeKey(t *testing.T) {
	if (Edge{"b", "a"}).Key() != (Edge{"a", "b"}) {
		t.Error("Key should order endpoints")
	}
	if (Edge{"a", "b"}).Reversed() != (Edge{"b", "a"}) {
		t.Error("Reversed should swap endpoints")
	}
	if !(Edge{"a", "a"}).IsLoop() {
		t.Error("IsLoop should be true for a self-pair")
	}
}

func TestClonePreservesOrder(t *testing.T) {
	g := star()
	_ = g.AddNode("isolated")
	c := g.Clone()

	if !slices.Equal(c.Nodes(), g.Nodes()) {
		t.Errorf("Nodes = %v, want %v", c.Nodes(), g.Nodes())
	}
	if !slices.Equal(c.Edges(), g.Edges()) {
		t.Errorf("Edges = %v, want %v", c.Edges(), g.Edges())
	}

	_ = c.RemoveEdge("1", "2")
	if !g.HasEdge("1", "2") {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestDegreeSequence(t *testing.T) {
	g := star()
	_ = g.AddNode("5")

	got := DegreeSequence(g)
	want := []int{0, 1, 1, 1, 3}
	if !slices.Equal(got, want) {
		t.Errorf("DegreeSequence = %v, want %v", got, want)
	}
	if !SameDegreeSequence(got, want) {
		t.Error("SameDegreeSequence should be true")
	}
	if SameDegreeSequence(got, []int{0, 1, 1, 2, 2}) {
		t.Error("SameDegreeSequence should be false")
	}
}

func TestAssortativity(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  float64
	}{
		{name: "Star", edges: []Edge{{"1", "2"}, {"1", "3"}, {"1", "4"}}, want: -1},
		{name: "Path", edges: []Edge{{"a", "b"}, {"b", "c"}}, want: -1},
		{
			// Two disjoint components: a triangle (degree 2) and an edge (degree 1).
			name:  "Segregated",
			edges: []Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromEdges(tt.edges)
			if err != nil {
				t.Fatal(err)
			}
			if got := Assortativity(g); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Assortativity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssortativityUndefined(t *testing.T) {
	if r := Assortativity(New()); !math.IsNaN(r) {
		t.Errorf("empty graph: got %v, want NaN", r)
	}
	// Triangle: every endpoint has degree 2.
	g, _ := FromEdges([]Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	if r := Assortativity(g); !math.IsNaN(r) {
		t.Errorf("regular graph: got %v, want NaN", r)
	}
}

func TestRandomGNP(t *testing.T) {
	g1, err := RandomGNP(50, 0.1, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	g2, _ := RandomGNP(50, 0.1, rand.New(rand.NewPCG(7, 7)))

	if g1.NodeCount() != 50 {
		t.Errorf("NodeCount = %d, want 50", g1.NodeCount())
	}
	if !slices.Equal(g1.Edges(), g2.Edges()) {
		t.Error("same seed should produce the same graph")
	}

	full, _ := RandomGNP(5, 1, nil)
	if full.EdgeCount() != 10 {
		t.Errorf("p=1: EdgeCount = %d, want 10", full.EdgeCount())
	}
	empty, _ := RandomGNP(5, 0, nil)
	if empty.EdgeCount() != 0 {
		t.Errorf("p=0: EdgeCount = %d, want 0", empty.EdgeCount())
	}
}

func TestRandomGNPInvalid(t *testing.T) {
	if _, err := RandomGNP(0, 0.5, nil); !errors.Is(err, ErrTooFewNodes) {
		t.Errorf("n=0: got %v, want ErrTooFewNodes", err)
	}
	if _, err := RandomGNP(5, 1.5, nil); !errors.Is(err, ErrInvalidProbability) {
		t.Errorf("p=1.5: got %v, want ErrInvalidProbability", err)
	}
}
