package graph

import (
	"math"
	"slices"
)

// DegreeSequence returns the degrees of all nodes sorted ascending.
// Two graphs with equal degree sequences have the same multiset of degrees,
// regardless of which node carries which degree.
func DegreeSequence(g *Graph) []int {
	seq := make([]int, 0, g.NodeCount())
	for _, id := range g.order {
		seq = append(seq, len(g.adj[id]))
	}
	slices.Sort(seq)
	return seq
}

// SameDegreeSequence reports whether two degree sequences are identical.
func SameDegreeSequence(a, b []int) bool { return slices.Equal(a, b) }

// Assortativity returns the degree-assortativity coefficient of g: the
// Pearson correlation between the degrees at either end of every edge, with
// each undirected edge counted once in each orientation.
//
// The result is NaN when the coefficient is undefined, which happens for a
// graph without edges and for a graph in which every edge endpoint has the
// same degree (zero variance).
func Assortativity(g *Graph) float64 {
	m := float64(len(g.edges))
	if m == 0 {
		return math.NaN()
	}

	var sumProd, sumHalf, sumSq float64
	for _, e := range g.edges {
		j := float64(len(g.adj[e.U]))
		k := float64(len(g.adj[e.V]))
		sumProd += j * k
		sumHalf += (j + k) / 2
		sumSq += (j*j + k*k) / 2
	}

	mean := sumHalf / m
	num := sumProd/m - mean*mean
	den := sumSq/m - mean*mean
	if den <= 1e-12 {
		return math.NaN()
	}
	return num / den
}
