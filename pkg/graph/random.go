package graph

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

// ErrInvalidProbability is returned by [RandomGNP] when p lies outside [0,1].
var ErrInvalidProbability = errors.New("probability must be in [0,1]")

// ErrTooFewNodes is returned by [RandomGNP] when n < 1.
var ErrTooFewNodes = errors.New("at least one node is required")

// RandomGNP samples an Erdős–Rényi G(n,p) graph. Nodes are named "0".."n-1"
// and added in ascending order, so isolated nodes are part of the result.
//
// Every unordered pair {i,j} with i<j is tried exactly once, i ascending and
// then j ascending, and kept with probability p. The trial order is fixed,
// so a given rng state always yields the same graph.
func RandomGNP(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("gnp: n=%d: %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("gnp: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}

	g := New()
	ids := make([]string, n)
	for i := range n {
		ids[i] = strconv.Itoa(i)
		_ = g.AddNode(ids[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(ids[i], ids[j])
			}
		}
	}
	return g, nil
}
