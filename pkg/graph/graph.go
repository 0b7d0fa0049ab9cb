package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] and [Graph.AddEdge] when
	// a node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same node. Simple graphs carry no self-loops.
	ErrSelfLoop = errors.New("self-loop not allowed")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the unordered pair
	// is already connected. Simple graphs carry no parallel edges.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrEdgeNotFound is returned by [Graph.RemoveEdge] when the pair is not
	// connected.
	ErrEdgeNotFound = errors.New("edge not found")
)

// Edge is an unordered pair of distinct nodes. The orientation of U and V
// carries no meaning; use [Edge.Key] when comparing edges.
type Edge struct {
	U string
	V string
}

// Key returns the edge with its endpoints in lexical order, so that (a,b)
// and (b,a) produce the same key.
func (e Edge) Key() Edge {
	if e.V < e.U {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Graph is a simple undirected graph: no self-loops and no parallel edges.
//
// Nodes and edges are enumerated in a deterministic order. Nodes keep their
// insertion order. Edges keep insertion order until removed; removal moves
// the last edge into the freed slot, so enumeration stays deterministic for
// a given sequence of mutations.
//
// The zero value is not usable - use New to create a graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	order []string
	adj   map[string]map[string]struct{}
	edges []Edge
	index map[Edge]int // Key() -> position in edges
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adj:   make(map[string]map[string]struct{}),
		index: make(map[Edge]int),
	}
}

// FromEdges builds a graph from an edge list, adding endpoints as nodes in
// first-appearance order. It fails on the first self-loop or duplicate.
func FromEdges(edges []Edge) (*Graph, error) {
	g := New()
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddNode adds an isolated node. Adding an existing node is a no-op.
// Returns ErrInvalidNodeID if id is empty.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.adj[id]; ok {
		return nil
	}
	g.adj[id] = make(map[string]struct{})
	g.order = append(g.order, id)
	return nil
}

// AddEdge connects u and v, adding either endpoint as a node if it does not
// exist yet. Returns ErrSelfLoop if u == v, ErrDuplicateEdge if the pair is
// already connected, or ErrInvalidNodeID if an endpoint is empty.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrInvalidNodeID
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.HasEdge(u, v) {
		return ErrDuplicateEdge
	}
	_ = g.AddNode(u)
	_ = g.AddNode(v)
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	e := Edge{U: u, V: v}
	g.index[e.Key()] = len(g.edges)
	g.edges = append(g.edges, e)
	return nil
}

// RemoveEdge disconnects u and v. Nodes are kept even if they become
// isolated. Returns ErrEdgeNotFound if the pair is not connected.
func (g *Graph) RemoveEdge(u, v string) error {
	key := Edge{U: u, V: v}.Key()
	i, ok := g.index[key]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	delete(g.index, key)

	last := len(g.edges) - 1
	if i != last {
		moved := g.edges[last]
		g.edges[i] = moved
		g.index[moved.Key()] = i
	}
	g.edges = g.edges[:last]
	return nil
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]
	return ok
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Degree returns the number of edges incident to the node, or 0 if the node
// doesn't exist.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// Neighbors returns the node's neighbors in lexical order.
// Returns nil if the node has no neighbors or doesn't exist.
func (g *Graph) Neighbors(id string) []string {
	if len(g.adj[id]) == 0 {
		return nil
	}
	out := make([]string, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in enumeration order.
// Modifications to the returned slice do not affect the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgeAt returns the i-th edge in insertion order, as shifted by removals.
// It panics if i is out of range.
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone returns a deep copy that preserves node and edge enumeration order.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, id := range g.order {
		_ = c.AddNode(id)
	}
	for _, e := range g.edges {
		_ = c.AddEdge(e.U, e.V)
	}
	return c
}

// Degrees returns the degree of every node keyed by node ID.
func (g *Graph) Degrees() map[string]int {
	m := make(map[string]int, len(g.order))
	for _, id := range g.order {
		m[id] = len(g.adj[id])
	}
	return m
}
