// Package graph provides the simple undirected graph container and the
// degree statistics that the rewiring engine works against.
//
// # Overview
//
// A [Graph] holds string-identified nodes and unordered edges. It enforces
// the simple-graph invariant at mutation time: [Graph.AddEdge] rejects
// self-loops with [ErrSelfLoop] and parallel edges with [ErrDuplicateEdge].
//
//	g := graph.New()
//	g.AddEdge("1", "2")
//	g.AddEdge("1", "3")
//	g.Degree("1") // 2
//
// Enumeration is deterministic. [Graph.Nodes] returns insertion order and
// [Graph.Edges] returns the current edge slice order, which depends only on
// the sequence of mutations. Seeded algorithms that sample edges therefore
// reproduce exactly.
//
// # Degree Statistics
//
// [DegreeSequence] returns the sorted multiset of node degrees, the quantity
// every rewiring step must preserve. [Assortativity] computes the
// degree-assortativity coefficient (Newman's r) over all edges; it returns
// NaN when the coefficient is undefined.
//
// # Generation
//
// [RandomGNP] samples an Erdős–Rényi graph for experiments and tests.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use.
package graph
