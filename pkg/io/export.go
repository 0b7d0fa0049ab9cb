package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/assortwire/pkg/graph"
)

// WriteJSON encodes g as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] and yields the same node and
// edge order.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalGraph returns the compact JSON encoding of g. Equal graphs built by
// the same sequence of mutations produce identical bytes, so the output is
// suitable for content hashing.
func MarshalGraph(g *graph.Graph) ([]byte, error) {
	return json.Marshal(toJSON(g))
}

// UnmarshalGraph decodes the output of [MarshalGraph] or [WriteJSON].
func UnmarshalGraph(data []byte) (*graph.Graph, error) {
	return ReadJSON(bytes.NewReader(data))
}

// WriteEdgeList writes one "u v" line per edge.
// Isolated nodes cannot be represented and are dropped.
func WriteEdgeList(g *graph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.U, e.V); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return bw.Flush()
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

// ExportEdgeList writes g to an edge-list file at path.
func ExportEdgeList(g *graph.Graph, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteEdgeList(g, w) })
}

// Export writes g to path, choosing the format by extension.
func Export(g *graph.Graph, path string) error {
	if IsJSON(path) {
		return ExportJSON(g, path)
	}
	return ExportEdgeList(g, path)
}

func toJSON(g *graph.Graph) graphJSON {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graphJSON{
		Nodes: make([]nodeJSON, len(nodes)),
		Edges: make([]edgeJSON, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = nodeJSON{ID: n}
	}
	for i, e := range edges {
		out.Edges[i] = edgeJSON{Source: e.U, Target: e.V}
	}
	return out
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
