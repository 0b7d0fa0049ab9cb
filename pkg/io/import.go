package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperr "github.com/matzehuels/assortwire/pkg/errors"
	"github.com/matzehuels/assortwire/pkg/graph"
)

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	ID string `json:"id"`
}

type edgeJSON struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ReadJSON decodes a JSON graph from r.
//
// ReadJSON returns an error if the JSON is malformed, a node id is empty, or
// an edge is a self-loop or repeats an earlier edge in either orientation.
// Errors wrap the graph sentinel errors, so errors.Is works on them.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New()
	for _, n := range data.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.Source, e.Target, err)
		}
	}
	return g, nil
}

// ReadEdgeList decodes a whitespace-separated edge list from r.
// Blank lines and text after '#' are ignored.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected two node ids, got %q", line, text)
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("line %d: edge %s-%s: %w", line, fields[0], fields[1], err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return g, nil
}

// ImportJSON reads a JSON graph file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	return importFile(path, ReadJSON)
}

// ImportEdgeList reads an edge-list file at path.
func ImportEdgeList(path string) (*graph.Graph, error) {
	return importFile(path, ReadEdgeList)
}

// Import reads a graph file, choosing the format by extension.
func Import(path string) (*graph.Graph, error) {
	if IsJSON(path) {
		return ImportJSON(path)
	}
	return ImportEdgeList(path)
}

// IsJSON reports whether path names a JSON file.
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func importFile(path string, read func(io.Reader) (*graph.Graph, error)) (*graph.Graph, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "graph file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := read(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidGraph, err, "%s", path)
	}
	return g, nil
}
