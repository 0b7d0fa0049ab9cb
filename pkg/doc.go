// Package pkg provides the core libraries for assortwire.
//
// # Overview
//
// Assortwire changes the degree assortativity of an undirected graph while
// every node keeps its degree. The pkg directory is organized into:
//
//  1. [graph] - Simple undirected graph, degree sequence, assortativity
//  2. [rewire] - Validator, reconstructor, tuner and orchestrator
//  3. [io] - Graph and run-log serialization (JSON, edge list, CSV)
//  4. [render] - DOT generation and Graphviz rendering
//  5. [pipeline] - Orchestration with caching (rewire → render)
//  6. [cache] - File, Redis and no-op result caches
//  7. [config] - TOML configuration file
//
// # Architecture
//
//	Graph file (JSON or edge list)
//	         ↓
//	    [io] package (load)
//	         ↓
//	    [rewire] package (reconstruct, repair, tune)
//	         ↓
//	    [render] package (DOT → SVG/PNG)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/assortwire/pkg/io"
//	    "github.com/matzehuels/assortwire/pkg/rewire"
//	)
//
//	g, _ := io.ImportEdgeList("edges.txt")
//	res, err := rewire.Rewire(context.Background(), g, rewire.Options{
//	    Target:    -0.3,
//	    TimeLimit: time.Minute,
//	})
//	fmt.Println(res.Initial, "→", res.Final)
//
// Use [pipeline.Runner] to get caching and rendering on top.
//
// # Supporting Packages
//
//   - [errors] - Coded errors and option validation
//   - [observability] - Hooks for rewiring and cache events
//   - [buildinfo] - Version information set at build time
package pkg
