// Package io reads and writes graphs and rewiring logs.
//
// # Graph Formats
//
// The JSON format lists nodes and edges explicitly. Node order and edge order
// are preserved on import and export, which matters because seeded rewiring
// runs sample edges by position:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
//	  "edges": [
//	    {"source": "a", "target": "b"},
//	    {"source": "b", "target": "c"}
//	  ]
//	}
//
// Nodes listed without edges are kept as isolated nodes. Endpoints missing
// from "nodes" are added in first-appearance order.
//
// The edge-list format has one edge per line, two whitespace-separated node
// ids, with '#' starting a comment. Extra columns such as weights are
// ignored:
//
//	# karate club
//	1 2
//	1 3
//
// [Import] and [Export] pick the format from the file extension: ".json" for
// JSON, anything else for an edge list.
//
// Both readers reject self-loops and repeated edges, since the rewiring
// engine only works on simple graphs.
//
// # Logs
//
// [WriteLog] encodes rewiring records as a JSON array, with undefined
// coefficients as null. [WriteLogCSV] writes one row per record with a
// header line, for spreadsheets and plotting tools. [ExportLog] picks
// between them by extension.
//
// # Concurrency
//
// Functions here never retain the graphs they are given. They are safe to
// call concurrently as long as nothing modifies the graph at the same time.
package io
