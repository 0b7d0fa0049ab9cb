// Package render draws graphs as node-link diagrams with Graphviz.
//
// # Overview
//
// [ToDOT] converts a graph to undirected DOT source. Nodes are filled on a
// light-to-dark scale by degree, so hubs stand out and the effect of
// rewiring on who connects to whom is visible at a glance.
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot, render.EngineNeato)
//
// [Render] dispatches on an output format name: "dot" returns the source
// itself, "svg" and "png" run Graphviz in-process.
//
// # Engines
//
// Undirected graphs without a natural hierarchy read best with the
// force-directed engines. [EngineNeato] is the default; [EngineSFDP] scales
// to larger graphs and [EngineCirco] places nodes on circles.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, so no system installation is needed.
package render
