// Package anchorgraph draws a resolution result as a directed graph.
//
// Each element is a node and each anchor an edge pointing at what the
// element is positioned against. Reading the graph answers "why did this
// element end up here": a solid edge labelled "left" means the element
// shares its parent's left edge, a dashed "r=303 a=195°" edge means it was
// placed on a circle around the pivot, and a dotted edge carries the
// gravity tokens used inside a gravity container.
//
// # Usage
//
//	dot := anchorgraph.ToDOT(res, anchorgraph.Options{})
//	svg, err := anchorgraph.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package anchorgraph
