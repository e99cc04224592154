// Package nodelink renders entity graphs as directed node-link diagrams.
//
// # Overview
//
// This package produces Graphviz visualizations where classes appear as
// rounded boxes, functions as ellipses, and dependency edges as arrows. It
// is the format of choice when a diagram should be zoomable or embedded in
// documents, where the ASCII renderer's fixed character grid falls short.
//
// # Usage
//
// Convert a graph to DOT source, then render to SVG:
//
//	dot, err := nodelink.ToDOT(g, "Engine", nodelink.Options{Depth: 2})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Scope
//
// ToDOT renders either a bounded neighborhood around a focal entity, the
// same collection the ASCII engine draws, or the whole graph when the focal
// name is empty. The focal node gets a doubled border so it stands out in
// large neighborhoods.
//
// # DOT Format
//
// The generated DOT uses left-to-right layout (rankdir=LR), matching the
// ASCII diagram's caller-to-dependency reading direction. The source can
// be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
