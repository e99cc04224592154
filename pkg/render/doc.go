// Package render provides the non-ASCII output formats for entity graphs.
//
// # Overview
//
// The ASCII diagram engine in [pkg/diagram] is the primary visualization.
// This package tree holds the alternatives:
//
//   - [text]: indented plain-text dependency trees
//   - [mermaid]: Mermaid flowchart markup for embedding in Markdown
//   - [nodelink]: Graphviz DOT and SVG node-link diagrams
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). The nodelink renderer uses them for its
// PDF and PNG outputs.
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Choosing a Format
//
// [Format] enumerates every output the diagram pipeline can produce,
// including the ASCII default, and [ParseFormat] maps user-supplied names
// onto it.
//
// [text]: github.com/matzehuels/codemap/pkg/render/text
// [mermaid]: github.com/matzehuels/codemap/pkg/render/mermaid
// [nodelink]: github.com/matzehuels/codemap/pkg/render/nodelink
// [pkg/diagram]: github.com/matzehuels/codemap/pkg/diagram
package render
