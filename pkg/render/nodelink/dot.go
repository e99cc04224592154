package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/codemap/pkg/diagram"
	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/render"
)

// Options configures node-link diagram generation.
type Options struct {
	// Depth bounds the neighborhood collected around the focal entity.
	// Ignored when no focal entity is given.
	Depth int
	// Detailed adds the defining file and line to node labels.
	Detailed bool
}

// Kind fills match the Mermaid renderer's palette.
const (
	classFill    = "#ff99ff"
	functionFill = "#99ccff"
)

// ToDOT converts an entity graph to Graphviz DOT source. With a focal name
// it renders only that entity's neighborhood, bounded by opts.Depth, and
// draws the focal node with a doubled border; with an empty focal name it
// renders the whole graph. The resulting DOT can be rendered with
// [RenderSVG] or external Graphviz tools.
func ToDOT(g *entity.Graph, focal string, opts Options) (string, error) {
	names := g.Names()
	edges := allEdges(g)
	if focal != "" {
		if !g.Contains(focal) {
			return "", fmt.Errorf("entity %q not found", focal)
		}
		collected := diagram.Collect(g, focal, opts.Depth)
		names = collected.Nodes()
		edges = collected.Edges()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, name := range names {
		ent, ok := g.Entity(name)
		if !ok {
			continue
		}
		attrs := nodeAttrs(ent, name == focal, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// allEdges flattens the graph's dependency relations, skipping targets
// without an entity record.
func allEdges(g *entity.Graph) []diagram.Edge {
	var edges []diagram.Edge
	for _, ent := range g.Entities() {
		for _, dep := range ent.Dependencies() {
			if !g.Contains(dep) {
				continue
			}
			edges = append(edges, diagram.Edge{From: ent.Name, To: dep})
		}
	}
	return edges
}

func nodeAttrs(ent *entity.Entity, focal, detailed bool) []string {
	label := ent.Name
	if detailed {
		label = fmt.Sprintf("%s\n%s:%d", ent.Name, ent.File, ent.Line)
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch ent.Kind {
	case entity.KindClass:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", classFill))
	case entity.KindFunction:
		attrs = append(attrs, "shape=ellipse", fmt.Sprintf("fillcolor=%q", functionFill))
	}
	if focal {
		attrs = append(attrs, "peripheries=2", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz in process.
// The returned bytes are ready for display or conversion with [render.ToPDF]
// or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin and the width and height carry plain pixel values. Graphviz
// emits point-based sizes that render inconsistently across browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
