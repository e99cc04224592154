package pipeline

import (
	"context"

	"github.com/matzehuels/codemap/pkg/diagram"
	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/errors"
	"github.com/matzehuels/codemap/pkg/render"
	"github.com/matzehuels/codemap/pkg/render/mermaid"
	"github.com/matzehuels/codemap/pkg/render/nodelink"
	"github.com/matzehuels/codemap/pkg/render/text"
)

// Render generates the diagram for the focal entity in the requested format.
//
// The text formats (ascii, text, mermaid) keep their renderers' contract of
// returning an "Entity '<name>' not found" message for an unknown focal
// entity rather than an error. The graphviz formats (dot, svg) have no such
// in-band channel and return an ENTITY_NOT_FOUND error instead.
func Render(ctx context.Context, g *entity.Graph, opts Options) ([]byte, error) {
	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid format")
	}

	switch format {
	case render.FormatASCII:
		return []byte(diagram.NewGenerator(g).Generate(opts.Entity, opts.Depth)), nil
	case render.FormatText:
		return []byte(text.Render(g, opts.Entity, opts.Depth)), nil
	case render.FormatMermaid:
		return []byte(mermaid.Render(g, opts.Entity, opts.Depth)), nil
	case render.FormatDOT:
		dot, err := renderDOT(g, opts)
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil
	case render.FormatSVG:
		dot, err := renderDOT(g, opts)
		if err != nil {
			return nil, err
		}
		return nodelink.RenderSVG(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", opts.Format)
}

func renderDOT(g *entity.Graph, opts Options) (string, error) {
	dot, err := nodelink.ToDOT(g, opts.Entity, nodelink.Options{Depth: opts.Depth, Detailed: opts.Detailed})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEntityNotFound, err, "render dot")
	}
	return dot, nil
}
