package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codemap/pkg/config"
	"github.com/matzehuels/codemap/pkg/pipeline"
	"github.com/matzehuels/codemap/pkg/render"
)

// pngScale is the zoom factor for PNG conversion, 2x for high-DPI displays.
const pngScale = 2.0

// diagramCommand creates the diagram command for rendering dependency diagrams.
func (c *CLI) diagramCommand() *cobra.Command {
	var (
		flags      scanFlags
		graphFile  string
		entityName string
		depth      int
		format     string
		output     string
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "diagram [path]",
		Short: "Render a dependency diagram for an entity",
		Long: `Render a dependency diagram centered on a single entity, showing what
it depends on and what uses it up to the requested depth.

When --entity is omitted and the command runs in a terminal, an
interactive picker lists all entities found in the tree.

Formats:
  ascii    box drawing for terminals (default)
  text     indented list
  mermaid  mermaid flowchart for docs
  dot      Graphviz source
  svg      rendered Graphviz diagram
  png,pdf  svg converted via rsvg-convert

Examples:
  codemap diagram --entity Car                 # ASCII diagram to stdout
  codemap diagram ./src -e Car -d 2 -f mermaid # Two levels as mermaid
  codemap diagram -e Car -f png -o car.png     # Rendered image`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			opts := flags.options(cmd, cfg, root)
			opts.GraphFile = graphFile
			opts.Entity = entityName
			opts.Depth = depth
			opts.Detailed = detailed
			if !cmd.Flags().Changed("depth") {
				opts.Depth = cfg.Diagram.Depth
			}
			requested := format
			if !cmd.Flags().Changed("format") {
				requested = cfg.Render.Format
			}

			return c.runDiagram(cmd.Context(), cfg, opts, requested, output, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "render from a graph JSON file instead of scanning")
	cmd.Flags().StringVarP(&entityName, "entity", "e", "", "entity to diagram (interactive picker if omitted)")
	cmd.Flags().IntVarP(&depth, "depth", "d", pipeline.DefaultDepth, "how many relation levels to include")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.DefaultFormat, "output format: ascii, text, mermaid, dot, svg, png, pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty; derived for png and pdf)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include file locations in dot and svg output")

	return cmd
}

// runDiagram builds the graph, resolves the target entity, and renders.
func (c *CLI) runDiagram(ctx context.Context, cfg *config.Config, opts pipeline.Options, requested, output string, noCache bool) error {
	requested = strings.ToLower(requested)
	renderFormat, convert, err := resolveFormat(requested)
	if err != nil {
		return err
	}
	opts.Format = renderFormat

	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", opts.Root))
	spinner.Start()
	g, _, _, err := buildGraph(ctx, runner, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if opts.Entity == "" {
		if !interactive() {
			return fmt.Errorf("--entity is required outside a terminal")
		}
		name, err := pickEntity(g)
		if err != nil {
			return err
		}
		if name == "" {
			printInfo("No entity selected")
			return nil
		}
		opts.Entity = name
	}

	data, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}

	if convert != nil {
		data, err = convert(data)
		if err != nil {
			return err
		}
	}

	return writeDiagram(data, requested, output, opts.Entity, cacheHit)
}

// resolveFormat maps the requested CLI format to a pipeline render format
// plus an optional post-conversion step. png and pdf are produced by
// converting rendered SVG.
func resolveFormat(requested string) (string, func([]byte) ([]byte, error), error) {
	switch strings.ToLower(requested) {
	case "png":
		return string(render.FormatSVG), func(svg []byte) ([]byte, error) { return render.ToPNG(svg, pngScale) }, nil
	case "pdf":
		return string(render.FormatSVG), render.ToPDF, nil
	default:
		format, err := render.ParseFormat(requested)
		if err != nil {
			return "", nil, err
		}
		return string(format), nil, nil
	}
}

// writeDiagram writes the rendered bytes to the output path, or prints them
// when no path was given and the format is textual. Binary formats default
// to a file named after the entity.
func writeDiagram(data []byte, requested, output, entityName string, cacheHit bool) error {
	binary := requested == "png" || requested == "pdf" || requested == string(render.FormatSVG)

	if output == "" {
		if !binary {
			fmt.Println(string(data))
			return nil
		}
		output = defaultDiagramPath(entityName, requested)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Diagram complete")
	printFile(output)
	printStats(0, 0, cacheHit)
	return nil
}

// defaultDiagramPath derives an output file name from the entity, e.g.
// "Car" with format png becomes "car.png".
func defaultDiagramPath(entityName, format string) string {
	return fmt.Sprintf("%s.%s", strings.ToLower(entityName), format)
}

// interactive reports whether stdout is attached to a terminal.
func interactive() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
