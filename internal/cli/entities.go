package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codemap/pkg/config"
	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/errors"
	"github.com/matzehuels/codemap/pkg/pipeline"
)

// entitiesCommand creates the entities command for listing parsed entities.
func (c *CLI) entitiesCommand() *cobra.Command {
	var (
		flags     scanFlags
		graphFile string
		kind      string
	)

	cmd := &cobra.Command{
		Use:   "entities [path]",
		Short: "List the entities found in a source tree",
		Long: `List the classes and functions found in a source tree, along with where
they are defined and how many relations they have.

Examples:
  codemap entities                  # All entities in the current directory
  codemap entities ./src -k class   # Classes only
  codemap entities -g graph.json    # From a pre-built graph`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg, root)
			opts.GraphFile = graphFile
			return c.runEntities(cmd.Context(), cfg, opts, kind, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "list from a graph JSON file instead of scanning")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "filter by kind: class or function")

	return cmd
}

// runEntities builds the graph and prints the entity table.
func (c *CLI) runEntities(ctx context.Context, cfg *config.Config, opts pipeline.Options, kind string, noCache bool) error {
	if kind != "" && !entity.Kind(kind).Valid() {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid kind %q (must be %q or %q)", kind, entity.KindClass, entity.KindFunction)
	}

	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", opts.Root))
	spinner.Start()
	g, _, cacheHit, err := buildGraph(ctx, runner, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	rows := entityRows(g, entity.Kind(kind))
	if len(rows) == 0 {
		printInfo("No entities found")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Entity", "Kind", "Defined", "Deps", "Used by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	printStats(g.Len(), g.RelationCount(), cacheHit)
	return nil
}

// entityRows builds the table rows, sorted by name, optionally filtered
// by kind. An empty kind keeps everything.
func entityRows(g *entity.Graph, kind entity.Kind) [][]string {
	var rows [][]string
	for _, e := range g.Entities() {
		if kind != "" && e.Kind != kind {
			continue
		}
		rows = append(rows, []string{
			e.Name,
			string(e.Kind),
			formatLocation(e),
			fmt.Sprintf("%d", e.DependencyCount()),
			fmt.Sprintf("%d", e.UserCount()),
		})
	}
	return rows
}
