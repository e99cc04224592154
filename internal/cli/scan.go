package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codemap/pkg/config"
	"github.com/matzehuels/codemap/pkg/entity"
	pkgio "github.com/matzehuels/codemap/pkg/io"
	"github.com/matzehuels/codemap/pkg/pipeline"
)

// =============================================================================
// Shared Scan Flags
// =============================================================================

// scanFlags are the flags shared by every command that needs an entity graph.
type scanFlags struct {
	exclude      []string
	excludeFiles []string
	languages    []string
	noGitignore  bool
	refresh      bool
	noCache      bool
}

// register adds the shared flags to cmd.
func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "directory names to skip, on top of the built-in excludes")
	cmd.Flags().StringSliceVar(&f.excludeFiles, "exclude-file", nil, "file names to skip")
	cmd.Flags().StringSliceVarP(&f.languages, "language", "l", nil, "languages to parse (default: python)")
	cmd.Flags().BoolVar(&f.noGitignore, "no-gitignore", false, "do not honor .gitignore files when scanning")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// options builds pipeline options from the flags, falling back to the
// project configuration for flags the user did not set.
func (f *scanFlags) options(cmd *cobra.Command, cfg *config.Config, root string) pipeline.Options {
	opts := pipeline.Options{
		Root:         root,
		Exclude:      f.exclude,
		ExcludeFiles: f.excludeFiles,
		Languages:    f.languages,
		NoGitignore:  f.noGitignore,
		Refresh:      f.refresh,
	}

	if !cmd.Flags().Changed("exclude") && len(cfg.Scan.ExcludeDirs) > 0 {
		opts.Exclude = cfg.Scan.ExcludeDirs
	}
	if !cmd.Flags().Changed("exclude-file") && len(cfg.Scan.ExcludeFiles) > 0 {
		opts.ExcludeFiles = cfg.Scan.ExcludeFiles
	}
	if !cmd.Flags().Changed("language") && len(cfg.Scan.Languages) > 0 {
		opts.Languages = cfg.Scan.Languages
	}
	if !cmd.Flags().Changed("no-gitignore") {
		opts.NoGitignore = !cfg.Scan.Gitignore
	}

	return opts
}

// =============================================================================
// Scan Command
// =============================================================================

// scanCommand creates the scan command for extracting entity graphs.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		flags  scanFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a source tree and write its entity graph as JSON",
		Long: `Scan a source tree, extract its classes and functions along with the
dependencies between them, and write the resulting graph as JSON.

The graph file can be fed back into 'diagram', 'entities', and 'serve'
via --graph, or imported by external tools.

Results are cached locally for faster subsequent runs.

Examples:
  codemap scan                      # Scan the current directory to stdout
  codemap scan ./src -o graph.json  # Scan ./src into graph.json
  codemap scan --exclude tests      # Skip directories named "tests"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg, root)
			return c.runScan(cmd.Context(), cfg, opts, output, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runScan scans and parses the tree, then writes the graph as JSON.
func (c *CLI) runScan(ctx context.Context, cfg *config.Config, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", opts.Root))
	spinner.Start()

	files, err := runner.Scan(ctx, opts)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return err
	}

	g, cacheHit, err := runner.ParseWithCacheInfo(ctx, files, opts)
	if err != nil {
		spinner.StopWithError("Parse failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeGraph(g, output, c.Logger); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Scan complete")
		printFile(output)
		printStats(g.Len(), g.RelationCount(), cacheHit)
		printNewline()
		printNextStep("Generate a diagram", fmt.Sprintf("codemap diagram %s --entity <name>", opts.Root))
	}
	return nil
}

// =============================================================================
// Graph Building
// =============================================================================

// buildGraph produces the entity graph for a command: from a pre-built
// graph file when one was given, otherwise by scanning and parsing the
// source tree. It returns the number of scanned files and whether the
// parse was served from cache.
func buildGraph(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*entity.Graph, int, bool, error) {
	if opts.GraphFile != "" {
		g, err := pipeline.LoadGraph(opts.GraphFile)
		return g, 0, false, err
	}

	files, err := runner.Scan(ctx, opts)
	if err != nil {
		return nil, 0, false, err
	}
	g, cacheHit, err := runner.ParseWithCacheInfo(ctx, files, opts)
	return g, len(files), cacheHit, err
}

// =============================================================================
// Graph Output
// =============================================================================

// writeGraph serializes g as JSON to the specified path (or stdout if empty).
// The logger is notified on success with the output path.
func writeGraph(g *entity.Graph, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteJSON(g, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
