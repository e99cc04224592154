package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codemap/internal/server"
	"github.com/matzehuels/codemap/pkg/config"
	"github.com/matzehuels/codemap/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags     scanFlags
		graphFile string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Serve the dependency graph over HTTP",
		Long: `Scan a source tree once and serve the resulting graph over a read-only
HTTP API. The server exposes entity listings and diagram rendering.

Examples:
  codemap serve                     # Serve the current directory on :8080
  codemap serve ./src --addr :9000  # Custom listen address
  codemap serve -g graph.json       # Serve a pre-built graph`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg, root)
			opts.GraphFile = graphFile
			if !cmd.Flags().Changed("addr") && cfg.Server.Addr != "" {
				addr = cfg.Server.Addr
			}
			return c.runServe(cmd.Context(), cfg, opts, addr, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "serve a graph JSON file instead of scanning")
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")

	return cmd
}

// runServe builds the graph, then runs the server until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg *config.Config, opts pipeline.Options, addr string, noCache bool) error {
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

	srv, err := server.New(g, server.Config{Addr: addr, Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	printSuccess("Serving %d entities on %s", g.Len(), srv.Addr())
	printDetail("GET http://localhost%s/api/entities", displayAddr(srv.Addr()))
	printDetail("GET http://localhost%s/api/diagram?entity=<name>", displayAddr(srv.Addr()))
	printNewline()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// displayAddr normalizes a listen address for printing, so ":8080" shows
// as ":8080" and "0.0.0.0:8080" shows as ":8080".
func displayAddr(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return addr
}
