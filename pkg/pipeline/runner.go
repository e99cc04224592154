package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codemap/pkg/cache"
	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/io"
	"github.com/matzehuels/codemap/pkg/observability"
	"github.com/matzehuels/codemap/pkg/scan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete scan → parse → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	if opts.GraphFile != "" {
		g, err := LoadGraph(opts.GraphFile)
		if err != nil {
			return nil, fmt.Errorf("load graph: %w", err)
		}
		result.Graph = g

		r.Logger.Info("loaded graph",
			"file", opts.GraphFile,
			"entities", g.Len())
	} else {
		// Stage 1: Scan
		scanStart := time.Now()
		files, err := r.Scan(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		result.Stats.ScanTime = time.Since(scanStart)
		result.Stats.FileCount = len(files)

		r.Logger.Info("scanned source tree",
			"files", len(files),
			"duration", result.Stats.ScanTime)

		// Stage 2: Parse
		parseStart := time.Now()
		g, parseHit, err := r.ParseWithCacheInfo(ctx, files, opts)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		result.Graph = g
		result.Stats.ParseTime = time.Since(parseStart)
		result.CacheInfo.ParseHit = parseHit

		r.Logger.Info("parsed entities",
			"entities", g.Len(),
			"relations", g.RelationCount(),
			"duration", result.Stats.ParseTime)
	}

	result.Stats.EntityCount = result.Graph.Len()
	result.Stats.RelationCount = result.Graph.RelationCount()

	// Compute graph hash for cache keys and API responses
	if graphData, err := marshalGraph(result.Graph); err == nil {
		result.GraphHash = cache.Hash(graphData)
	}

	// Stage 3: Render
	renderStart := time.Now()
	diagram, renderHit, err := r.RenderWithCacheInfo(ctx, result.Graph, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Diagram = diagram
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered diagram",
		"format", opts.Format,
		"entity", opts.Entity,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Scan walks the source tree for the selected languages.
func (r *Runner) Scan(ctx context.Context, opts Options) ([]scan.File, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnScanStart(ctx, opts.Root)
	files, err := Scan(ctx, opts)
	observability.Pipeline().OnScanComplete(ctx, opts.Root, len(files), time.Since(start), err)
	return files, err
}

// ParseWithCacheInfo extracts the entity graph with caching and returns cache hit info.
// The graph is keyed by the scanned files' fingerprint, so any file change,
// addition, or removal produces a fresh parse.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, files []scan.File, opts Options) (*entity.Graph, bool, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	fingerprint := scan.Fingerprint(files)
	cacheKey := r.Keyer.GraphKey(fingerprint, cache.GraphKeyOpts{
		Languages: opts.Languages,
	})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := io.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return g, true, nil // Cache hit
			}
			// Corrupt entry - fall through to reparse
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	// Parse
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.Root, len(files))
	g, err := Parse(ctx, opts.Root, files, opts)
	observability.Pipeline().OnParseComplete(ctx, opts.Root, graphSize(g), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if !opts.Refresh {
		if data, err := marshalGraph(g); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph)
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}

	return g, false, nil // Cache miss
}

// Parse is a convenience wrapper that calls ParseWithCacheInfo and discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, files []scan.File, opts Options) (*entity.Graph, error) {
	g, _, err := r.ParseWithCacheInfo(ctx, files, opts)
	return g, err
}

// RenderWithCacheInfo generates a diagram with caching and returns cache hit info.
// The diagram is keyed by the graph's content hash plus the render options.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *entity.Graph, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from graph content
	graphData, err := marshalGraph(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(graphData)
	cacheKey := r.Keyer.RenderKey(graphHash, opts.RenderKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return data, true, nil // Cache hit
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	// Render
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	data, err := Render(ctx, g, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if !opts.Refresh {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLRender)
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}

	return data, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *entity.Graph, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// marshalGraph serializes a graph to its canonical JSON document.
func marshalGraph(g *entity.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := io.WriteJSON(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// graphSize tolerates the nil graph of a failed parse.
func graphSize(g *entity.Graph) int {
	if g == nil {
		return 0
	}
	return g.Len()
}
