// Package pipeline provides the core diagram pipeline for codemap.
//
// This package implements the complete scan → parse → render pipeline that
// is shared by the CLI and the API server. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Walk the source tree and collect the files to analyze
//  2. Parse: Extract entities and their relations into a graph
//  3. Render: Generate a diagram of a focal entity in the requested format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Root:   "./myproject",
//	    Entity: "Engine",
//	    Depth:  2,
//	    Format: "ascii",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Diagram))
//
// Run individual stages:
//
//	// Scan and parse only
//	files, err := runner.Scan(ctx, opts)
//	g, err := runner.Parse(ctx, files, opts)
//
//	// Render with an existing graph
//	diagram, err := runner.Render(ctx, g, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codemap/pkg/cache"
	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/errors"
	"github.com/matzehuels/codemap/pkg/parse/languages"
	"github.com/matzehuels/codemap/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultDepth is the relation-hop bound around the focal entity.
	// This matches the original CLI default; deeper diagrams get noisy fast.
	DefaultDepth = 1

	// DefaultFormat is the diagram output format.
	DefaultFormat = string(render.FormatASCII)

	// DefaultLanguage is the language parsed when none are selected.
	DefaultLanguage = "python"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scan options
	Root         string   `json:"root,omitempty"`
	GraphFile    string   `json:"graph_file,omitempty"` // pre-built graph JSON, bypasses scan+parse
	Exclude      []string `json:"exclude,omitempty"`    // directory names skipped on top of the defaults
	ExcludeFiles []string `json:"exclude_files,omitempty"`
	NoGitignore  bool     `json:"no_gitignore,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Refresh      bool     `json:"refresh,omitempty"` // bypass the cache for this run

	// Render options
	Entity   string `json:"entity,omitempty"`
	Depth    int    `json:"depth,omitempty"`
	Format   string `json:"format,omitempty"`
	Detailed bool   `json:"detailed,omitempty"` // node-link labels include file:line

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the extracted entity graph.
	Graph *entity.Graph

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Diagram is the rendered output. Text formats hold UTF-8 bytes.
	Diagram []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FileCount     int
	EntityCount   int
	RelationCount int
	ScanTime      time.Duration
	ParseTime     time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the entity graph came from cache
	RenderHit bool // Whether the rendered diagram came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScan(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForScan checks required fields for scanning and parsing.
func (o *Options) ValidateForScan() error {
	if o.Root == "" && o.GraphFile == "" {
		return errors.New(errors.ErrCodeInvalidInput, "root directory or graph file is required")
	}

	if len(o.Languages) == 0 {
		o.Languages = []string{DefaultLanguage}
	}
	for _, name := range o.Languages {
		if languages.Find(name) == nil {
			return errors.New(errors.ErrCodeInvalidLanguage, "unsupported language: %s", name)
		}
	}

	o.setLogger()
	return nil
}

// ValidateForRender checks required fields for rendering and applies defaults.
func (o *Options) ValidateForRender() error {
	if o.Depth == 0 {
		o.Depth = DefaultDepth
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}

	if o.Entity == "" {
		return errors.New(errors.ErrCodeInvalidEntity, "entity is required")
	}
	if err := errors.ValidateEntityName(o.Entity); err != nil {
		return err
	}
	if err := errors.ValidateDepth(o.Depth); err != nil {
		return err
	}
	if _, err := render.ParseFormat(o.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid format")
	}

	o.setLogger()
	return nil
}

// RenderKeyOpts returns cache key options for diagram rendering.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:   o.Format,
		Entity:   o.Entity,
		Depth:    o.Depth,
		Detailed: o.Detailed,
	}
}

// setLogger applies the silent default logger.
func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
