// Package pkg provides the core libraries for Codemap code visualization.
//
// # Overview
//
// Codemap scans a source tree, extracts the classes and functions it declares
// together with the dependency and used-by relations between them, and renders
// a chosen entity's neighborhood as a diagram. The pkg directory is organized
// into four main areas:
//
//  1. Domain logic - entity graph, scanning, parsing, diagram layout
//  2. Rendering - ASCII, text tree, Mermaid, DOT/SVG output
//  3. Infrastructure - caching, snapshot storage, configuration
//  4. Orchestration - the scan → parse → render pipeline
//
// # Architecture
//
// The typical data flow through Codemap:
//
//	Source tree
//	     ↓
//	[scan] package (walk files, fingerprint)
//	     ↓
//	[parse] package (tree-sitter extraction → entity graph)
//	     ↓
//	[diagram] / [render] packages (neighborhood collection + layout)
//	     ↓
//	ASCII/text/Mermaid/DOT/SVG output
//
// # Quick Start
//
// Parse a source tree and render an ASCII diagram:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/codemap/pkg/diagram"
//	    "github.com/matzehuels/codemap/pkg/parse"
//	    "github.com/matzehuels/codemap/pkg/parse/languages"
//	    "github.com/matzehuels/codemap/pkg/scan"
//	)
//
//	// 1. Scan the tree
//	files, _ := scan.New(scan.Options{}).Scan(ctx, root)
//
//	// 2. Extract the entity graph
//	parser := parse.NewParser(languages.All, nil)
//	result, _ := parser.ParseFiles(ctx, root, files)
//
//	// 3. Render a neighborhood
//	gen := diagram.NewGenerator(result.Graph)
//	fmt.Println(gen.Generate("MyClass", 2))
//
// # Main Packages
//
// [entity] - The entity graph: named class/function records with dependency
// and used-by relation sets, plus the JSON document codec.
//
// [scan] - Source-tree walking with exclusion lists, .gitignore support, and
// content fingerprinting for cache keys.
//
// [parse] - Language-pluggable entity extraction built on tree-sitter.
// Python is implemented in [parse/python]; [parse/languages] registers all
// supported languages.
//
// [diagram] - The ASCII diagram engine: bounded bidirectional neighborhood
// collection, level assignment, layered layout, and orthogonal arrow routing
// on a sparse character grid.
//
// [render] - Output format registry and the secondary renderers:
// [render/text] (indented relation tree), [render/mermaid] (flowchart
// markup), and [render/nodelink] (DOT and Graphviz SVG).
//
// [pipeline] - The scan → parse → render pipeline with stage caching, used
// by the CLI and the HTTP server.
//
// [cache] - Cache backends (file, Redis, in-memory, null) with pluggable key
// derivation.
//
// [store] - Named graph snapshot persistence (file and MongoDB backends).
//
// [config] - TOML project configuration (.codemap.toml) with environment
// overrides.
//
// [errors] - Structured errors with stable codes shared by the CLI and the
// HTTP API.
//
// [observability] - Hook interfaces fired around pipeline and cache
// operations.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/diagram/...  # Specific package
//	go test -run Example       # Examples only
//
// [entity]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/entity
// [scan]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/scan
// [parse]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/parse
// [parse/python]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/parse/python
// [parse/languages]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/parse/languages
// [diagram]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/diagram
// [render]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/render
// [render/text]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/render/text
// [render/mermaid]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/render/mermaid
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/codemap/pkg/observability
package pkg
