// Package io provides JSON import and export for entity graphs.
//
// # Overview
//
// This package serializes the graph produced by scanning and parsing a
// source tree, so the expensive extraction step can be decoupled from
// rendering:
//
//   - `codemap scan` writes a graph file once; `codemap diagram graph.json`
//     renders from it any number of times without re-parsing.
//   - Snapshots persist the same document in a store backend.
//   - External tools can produce or consume graph data in this format.
//
// # JSON Format
//
// The format has one top-level array:
//
//	{
//	  "entities": [
//	    {"name": "Car", "kind": "class", "file": "car.py", "line": 4,
//	     "dependencies": ["Engine", "Vehicle"], "used_by": []},
//	    {"name": "Engine", "kind": "class", "file": "engine.py", "line": 1,
//	     "dependencies": [], "used_by": ["Car"]}
//	  ]
//	}
//
// # Entity Fields
//
// Required:
//   - name: Unique string identifier (also used as the display label)
//   - kind: "class" or "function"
//
// Optional:
//   - file: Source file the entity was defined in
//   - line: 1-based line of the definition
//   - dependencies: Names this entity depends on
//   - used_by: Names that depend on this entity
//
// Relations are stored by bare name and are allowed to be one-sided or to
// reference names with no entity record. A class may list a superclass from
// an external library in dependencies; no matching entity exists and none is
// required. Renderers drop what they cannot resolve.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions reject duplicate names and unknown kinds, wrapping errors
// with the offending entity's name.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(g, "graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export is deterministic: entities and relation lists are sorted by
// name, so equal graphs produce byte-identical output. The pipeline relies
// on this to derive stable cache keys from exported bytes.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same graph, but not with concurrent modifications. The
// [ReadJSON] and [ImportJSON] functions create independent graphs that can
// be used and modified freely after import.
package io
