// Package entity provides the code-entity relationship graph that all
// diagram generation consumes.
//
// # Overview
//
// Codemap extracts named entities (classes and functions) from a source tree
// and records two directed relation views between them: dependencies (what an
// entity references) and used-by (what references it). This package provides
// the data model for that graph; extraction lives in [pkg/parse] and
// consumers in [pkg/diagram] and [pkg/render].
//
// # Basic Usage
//
// Create a graph with [NewGraph], add entities with [Graph.Add], and record
// relations either one-sided on an [Entity] or symmetrically with
// [Graph.Link]:
//
//	g := entity.NewGraph()
//	g.Add(entity.New("Engine", entity.KindClass, "engine.py", 10))
//	g.Add(entity.New("Car", entity.KindClass, "car.py", 3))
//	g.Link("Car", "Engine")
//
// # Identity and Tolerated Irregularities
//
// The bare entity name is the identity key. Same-named definitions collide
// onto one record, last writer wins. Relation names need not resolve to
// entities in the graph (dangling references), and a dependency does not
// imply the inverse used-by was recorded. Consumers drop dangling edges
// rather than repairing them.
//
// # Serialization
//
// [FromGraph] and [Document.Graph] convert between the in-memory graph and a
// JSON/BSON-taggable document with full round-trip fidelity, used by file
// export, the cache, and the snapshot store.
//
// [pkg/parse]: github.com/matzehuels/codemap/pkg/parse
// [pkg/diagram]: github.com/matzehuels/codemap/pkg/diagram
// [pkg/render]: github.com/matzehuels/codemap/pkg/render
package entity
