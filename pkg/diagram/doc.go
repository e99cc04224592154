// Package diagram renders plain-text box-and-arrow diagrams of an entity's
// dependency neighborhood.
//
// # Overview
//
// Given an entity graph and a focal entity name, the generator collects
// every entity within a bounded number of hops in both directions
// (dependencies and callers), assigns each one a horizontal level relative
// to the focal entity, lays the levels out as columns of stacked boxes, and
// rasterizes boxes and orthogonal arrows onto a sparse character grid.
//
// The pipeline runs in four stages, each usable on its own:
//
//   - [Collect] walks the graph breadth-first in both directions and
//     returns the bounded neighborhood as nodes and directed edges.
//   - [AssignLevels] layers the collected nodes: 0 for the focal entity,
//     positive for dependencies, negative for callers.
//   - [ComputeLayout] turns levels into box positions, one column per
//     level, boxes stacked alphabetically.
//   - [Generator.Generate] draws the result and frames it with a header.
//
// # Basic Usage
//
//	g := entity.NewGraph()
//	g.Add(entity.New("Engine", entity.KindClass, "engine.py", 1))
//	g.Add(entity.New("Piston", entity.KindClass, "piston.py", 1))
//	g.Link("Engine", "Piston")
//
//	gen := diagram.NewGenerator(g)
//	fmt.Println(gen.Generate("Engine", 2))
//
// # Determinism
//
// Diagrams are pure functions of the graph contents, the focal name, and
// the depth. All map iteration happens over sorted views, every Generate
// call draws on a fresh grid, and nothing in this package mutates the
// graph, so concurrent generations over the same graph are safe as long as
// the graph itself is not being modified.
package diagram
