package entity

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidName is returned by [Graph.Add] when the entity name is empty.
	// All entities must have non-empty identifiers.
	ErrInvalidName = errors.New("entity name must not be empty")

	// ErrInvalidKind is returned by [Graph.Add] when the entity kind is not
	// one of the known kinds.
	ErrInvalidKind = errors.New("unknown entity kind")

	// ErrUnknownEntity is returned by [Graph.Link] when either endpoint
	// does not exist in the graph.
	ErrUnknownEntity = errors.New("unknown entity")
)

// Graph maps entity names to their records. The bare name is the identity
// key: adding an entity whose name is already present replaces the previous
// record (last writer wins). This mirrors how same-named definitions in
// different files collide in the underlying source model; see DESIGN.md for
// the trade-offs of qualifying names by file path instead.
//
// Unlike a strict dependency DAG, entity graphs may contain cycles (mutually
// recursive functions, classes referencing each other) and one-sided
// relations (a dependency without the inverse used-by). Consumers that
// traverse the graph are responsible for their own cycle control.
//
// The zero value is not usable - use NewGraph. Graph is not safe for
// concurrent mutation; once built it may be read from multiple goroutines.
type Graph struct {
	entities map[string]*Entity
}

// NewGraph creates an empty entity graph.
func NewGraph() *Graph {
	return &Graph{entities: make(map[string]*Entity)}
}

// Add inserts e into the graph, replacing any existing entity with the same
// name. Returns ErrInvalidName for an empty name or ErrInvalidKind for an
// unknown kind.
func (g *Graph) Add(e *Entity) error {
	if e.Name == "" {
		return ErrInvalidName
	}
	if !e.Kind.Valid() {
		return ErrInvalidKind
	}
	g.entities[e.Name] = e
	return nil
}

// Entity returns the entity with the given name and true, or nil and false
// if the name is not present.
func (g *Graph) Entity(name string) (*Entity, bool) {
	e, ok := g.entities[name]
	return e, ok
}

// Contains reports whether name is present in the graph.
func (g *Graph) Contains(name string) bool {
	_, ok := g.entities[name]
	return ok
}

// Link records that from depends on to, in both directions: a dependency on
// the from side and a used-by on the to side. Both entities must already
// exist; ErrUnknownEntity is returned otherwise and nothing is recorded.
func (g *Graph) Link(from, to string) error {
	src, ok := g.entities[from]
	if !ok {
		return ErrUnknownEntity
	}
	dst, ok := g.entities[to]
	if !ok {
		return ErrUnknownEntity
	}
	src.AddDependency(to)
	dst.AddUser(from)
	return nil
}

// Len returns the number of entities in the graph.
func (g *Graph) Len() int { return len(g.entities) }

// Names returns all entity names in sorted order.
func (g *Graph) Names() []string {
	return slices.Sorted(maps.Keys(g.entities))
}

// Entities returns all entities sorted by name.
func (g *Graph) Entities() []*Entity {
	out := make([]*Entity, 0, len(g.entities))
	for _, name := range g.Names() {
		out = append(out, g.entities[name])
	}
	return out
}

// RelationCount returns the total number of recorded dependency relations.
// One-sided relations count once; a linked pair counts once (the used-by
// side is the inverse view, not a separate relation).
func (g *Graph) RelationCount() int {
	n := 0
	for _, e := range g.entities {
		n += len(e.dependencies)
	}
	return n
}
