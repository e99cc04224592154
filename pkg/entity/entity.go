package entity

import (
	"fmt"
	"slices"
)

// Kind classifies a code entity extracted from source.
type Kind string

const (
	// KindClass is a class definition.
	KindClass Kind = "class"
	// KindFunction is a module-level (or function-nested) function definition.
	// Methods belong to their class and are not entities of their own.
	KindFunction Kind = "function"
)

// Valid reports whether k is one of the known entity kinds.
func (k Kind) Valid() bool { return k == KindClass || k == KindFunction }

// Entity is a named class or function discovered in a source tree, together
// with its directed relations to other entities. Relations are stored by name
// only; a name may refer to an entity that was never discovered (a dangling
// reference), which consumers are expected to tolerate.
//
// The zero value is not usable - use New to create a valid Entity.
type Entity struct {
	Name string // Unique identifier (bare name, also the display label)
	Kind Kind   // class or function
	File string // Source file the entity was defined in
	Line int    // 1-based line of the definition

	dependencies map[string]struct{} // names this entity depends on
	usedBy       map[string]struct{} // names that depend on this entity
}

// New creates an Entity with empty relation sets.
func New(name string, kind Kind, file string, line int) *Entity {
	return &Entity{
		Name:         name,
		Kind:         kind,
		File:         file,
		Line:         line,
		dependencies: make(map[string]struct{}),
		usedBy:       make(map[string]struct{}),
	}
}

// AddDependency records that the entity depends on (references) name.
// Adding the same name twice is a no-op. No inverse used-by relation is
// recorded - use [Graph.Link] when both directions are wanted.
func (e *Entity) AddDependency(name string) {
	e.dependencies[name] = struct{}{}
}

// AddUser records that name depends on this entity.
func (e *Entity) AddUser(name string) {
	e.usedBy[name] = struct{}{}
}

// DependsOn reports whether the entity has a dependency on name.
func (e *Entity) DependsOn(name string) bool {
	_, ok := e.dependencies[name]
	return ok
}

// UsedBy reports whether name is recorded as a user of this entity.
func (e *Entity) UsedBy(name string) bool {
	_, ok := e.usedBy[name]
	return ok
}

// Dependencies returns the names this entity depends on, sorted.
func (e *Entity) Dependencies() []string {
	return sortedKeys(e.dependencies)
}

// Users returns the names recorded as depending on this entity, sorted.
func (e *Entity) Users() []string {
	return sortedKeys(e.usedBy)
}

// DependencyCount returns the number of recorded dependencies.
func (e *Entity) DependencyCount() int { return len(e.dependencies) }

// UserCount returns the number of recorded users.
func (e *Entity) UserCount() int { return len(e.usedBy) }

// String renders the entity as "kind name (file:line)".
func (e *Entity) String() string {
	return fmt.Sprintf("%s %s (%s:%d)", e.Kind, e.Name, e.File, e.Line)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
