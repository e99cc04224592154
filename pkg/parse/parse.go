package parse

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/codemap/pkg/entity"
)

// Language describes a parsing backend for one source language. Concrete
// languages live in subpackages (e.g. python) and expose a *Language value;
// pkg/parse/languages carries the canonical list.
type Language struct {
	Name       string
	Extensions []string
	Parse      func(ctx context.Context, path string, src []byte) (*FileSummary, error)
}

// Supports reports whether the language claims files with path's extension.
func (l *Language) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(l.Extensions, ext)
}

// FindLanguage returns the Language with the given name, or nil if not found.
func FindLanguage(name string, languages []*Language) *Language {
	for _, lang := range languages {
		if lang.Name == name {
			return lang
		}
	}
	return nil
}

// ForFile returns the first language that claims path, or nil if none does.
func ForFile(path string, languages []*Language) *Language {
	for _, lang := range languages {
		if lang.Supports(path) {
			return lang
		}
	}
	return nil
}

// Extensions returns the sorted union of file extensions claimed by the
// given languages.
func Extensions(languages []*Language) []string {
	set := make(map[string]struct{})
	for _, lang := range languages {
		for _, ext := range lang.Extensions {
			set[ext] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for ext := range set {
		out = append(out, ext)
	}
	slices.Sort(out)
	return out
}

// RelationKind distinguishes how a relation fact resolves during assembly.
type RelationKind int

const (
	// RelationBase links a class to a base class it inherits from. It is
	// recorded one-sided on the subclass, even when the base name is never
	// declared anywhere in the tree.
	RelationBase RelationKind = iota
	// RelationAnnotation links a class to a type named in its constructor
	// signature. It is recorded in both directions, and only when both
	// sides are declared entities.
	RelationAnnotation
	// RelationCall links the entity enclosing a call site to the entity it
	// calls. It is recorded in both directions, and only when both sides
	// are declared entities.
	RelationCall
)

// Declaration is an entity discovered in a single file.
type Declaration struct {
	Name string
	Kind entity.Kind
	Line int
}

// Relation is an unresolved relation fact discovered in a single file.
// Names are recorded as written in the source; resolution against the full
// entity set happens in [Assemble].
type Relation struct {
	Kind RelationKind
	From string
	To   string
}

// FileSummary is the extraction result for one source file: the entities it
// declares and the relation facts found in it. Summaries are independent of
// one another, so files can be parsed in any order and the results combined
// afterwards.
type FileSummary struct {
	Path         string
	Declarations []Declaration
	Relations    []Relation
}

// Assemble builds an entity graph from per-file summaries in two phases:
// every declaration first, then every relation. A reference to an entity
// declared in a different file resolves no matter which file was parsed
// first. When two files declare the same name, the later summary wins and
// all relations attach to the surviving record, per [entity.Graph] identity
// semantics.
func Assemble(summaries []*FileSummary) *entity.Graph {
	g := entity.NewGraph()
	for _, s := range summaries {
		for _, d := range s.Declarations {
			_ = g.Add(entity.New(d.Name, d.Kind, s.Path, d.Line))
		}
	}
	for _, s := range summaries {
		for _, r := range s.Relations {
			resolve(g, r)
		}
	}
	return g
}

func resolve(g *entity.Graph, r Relation) {
	switch r.Kind {
	case RelationBase:
		if e, ok := g.Entity(r.From); ok {
			e.AddDependency(r.To)
		}
	case RelationAnnotation, RelationCall:
		// Unresolved names point at builtins or library code and are dropped.
		if g.Contains(r.From) && g.Contains(r.To) {
			_ = g.Link(r.From, r.To)
		}
	}
}
