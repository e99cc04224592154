// Package mermaid renders entity relationships as Mermaid flowchart markup
// wrapped in a fenced code block, ready for embedding in Markdown.
//
// Classes render as subroutine nodes ([[...]]), functions as circles
// ((...)), each tagged with a classDef matching its kind. Edges always point
// from the dependent entity to its dependency, so caller expansion emits
// "caller --> focal" lines.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/matzehuels/codemap/pkg/entity"
)

var header = []string{
	"```mermaid",
	"graph TD",
	"    classDef classNode fill:#f9f,stroke:#333,stroke-width:2px,color:#000",
	"    classDef functionNode fill:#9cf,stroke:#333,stroke-width:2px,color:#000",
	"    classDef defaultNode fill:#lightgrey,stroke:#333,stroke-width:2px,color:#000",
}

// Render produces the Mermaid diagram for the named entity, following
// relations up to depth hops away. Unknown names yield an
// "Entity '<name>' not found" message. Node definitions appear in traversal
// order, each exactly once, before or alongside the first edge that uses
// them; each directed edge appears at most once.
func Render(g *entity.Graph, name string, depth int) string {
	if !g.Contains(name) {
		return fmt.Sprintf("Entity '%s' not found", name)
	}

	r := renderer{
		graph:   g,
		lines:   append([]string(nil), header...),
		defined: make(map[string]struct{}),
		edges:   make(map[edgeKey]struct{}),
	}
	r.defineNode(name)
	r.addDependencies(name, depth)
	r.addCallers(name, depth)
	r.lines = append(r.lines, "```")
	return strings.Join(r.lines, "\n")
}

type edgeKey struct{ from, to string }

type renderer struct {
	graph   *entity.Graph
	lines   []string
	defined map[string]struct{}
	edges   map[edgeKey]struct{}
}

func (r *renderer) defineNode(name string) {
	if _, ok := r.defined[name]; ok {
		return
	}
	ent, ok := r.graph.Entity(name)
	if !ok {
		return
	}
	style, start, end := nodeShape(ent.Kind)
	r.lines = append(r.lines, fmt.Sprintf("    %s%s%s%s:::%s", name, start, name, end, style))
	r.defined[name] = struct{}{}
}

func nodeShape(kind entity.Kind) (style, start, end string) {
	switch kind {
	case entity.KindClass:
		return "classNode", "[[", "]]"
	case entity.KindFunction:
		return "functionNode", "((", "))"
	default:
		return "defaultNode", "(", ")"
	}
}

func (r *renderer) addDependencies(name string, depth int) {
	if depth <= 0 || !r.graph.Contains(name) {
		return
	}
	r.defineNode(name)

	ent, _ := r.graph.Entity(name)
	for _, dep := range ent.Dependencies() {
		if !r.graph.Contains(dep) {
			continue
		}
		r.defineNode(dep)

		key := edgeKey{from: name, to: dep}
		if _, seen := r.edges[key]; seen {
			continue
		}
		r.edges[key] = struct{}{}
		r.lines = append(r.lines, fmt.Sprintf("    %s --> %s", name, dep))
		r.addDependencies(dep, depth-1)
	}
}

func (r *renderer) addCallers(name string, depth int) {
	if depth <= 0 || !r.graph.Contains(name) {
		return
	}
	r.defineNode(name)

	ent, _ := r.graph.Entity(name)
	for _, caller := range ent.Users() {
		if !r.graph.Contains(caller) {
			continue
		}
		r.defineNode(caller)

		key := edgeKey{from: caller, to: name}
		if _, seen := r.edges[key]; seen {
			continue
		}
		r.edges[key] = struct{}{}
		r.lines = append(r.lines, fmt.Sprintf("    %s --> %s", caller, name))
		r.addCallers(caller, depth-1)
	}
}
