// Package text renders entity relationships as indented plain-text trees.
//
// The output lists the focal entity's dependencies and callers as two
// sections, one line per entity, indented two spaces per hop:
//
//	Text Diagram for Engine
//	========================================
//
//	Dependencies:
//	- class Piston
//	  - class Rod
//
//	Used by:
//	- function build
//
// Each branch tracks its own visited path, so a cycle shows the returning
// entity once and stops there instead of recursing.
package text

import (
	"fmt"
	"maps"
	"strings"

	"github.com/matzehuels/codemap/pkg/entity"
)

const rulerWidth = 40

// Render produces the text diagram for the named entity, following
// relations up to depth hops away. Unknown names yield an
// "Entity '<name>' not found" message. Both section headers are always
// present, even when a section is empty.
func Render(g *entity.Graph, name string, depth int) string {
	if !g.Contains(name) {
		return fmt.Sprintf("Entity '%s' not found", name)
	}

	lines := []string{
		fmt.Sprintf("Text Diagram for %s", name),
		strings.Repeat("=", rulerWidth),
	}

	lines = append(lines, "\nDependencies:")
	appendBranch(g, &lines, name, depth, 0, map[string]struct{}{}, false)

	lines = append(lines, "\nUsed by:")
	appendBranch(g, &lines, name, depth, 0, map[string]struct{}{}, true)

	return strings.Join(lines, "\n")
}

// appendBranch walks one relation direction depth-first. The visited set is
// copied per child so separate branches can both mention a shared entity;
// within a branch, an entity already on the path is printed by its parent
// but not expanded again.
func appendBranch(g *entity.Graph, lines *[]string, name string, maxDepth, curDepth int, visited map[string]struct{}, callers bool) {
	if _, seen := visited[name]; seen || curDepth >= maxDepth {
		return
	}
	visited[name] = struct{}{}

	ent, ok := g.Entity(name)
	if !ok {
		return
	}

	indent := strings.Repeat("  ", curDepth)
	var related []string
	if callers {
		related = ent.Users()
	} else {
		related = ent.Dependencies()
	}
	for _, next := range related {
		target, ok := g.Entity(next)
		if !ok {
			continue
		}
		*lines = append(*lines, fmt.Sprintf("%s- %s %s", indent, target.Kind, next))
		appendBranch(g, lines, next, maxDepth, curDepth+1, maps.Clone(visited), callers)
	}
}
