package diagram

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/codemap/pkg/entity"
)

// Generator renders ASCII diagrams of an entity's dependency neighborhood.
// The zero value is not usable - construct one with NewGenerator.
type Generator struct {
	graph *entity.Graph
}

// NewGenerator returns a Generator that reads from g. The graph is not
// copied; diagrams reflect whatever the graph holds at Generate time.
func NewGenerator(g *entity.Graph) *Generator {
	return &Generator{graph: g}
}

// Generate renders the neighborhood of the named entity out to depth hops in
// both directions. Unknown names yield an "Entity '<name>' not found"
// message rather than an error; a known entity with nothing to show still
// renders its own box. Output is deterministic for a given graph, name, and
// depth, and repeated calls are independent of each other.
func (gen *Generator) Generate(name string, depth int) string {
	if !gen.graph.Contains(name) {
		return fmt.Sprintf("Entity '%s' not found", name)
	}

	collected := Collect(gen.graph, name, depth)
	if collected.Size() == 0 {
		return fmt.Sprintf("ASCII Diagram for %s (depth %d):\n%s\n(No entities or relationships found to display)",
			name, depth, strings.Repeat("-", 40))
	}

	levels := AssignLevels(collected, depth)
	boxes := ComputeLayout(gen.graph, collected, levels)

	surface := newGrid()

	names := collected.Nodes()
	slices.SortFunc(names, func(a, b string) int {
		if levels[a] != levels[b] {
			return levels[a] - levels[b]
		}
		return strings.Compare(a, b)
	})
	for _, n := range names {
		box := boxes[n]
		surface.drawBox(boxLabel(gen.graph, n), box.X, box.Y)
	}

	for _, e := range collected.Edges() {
		src, okSrc := boxes[e.From]
		dst, okDst := boxes[e.To]
		if !okSrc || !okDst {
			continue
		}
		surface.drawArrow(src, dst)
	}

	header := fmt.Sprintf("ASCII Diagram for %s (depth %d):", name, depth)
	return fmt.Sprintf("%s\n%s\n\n%s", header, strings.Repeat("=", utf8.RuneCountInString(header)), surface.render())
}
