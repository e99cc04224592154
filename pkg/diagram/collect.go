package diagram

import (
	"slices"

	"github.com/matzehuels/codemap/pkg/entity"
)

// Edge is a directed dependency between two collected entities: From depends
// on To.
type Edge struct {
	From string
	To   string
}

// Collection is the bounded neighborhood gathered around a focal entity. It
// always contains the focal node itself, even when nothing else is reachable.
type Collection struct {
	Focal string
	nodes map[string]struct{}
	edges map[Edge]struct{}
}

// Contains reports whether name was collected.
func (c *Collection) Contains(name string) bool {
	_, ok := c.nodes[name]
	return ok
}

// Nodes returns the collected entity names in sorted order.
func (c *Collection) Nodes() []string {
	names := make([]string, 0, len(c.nodes))
	for name := range c.nodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Edges returns the collected edges sorted by (From, To).
func (c *Collection) Edges() []Edge {
	edges := make([]Edge, 0, len(c.edges))
	for e := range c.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.From != b.From {
			if a.From < b.From {
				return -1
			}
			return 1
		}
		switch {
		case a.To < b.To:
			return -1
		case a.To > b.To:
			return 1
		default:
			return 0
		}
	})
	return edges
}

// Size returns the number of collected nodes.
func (c *Collection) Size() int { return len(c.nodes) }

// EdgeCount returns the number of collected edges.
func (c *Collection) EdgeCount() int { return len(c.edges) }

type collectItem struct {
	name   string
	budget int // remaining traversal depth
}

// Collect gathers every entity reachable from focal within depth hops,
// walking dependencies and callers as two separate breadth-first sweeps that
// share one visited-edge set. The shared set is what keeps cyclic graphs
// from looping: each directed edge is recorded at most once, and a node is
// only re-enqueued when the edge leading to it was new.
//
// Names that appear in a relation set but have no entity record are skipped
// entirely. A depth of zero (or less) yields just the focal node.
func Collect(g *entity.Graph, focal string, depth int) *Collection {
	c := &Collection{
		Focal: focal,
		nodes: map[string]struct{}{focal: {}},
		edges: make(map[Edge]struct{}),
	}
	visited := make(map[Edge]struct{})
	collectSweep(g, focal, depth, c, visited, false)
	collectSweep(g, focal, depth, c, visited, true)
	return c
}

// collectSweep runs one direction of the traversal. With callers false it
// follows dependency edges outward from each node; with callers true it
// follows used-by edges, recording them in dependency orientation so both
// sweeps deduplicate against the same set.
func collectSweep(g *entity.Graph, focal string, depth int, c *Collection, visited map[Edge]struct{}, callers bool) {
	queue := []collectItem{{name: focal, budget: depth}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.budget <= 0 {
			continue
		}
		ent, ok := g.Entity(item.name)
		if !ok {
			continue
		}

		var neighbors []string
		if callers {
			neighbors = ent.Users()
		} else {
			neighbors = ent.Dependencies()
		}
		for _, next := range neighbors {
			if !g.Contains(next) {
				continue
			}
			edge := Edge{From: item.name, To: next}
			if callers {
				edge = Edge{From: next, To: item.name}
			}
			if _, seen := visited[edge]; seen {
				continue
			}
			visited[edge] = struct{}{}
			c.nodes[next] = struct{}{}
			c.edges[edge] = struct{}{}
			queue = append(queue, collectItem{name: next, budget: item.budget - 1})
		}
	}
}
