package diagram

// AssignLevels places every collected node on a horizontal layer relative to
// the focal entity: the focal node sits at level 0, dependencies at positive
// levels, and callers at negative ones. Two breadth-first sweeps run over
// the collected edges, dependencies first, and a node keeps the assignment
// with the smallest absolute level; ties go to whichever sweep recorded it
// first. Expansion stops once a node's absolute level reaches depth. Nodes
// no sweep reaches default to level 0 next to the focal entity.
func AssignLevels(c *Collection, depth int) map[string]int {
	out := make(map[string][]string)
	in := make(map[string][]string)
	for _, e := range c.Edges() {
		out[e.From] = append(out[e.From], e.To)
		in[e.To] = append(in[e.To], e.From)
	}

	levels := map[string]int{c.Focal: 0}
	levelSweep(c.Focal, depth, out, +1, levels)
	levelSweep(c.Focal, depth, in, -1, levels)

	for _, name := range c.Nodes() {
		if _, ok := levels[name]; !ok {
			levels[name] = 0
		}
	}
	return levels
}

type levelItem struct {
	name  string
	level int
}

func levelSweep(focal string, depth int, adjacency map[string][]string, step int, levels map[string]int) {
	queue := []levelItem{{name: focal, level: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if abs(item.level) >= depth && item.name != focal {
			continue
		}
		for _, next := range adjacency[item.name] {
			level := item.level + step
			if cur, seen := levels[next]; seen && abs(level) >= abs(cur) {
				continue
			}
			levels[next] = level
			queue = append(queue, levelItem{name: next, level: level})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
