package diagram

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/matzehuels/codemap/pkg/entity"
)

const (
	boxHeight = 3

	// levelGap is the number of blank columns between the widest box of one
	// level and the boxes of the next. rowGap separates boxes stacked within
	// a level.
	levelGap = 10
	rowGap   = 2
)

// Box is the placed rectangle for one entity on the grid. X and Y address
// the top-left corner; Width and Height are the outer dimensions including
// the border.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// boxLabel returns the interior row of an entity's box. Entities that were
// collected by name but have no record in the graph get a placeholder, and
// the placeholder participates in sizing like any other label so column
// widths stay honest.
func boxLabel(g *entity.Graph, name string) string {
	if ent, ok := g.Entity(name); ok {
		return fmt.Sprintf(" %s (%s) ", ent.Name, ent.Kind)
	}
	return fmt.Sprintf(" %s (details not found) ", name)
}

// ComputeLayout assigns an absolute grid position to every collected node.
// Levels become columns ordered left to right by ascending level, each as
// wide as its widest box plus levelGap. Within a column, boxes stack
// alphabetically from the top, rowGap rows apart. The top-left box of the
// leftmost column anchors at (1, 1).
func ComputeLayout(g *entity.Graph, c *Collection, levels map[string]int) map[string]Box {
	byLevel := make(map[int][]string)
	widest := make(map[int]int)
	sizes := make(map[string]Box)

	for _, name := range c.Nodes() {
		lvl := levels[name]
		byLevel[lvl] = append(byLevel[lvl], name)

		w := utf8.RuneCountInString(boxLabel(g, name)) + 2
		sizes[name] = Box{Width: w, Height: boxHeight}
		widest[lvl] = max(widest[lvl], w)
	}

	sortedLevels := slices.Sorted(maps.Keys(byLevel))

	columnX := make(map[int]int)
	x := 1
	for _, lvl := range sortedLevels {
		columnX[lvl] = x
		x += widest[lvl] + levelGap
	}

	positions := make(map[string]Box, len(sizes))
	for _, lvl := range sortedLevels {
		y := 1
		for _, name := range byLevel[lvl] {
			box := sizes[name]
			box.X = columnX[lvl]
			box.Y = y
			positions[name] = box
			y += box.Height + rowGap
		}
	}
	return positions
}
