package diagram

import "strings"

// Drawing characters for boxes and connectors. Corners, bends, and merge
// joints all share the '+' glyph.
const (
	charCorner     = '+'
	charHorizontal = '-'
	charVertical   = '|'
	charArrowLeft  = '<'
	charArrowRight = '>'
	charArrowUp    = '^'
	charArrowDown  = 'v'
)

type point struct{ x, y int }

// grid is a sparse character surface with an incrementally maintained
// bounding box. A fresh grid is created for every Generate call; nothing is
// shared across generations, which keeps the engine reentrant.
//
// Bounds are exclusive on the max side: a character at (x, y) extends the
// box to maxX = x+1, maxY = y+1.
type grid struct {
	cells                  map[point]rune
	minX, minY, maxX, maxY int
}

func newGrid() *grid {
	return &grid{cells: make(map[point]rune)}
}

// set writes ch at (x, y) and grows the bounding box to cover it.
func (g *grid) set(x, y int, ch rune) {
	g.cells[point{x, y}] = ch
	if len(g.cells) == 1 {
		g.minX, g.maxX = x, x+1
		g.minY, g.maxY = y, y+1
		return
	}
	g.minX = min(g.minX, x)
	g.maxX = max(g.maxX, x+1)
	g.minY = min(g.minY, y)
	g.maxY = max(g.maxY, y+1)
}

// at returns the character at (x, y), or a space when the cell is unset.
func (g *grid) at(x, y int) rune {
	if ch, ok := g.cells[point{x, y}]; ok {
		return ch
	}
	return ' '
}

// drawBox rasterizes a three-row bordered box whose interior row is exactly
// label. Returns the box's outer width and height.
func (g *grid) drawBox(label string, x, y int) (width, height int) {
	content := []rune(label)
	w := len(content)

	g.set(x, y, charCorner)
	for i := range content {
		g.set(x+1+i, y, charHorizontal)
	}
	g.set(x+w+1, y, charCorner)

	g.set(x, y+1, charVertical)
	for i, ch := range content {
		g.set(x+1+i, y+1, ch)
	}
	g.set(x+w+1, y+1, charVertical)

	g.set(x, y+2, charCorner)
	for i := range content {
		g.set(x+1+i, y+2, charHorizontal)
	}
	g.set(x+w+1, y+2, charCorner)

	return w + 2, boxHeight
}

// render serializes the occupied region row by row, top to bottom, filling
// unset cells with spaces. An untouched grid yields an explicit marker
// rather than an empty string.
func (g *grid) render() string {
	if len(g.cells) == 0 {
		return "(Empty Diagram - Grid is empty)"
	}

	var b strings.Builder
	for y := g.minY; y < g.maxY; y++ {
		if y > g.minY {
			b.WriteByte('\n')
		}
		for x := g.minX; x < g.maxX; x++ {
			b.WriteRune(g.at(x, y))
		}
	}
	return b.String()
}
