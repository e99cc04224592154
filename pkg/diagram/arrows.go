package diagram

import "math"

// drawArrow routes an orthogonal connector from the source box to the target
// box, pointing at the target. The dominant axis between the two box centers
// picks the shape: mostly-horizontal pairs get a horizontal-vertical-
// horizontal route leaving the source's side border, mostly-vertical pairs a
// vertical-horizontal-vertical route leaving the top or bottom. Bend joints
// and the arrowhead are written unconditionally; straight segments yield to
// whatever already occupies a cell, except that crossing a perpendicular
// line produces a '+'.
func (g *grid) drawArrow(src, dst Box) {
	dx := center(dst.X, dst.Width) - center(src.X, src.Width)
	dy := center(dst.Y, dst.Height) - center(src.Y, src.Height)

	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			g.routeRight(src, dst)
		} else {
			g.routeLeft(src, dst)
		}
		return
	}
	if dy > 0 {
		g.routeDown(src, dst)
	} else {
		g.routeUp(src, dst)
	}
}

func center(pos, size int) float64 {
	return float64(pos) + float64(size)/2
}

// routeRight leaves the source's right border midpoint and enters the
// target's left border midpoint.
func (g *grid) routeRight(src, dst Box) {
	startX := src.X + src.Width - 1
	startY := src.Y + src.Height/2
	endX := dst.X
	endY := dst.Y + dst.Height/2
	midX := (startX + endX) / 2

	g.hSegment(startX+1, midX, startY)
	g.set(midX, startY, charCorner)
	g.vSegment(midX, startY, endY)
	g.set(midX, endY, charCorner)
	g.hSegment(midX, endX-1, endY)
	g.set(endX-1, endY, charArrowRight)
}

// routeLeft mirrors routeRight for targets to the source's left.
func (g *grid) routeLeft(src, dst Box) {
	startX := src.X
	startY := src.Y + src.Height/2
	endX := dst.X + dst.Width - 1
	endY := dst.Y + dst.Height/2
	midX := (startX + endX) / 2

	g.hSegment(startX-1, midX, startY)
	g.set(midX, startY, charCorner)
	g.vSegment(midX, startY, endY)
	g.set(midX, endY, charCorner)
	g.hSegment(midX, endX+1, endY)
	g.set(endX+1, endY, charArrowLeft)
}

// routeDown leaves the source's bottom border midpoint and enters the
// target's top border midpoint.
func (g *grid) routeDown(src, dst Box) {
	startX := src.X + src.Width/2
	startY := src.Y + src.Height - 1
	endX := dst.X + dst.Width/2
	endY := dst.Y
	midY := (startY + endY) / 2

	g.vSegment(startX, startY+1, midY)
	g.set(startX, midY, charCorner)
	g.hSegment(startX, endX, midY)
	g.set(endX, midY, charCorner)
	g.vSegment(endX, midY, endY-1)
	g.set(endX, endY-1, charArrowDown)
}

// routeUp mirrors routeDown for targets above the source.
func (g *grid) routeUp(src, dst Box) {
	startX := src.X + src.Width/2
	startY := src.Y
	endX := dst.X + dst.Width/2
	endY := dst.Y + dst.Height - 1
	midY := (startY + endY) / 2

	g.vSegment(startX, startY-1, midY)
	g.set(startX, midY, charCorner)
	g.hSegment(startX, endX, midY)
	g.set(endX, midY, charCorner)
	g.vSegment(endX, midY, endY+1)
	g.set(endX, endY+1, charArrowUp)
}

// hSegment draws a horizontal run between x1 and x2 inclusive, in either
// order. Blank cells get '-', a '|' becomes a '+' crossing, and anything
// else, box borders and arrowheads included, is left alone.
func (g *grid) hSegment(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		switch g.at(x, y) {
		case ' ':
			g.set(x, y, charHorizontal)
		case charVertical:
			g.set(x, y, charCorner)
		}
	}
}

// vSegment is the vertical counterpart of hSegment: blanks get '|' and a
// crossed '-' becomes '+'.
func (g *grid) vSegment(x, y1, y2 int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		switch g.at(x, y) {
		case ' ':
			g.set(x, y, charVertical)
		case charHorizontal:
			g.set(x, y, charCorner)
		}
	}
}
