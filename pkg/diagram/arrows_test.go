package diagram

import "testing"

func TestSegmentCollisions(t *testing.T) {
	g := newGrid()
	g.hSegment(0, 4, 2)
	g.vSegment(2, 0, 4)

	if got := g.at(2, 2); got != charCorner {
		t.Errorf("crossing cell = %q, want %q", got, charCorner)
	}
	if got := g.at(1, 2); got != charHorizontal {
		t.Errorf("horizontal cell = %q, want %q", got, charHorizontal)
	}
	if got := g.at(2, 1); got != charVertical {
		t.Errorf("vertical cell = %q, want %q", got, charVertical)
	}
}

func TestSegmentsLeaveTextAlone(t *testing.T) {
	g := newGrid()
	g.set(3, 1, 'A')
	g.hSegment(2, 4, 1)

	if got := g.at(3, 1); got != 'A' {
		t.Errorf("occupied cell = %q, want 'A'", got)
	}
	if g.at(2, 1) != charHorizontal || g.at(4, 1) != charHorizontal {
		t.Errorf("surrounding cells = %q %q, want dashes", g.at(2, 1), g.at(4, 1))
	}
}

func TestSegmentsLeaveArrowheadsAlone(t *testing.T) {
	g := newGrid()
	g.set(3, 1, charArrowRight)
	g.hSegment(1, 5, 1)
	g.vSegment(3, 0, 2)

	if got := g.at(3, 1); got != charArrowRight {
		t.Errorf("arrowhead cell = %q, want %q", got, charArrowRight)
	}
}

func TestDrawArrowHorizontal(t *testing.T) {
	src := Box{X: 1, Y: 1, Width: 13, Height: 3}
	dst := Box{X: 24, Y: 1, Width: 13, Height: 3}

	g := newGrid()
	g.drawArrow(src, dst)

	if got := g.at(23, 2); got != charArrowRight {
		t.Errorf("cell before target = %q, want %q", got, charArrowRight)
	}
	if got := g.at(18, 2); got != charCorner {
		t.Errorf("bend cell = %q, want %q", got, charCorner)
	}
	for _, x := range []int{14, 15, 16, 17, 19, 20, 21, 22} {
		if got := g.at(x, 2); got != charHorizontal {
			t.Errorf("cell (%d, 2) = %q, want %q", x, got, charHorizontal)
		}
	}
}

func TestDrawArrowHorizontalLeft(t *testing.T) {
	src := Box{X: 24, Y: 1, Width: 13, Height: 3}
	dst := Box{X: 1, Y: 1, Width: 13, Height: 3}

	g := newGrid()
	g.drawArrow(src, dst)

	if got := g.at(14, 2); got != charArrowLeft {
		t.Errorf("cell before target = %q, want %q", got, charArrowLeft)
	}
	if got := g.at(18, 2); got != charCorner {
		t.Errorf("bend cell = %q, want %q", got, charCorner)
	}
}

func TestDrawArrowVerticalDown(t *testing.T) {
	src := Box{X: 1, Y: 1, Width: 13, Height: 3}
	dst := Box{X: 1, Y: 11, Width: 13, Height: 3}

	g := newGrid()
	g.drawArrow(src, dst)

	if got := g.at(7, 10); got != charArrowDown {
		t.Errorf("cell above target = %q, want %q", got, charArrowDown)
	}
	for _, y := range []int{4, 5, 6, 8, 9} {
		if got := g.at(7, y); got != charVertical {
			t.Errorf("cell (7, %d) = %q, want %q", y, got, charVertical)
		}
	}
	if got := g.at(7, 7); got != charCorner {
		t.Errorf("bend cell = %q, want %q", got, charCorner)
	}
}

func TestDrawArrowVerticalUp(t *testing.T) {
	src := Box{X: 1, Y: 11, Width: 13, Height: 3}
	dst := Box{X: 1, Y: 1, Width: 13, Height: 3}

	g := newGrid()
	g.drawArrow(src, dst)

	if got := g.at(7, 4); got != charArrowUp {
		t.Errorf("cell below target = %q, want %q", got, charArrowUp)
	}
	if got := g.at(7, 7); got != charCorner {
		t.Errorf("bend cell = %q, want %q", got, charCorner)
	}
}

// Steeper than wide picks the vertical route even when the boxes also differ
// horizontally.
func TestDrawArrowPrefersDominantAxis(t *testing.T) {
	src := Box{X: 1, Y: 1, Width: 13, Height: 3}
	dst := Box{X: 5, Y: 21, Width: 13, Height: 3}

	g := newGrid()
	g.drawArrow(src, dst)

	if got := g.at(11, 20); got != charArrowDown {
		t.Errorf("cell above target = %q, want %q", got, charArrowDown)
	}
}
