package diagram

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGridRenderEmpty(t *testing.T) {
	g := newGrid()
	if got, want := g.render(), "(Empty Diagram - Grid is empty)"; got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestGridBounds(t *testing.T) {
	g := newGrid()

	g.set(5, 7, 'x')
	if g.minX != 5 || g.maxX != 6 || g.minY != 7 || g.maxY != 8 {
		t.Errorf("bounds after first set = (%d,%d,%d,%d), want (5,6,7,8)", g.minX, g.maxX, g.minY, g.maxY)
	}
	if got := g.render(); got != "x" {
		t.Errorf("render() = %q, want %q", got, "x")
	}

	g.set(3, 7, 'y')
	if got := g.render(); got != "y x" {
		t.Errorf("render() = %q, want %q", got, "y x")
	}

	g.set(4, 8, 'z')
	want := "y x\n z "
	if got := g.render(); got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestGridAtDefaultsToSpace(t *testing.T) {
	g := newGrid()
	if got := g.at(10, 10); got != ' ' {
		t.Errorf("at(10, 10) = %q, want space", got)
	}
}

func TestDrawBoxRoundTrip(t *testing.T) {
	label := " Engine (class) "
	g := newGrid()

	w, h := g.drawBox(label, 1, 1)
	if want := utf8.RuneCountInString(label) + 2; w != want {
		t.Errorf("drawBox() width = %d, want %d", w, want)
	}
	if h != boxHeight {
		t.Errorf("drawBox() height = %d, want %d", h, boxHeight)
	}

	border := "+" + strings.Repeat("-", utf8.RuneCountInString(label)) + "+"
	want := border + "\n" + "|" + label + "|" + "\n" + border
	if got := g.render(); got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestDrawBoxDimensionsMatchRaster(t *testing.T) {
	g := newGrid()
	w, h := g.drawBox(" A (function) ", 1, 1)

	lines := strings.Split(g.render(), "\n")
	if len(lines) != h {
		t.Fatalf("rendered %d lines, want %d", len(lines), h)
	}
	for i, line := range lines {
		if utf8.RuneCountInString(line) != w {
			t.Errorf("line %d width = %d, want %d", i, utf8.RuneCountInString(line), w)
		}
	}
}
