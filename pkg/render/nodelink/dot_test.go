package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/codemap/pkg/entity"
)

func buildGraph(t *testing.T) *entity.Graph {
	t.Helper()
	g := entity.NewGraph()
	for _, e := range []*entity.Entity{
		entity.New("Engine", entity.KindClass, "engine.py", 10),
		entity.New("Piston", entity.KindClass, "piston.py", 3),
		entity.New("build", entity.KindFunction, "build.py", 7),
	} {
		if err := g.Add(e); err != nil {
			t.Fatalf("Add(%s) returned error: %v", e.Name, err)
		}
	}
	for _, link := range [][2]string{{"Engine", "Piston"}, {"build", "Engine"}} {
		if err := g.Link(link[0], link[1]); err != nil {
			t.Fatalf("Link(%v) returned error: %v", link, err)
		}
	}
	return g
}

func TestToDOTWholeGraph(t *testing.T) {
	g := buildGraph(t)

	dot, err := ToDOT(g, "", Options{})
	if err != nil {
		t.Fatalf("ToDOT() returned error: %v", err)
	}

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, node := range []string{`"Engine"`, `"Piston"`, `"build"`} {
		if !strings.Contains(dot, node) {
			t.Errorf("ToDOT() output missing node %s", node)
		}
	}
	for _, edge := range []string{`"Engine" -> "Piston"`, `"build" -> "Engine"`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("ToDOT() output missing edge %s", edge)
		}
	}
}

func TestToDOTNeighborhood(t *testing.T) {
	g := buildGraph(t)

	dot, err := ToDOT(g, "Piston", Options{Depth: 1})
	if err != nil {
		t.Fatalf("ToDOT() returned error: %v", err)
	}

	if !strings.Contains(dot, `"Engine" -> "Piston"`) {
		t.Error("ToDOT() output missing caller edge")
	}
	if strings.Contains(dot, `"build"`) {
		t.Error("ToDOT() output includes node beyond depth bound")
	}
	if !strings.Contains(dot, "peripheries=2") {
		t.Error("ToDOT() output missing focal highlight")
	}
}

func TestToDOTUnknownFocal(t *testing.T) {
	g := buildGraph(t)

	if _, err := ToDOT(g, "Ghost", Options{Depth: 1}); err == nil {
		t.Error("ToDOT() with unknown focal should return error")
	}
}

func TestToDOTKindStyles(t *testing.T) {
	g := buildGraph(t)

	dot, err := ToDOT(g, "", Options{})
	if err != nil {
		t.Fatalf("ToDOT() returned error: %v", err)
	}

	if !strings.Contains(dot, classFill) {
		t.Error("ToDOT() output missing class fill color")
	}
	if !strings.Contains(dot, "shape=ellipse") {
		t.Error("ToDOT() output missing function shape")
	}
	if !strings.Contains(dot, functionFill) {
		t.Error("ToDOT() output missing function fill color")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	g := buildGraph(t)

	dot, err := ToDOT(g, "", Options{Detailed: true})
	if err != nil {
		t.Fatalf("ToDOT() returned error: %v", err)
	}
	if !strings.Contains(dot, `engine.py:10`) {
		t.Error("ToDOT() detailed output missing file and line")
	}
}

func TestNodeAttrsFocal(t *testing.T) {
	ent := entity.New("Engine", entity.KindClass, "engine.py", 10)

	attrs := strings.Join(nodeAttrs(ent, true, false), ", ")
	if !strings.Contains(attrs, "peripheries=2") {
		t.Errorf("nodeAttrs() focal = %q, want doubled border", attrs)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">`)

	got := string(normalizeViewBox(svg))
	if !strings.Contains(got, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() = %q, want origin viewBox", got)
	}
	if !strings.Contains(got, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %q, want pixel dimensions", got)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	svg := []byte(`<svg>no viewbox</svg>`)

	if got := string(normalizeViewBox(svg)); got != string(svg) {
		t.Errorf("normalizeViewBox() = %q, want input unchanged", got)
	}
}
