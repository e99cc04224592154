package diagram_test

import (
	"fmt"

	"github.com/matzehuels/codemap/pkg/diagram"
	"github.com/matzehuels/codemap/pkg/entity"
)

func ExampleGenerator_Generate() {
	// Two classes where A depends on B.
	g := entity.NewGraph()
	_ = g.Add(entity.New("A", entity.KindClass, "a.py", 1))
	_ = g.Add(entity.New("B", entity.KindClass, "b.py", 4))
	_ = g.Link("A", "B")

	gen := diagram.NewGenerator(g)
	fmt.Println(gen.Generate("A", 1))
	// Output:
	// ASCII Diagram for A (depth 1):
	// ==============================
	//
	// +-----------+          +-----------+
	// | A (class) |----+---->| B (class) |
	// +-----------+          +-----------+
}

func ExampleGenerator_Generate_unknown() {
	g := entity.NewGraph()
	_ = g.Add(entity.New("A", entity.KindClass, "a.py", 1))

	gen := diagram.NewGenerator(g)
	fmt.Println(gen.Generate("Ghost", 2))
	// Output:
	// Entity 'Ghost' not found
}

func ExampleCollect() {
	// Chain A → B → C, collected from A with room for one hop.
	g := entity.NewGraph()
	_ = g.Add(entity.New("A", entity.KindClass, "a.py", 1))
	_ = g.Add(entity.New("B", entity.KindClass, "b.py", 1))
	_ = g.Add(entity.New("C", entity.KindClass, "c.py", 1))
	_ = g.Link("A", "B")
	_ = g.Link("B", "C")

	c := diagram.Collect(g, "A", 1)
	fmt.Println("Nodes:", c.Nodes())
	fmt.Println("Edges:", c.EdgeCount())
	// Output:
	// Nodes: [A B]
	// Edges: 1
}
