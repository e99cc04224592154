package entity

import (
	"slices"
	"testing"
)

func TestGraphRoundTrip(t *testing.T) {
	g := NewGraph()
	g.Add(New("Car", KindClass, "car.py", 3))
	g.Add(New("Engine", KindClass, "engine.py", 10))
	g.Add(New("build", KindFunction, "build.py", 1))
	g.Link("Car", "Engine")
	g.Link("build", "Car")

	// One-sided relation and dangling reference must survive the trip.
	car, _ := g.Entity("Car")
	car.AddDependency("Vehicle")

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}

	if got.Len() != g.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), g.Len())
	}
	gotCar, ok := got.Entity("Car")
	if !ok {
		t.Fatal("Car missing after round trip")
	}
	if gotCar.Kind != KindClass || gotCar.File != "car.py" || gotCar.Line != 3 {
		t.Errorf("Car = %v, want class car.py:3", gotCar)
	}
	if want := []string{"Engine", "Vehicle"}; !slices.Equal(gotCar.Dependencies(), want) {
		t.Errorf("Car dependencies = %v, want %v", gotCar.Dependencies(), want)
	}
	if want := []string{"build"}; !slices.Equal(gotCar.Users(), want) {
		t.Errorf("Car users = %v, want %v", gotCar.Users(), want)
	}

	// Dangling reference was serialized, not repaired into an entity.
	if got.Contains("Vehicle") {
		t.Error("dangling reference must not become an entity")
	}
}

func TestFromGraphDeterministic(t *testing.T) {
	g := NewGraph()
	g.Add(New("zeta", KindFunction, "z.py", 1))
	g.Add(New("alpha", KindFunction, "a.py", 1))

	doc := FromGraph(g)
	if len(doc.Entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(doc.Entities))
	}
	if doc.Entities[0].Name != "alpha" || doc.Entities[1].Name != "zeta" {
		t.Errorf("entities not sorted: %s, %s", doc.Entities[0].Name, doc.Entities[1].Name)
	}

	first, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	second, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if string(first) != string(second) {
		t.Error("MarshalGraph output is not deterministic")
	}
}

func TestUnmarshalGraphErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Malformed", input: `{"entities": [`},
		{name: "EmptyName", input: `{"entities": [{"name": "", "kind": "class"}]}`},
		{name: "BadKind", input: `{"entities": [{"name": "X", "kind": "module"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalGraph([]byte(tt.input)); err == nil {
				t.Error("UnmarshalGraph: expected error, got nil")
			}
		})
	}
}
