package entity

import (
	"errors"
	"slices"
	"testing"
)

func TestGraphAdd(t *testing.T) {
	tests := []struct {
		name    string
		entity  *Entity
		wantErr error
	}{
		{
			name:   "Class",
			entity: New("Engine", KindClass, "engine.py", 10),
		},
		{
			name:   "Function",
			entity: New("build", KindFunction, "build.py", 1),
		},
		{
			name:    "EmptyName",
			entity:  New("", KindClass, "x.py", 1),
			wantErr: ErrInvalidName,
		},
		{
			name:    "UnknownKind",
			entity:  New("Thing", Kind("module"), "x.py", 1),
			wantErr: ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			err := g.Add(tt.entity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !g.Contains(tt.entity.Name) {
				t.Errorf("Contains(%q) = false after Add", tt.entity.Name)
			}
		})
	}
}

func TestGraphAddLastWriterWins(t *testing.T) {
	g := NewGraph()
	if err := g.Add(New("Engine", KindClass, "old.py", 5)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := g.Add(New("Engine", KindFunction, "new.py", 9)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	e, ok := g.Entity("Engine")
	if !ok {
		t.Fatal("Entity(Engine) not found")
	}
	if e.Kind != KindFunction || e.File != "new.py" || e.Line != 9 {
		t.Errorf("Entity(Engine) = %v, want the later record", e)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestGraphLink(t *testing.T) {
	g := NewGraph()
	g.Add(New("Car", KindClass, "car.py", 3))
	g.Add(New("Engine", KindClass, "engine.py", 10))

	if err := g.Link("Car", "Engine"); err != nil {
		t.Fatalf("Link: %v", err)
	}

	car, _ := g.Entity("Car")
	engine, _ := g.Entity("Engine")
	if !car.DependsOn("Engine") {
		t.Error("Car should depend on Engine")
	}
	if !engine.UsedBy("Car") {
		t.Error("Engine should be used by Car")
	}

	if err := g.Link("Car", "Wheel"); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("Link to missing entity = %v, want ErrUnknownEntity", err)
	}
	if err := g.Link("Wheel", "Car"); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("Link from missing entity = %v, want ErrUnknownEntity", err)
	}
	if car.DependsOn("Wheel") {
		t.Error("failed Link must not record a dependency")
	}
}

func TestGraphNamesSorted(t *testing.T) {
	g := NewGraph()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		g.Add(New(name, KindFunction, "f.py", 1))
	}

	got := g.Names()
	want := []string{"alpha", "mid", "zeta"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestEntityRelationsSorted(t *testing.T) {
	e := New("hub", KindFunction, "hub.py", 1)
	e.AddDependency("z")
	e.AddDependency("a")
	e.AddDependency("a") // duplicate is a no-op
	e.AddUser("m")
	e.AddUser("b")

	if got, want := e.Dependencies(), []string{"a", "z"}; !slices.Equal(got, want) {
		t.Errorf("Dependencies() = %v, want %v", got, want)
	}
	if got, want := e.Users(), []string{"b", "m"}; !slices.Equal(got, want) {
		t.Errorf("Users() = %v, want %v", got, want)
	}
	if e.DependencyCount() != 2 {
		t.Errorf("DependencyCount() = %d, want 2", e.DependencyCount())
	}
}

func TestGraphRelationCount(t *testing.T) {
	g := NewGraph()
	g.Add(New("a", KindFunction, "a.py", 1))
	g.Add(New("b", KindFunction, "b.py", 1))
	g.Add(New("c", KindFunction, "c.py", 1))
	g.Link("a", "b")
	g.Link("a", "c")

	// One-sided dependency on a name outside the graph still counts.
	a, _ := g.Entity("a")
	a.AddDependency("ghost")

	if got := g.RelationCount(); got != 3 {
		t.Errorf("RelationCount() = %d, want 3", got)
	}
}
