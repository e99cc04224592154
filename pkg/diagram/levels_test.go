package diagram

import (
	"maps"
	"testing"
)

func TestAssignLevelsChain(t *testing.T) {
	g := classGraph(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"},
	})

	levels := AssignLevels(Collect(g, "A", 4), 4)
	want := map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4}
	if !maps.Equal(levels, want) {
		t.Errorf("AssignLevels() = %v, want %v", levels, want)
	}
}

func TestAssignLevelsChainReversed(t *testing.T) {
	g := classGraph(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"},
	})

	levels := AssignLevels(Collect(g, "E", 4), 4)
	want := map[string]int{"E": 0, "D": -1, "C": -2, "B": -3, "A": -4}
	if !maps.Equal(levels, want) {
		t.Errorf("AssignLevels() = %v, want %v", levels, want)
	}
}

// A node reachable both as a transitive dependency and as a direct caller
// keeps the assignment with the smaller absolute level.
func TestAssignLevelsClosestWins(t *testing.T) {
	g := classGraph(t, []string{"F", "A", "B"}, [][2]string{
		{"F", "A"}, {"A", "B"}, {"B", "F"},
	})

	levels := AssignLevels(Collect(g, "F", 3), 3)
	want := map[string]int{"F": 0, "A": 1, "B": -1}
	if !maps.Equal(levels, want) {
		t.Errorf("AssignLevels() = %v, want %v", levels, want)
	}
}

// On an absolute-level tie the dependency sweep runs first and keeps its
// assignment, so a two-node cycle puts the partner at +1, not -1.
func TestAssignLevelsTieKeepsDependencySide(t *testing.T) {
	g := classGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})

	levels := AssignLevels(Collect(g, "A", 5), 5)
	want := map[string]int{"A": 0, "B": 1}
	if !maps.Equal(levels, want) {
		t.Errorf("AssignLevels() = %v, want %v", levels, want)
	}
}

func TestAssignLevelsFocalPinnedAtZero(t *testing.T) {
	g := classGraph(t, []string{"A", "B", "C"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
	})

	levels := AssignLevels(Collect(g, "A", 10), 10)
	if levels["A"] != 0 {
		t.Errorf("levels[A] = %d, want 0", levels["A"])
	}
}

// Expansion stops once a node's absolute level reaches the depth, and nodes
// the sweeps never reach fall back to level 0.
func TestAssignLevelsPruneAndDefault(t *testing.T) {
	c := &Collection{
		Focal: "A",
		nodes: map[string]struct{}{"A": {}, "B": {}, "C": {}},
		edges: map[Edge]struct{}{
			{From: "A", To: "B"}: {},
			{From: "B", To: "C"}: {},
		},
	}

	levels := AssignLevels(c, 1)
	want := map[string]int{"A": 0, "B": 1, "C": 0}
	if !maps.Equal(levels, want) {
		t.Errorf("AssignLevels() = %v, want %v", levels, want)
	}
}

func TestAssignLevelsIsolatedNodeDefaultsToZero(t *testing.T) {
	c := &Collection{
		Focal: "A",
		nodes: map[string]struct{}{"A": {}, "Island": {}},
		edges: map[Edge]struct{}{},
	}

	levels := AssignLevels(c, 3)
	want := map[string]int{"A": 0, "Island": 0}
	if !maps.Equal(levels, want) {
		t.Errorf("AssignLevels() = %v, want %v", levels, want)
	}
}
