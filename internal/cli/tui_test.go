package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/codemap/pkg/entity"
)

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name string
		e    *entity.Entity
		want string
	}{
		{"file and line", &entity.Entity{Name: "Car", File: "car.py", Line: 10}, "car.py:10"},
		{"file only", &entity.Entity{Name: "Car", File: "car.py"}, "car.py"},
		{"no location", &entity.Entity{Name: "Car"}, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLocation(tt.e); got != tt.want {
				t.Errorf("formatLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func pickerModel(t *testing.T) EntityPickerModel {
	t.Helper()
	g := rowGraph(t)
	return EntityPickerModel{Entities: g.Entities(), Height: 10}
}

func TestEntityPickerNavigation(t *testing.T) {
	m := pickerModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(EntityPickerModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(EntityPickerModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(EntityPickerModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.Cursor)
	}
}

func TestEntityPickerSelect(t *testing.T) {
	m := pickerModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(EntityPickerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(EntityPickerModel)

	if m.Selected == nil {
		t.Fatal("expected a selection after enter")
	}
	if m.Selected.Name != "Engine" {
		t.Errorf("selected = %q, want Engine", m.Selected.Name)
	}
}

func TestEntityPickerQuit(t *testing.T) {
	m := pickerModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(EntityPickerModel)
	if m.Selected != nil {
		t.Errorf("quit should not select, got %v", m.Selected)
	}
}

func TestEntityPickerView(t *testing.T) {
	m := pickerModel(t)

	view := m.View()
	for _, want := range []string{"Select Entity", "Car", "Engine", "build"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
