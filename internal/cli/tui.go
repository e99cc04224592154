package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/codemap/pkg/entity"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EntityPickerModel - Interactive entity selection
// =============================================================================

// EntityPickerModel is the bubbletea model for interactive entity selection.
// It is used by the diagram command when no --entity flag is given.
type EntityPickerModel struct {
	Entities []*entity.Entity
	Cursor   int
	Selected *entity.Entity
	Height   int
	Offset   int
}

// NewEntityPickerModel creates an entity picker over the given entities.
func NewEntityPickerModel(entities []*entity.Entity) EntityPickerModel {
	return EntityPickerModel{
		Entities: entities,
		Height:   15,
	}
}

func (m EntityPickerModel) Init() tea.Cmd {
	return nil
}

func (m EntityPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entities)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Entities[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EntityPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Entity"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entities) {
		end = len(m.Entities)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entities[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			e.Name,
			string(e.Kind),
			formatLocation(e),
			fmt.Sprintf("%d", e.DependencyCount()),
			fmt.Sprintf("%d", e.UserCount()),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Entity", "Kind", "Defined", "Deps", "Used by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}

			base := lipgloss.NewStyle()
			if col >= 3 {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entities))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// formatLocation renders where the entity was defined, e.g. "car.py:12".
func formatLocation(e *entity.Entity) string {
	if e.File == "" {
		return "—"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	return e.File
}

// pickEntity runs the interactive picker and returns the chosen entity name.
// An empty name with a nil error means the user aborted the selection.
func pickEntity(g *entity.Graph) (string, error) {
	model := NewEntityPickerModel(g.Entities())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("entity picker: %w", err)
	}
	m, ok := final.(EntityPickerModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Name, nil
}
