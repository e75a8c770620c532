package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/geometry"
	"github.com/meteorinca/cartesian/internal/ui/theme"
)

// QuadrantPicker is a four-way selector for quadrant answers. It starts
// with nothing selected; submitting in that state is a distinct
// "no selection" outcome, so the picker never defaults to a choice.
type QuadrantPicker struct {
	Selected int // index into geometry.Quadrants(), -1 = none
}

// NewQuadrantPicker creates a picker with no selection.
func NewQuadrantPicker() QuadrantPicker {
	return QuadrantPicker{Selected: -1}
}

// Init returns nil.
func (q QuadrantPicker) Init() tea.Cmd {
	return nil
}

// Update handles number keys and arrow navigation.
func (q QuadrantPicker) Update(msg tea.Msg) (QuadrantPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	options := geometry.Quadrants()
	switch kmsg.String() {
	case "1", "2", "3", "4":
		q.Selected = int(kmsg.String()[0] - '1')
	case "up", "k":
		if q.Selected > 0 {
			q.Selected--
		} else if q.Selected < 0 {
			q.Selected = 0
		}
	case "down", "j":
		if q.Selected < 0 {
			q.Selected = 0
		} else if q.Selected < len(options)-1 {
			q.Selected++
		}
	}

	return q, nil
}

// Value returns the selected quadrant label, or "" when none is selected.
func (q QuadrantPicker) Value() string {
	options := geometry.Quadrants()
	if q.Selected < 0 || q.Selected >= len(options) {
		return ""
	}
	return string(options[q.Selected])
}

// View renders the four options vertically.
func (q QuadrantPicker) View() string {
	var s string
	for i, opt := range geometry.Quadrants() {
		label := fmt.Sprintf("%d. Quadrant %s", i+1, opt)
		if i == q.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+label) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+label) + "\n"
		}
	}
	return s
}
