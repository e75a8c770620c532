package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for answer fields. NumberOnly
// restricts typed characters to what a signed decimal can contain; the
// real parsing contract lives in problemgen.ParseNumber, this is just
// keystroke filtering.
type TextInput struct {
	Model      textinput.Model
	NumberOnly bool
	submitted  bool
	valid      bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, numberOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:      ti,
		NumberOnly: numberOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumberOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !isNumberRune(key[0]) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func isNumberRune(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '+' || b == '.'
}

// View renders the text input, with a check or cross once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Focus focuses the underlying input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the underlying input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Submit marks the input as submitted with a grading result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
