package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgame/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with MathGame styling and a mark for
// the previous answer.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	marked   bool
	correct  bool
}

// NewTextInput creates a new styled, focused text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input followed by the mark, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value with surrounding space removed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Mark clears the field and records whether the answer just taken from
// it was correct.
func (t *TextInput) Mark(correct bool) {
	t.Model.SetValue("")
	t.marked = true
	t.correct = correct
}
