package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing free-text answers.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards key input until the answer has been marked.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.submitted {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input with a verdict mark once submitted.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the typed answer with surrounding space removed.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Empty reports whether nothing but whitespace has been typed.
func (a AnswerInput) Empty() bool {
	return a.Value() == ""
}

// Mark freezes the input and records the verdict.
func (a *AnswerInput) Mark(correct bool) {
	a.submitted = true
	a.correct = correct
	a.Model.Blur()
}
