package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// NoPick is the Picked value before the player commits to an option.
const NoPick = -1

// MultiChoice is a multiple-choice selector. Enter commits the highlighted
// option; digit keys commit directly.
type MultiChoice struct {
	Options  []string
	Selected int
	Picked   int

	// Correct is set by Reveal once the verdict is known.
	Correct  int
	revealed bool
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Picked:  NoPick,
		Correct: NoPick,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Picked != NoPick {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Picked = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
				m.Picked = i
			}
		}
	}

	return m, nil
}

// Reveal marks the correct option for display.
func (m *MultiChoice) Reveal(correct int) {
	m.Correct = correct
	m.revealed = true
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && m.Picked == NoPick {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+rune(i%26), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.revealed && i == m.Correct:
			style = theme.Correct
		case m.revealed && i == m.Picked:
			style = theme.Incorrect
		case m.revealed || (m.Picked != NoPick && i != m.Picked):
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
