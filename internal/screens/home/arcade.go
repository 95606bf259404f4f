package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/tier"
	"github.com/abhisek/phantomledger/internal/ui/components"
	"github.com/abhisek/phantomledger/internal/ui/layout"
	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderStatsBar renders the player's standing in a double-bordered box.
func renderStatsBar(p *progress.PlayerProgress, cw int, compact bool) string {
	lives := theme.Life.Bold(true)
	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	run := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var s progress.Stats
	if p != nil {
		s = p.Stats()
	} else {
		s.Lives = progress.DefaultLives
		s.CurrentTier = tier.T1
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			lives.Render(fmt.Sprintf("♥%d", s.Lives)),
			score.Render(fmt.Sprintf("◆%d", s.LifetimeScore+s.SessionScore)),
			run.Render(fmt.Sprintf("%d/%d", s.QuestionsAnswered, tier.TotalQuestions)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			lives.Render(layout.Hearts(s.Lives)),
			score.Render(fmt.Sprintf("◆ %d PTS", s.LifetimeScore+s.SessionScore)),
			theme.TierStyle(s.CurrentTier).Render(fmt.Sprintf("%s %d/%d",
				s.CurrentTier.Name(), s.QuestionsAnswered, tier.TotalQuestions)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(labels []string, selected int, cw int, disabled map[int]bool) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
			continue
		}
		buttons = append(buttons, components.Button(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, buttons...))
}

// renderMenuCompact renders menu items as plain lines for terminals where
// bordered buttons would overflow.
func renderMenuCompact(labels []string, selected int, cw int, disabled map[int]bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderNotice renders a one-line warning under the menu.
func renderNotice(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
