package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/tier"
)

// Color palette: phosphor terminal on a near-black ground.
var (
	Primary   = lipgloss.Color("#22D3EE") // Cyan glow
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FACC15") // Gold
	Success   = lipgloss.Color("#4ADE80") // Terminal green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Pale slate
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#05070D") // Void
	BgCard    = lipgloss.Color("#0F172A") // Deep Navy
	Border    = lipgloss.Color("#1E3A5F") // Steel
)

// Tier colors, ascending in heat.
var tierColors = map[tier.Tier]lipgloss.Style{
	tier.T1: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")),
	tier.T2: lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")),
	tier.T3: lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
	tier.T4: lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E")),
}

// TierStyle returns the bold badge style for t.
func TierStyle(t tier.Tier) lipgloss.Style {
	if s, ok := tierColors[t]; ok {
		return s.Bold(true)
	}
	return lipgloss.NewStyle().Foreground(TextDim).Bold(true)
}

// Text
var (
	Hint = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)

	Story = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	Cipher = lipgloss.NewStyle().
		Foreground(Success).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Life = lipgloss.NewStyle().
		Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
