package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/screen"
	"github.com/abhisek/phantomledger/internal/session"
	"github.com/abhisek/phantomledger/internal/tier"
	"github.com/abhisek/phantomledger/internal/ui/layout"
	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// SummaryScreen shows the final stats of a session that reached a
// terminal phase.
type SummaryScreen struct {
	stats    session.FinalStats
	phase    session.Phase
	progress *progress.PlayerProgress
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. p is the player's record as the session
// left it and may be nil.
func New(stats session.FinalStats, phase session.Phase, p *progress.PlayerProgress) *SummaryScreen {
	return &SummaryScreen{stats: stats, phase: phase, progress: p}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.phase == session.PhaseLivesExhausted {
		return "Cast Out"
	}
	return "Final Statistics"
}

func (s *SummaryScreen) Status() *layout.HeaderStats {
	return &layout.HeaderStats{Lives: s.stats.LivesLeft, Score: s.stats.Score}
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

// arcComplete reports whether the player has solved every question.
func (s *SummaryScreen) arcComplete() bool {
	return s.progress != nil && s.progress.Complete()
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats
	center := func() lipgloss.Style {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	}

	var b strings.Builder

	// Title.
	switch {
	case s.phase == session.PhaseLivesExhausted:
		b.WriteString(center().Inherit(theme.Incorrect).
			Render("Your life force is spent"))
		b.WriteString("\n")
		b.WriteString(center().Foreground(theme.TextDim).
			Render("The Ledger casts you out until new lives are granted."))
	case s.arcComplete():
		b.WriteString(center().Foreground(theme.Accent).Bold(true).
			Render("The Phantom Ledger is unlocked"))
		b.WriteString("\n")
		b.WriteString(center().Inherit(theme.Selected).
			Render(bank.Rank(st.Score)))
	default:
		b.WriteString(center().Foreground(theme.Primary).Bold(true).
			Render("Every cipher in reach is broken"))
	}
	b.WriteString("\n\n")

	// Stats block.
	rows := [][2]string{
		{"Total score", fmt.Sprintf("%d", st.Score)},
		{"Questions answered", fmt.Sprintf("%d (%d correct)", st.QuestionsAnswered, st.CorrectAnswers)},
		{"Total time", formatClock(st.TotalTime)},
		{"Average time", formatClock(st.AverageTime)},
		{"Hints used", fmt.Sprintf("%d", st.HintsUsed)},
		{"Lives lost", fmt.Sprintf("%d", st.LivesLost)},
		{"Reward", st.RewardString() + " APT"},
		{"Ledger progress", fmt.Sprintf("%d/%d", st.LifetimeQuestions, tier.TotalQuestions)},
		{"Personal best", fmt.Sprintf("%d", st.PersonalBest)},
		{"Average score", fmt.Sprintf("%d over %d games", st.AverageScore, st.GamesCompleted)},
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(22)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	var block strings.Builder
	for i, r := range rows {
		if i > 0 {
			block.WriteString("\n")
		}
		block.WriteString(label.Render(r[0]) + value.Render(r[1]))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block.String()))
	b.WriteString("\n\n")

	if s.arcComplete() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Cipher.Render(bank.ClosingCipher)))
		b.WriteString("\n")
	}

	return b.String()
}
