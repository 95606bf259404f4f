package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	sess "github.com/abhisek/phantomledger/internal/session"
	"github.com/abhisek/phantomledger/internal/tier"
	"github.com/abhisek/phantomledger/internal/ui/components"
	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// lowTime is the point where the timer bar turns red.
const lowTime = 30 * time.Second

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	if !s.hasTurn {
		return centered(width).
			Foreground(theme.TextDim).
			Render("\n\n  Waiting for the Ledger...")
	}

	turn := s.turn
	q := turn.Question
	inner := min(width-8, 72)

	var b strings.Builder

	// Tier and position line.
	infoLeft := "  " + theme.TierStyle(turn.Tier).Render(fmt.Sprintf("%s Tier", turn.Tier.Name()))
	lifetime := 0
	if p := s.engine.Progress(); p != nil {
		lifetime = p.LifetimeQuestionsAnswered
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Cipher %d/%d   Ledger %d/%d",
			turn.Index+1, turn.Count, lifetime, tier.TotalQuestions))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Timer.
	remaining := s.engine.Remaining()
	bar := components.NewProgressBar("Time", remaining.Seconds()/s.engine.QuestionTime().Seconds(), inner)
	bar.Suffix = formatClock(remaining)
	if remaining <= lowTime {
		bar.Fill = theme.Error
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if q.Story != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Story.Width(inner).Render(q.Story)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Bold(true).Render(q.Prompt)))
	b.WriteString("\n\n")

	// Input area.
	if q.Kind() == bank.KindChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(centered(width).Render(s.input.View()))
	}
	b.WriteString("\n")

	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(centered(width).Render(theme.Hint.Render("Hint: " + s.hint)))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.Accent).Render(s.notice))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFeedback renders the result of the last question.
func (s *SessionScreen) renderFeedback(width, height int) string {
	out := s.outcome

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case out.Correct:
		b.WriteString(centered(width).Inherit(theme.Correct).
			Render(fmt.Sprintf("Cipher broken! +%d", out.Score)))
	case out.TimedOut:
		b.WriteString(centered(width).Inherit(theme.Incorrect).
			Render("Time ran out"))
	default:
		b.WriteString(centered(width).Inherit(theme.Incorrect).
			Render("The Ledger rejects your answer"))
	}
	b.WriteString("\n")

	if !out.Correct {
		b.WriteString(centered(width).Foreground(theme.TextDim).
			Render(fmt.Sprintf("Answer: %s", out.Answer)))
		b.WriteString("\n")
		b.WriteString(centered(width).Inherit(theme.Life).
			Render(fmt.Sprintf("A life is lost. %d remaining.", out.LivesLeft)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Text).
		Render(fmt.Sprintf("Session score: %d   Time taken: %s", out.SessionScore, formatClock(out.Elapsed))))
	b.WriteString("\n\n")

	// Input echo.
	if s.turn.Question.Kind() == bank.KindChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(centered(width).Render(s.input.View()))
	}
	b.WriteString("\n")

	switch {
	case out.TierAdvanced:
		b.WriteString(centered(width).Foreground(theme.Accent).Bold(true).
			Render("A new circle opens"))
		b.WriteString("\n")
		b.WriteString(centered(width).Render(
			theme.TierStyle(out.FromTier).Render(out.FromTier.Name()) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  →  ") +
				theme.TierStyle(out.ToTier).Render(out.ToTier.Name())))
		b.WriteString("\n\n")
	case out.Phase == sess.PhaseSessionComplete:
		b.WriteString(centered(width).Foreground(theme.Accent).Bold(true).
			Render("The Ledger is complete"))
		b.WriteString("\n\n")
	case out.Phase == sess.PhaseLivesExhausted:
		b.WriteString(centered(width).Inherit(theme.Incorrect).
			Render("No lives remain"))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width).Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).
		Render("Leave the Ledger?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).
		Render("Your score and lives are saved. The timer keeps running."))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Opening the Ledger...")
}

// renderError renders a start failure.
func renderError(width, height int, errMsg string) string {
	return centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press R to retry or Esc to go back.", errMsg))
}
