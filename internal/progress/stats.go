package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/phantomledger/internal/tier"
)

// Stats is a display summary of a player's record.
type Stats struct {
	Lives                    int
	LifetimeScore            int
	SessionScore             int
	GamesCompleted           int
	QuestionsAnswered        int
	SessionQuestionsAnswered int
	AverageScore             int
	HighestScore             int
	QuestionsPerGame         int
	CurrentTier              tier.Tier
}

// Stats derives display statistics from the record.
func (p *PlayerProgress) Stats() Stats {
	perGame := 0
	if p.GamesCompleted > 0 {
		perGame = int(math.Round(float64(p.LifetimeQuestionsAnswered) / float64(p.GamesCompleted)))
	}
	return Stats{
		Lives:                    p.Lives,
		LifetimeScore:            p.LifetimeScore,
		SessionScore:             p.SessionScore,
		GamesCompleted:           p.GamesCompleted,
		QuestionsAnswered:        p.LifetimeQuestionsAnswered,
		SessionQuestionsAnswered: p.SessionQuestionsAnswered,
		AverageScore:             p.AverageScore,
		HighestScore:             p.HighestScore,
		QuestionsPerGame:         perGame,
		CurrentTier:              tier.Select(p.LifetimeQuestionsAnswered).Tier,
	}
}

// Welcome renders the returning-player greeting. A nil record greets a
// newcomer.
func Welcome(p *PlayerProgress) string {
	if p == nil {
		return "Welcome to the Phantom Ledger. Your journey begins..."
	}
	s := p.Stats()
	lines := []string{
		"Welcome back.",
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Current session: %d points (%d questions)", s.SessionScore, s.SessionQuestionsAnswered),
		fmt.Sprintf("Total progress: %d points across %d games", s.LifetimeScore, s.GamesCompleted),
		fmt.Sprintf("Questions answered: %d/%d", s.QuestionsAnswered, tier.TotalQuestions),
		fmt.Sprintf("Personal best: %d points", s.HighestScore),
		fmt.Sprintf("Average: %d points per game", s.AverageScore),
	}
	if s.SessionScore > 0 && !p.Complete() {
		lines = append(lines, fmt.Sprintf("Continue your current session with %d points.", s.SessionScore))
	}
	return strings.Join(lines, "\n")
}
