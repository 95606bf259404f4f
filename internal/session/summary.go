package session

import (
	"strconv"
	"time"
)

// RewardRate converts session score to the token reward figure.
const RewardRate = 0.01

// FinalStats holds the data displayed on the summary screen.
type FinalStats struct {
	Score             int
	QuestionsAnswered int
	CorrectAnswers    int
	TotalTime         time.Duration
	AverageTime       time.Duration
	HintsUsed         int
	LivesLost         int
	LivesLeft         int
	Reward            float64
	PersonalBest      int
	AverageScore      int
	LifetimeQuestions int
	GamesCompleted    int
}

// RewardString formats the reward with four decimals.
func (f FinalStats) RewardString() string {
	return strconv.FormatFloat(f.Reward, 'f', 4, 64)
}

// TokenReward returns the reward earned for a session score.
func TokenReward(score int) float64 {
	return float64(score) * RewardRate
}

func (e *Engine) buildFinalStats() *FinalStats {
	var avg time.Duration
	if e.resolved > 0 {
		avg = e.elapsed / time.Duration(e.resolved)
	}
	return &FinalStats{
		Score:             e.rec.SessionScore,
		QuestionsAnswered: e.resolved,
		CorrectAnswers:    e.correct,
		TotalTime:         e.elapsed,
		AverageTime:       avg,
		HintsUsed:         e.hintsUsed,
		LivesLost:         max(0, e.cfg.StartingLives-e.rec.Lives),
		LivesLeft:         e.rec.Lives,
		Reward:            TokenReward(e.rec.SessionScore),
		PersonalBest:      e.rec.HighestScore,
		AverageScore:      e.rec.AverageScore,
		LifetimeQuestions: e.rec.LifetimeQuestionsAnswered,
		GamesCompleted:    e.rec.GamesCompleted,
	}
}
