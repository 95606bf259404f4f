package progress

import (
	"math"
	"time"

	"github.com/abhisek/phantomledger/internal/tier"
)

// The Apply functions hold the mutation rules shared by every Store
// implementation. Each reports whether the record changed.

// ApplySessionProgress adds a correct answer's delta.
func ApplySessionProgress(p *PlayerProgress, d Delta, now time.Time) bool {
	if d.QuestionID != "" && p.HasAnswered(d.QuestionID) {
		return false
	}
	score := max(0, d.Score)
	questions := max(0, d.Questions)

	p.SessionScore += score
	p.SessionQuestionsAnswered += questions
	p.LifetimeQuestionsAnswered = min(tier.TotalQuestions, p.LifetimeQuestionsAnswered+questions)
	p.HighestScore = max(p.HighestScore, p.SessionScore)
	if d.QuestionID != "" {
		p.Answered = append(p.Answered, d.QuestionID)
	}
	p.Finalized = false
	p.UpdatedAt = now
	return true
}

// ApplyLoseLife removes one life, floored at zero, and records questionID
// in the missed ledger. A question already credited or missed is not
// recorded twice.
func ApplyLoseLife(p *PlayerProgress, questionID string, now time.Time) bool {
	changed := false
	if questionID != "" && !p.HasAnswered(questionID) && !p.HasMissed(questionID) {
		p.Missed = append(p.Missed, questionID)
		changed = true
	}
	if p.Lives > 0 {
		p.Lives--
		changed = true
	} else {
		p.Lives = 0
	}
	if changed {
		p.UpdatedAt = now
	}
	return changed
}

// ApplyFinalize folds the unfolded part of the session score into the
// lifetime totals. A record that is already finalized is left untouched, so
// retries cannot double count.
func ApplyFinalize(p *PlayerProgress, now time.Time) bool {
	if p.Finalized {
		return false
	}
	p.LifetimeScore += max(0, p.SessionScore-p.FinalizedScore)
	p.FinalizedScore = p.SessionScore
	p.GamesCompleted++
	p.AverageScore = int(math.Round(float64(p.LifetimeScore) / float64(p.GamesCompleted)))
	p.HighestScore = max(p.HighestScore, p.LifetimeScore)
	p.Finalized = true
	p.UpdatedAt = now
	return true
}

// ApplySync merges absolute session totals. Counters only move forward.
func ApplySync(p *PlayerProgress, t Totals, now time.Time) bool {
	changed := false
	if t.SessionScore > p.SessionScore {
		p.SessionScore = t.SessionScore
		p.HighestScore = max(p.HighestScore, p.SessionScore)
		p.Finalized = false
		changed = true
	}
	if t.SessionQuestions > p.SessionQuestionsAnswered {
		p.SessionQuestionsAnswered = t.SessionQuestions
		changed = true
	}
	if lq := min(tier.TotalQuestions, t.LifetimeQuestions); lq > p.LifetimeQuestionsAnswered {
		p.LifetimeQuestionsAnswered = lq
		changed = true
	}
	if changed {
		p.UpdatedAt = now
	}
	return changed
}

// ApplyGrant adds n lives. Non-positive grants are ignored.
func ApplyGrant(p *PlayerProgress, n int, now time.Time) bool {
	if n <= 0 {
		return false
	}
	p.Lives += n
	p.UpdatedAt = now
	return true
}
