package session

import (
	"time"

	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/tier"
)

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// SessionID returns the id used to correlate this session's log lines.
func (e *Engine) SessionID() string { return e.sessionID }

// Current returns the question in play. It reports false outside
// PhasePlaying, which callers render as an empty state.
func (e *Engine) Current() (Turn, bool) {
	if e.phase != PhasePlaying || e.index >= len(e.questions) {
		return Turn{}, false
	}
	return Turn{
		Seq:          e.seq,
		Question:     e.questions[e.index],
		Tier:         e.tier,
		Index:        e.index,
		Count:        len(e.questions),
		Deadline:     e.deadline,
		HintRevealed: e.hintShown,
	}, true
}

// Remaining returns the time left on the current question's timer.
func (e *Engine) Remaining() time.Duration {
	if e.phase != PhasePlaying {
		return 0
	}
	return max(0, e.deadline.Sub(e.cfg.Clock()))
}

// QuestionTime returns the per-question timer budget.
func (e *Engine) QuestionTime() time.Duration { return e.cfg.QuestionTime }

// Tier returns the tier of the current question list.
func (e *Engine) Tier() tier.Tier { return e.tier }

// Progress returns a copy of the engine's optimistic view of the player's
// record, or nil before Start succeeds.
func (e *Engine) Progress() *progress.PlayerProgress {
	if e.rec == nil {
		return nil
	}
	return e.rec.Clone()
}

// Final returns the summary once the session reached a terminal phase.
func (e *Engine) Final() (FinalStats, bool) {
	if e.final == nil {
		return FinalStats{}, false
	}
	return *e.final, true
}
