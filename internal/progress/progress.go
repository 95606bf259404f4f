package progress

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/phantomledger/internal/tier"
)

// DefaultLives is the number of lives a new player starts with.
const DefaultLives = 5

// ErrNotFound is returned by Store.Get for an unknown player.
var ErrNotFound = errors.New("player not found")

// PlayerProgress holds the durable cumulative counters of one player,
// keyed by wallet address.
type PlayerProgress struct {
	PlayerID string
	Network  string

	Lives int

	LifetimeScore             int
	LifetimeQuestionsAnswered int
	HighestScore              int
	GamesCompleted            int
	AverageScore              int

	// SessionScore and SessionQuestionsAnswered accumulate the arc in
	// progress. They are not reset by FinalizeSession.
	SessionScore             int
	SessionQuestionsAnswered int

	// Finalized is set once SessionScore has been folded into LifetimeScore
	// and cleared by the next AddSessionProgress.
	Finalized bool

	// FinalizedScore is the part of SessionScore already folded into
	// LifetimeScore by earlier finalizations of the same arc.
	FinalizedScore int

	// Answered lists the ids of questions credited to the player.
	Answered []string

	// Missed lists the ids of questions resolved wrong or timed out. They
	// are never served again, like Answered.
	Missed []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Defaults configures a newly created record.
type Defaults struct {
	Lives   int
	Network string
}

// Delta is the effect of one correct answer.
type Delta struct {
	// QuestionID identifies the credited question. A delta whose id is
	// already in Answered is ignored. Empty ids are always applied.
	QuestionID string
	Score      int
	Questions  int
}

// Totals are absolute session counters re-sent by the resync path.
type Totals struct {
	SessionScore      int
	SessionQuestions  int
	LifetimeQuestions int
}

// Store is the persistent progress contract consumed by the engine. Every
// mutating call is an independent, durable operation.
type Store interface {
	Get(ctx context.Context, playerID string) (*PlayerProgress, error)
	Create(ctx context.Context, playerID string, d Defaults) (*PlayerProgress, error)
	AddSessionProgress(ctx context.Context, playerID string, d Delta) error
	// LoseLife removes a life and records questionID as missed. An empty
	// questionID only removes the life.
	LoseLife(ctx context.Context, playerID, questionID string) error
	FinalizeSession(ctx context.Context, playerID string) error
	SyncSession(ctx context.Context, playerID string, t Totals) error
	GrantLives(ctx context.Context, playerID string, n int) error
}

// New returns a record initialised with defaults.
func New(playerID string, d Defaults, now time.Time) *PlayerProgress {
	lives := d.Lives
	if lives <= 0 {
		lives = DefaultLives
	}
	return &PlayerProgress{
		PlayerID:  playerID,
		Network:   d.Network,
		Lives:     lives,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Remaining is the number of questions left in the run.
func (p *PlayerProgress) Remaining() int {
	return max(0, tier.TotalQuestions-p.LifetimeQuestionsAnswered)
}

// Complete reports whether the player has finished the run.
func (p *PlayerProgress) Complete() bool {
	return p.LifetimeQuestionsAnswered >= tier.TotalQuestions
}

// HasAnswered reports whether questionID has been credited.
func (p *PlayerProgress) HasAnswered(questionID string) bool {
	for _, id := range p.Answered {
		if id == questionID {
			return true
		}
	}
	return false
}

// HasMissed reports whether questionID was resolved without credit.
func (p *PlayerProgress) HasMissed(questionID string) bool {
	for _, id := range p.Missed {
		if id == questionID {
			return true
		}
	}
	return false
}

// AnsweredSet returns Answered as a lookup set.
func (p *PlayerProgress) AnsweredSet() map[string]bool {
	set := make(map[string]bool, len(p.Answered))
	for _, id := range p.Answered {
		set[id] = true
	}
	return set
}

// ResolvedSet returns every question id the player has been served to
// completion, credited or not.
func (p *PlayerProgress) ResolvedSet() map[string]bool {
	set := p.AnsweredSet()
	for _, id := range p.Missed {
		set[id] = true
	}
	return set
}

// Clone returns a deep copy.
func (p *PlayerProgress) Clone() *PlayerProgress {
	c := *p
	c.Answered = append([]string(nil), p.Answered...)
	c.Missed = append([]string(nil), p.Missed...)
	return &c
}
