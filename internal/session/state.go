package session

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/judge"
	"github.com/abhisek/phantomledger/internal/logger"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/tier"
)

// DefaultQuestionTime is the fixed per-question timer budget.
const DefaultQuestionTime = 1200 * time.Second

// DefaultResyncDelay is the quiet period after the last change before the
// session totals are re-sent to the store.
const DefaultResyncDelay = 2 * time.Second

var (
	ErrNotPlaying      = errors.New("no question in play")
	ErrStaleQuestion   = errors.New("question already resolved")
	ErrHintAfterSubmit = errors.New("hint requested after submission")
	ErrNoHint          = errors.New("question has no hint")
	ErrAlreadyStarted  = errors.New("session already started")
)

// Phase represents the current phase of the progression state machine.
type Phase int

const (
	PhaseInitializing    Phase = iota // Loading the player's record
	PhasePlaying                      // A question is current and its timer runs
	PhaseResolving                    // Applying the outcome of a submission
	PhaseQuestionReady                // Next question picked, waiting for Continue
	PhaseTierAdvance                  // Next tier sampled, waiting for Continue
	PhaseSessionComplete              // Run finished, session finalized
	PhaseLivesExhausted               // No lives left
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhasePlaying:
		return "playing"
	case PhaseResolving:
		return "resolving"
	case PhaseQuestionReady:
		return "question-ready"
	case PhaseTierAdvance:
		return "tier-advance"
	case PhaseSessionComplete:
		return "complete"
	case PhaseLivesExhausted:
		return "lives-exhausted"
	}
	return "unknown"
}

// Terminal reports whether the in-memory session has ended.
func (p Phase) Terminal() bool {
	return p == PhaseSessionComplete || p == PhaseLivesExhausted
}

// Config wires an Engine to its collaborators.
type Config struct {
	// PlayerID is the already-authenticated wallet address.
	PlayerID string
	Network  string

	Store   progress.Store
	Catalog *bank.Catalog
	Judge   judge.Judge

	// Rand seeds question sampling. Nil uses a random source.
	Rand *rand.Rand

	QuestionTime  time.Duration
	ResyncDelay   time.Duration
	StartingLives int

	// Executor runs store writes. Nil starts a background Queue.
	Executor Executor

	// Clock and AfterFunc default to time.Now and time.AfterFunc.
	Clock     func() time.Time
	AfterFunc func(d time.Duration, f func()) (stop func() bool)

	Logger *logger.Logger
}

func (c *Config) setDefaults() {
	if c.Judge == nil {
		c.Judge = judge.FreeText{}
	}
	if c.QuestionTime <= 0 {
		c.QuestionTime = DefaultQuestionTime
	}
	if c.ResyncDelay <= 0 {
		c.ResyncDelay = DefaultResyncDelay
	}
	if c.StartingLives <= 0 {
		c.StartingLives = progress.DefaultLives
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.AfterFunc == nil {
		c.AfterFunc = func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		}
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	if c.Executor == nil {
		c.Executor = NewQueue(c.Logger, 0)
	}
}

// Turn describes the question currently in play.
type Turn struct {
	// Seq identifies this serving of the question. Submit, RevealHint and
	// Tick must echo it.
	Seq int

	Question bank.Question
	Tier     tier.Tier

	// Index and Count locate the question in the tier's sampled list.
	Index int
	Count int

	Deadline     time.Time
	HintRevealed bool
}

// Outcome reports how a question was resolved and where the engine went.
type Outcome struct {
	Seq        int
	QuestionID string

	Correct  bool
	TimedOut bool
	Score    int

	// Answer is the canonical answer, shown after a miss.
	Answer string

	Elapsed   time.Duration
	LivesLeft int

	// SessionScore is the running session total after this question.
	SessionScore int

	Phase        Phase
	TierAdvanced bool
	FromTier     tier.Tier
	ToTier       tier.Tier
}
