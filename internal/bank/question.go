package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/phantomledger/internal/tier"
)

// ErrInvalidCatalog is returned when a catalog fails structural checks.
var ErrInvalidCatalog = errors.New("invalid question catalog")

// Kind describes how a question is answered.
type Kind string

const (
	// KindText means the player types a free-text answer.
	KindText Kind = "text"

	// KindChoice means the player picks one of Options.
	KindChoice Kind = "choice"
)

// Question is a single catalog entry. Questions are immutable once loaded.
type Question struct {
	// ID is unique across the catalog.
	ID string

	// Tier is the difficulty band the question belongs to.
	Tier tier.Tier

	// Story is optional narrative text shown above the prompt.
	Story string

	// Prompt is the question text.
	Prompt string

	// Answer is the canonical answer for text questions.
	Answer string

	// Options holds the choices for choice questions.
	Options []string

	// CorrectIndex is the index into Options of the correct choice.
	CorrectIndex int

	// Hint is optional; empty means no hint is available.
	Hint string

	// MaxTime is the authored time budget in seconds. Catalog metadata only.
	MaxTime int
}

// Kind reports the correctness rule of the question.
func (q Question) Kind() Kind {
	if len(q.Options) > 0 {
		return KindChoice
	}
	return KindText
}

// HasHint reports whether a hint can be revealed for the question.
func (q Question) HasHint() bool {
	return strings.TrimSpace(q.Hint) != ""
}

// Validate checks that the question carries a usable correctness rule.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: question without id", ErrInvalidCatalog)
	}
	if !q.Tier.Valid() {
		return fmt.Errorf("%w: question %s has no tier", ErrInvalidCatalog, q.ID)
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: question %s has no prompt", ErrInvalidCatalog, q.ID)
	}
	switch q.Kind() {
	case KindChoice:
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("%w: question %s correct index %d out of range", ErrInvalidCatalog, q.ID, q.CorrectIndex)
		}
	default:
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("%w: question %s has no answer", ErrInvalidCatalog, q.ID)
		}
	}
	return nil
}

// Catalog is an immutable set of questions partitioned by tier.
type Catalog struct {
	questions []Question
	byTier    map[tier.Tier][]Question
}

// NewCatalog validates questions and indexes them by tier.
// Duplicate ids are rejected.
func NewCatalog(questions []Question) (*Catalog, error) {
	seen := make(map[string]bool, len(questions))
	byTier := make(map[tier.Tier][]Question)
	qs := make([]Question, 0, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate question id %s", ErrInvalidCatalog, q.ID)
		}
		seen[q.ID] = true
		qs = append(qs, q)
		byTier[q.Tier] = append(byTier[q.Tier], q)
	}
	return &Catalog{questions: qs, byTier: byTier}, nil
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// All returns a copy of every question in catalog order.
func (c *Catalog) All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// InTier returns a copy of the questions belonging to t.
func (c *Catalog) InTier(t tier.Tier) []Question {
	src := c.byTier[t]
	out := make([]Question, len(src))
	copy(out, src)
	return out
}

// Get looks up a question by id.
func (c *Catalog) Get(id string) (Question, bool) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Ciphers returns the compiled-in free-text catalog.
func Ciphers() *Catalog {
	return mustCatalog(cipherQuestions)
}

// Trivia returns the compiled-in multiple-choice catalog.
func Trivia() *Catalog {
	return mustCatalog(triviaQuestions)
}

func mustCatalog(qs []Question) *Catalog {
	c, err := NewCatalog(qs)
	if err != nil {
		panic(err)
	}
	return c
}
