package judge

import (
	"errors"
	"time"

	"github.com/abhisek/phantomledger/internal/bank"
)

var (
	// ErrEmptyAnswer is returned for a blank free-text submission.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrNoSelection is returned when no option was chosen.
	ErrNoSelection = errors.New("no option selected")

	// ErrOptionOutOfRange is returned when the chosen option does not exist.
	ErrOptionOutOfRange = errors.New("option out of range")
)

// NoChoice marks a Submission without a selected option.
const NoChoice = -1

// Mode names an answer strategy.
type Mode string

const (
	ModeFreeText       Mode = "cipher"
	ModeMultipleChoice Mode = "trivia"
)

// Submission is a player's answer to the current question.
type Submission struct {
	// Text is the raw typed answer (free-text mode).
	Text string

	// Choice is the selected option index, or NoChoice.
	Choice int

	// Remaining is the time left on the question timer at submission.
	Remaining time.Duration

	// Budget is the full time budget of the question timer.
	Budget time.Duration

	// HintRevealed is set when the hint was shown before submitting.
	HintRevealed bool
}

// TextAnswer builds a free-text submission.
func TextAnswer(text string) Submission {
	return Submission{Text: text, Choice: NoChoice}
}

// ChoiceAnswer builds a multiple-choice submission.
func ChoiceAnswer(index int) Submission {
	return Submission{Choice: index}
}

// Verdict is the outcome of judging a submission.
type Verdict struct {
	Correct bool
	Score   int
}

// Judge evaluates submissions against questions. Implementations are pure.
type Judge interface {
	// Mode identifies the strategy.
	Mode() Mode

	// Validate rejects submissions that must not reach Evaluate.
	Validate(q bank.Question, sub Submission) error

	// Evaluate returns correctness and the score earned.
	Evaluate(q bank.Question, sub Submission) Verdict
}

// ForMode returns the Judge for a mode name.
func ForMode(mode Mode) Judge {
	if mode == ModeMultipleChoice {
		return MultipleChoice{}
	}
	return FreeText{}
}
