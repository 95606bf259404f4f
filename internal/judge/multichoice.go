package judge

import "github.com/abhisek/phantomledger/internal/bank"

// MultipleChoiceScore is the flat award for a correct choice.
const MultipleChoiceScore = 3

// MultipleChoice judges option picks with a flat score. Time and hints do
// not affect the result.
type MultipleChoice struct{}

func (MultipleChoice) Mode() Mode { return ModeMultipleChoice }

func (MultipleChoice) Validate(q bank.Question, sub Submission) error {
	if sub.Choice == NoChoice {
		return ErrNoSelection
	}
	if sub.Choice < 0 || sub.Choice >= len(q.Options) {
		return ErrOptionOutOfRange
	}
	return nil
}

func (MultipleChoice) Evaluate(q bank.Question, sub Submission) Verdict {
	if sub.Choice != q.CorrectIndex {
		return Verdict{}
	}
	return Verdict{Correct: true, Score: MultipleChoiceScore}
}
