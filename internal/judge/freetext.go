package judge

import (
	"math"
	"strings"

	"github.com/abhisek/phantomledger/internal/bank"
)

const (
	// FreeTextBaseScore is awarded for a correct answer before time weighting.
	FreeTextBaseScore = 20

	// HintPenalty is deducted once a hint has been revealed.
	HintPenalty = 3
)

// FreeText judges typed answers with time-weighted scoring.
type FreeText struct{}

func (FreeText) Mode() Mode { return ModeFreeText }

func (FreeText) Validate(_ bank.Question, sub Submission) error {
	if strings.TrimSpace(sub.Text) == "" {
		return ErrEmptyAnswer
	}
	return nil
}

func (FreeText) Evaluate(q bank.Question, sub Submission) Verdict {
	correct := Normalize(sub.Text) == Normalize(q.Answer)
	return Verdict{
		Correct: correct,
		Score:   FreeTextScore(correct, sub),
	}
}

// Normalize trims whitespace and lowercases an answer for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FreeTextScore computes the time and hint adjusted score:
//
//	base * (0.5 + 0.5 * clamp(remaining/budget, 0, 1)), rounded, minus the hint
//	penalty, floored at zero.
func FreeTextScore(correct bool, sub Submission) int {
	if !correct {
		return 0
	}
	fraction := 0.0
	if sub.Budget > 0 {
		fraction = float64(sub.Remaining) / float64(sub.Budget)
	}
	fraction = math.Max(0, math.Min(1, fraction))

	raw := FreeTextBaseScore * (0.5 + 0.5*fraction)
	return ApplyHintPenalty(int(math.Round(raw)), sub.HintRevealed)
}

// ApplyHintPenalty deducts HintPenalty from score when a hint was revealed.
// The result never drops below zero.
func ApplyHintPenalty(score int, revealed bool) int {
	if revealed {
		score -= HintPenalty
	}
	return max(0, score)
}
