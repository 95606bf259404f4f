package tier

import "fmt"

// Tier is one of the four difficulty bands of the run, in ascending order.
type Tier int

const (
	// None is returned once the run is over.
	None Tier = iota
	T1
	T2
	T3
	T4
)

const (
	// QuestionsPerTier is the number of questions each tier owns.
	QuestionsPerTier = 5

	// TotalQuestions is the length of a full run across all tiers.
	TotalQuestions = 4 * QuestionsPerTier
)

// All lists the playable tiers in ascending difficulty.
var All = []Tier{T1, T2, T3, T4}

var names = map[Tier]string{
	T1: "Initiate",
	T2: "Acolyte",
	T3: "Adept",
	T4: "Master",
}

var keys = map[Tier]string{
	T1: "easy",
	T2: "medium",
	T3: "hard",
	T4: "expert",
}

// Name returns the display name of the tier.
func (t Tier) Name() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "Complete"
}

// Key returns the catalog key used for the tier in serialized question data.
func (t Tier) Key() string {
	return keys[t]
}

func (t Tier) String() string {
	if t == None {
		return "none"
	}
	return fmt.Sprintf("T%d", int(t))
}

// Valid reports whether t is a playable tier.
func (t Tier) Valid() bool {
	return t >= T1 && t <= T4
}

// Next returns the tier after t, or None when t is the last one.
func (t Tier) Next() Tier {
	if !t.Valid() || t == T4 {
		return None
	}
	return t + 1
}

// Parse maps a catalog key ("easy", "medium", ...) or a tier label ("T1"...)
// back to its Tier.
func Parse(s string) (Tier, error) {
	for t, k := range keys {
		if s == k || s == t.String() {
			return t, nil
		}
	}
	return None, fmt.Errorf("unknown tier %q", s)
}

// Selection is the outcome of selecting the active tier for a player.
type Selection struct {
	Tier Tier

	// Owed is the number of questions still owed within Tier.
	Owed int

	// Remaining is the number of questions left in the whole run.
	Remaining int
}

// Terminal reports whether the run is already complete.
func (s Selection) Terminal() bool {
	return s.Tier == None
}

// Select maps the lifetime count of answered questions to the active tier.
// Counts outside [0, TotalQuestions] are clamped.
func Select(answered int) Selection {
	if answered < 0 {
		answered = 0
	}
	if answered >= TotalQuestions {
		return Selection{Tier: None}
	}
	idx := answered / QuestionsPerTier
	return Selection{
		Tier:      All[idx],
		Owed:      (idx+1)*QuestionsPerTier - answered,
		Remaining: TotalQuestions - answered,
	}
}

// SampleSize is the number of questions to draw for a session segment when
// answered questions have already been resolved in the run.
func SampleSize(answered int) int {
	return min(QuestionsPerTier, max(0, TotalQuestions-answered))
}
