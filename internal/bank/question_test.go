package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phantomledger/internal/tier"
)

func TestBuiltinCatalogsFillEveryTier(t *testing.T) {
	for name, c := range map[string]*Catalog{"cipher": Ciphers(), "trivia": Trivia()} {
		for _, tr := range tier.All {
			got := len(c.InTier(tr))
			if got < tier.QuestionsPerTier {
				t.Errorf("%s catalog has %d questions in %v, want >= %d", name, got, tr, tier.QuestionsPerTier)
			}
		}
	}
}

func TestBuiltinCatalogKinds(t *testing.T) {
	for _, q := range Ciphers().All() {
		assert.Equal(t, KindText, q.Kind(), q.ID)
	}
	for _, q := range Trivia().All() {
		assert.Equal(t, KindChoice, q.Kind(), q.ID)
	}
}

func TestNewCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		qs   []Question
	}{
		{"missing id", []Question{{Tier: tier.T1, Prompt: "p", Answer: "a"}}},
		{"missing tier", []Question{{ID: "a", Prompt: "p", Answer: "a"}}},
		{"missing prompt", []Question{{ID: "a", Tier: tier.T1, Answer: "a"}}},
		{"missing answer", []Question{{ID: "a", Tier: tier.T1, Prompt: "p"}}},
		{"bad index", []Question{{ID: "a", Tier: tier.T1, Prompt: "p", Options: []string{"x", "y"}, CorrectIndex: 2}}},
		{"duplicate", []Question{
			{ID: "a", Tier: tier.T1, Prompt: "p", Answer: "a"},
			{ID: "a", Tier: tier.T2, Prompt: "q", Answer: "b"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.qs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}
}

func TestInTierReturnsCopy(t *testing.T) {
	c := Ciphers()
	qs := c.InTier(tier.T1)
	qs[0].Prompt = "mutated"
	assert.NotEqual(t, "mutated", c.InTier(tier.T1)[0].Prompt)
}

func TestHasHint(t *testing.T) {
	assert.True(t, Question{Hint: "look closer"}.HasHint())
	assert.False(t, Question{Hint: "   "}.HasHint())
}

func TestForMode(t *testing.T) {
	c, err := ForMode("")
	require.NoError(t, err)
	assert.Equal(t, Ciphers().Len(), c.Len())

	c, err = ForMode("trivia")
	require.NoError(t, err)
	assert.Equal(t, Trivia().Len(), c.Len())

	_, err = ForMode("speedrun")
	assert.Error(t, err)
}

func TestRank(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "DIGITAL SEEKER"},
		{199, "DIGITAL SEEKER"},
		{200, "CODE BREAKER"},
		{300, "CIPHER ADEPT"},
		{350, "PHANTOM MASTER"},
		{400, "PHANTOM MASTER"},
	}
	for _, tt := range tests {
		if got := Rank(tt.score); got != tt.want {
			t.Errorf("Rank(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
