package bank

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phantomledger/internal/tier"
)

func TestEncodeDecodePreservesRules(t *testing.T) {
	for _, src := range []*Catalog{Ciphers(), Trivia()} {
		raw, err := EncodeJSON(src)
		require.NoError(t, err)

		got, err := DecodeJSON(raw)
		require.NoError(t, err)
		require.Equal(t, src.Len(), got.Len())

		for _, want := range src.All() {
			q, ok := got.Get(want.ID)
			require.True(t, ok, want.ID)
			assert.Equal(t, want.Tier, q.Tier)
			assert.Equal(t, want.Kind(), q.Kind())
			assert.Equal(t, want.Answer, q.Answer)
			assert.Equal(t, want.CorrectIndex, q.CorrectIndex)
			assert.Equal(t, want.Hint, q.Hint)
		}
	}
}

func TestDecodeJSONSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"questions": [`},
		{"no questions", `{}`},
		{"empty list", `{"questions": []}`},
		{"unknown level", `{"questions": [{"id": "a", "level": "legendary", "question": "q", "answer": "a"}]}`},
		{"no answer rule", `{"questions": [{"id": "a", "level": "easy", "question": "q"}]}`},
		{"negative index", `{"questions": [{"id": "a", "level": "easy", "question": "q", "options": ["x", "y"], "correctAnswer": -1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}
}

func TestDecodeJSONMixedKinds(t *testing.T) {
	raw := `{"questions": [
		{"id": "a", "level": "easy", "question": "Native token?", "answer": "apt", "hints": ["three letters"], "maxTime": 30},
		{"id": "b", "level": "expert", "question": "Pick one", "options": ["x", "y", "z"], "correctAnswer": 2}
	]}`
	c, err := DecodeJSON([]byte(raw))
	require.NoError(t, err)

	a, _ := c.Get("a")
	assert.Equal(t, tier.T1, a.Tier)
	assert.Equal(t, KindText, a.Kind())
	assert.Equal(t, "three letters", a.Hint)
	assert.Equal(t, 30, a.MaxTime)

	b, _ := c.Get("b")
	assert.Equal(t, tier.T4, b.Tier)
	assert.Equal(t, KindChoice, b.Kind())
	assert.Equal(t, 2, b.CorrectIndex)
}

func TestFileSource(t *testing.T) {
	raw, err := EncodeJSON(Trivia())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	c, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Trivia().Len(), c.Len())

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	assert.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	c, err := StaticSource{Catalog: Ciphers()}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Ciphers().Len(), c.Len())

	_, err = StaticSource{}.Load(context.Background())
	assert.Error(t, err)
}
