package bank

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/phantomledger/internal/tier"
)

// questionRecord is the serialized form of a Question.
type questionRecord struct {
	ID            string   `json:"id"`
	Level         string   `json:"level"`
	Story         string   `json:"story,omitempty"`
	Question      string   `json:"question"`
	Answer        string   `json:"answer,omitempty"`
	Hints         []string `json:"hints,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	MaxTime       int      `json:"maxTime,omitempty"`
}

type catalogRecord struct {
	Questions []questionRecord `json:"questions"`
}

func toRecord(q Question) questionRecord {
	r := questionRecord{
		ID:       q.ID,
		Level:    q.Tier.Key(),
		Story:    q.Story,
		Question: q.Prompt,
		Answer:   q.Answer,
		Options:  q.Options,
		MaxTime:  q.MaxTime,
	}
	if q.Hint != "" {
		r.Hints = []string{q.Hint}
	}
	if q.Kind() == KindChoice {
		idx := q.CorrectIndex
		r.CorrectAnswer = &idx
	}
	return r
}

func fromRecord(r questionRecord) (Question, error) {
	t, err := tier.Parse(r.Level)
	if err != nil {
		return Question{}, fmt.Errorf("%w: question %s: %v", ErrInvalidCatalog, r.ID, err)
	}
	q := Question{
		ID:      r.ID,
		Tier:    t,
		Story:   r.Story,
		Prompt:  r.Question,
		Answer:  r.Answer,
		Options: r.Options,
		MaxTime: r.MaxTime,
	}
	if len(r.Hints) > 0 {
		q.Hint = r.Hints[0]
	}
	if r.CorrectAnswer != nil {
		q.CorrectIndex = *r.CorrectAnswer
	}
	return q, nil
}

// EncodeJSON serializes a catalog in the collection format.
func EncodeJSON(c *Catalog) ([]byte, error) {
	rec := catalogRecord{Questions: make([]questionRecord, 0, c.Len())}
	for _, q := range c.All() {
		rec.Questions = append(rec.Questions, toRecord(q))
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return b, nil
}

// DecodeJSON validates raw catalog JSON against the catalog schema and builds
// a Catalog from it.
func DecodeJSON(raw []byte) (*Catalog, error) {
	if err := validateCatalogJSON(raw); err != nil {
		return nil, err
	}
	var rec catalogRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	qs := make([]Question, 0, len(rec.Questions))
	for _, r := range rec.Questions {
		q, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return NewCatalog(qs)
}
