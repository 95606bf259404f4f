package sampler

import (
	"math/rand/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/tier"
)

// Sampler draws randomized, non-repeating question lists for a tier.
type Sampler struct {
	catalog *bank.Catalog
	rng     *rand.Rand
}

// New creates a Sampler over catalog. A nil rng uses a randomly seeded source.
func New(catalog *bank.Catalog, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{catalog: catalog, rng: rng}
}

// Sample returns up to n questions from tier t, excluding any id in exclude.
// n is capped at the tier quota. When fewer questions are available the
// shortfall is accepted and a shorter list is returned.
func (s *Sampler) Sample(t tier.Tier, n int, exclude map[string]bool) []bank.Question {
	n = min(n, tier.QuestionsPerTier)
	if n <= 0 || !t.Valid() {
		return nil
	}

	pool := s.catalog.InTier(t)
	avail := pool[:0]
	for _, q := range pool {
		if !exclude[q.ID] {
			avail = append(avail, q)
		}
	}

	s.rng.Shuffle(len(avail), func(i, j int) {
		avail[i], avail[j] = avail[j], avail[i]
	})

	if len(avail) < n {
		n = len(avail)
	}
	return avail[:n:n]
}
