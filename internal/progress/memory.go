package progress

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used for offline play and tests.
type MemoryStore struct {
	mu      sync.Mutex
	players map[string]*PlayerProgress
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]*PlayerProgress),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, playerID string) (*PlayerProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

// Create stores a new record. An existing record is returned unchanged.
func (m *MemoryStore) Create(_ context.Context, playerID string, d Defaults) (*PlayerProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[playerID]; ok {
		return p.Clone(), nil
	}
	p := New(playerID, d, m.now())
	m.players[playerID] = p
	return p.Clone(), nil
}

func (m *MemoryStore) AddSessionProgress(_ context.Context, playerID string, d Delta) error {
	return m.update(playerID, func(p *PlayerProgress, now time.Time) {
		ApplySessionProgress(p, d, now)
	})
}

func (m *MemoryStore) LoseLife(_ context.Context, playerID, questionID string) error {
	return m.update(playerID, func(p *PlayerProgress, now time.Time) {
		ApplyLoseLife(p, questionID, now)
	})
}

func (m *MemoryStore) FinalizeSession(_ context.Context, playerID string) error {
	return m.update(playerID, func(p *PlayerProgress, now time.Time) {
		ApplyFinalize(p, now)
	})
}

func (m *MemoryStore) SyncSession(_ context.Context, playerID string, t Totals) error {
	return m.update(playerID, func(p *PlayerProgress, now time.Time) {
		ApplySync(p, t, now)
	})
}

func (m *MemoryStore) GrantLives(_ context.Context, playerID string, n int) error {
	return m.update(playerID, func(p *PlayerProgress, now time.Time) {
		ApplyGrant(p, n, now)
	})
}

// Put replaces a record wholesale. Intended for seeding tests.
func (m *MemoryStore) Put(p *PlayerProgress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[p.PlayerID] = p.Clone()
}

func (m *MemoryStore) update(playerID string, fn func(*PlayerProgress, time.Time)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[playerID]
	if !ok {
		return fmt.Errorf("update %s: %w", playerID, ErrNotFound)
	}
	fn(p, m.now())
	return nil
}
