package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/phantomledger/internal/progress"
)

// maxWatchRetries bounds optimistic transaction retries on contention.
const maxWatchRetries = 8

// RedisProgress implements progress.Store on Redis. Each record is a JSON
// document updated under WATCH, so concurrent writers never lose updates.
type RedisProgress struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ progress.Store = (*RedisProgress)(nil)

// NewRedisProgress creates a Redis-backed store. Keys are namespaced under
// prefix, "phantom" when empty.
func NewRedisProgress(client *redis.Client, prefix string) *RedisProgress {
	if prefix == "" {
		prefix = "phantom"
	}
	return &RedisProgress{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisProgress) key(playerID string) string {
	return fmt.Sprintf("%s:progress:%s", r.prefix, playerID)
}

// redisRecord is the stored JSON document.
type redisRecord struct {
	PlayerID                  string   `json:"playerId"`
	Network                   string   `json:"network,omitempty"`
	Lives                     int      `json:"lives"`
	LifetimeScore             int      `json:"totalScore"`
	LifetimeQuestionsAnswered int      `json:"totalQuestionsAnswered"`
	HighestScore              int      `json:"highestScore"`
	GamesCompleted            int      `json:"totalGamesPlayed"`
	AverageScore              int      `json:"averageScore"`
	SessionScore              int      `json:"currentGameScore"`
	SessionQuestionsAnswered  int      `json:"currentGameQuestionsAnswered"`
	Finalized                 bool     `json:"finalized"`
	FinalizedScore            int      `json:"finalizedScore"`
	Answered                  []string `json:"answered,omitempty"`
	Missed                    []string `json:"missed,omitempty"`
	CreatedAt                 int64    `json:"createdAt"`
	UpdatedAt                 int64    `json:"updatedAt"`
}

func toRedisRecord(p *progress.PlayerProgress) redisRecord {
	return redisRecord{
		PlayerID:                  p.PlayerID,
		Network:                   p.Network,
		Lives:                     p.Lives,
		LifetimeScore:             p.LifetimeScore,
		LifetimeQuestionsAnswered: p.LifetimeQuestionsAnswered,
		HighestScore:              p.HighestScore,
		GamesCompleted:            p.GamesCompleted,
		AverageScore:              p.AverageScore,
		SessionScore:              p.SessionScore,
		SessionQuestionsAnswered:  p.SessionQuestionsAnswered,
		Finalized:                 p.Finalized,
		FinalizedScore:            p.FinalizedScore,
		Answered:                  p.Answered,
		Missed:                    p.Missed,
		CreatedAt:                 p.CreatedAt.UnixMilli(),
		UpdatedAt:                 p.UpdatedAt.UnixMilli(),
	}
}

func (rec redisRecord) toProgress() *progress.PlayerProgress {
	return &progress.PlayerProgress{
		PlayerID:                  rec.PlayerID,
		Network:                   rec.Network,
		Lives:                     rec.Lives,
		LifetimeScore:             rec.LifetimeScore,
		LifetimeQuestionsAnswered: rec.LifetimeQuestionsAnswered,
		HighestScore:              rec.HighestScore,
		GamesCompleted:            rec.GamesCompleted,
		AverageScore:              rec.AverageScore,
		SessionScore:              rec.SessionScore,
		SessionQuestionsAnswered:  rec.SessionQuestionsAnswered,
		Finalized:                 rec.Finalized,
		FinalizedScore:            rec.FinalizedScore,
		Answered:                  rec.Answered,
		Missed:                    rec.Missed,
		CreatedAt:                 time.UnixMilli(rec.CreatedAt).UTC(),
		UpdatedAt:                 time.UnixMilli(rec.UpdatedAt).UTC(),
	}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *RedisProgress) load(ctx context.Context, c getter, playerID string) (*progress.PlayerProgress, error) {
	raw, err := c.Get(ctx, r.key(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, progress.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	var rec redisRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return rec.toProgress(), nil
}

func (r *RedisProgress) Get(ctx context.Context, playerID string) (*progress.PlayerProgress, error) {
	return r.load(ctx, r.client, playerID)
}

// Create stores a record with defaults unless one already exists.
func (r *RedisProgress) Create(ctx context.Context, playerID string, d progress.Defaults) (*progress.PlayerProgress, error) {
	b, err := json.Marshal(toRedisRecord(progress.New(playerID, d, r.now().UTC())))
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	if err := r.client.SetNX(ctx, r.key(playerID), b, 0).Err(); err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return r.Get(ctx, playerID)
}

func (r *RedisProgress) AddSessionProgress(ctx context.Context, playerID string, d progress.Delta) error {
	return r.mutate(ctx, playerID, func(p *progress.PlayerProgress, now time.Time) bool {
		return progress.ApplySessionProgress(p, d, now)
	})
}

func (r *RedisProgress) LoseLife(ctx context.Context, playerID, questionID string) error {
	return r.mutate(ctx, playerID, func(p *progress.PlayerProgress, now time.Time) bool {
		return progress.ApplyLoseLife(p, questionID, now)
	})
}

func (r *RedisProgress) FinalizeSession(ctx context.Context, playerID string) error {
	return r.mutate(ctx, playerID, func(p *progress.PlayerProgress, now time.Time) bool {
		return progress.ApplyFinalize(p, now)
	})
}

func (r *RedisProgress) SyncSession(ctx context.Context, playerID string, t progress.Totals) error {
	return r.mutate(ctx, playerID, func(p *progress.PlayerProgress, now time.Time) bool {
		return progress.ApplySync(p, t, now)
	})
}

func (r *RedisProgress) GrantLives(ctx context.Context, playerID string, n int) error {
	return r.mutate(ctx, playerID, func(p *progress.PlayerProgress, now time.Time) bool {
		return progress.ApplyGrant(p, n, now)
	})
}

func (r *RedisProgress) mutate(ctx context.Context, playerID string, fn func(*progress.PlayerProgress, time.Time) bool) error {
	key := r.key(playerID)
	txf := func(tx *redis.Tx) error {
		p, err := r.load(ctx, tx, playerID)
		if err != nil {
			return err
		}
		if !fn(p, r.now().UTC()) {
			return nil
		}
		b, err := json.Marshal(toRedisRecord(p))
		if err != nil {
			return fmt.Errorf("encode progress: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("update %s: %w", playerID, err)
		}
		return nil
	}
	return fmt.Errorf("update %s: %w", playerID, redis.TxFailedErr)
}
