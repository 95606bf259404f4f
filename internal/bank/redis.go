package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisSource stores and fetches a catalog as a remote question collection.
// Each question lives under its own key; a set indexes the ids.
type RedisSource struct {
	Client *redis.Client

	// Collection namespaces the keys, e.g. "cipher" or "trivia".
	Collection string
}

func (s RedisSource) idsKey() string {
	return fmt.Sprintf("phantom:%s:question_ids", s.Collection)
}

func (s RedisSource) questionKey(id string) string {
	return fmt.Sprintf("phantom:%s:question:%s", s.Collection, id)
}

// Load fetches every indexed question. Entries that are missing or fail
// validation make the whole load fail so a half-seeded collection is never served.
func (s RedisSource) Load(ctx context.Context) (*Catalog, error) {
	ids, err := s.Client.SMembers(ctx, s.idsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list question ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: collection %q is empty", ErrInvalidCatalog, s.Collection)
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.questionKey(id)
	}
	vals, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	rec := catalogRecord{Questions: make([]questionRecord, 0, len(vals))}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: question %s missing", ErrInvalidCatalog, ids[i])
		}
		var qr questionRecord
		if err := json.Unmarshal([]byte(str), &qr); err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", ErrInvalidCatalog, ids[i], err)
		}
		rec.Questions = append(rec.Questions, qr)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal fetched catalog: %w", err)
	}
	return DecodeJSON(raw)
}

// Save replaces the collection with the given catalog.
func (s RedisSource) Save(ctx context.Context, c *Catalog) error {
	old, err := s.Client.SMembers(ctx, s.idsKey()).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("list question ids: %w", err)
	}

	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range old {
			pipe.Del(ctx, s.questionKey(id))
		}
		pipe.Del(ctx, s.idsKey())
		for _, q := range c.All() {
			b, err := json.Marshal(toRecord(q))
			if err != nil {
				return fmt.Errorf("marshal question %s: %w", q.ID, err)
			}
			pipe.Set(ctx, s.questionKey(q.ID), b, 0)
			pipe.SAdd(ctx, s.idsKey(), q.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save collection %s: %w", s.Collection, err)
	}
	return nil
}
