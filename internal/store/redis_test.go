package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phantomledger/internal/progress"
)

func redisTestStore(t *testing.T) *RedisProgress {
	t.Helper()
	addr := os.Getenv("PHANTOM_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PHANTOM_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	prefix := fmt.Sprintf("phantom-test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})
	return NewRedisProgress(client, prefix)
}

func TestRedisProgressLifecycle(t *testing.T) {
	r := redisTestStore(t)
	ctx := context.Background()

	_, err := r.Get(ctx, "0xabc")
	assert.ErrorIs(t, err, progress.ErrNotFound)

	p, err := r.Create(ctx, "0xabc", progress.Defaults{Network: "testnet"})
	require.NoError(t, err)
	assert.Equal(t, progress.DefaultLives, p.Lives)

	require.NoError(t, r.AddSessionProgress(ctx, "0xabc", progress.Delta{QuestionID: "e1", Score: 18, Questions: 1}))
	require.NoError(t, r.AddSessionProgress(ctx, "0xabc", progress.Delta{QuestionID: "e1", Score: 18, Questions: 1}))
	require.NoError(t, r.LoseLife(ctx, "0xabc", "e2"))
	require.NoError(t, r.FinalizeSession(ctx, "0xabc"))
	require.NoError(t, r.FinalizeSession(ctx, "0xabc"))
	require.NoError(t, r.GrantLives(ctx, "0xabc", 2))

	p, err = r.Get(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, 18, p.SessionScore)
	assert.Equal(t, 18, p.LifetimeScore)
	assert.Equal(t, 1, p.GamesCompleted)
	assert.Equal(t, 1, p.LifetimeQuestionsAnswered)
	assert.Equal(t, progress.DefaultLives+1, p.Lives)
	assert.Equal(t, "testnet", p.Network)
	assert.Equal(t, []string{"e2"}, p.Missed)
}

func TestRedisProgressConcurrentGrants(t *testing.T) {
	r := redisTestStore(t)
	ctx := context.Background()
	_, err := r.Create(ctx, "0xabc", progress.Defaults{Lives: 1})
	require.NoError(t, err)

	done := make(chan error, 5)
	for i := 0; i < 5; i++ {
		go func() { done <- r.GrantLives(ctx, "0xabc", 1) }()
	}
	for i := 0; i < 5; i++ {
		assert.NoError(t, <-done)
	}

	p, err := r.Get(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, 6, p.Lives)
}
