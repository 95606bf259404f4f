package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/store"
)

const testPlayer = "0xabc123"

// seedPlayer creates a record in a fresh database and returns its path.
func seedPlayer(t *testing.T) string {
	t.Helper()
	t.Setenv("PHANTOM_REDIS_ADDR", "")
	t.Setenv("PHANTOM_PLAYER", "")
	dbPath := filepath.Join(t.TempDir(), "phantom.db")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	_, err = st.ProgressRepo().Create(context.Background(), testPlayer,
		progress.Defaults{Lives: 2, Network: "testnet"})
	require.NoError(t, err)
	require.NoError(t, st.Close())
	return dbPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGrantAddsLives(t *testing.T) {
	dbPath := seedPlayer(t)

	out, err := execute(t, "grant", testPlayer, "3", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Lives now: 5")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	p, err := st.ProgressRepo().Get(context.Background(), testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Lives)
}

func TestGrantRejectsBadCount(t *testing.T) {
	dbPath := seedPlayer(t)

	_, err := execute(t, "grant", testPlayer, "zero", "--db", dbPath)
	assert.Error(t, err)

	_, err = execute(t, "grant", testPlayer, "-2", "--db", dbPath)
	assert.Error(t, err)
}

func TestGrantUnknownPlayer(t *testing.T) {
	dbPath := seedPlayer(t)

	_, err := execute(t, "grant", "0xnobody", "--db", dbPath)
	assert.ErrorIs(t, err, progress.ErrNotFound)
}

func TestStatsPrintsRecordAndActivity(t *testing.T) {
	dbPath := seedPlayer(t)
	_, err := execute(t, "grant", testPlayer, "--db", dbPath)
	require.NoError(t, err)

	out, err := execute(t, "stats", testPlayer, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back.")
	assert.Contains(t, out, "Lives: 3")
	assert.Contains(t, out, "Recent activity:")
	assert.Contains(t, out, "grant")
}

func TestStatsNewcomer(t *testing.T) {
	dbPath := seedPlayer(t)

	out, err := execute(t, "stats", "0xnew", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, progress.Welcome(nil))
}

func TestSeedNeedsRedis(t *testing.T) {
	dbPath := seedPlayer(t)

	_, err := execute(t, "seed", "--db", dbPath)
	assert.ErrorContains(t, err, "Redis")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "phantom")
}
