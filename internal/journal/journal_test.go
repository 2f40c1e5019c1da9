package journal_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-mover/internal/journal"
)

func openStore(t *testing.T) (*journal.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "journal.db")
	store, err := journal.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestRecordAndRecent(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, journal.Entry{
		Session: "s1", File: "a.txt", Source: "/src", Destination: "/tmp/x",
		Action: "move", Outcome: "moved", CreatedAt: base,
	}))
	require.NoError(t, store.Record(ctx, journal.Entry{
		Session: "s1", File: "b.txt", Source: "/src",
		Action: "skip", Outcome: "skipped", CreatedAt: base.Add(time.Second),
	}))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "b.txt", entries[0].File)
	assert.Equal(t, "skipped", entries[0].Outcome)
	assert.Equal(t, "a.txt", entries[1].File)
	assert.Equal(t, "/tmp/x", entries[1].Destination)
	assert.True(t, entries[1].CreatedAt.Equal(base))
}

func TestRecentLimit(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, journal.Entry{Session: "s", File: "f", Source: "/s", Action: "skip", Outcome: "skipped"}))
	}

	entries, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestReopenKeepsEntries(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, journal.Entry{Session: "s", File: "kept.txt", Source: "/s", Action: "skip", Outcome: "skipped"}))
	require.NoError(t, store.Close())

	reopened, err := journal.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept.txt", entries[0].File)
	assert.False(t, entries[0].CreatedAt.IsZero())
}
