package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStoreRecordAndList(t *testing.T) {
	store := openTestStore(t)

	started := time.Now().Add(-time.Minute).Truncate(time.Millisecond)
	run := Run{
		StartedAt:   started,
		FinishedAt:  started.Add(30 * time.Second),
		Destination: "/backups",
		Total:       5,
		Cloned:      2,
		Updated:     3,
	}
	require.NoError(t, store.Record(run))

	runs, err := store.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	require.NotEmpty(t, got.ID, "missing ID should be filled in")
	require.Equal(t, "/backups", got.Destination)
	require.Equal(t, 5, got.Total)
	require.Equal(t, 2, got.Cloned)
	require.Equal(t, 3, got.Updated)
	require.Equal(t, 0, got.Failed)
	require.True(t, got.Succeeded())
	require.Equal(t, 30*time.Second, got.Duration())
}

func TestStoreListNewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Now().Truncate(time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(Run{
			StartedAt:   base.Add(time.Duration(i) * time.Hour),
			FinishedAt:  base.Add(time.Duration(i)*time.Hour + time.Minute),
			Destination: "/backups",
			Total:       i,
		}))
	}

	runs, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, runs, 2, "limit should cap the result")
	require.Equal(t, 2, runs[0].Total, "newest run first")
	require.Equal(t, 1, runs[1].Total)
}

func TestStoreRecordsFailure(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Record(Run{
		StartedAt:   time.Now(),
		FinishedAt:  time.Now(),
		Destination: "/backups",
		Error:       "github ListRepositories failed: exit status 1",
	}))

	runs, err := store.List(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.False(t, runs[0].Succeeded())
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}
