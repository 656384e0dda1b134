package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.RecordOutcome("rename", "/media/a.mkv", "/media/Movie (2020)/a.mkv", StatusApplied, ""))
	require.NoError(t, db.RecordOutcome("rename", "/media/b.mkv", "/media/Movie (2021)/b.mkv", StatusFailed, "permission denied"))

	entries, err := db.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first
	assert.Equal(t, "/media/b.mkv", entries[0].SourcePath)
	assert.Equal(t, StatusFailed, entries[0].Status)
	assert.Equal(t, "permission denied", entries[0].Reason)
	assert.Equal(t, "/media/a.mkv", entries[1].SourcePath)
	assert.Equal(t, StatusApplied, entries[1].Status)
	assert.Empty(t, entries[1].Reason)
}

func TestRecentLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.RecordOutcome("rename", "/from", "/to", StatusApplied, ""))
	}

	entries, err := db.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecentEmpty(t *testing.T) {
	db := openTestDB(t)

	entries, err := db.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStats(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.RecordOutcome("rename", "/a", "/b", StatusApplied, ""))
	require.NoError(t, db.RecordOutcome("rename", "/c", "/d", StatusApplied, ""))
	require.NoError(t, db.RecordOutcome("rename", "/e", "/f", StatusPlanned, ""))
	require.NoError(t, db.RecordOutcome("rename", "/g", "/h", StatusFailed, "boom"))

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats[StatusApplied])
	assert.Equal(t, 1, stats[StatusPlanned])
	assert.Equal(t, 1, stats[StatusFailed])
}

func TestOpenCreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.RecordOutcome("rename", "/a", "/b", StatusApplied, ""))
	entries, err := db.Recent(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.FileExists(t, path)
}
