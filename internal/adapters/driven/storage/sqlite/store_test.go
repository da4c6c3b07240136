package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "treeml-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func testRecord(id string) *domain.Record {
	return &domain.Record{
		ID:     id,
		Name:   "record " + id,
		Source: "<p>hi</p>",
		Tree:   `[{"type":"element","tag":"p","children":[{"type":"text","content":"hi"}]}]`,
		Stats: domain.Stats{
			Elements:  1,
			TextNodes: 1,
			MaxDepth:  2,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Invalid path should fail to create the directory
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "treeml-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "archive.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "treeml-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	first, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening runs migrate again against the existing schema.
	second, err := NewStore(tempDir)
	require.NoError(t, err)
	defer second.Close()

	var version int
	err = second.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestRecordStore_SaveRecord_Success(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	rec := testRecord("rec-1")
	err := records.SaveRecord(ctx, rec)
	require.NoError(t, err)

	saved, err := records.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, saved.ID)
	assert.Equal(t, rec.Name, saved.Name)
	assert.Equal(t, rec.Source, saved.Source)
	assert.Equal(t, rec.Tree, saved.Tree)
	assert.Equal(t, rec.Stats, saved.Stats)
	assert.WithinDuration(t, rec.CreatedAt, saved.CreatedAt, time.Second)
}

func TestRecordStore_SaveRecord_Update(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	rec := testRecord("rec-1")
	require.NoError(t, records.SaveRecord(ctx, rec))

	rec.Name = "renamed"
	rec.Stats.Elements = 7
	require.NoError(t, records.SaveRecord(ctx, rec))

	saved, err := records.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", saved.Name)
	assert.Equal(t, 7, saved.Stats.Elements)
}

func TestRecordStore_GetRecord_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	rec, err := records.GetRecord(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, rec)
}

func TestRecordStore_ListRecords_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	listed, err := records.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestRecordStore_ListRecords_NewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	old := testRecord("rec-old")
	old.CreatedAt = base
	mid := testRecord("rec-mid")
	mid.CreatedAt = base.Add(time.Hour)
	newest := testRecord("rec-new")
	newest.CreatedAt = base.Add(2 * time.Hour)

	for _, rec := range []*domain.Record{old, newest, mid} {
		require.NoError(t, records.SaveRecord(ctx, rec))
	}

	listed, err := records.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "rec-new", listed[0].ID)
	assert.Equal(t, "rec-mid", listed[1].ID)
	assert.Equal(t, "rec-old", listed[2].ID)
}

func TestRecordStore_DeleteRecord_Success(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	require.NoError(t, records.SaveRecord(ctx, testRecord("rec-1")))

	err := records.DeleteRecord(ctx, "rec-1")
	require.NoError(t, err)

	_, err = records.GetRecord(ctx, "rec-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_DeleteRecord_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	records := store.RecordStore()
	ctx := context.Background()

	err := records.DeleteRecord(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_PersistsAcrossReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "treeml-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)
	ctx := context.Background()

	first, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, first.RecordStore().SaveRecord(ctx, testRecord("rec-1")))
	require.NoError(t, first.Close())

	second, err := NewStore(tempDir)
	require.NoError(t, err)
	defer second.Close()

	saved, err := second.RecordStore().GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", saved.ID)
}
