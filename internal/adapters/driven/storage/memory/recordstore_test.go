package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

func TestNewRecordStore(t *testing.T) {
	store := NewRecordStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.records)
}

func TestRecordStore_SaveRecord_Success(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	now := time.Now().UTC()
	rec := &domain.Record{
		ID:        "rec-1",
		Name:      "landing page",
		Source:    "<p>hi</p>",
		Tree:      `[{"type":"element","tag":"p","children":[{"type":"text","content":"hi"}]}]`,
		Stats:     domain.Stats{Elements: 1, TextNodes: 1, MaxDepth: 2},
		CreatedAt: now,
	}

	err := store.SaveRecord(ctx, rec)
	require.NoError(t, err)

	// Verify it was saved
	saved, err := store.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", saved.ID)
	assert.Equal(t, "landing page", saved.Name)
	assert.Equal(t, "<p>hi</p>", saved.Source)
	assert.Equal(t, 1, saved.Stats.Elements)
	assert.Equal(t, now, saved.CreatedAt)
}

func TestRecordStore_SaveRecord_Update(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	rec1 := &domain.Record{ID: "rec-1", Name: "original"}
	rec2 := &domain.Record{ID: "rec-1", Name: "updated"}

	err := store.SaveRecord(ctx, rec1)
	require.NoError(t, err)

	err = store.SaveRecord(ctx, rec2)
	require.NoError(t, err)

	// Should have the updated values
	saved, err := store.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "updated", saved.Name)
}

func TestRecordStore_GetRecord_NotFound(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	rec, err := store.GetRecord(ctx, "nonexistent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, rec)
}

func TestRecordStore_ListRecords_Empty(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	records, err := store.ListRecords(ctx)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordStore_ListRecords_NewestFirst(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []*domain.Record{
		{ID: "rec-old", CreatedAt: base},
		{ID: "rec-new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "rec-mid", CreatedAt: base.Add(time.Hour)},
	}
	for _, rec := range records {
		_ = store.SaveRecord(ctx, rec)
	}

	listed, err := store.ListRecords(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "rec-new", listed[0].ID)
	assert.Equal(t, "rec-mid", listed[1].ID)
	assert.Equal(t, "rec-old", listed[2].ID)
}

func TestRecordStore_ListRecords_TiesOrderedByID(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_ = store.SaveRecord(ctx, &domain.Record{ID: "rec-b", CreatedAt: stamp})
	_ = store.SaveRecord(ctx, &domain.Record{ID: "rec-a", CreatedAt: stamp})

	listed, err := store.ListRecords(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "rec-a", listed[0].ID)
	assert.Equal(t, "rec-b", listed[1].ID)
}

func TestRecordStore_DeleteRecord_Success(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	_ = store.SaveRecord(ctx, &domain.Record{ID: "rec-1"})

	err := store.DeleteRecord(ctx, "rec-1")
	require.NoError(t, err)

	_, err = store.GetRecord(ctx, "rec-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_DeleteRecord_NotFound(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	err := store.DeleteRecord(ctx, "nonexistent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_DataIsolation(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	rec := &domain.Record{ID: "rec-1", Name: "original"}
	err := store.SaveRecord(ctx, rec)
	require.NoError(t, err)

	retrieved, err := store.GetRecord(ctx, "rec-1")
	require.NoError(t, err)

	// Mutating the returned copy must not affect the stored value.
	retrieved.Name = "modified"

	stored, err := store.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Name)
}

func TestRecordStore_Concurrency_MixedOperations(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	// Pre-populate
	for i := 0; i < 10; i++ {
		_ = store.SaveRecord(ctx, &domain.Record{ID: fmt.Sprintf("rec-%d", i)})
	}

	var wg sync.WaitGroup
	numOperations := 100

	wg.Add(numOperations)
	for i := 0; i < numOperations; i++ {
		go func(id int) {
			defer wg.Done()
			switch id % 4 {
			case 0:
				_ = store.SaveRecord(ctx, &domain.Record{ID: fmt.Sprintf("rec-c-%d", id)})
			case 1:
				_, _ = store.GetRecord(ctx, fmt.Sprintf("rec-%d", id%10))
			case 2:
				_, _ = store.ListRecords(ctx)
			case 3:
				_ = store.DeleteRecord(ctx, fmt.Sprintf("rec-%d", id%10))
			}
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock
	_, err := store.ListRecords(ctx)
	require.NoError(t, err)
}

func TestRecordStore_ContextCancellation(t *testing.T) {
	store := NewRecordStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Operations should complete even with cancelled context
	err := store.SaveRecord(ctx, &domain.Record{ID: "rec-1"})
	assert.NoError(t, err)

	_, err = store.GetRecord(ctx, "rec-1")
	assert.NoError(t, err)

	_, err = store.ListRecords(ctx)
	assert.NoError(t, err)

	err = store.DeleteRecord(ctx, "rec-1")
	assert.NoError(t, err)
}
