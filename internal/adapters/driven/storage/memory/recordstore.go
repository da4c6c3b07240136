// Package memory provides in-memory implementations of storage ports.
// Used for testing and as a fallback when persistence is disabled.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.Record),
	}
}

// SaveRecord stores or updates a conversion record.
func (s *RecordStore) SaveRecord(_ context.Context, rec *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

// GetRecord retrieves a record by ID.
func (s *RecordStore) GetRecord(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// ListRecords returns all records, newest first.
func (s *RecordStore) ListRecords(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Record, 0, len(s.records))
	for id := range s.records {
		result = append(result, s.records[id])
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// DeleteRecord removes a record by ID.
func (s *RecordStore) DeleteRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
