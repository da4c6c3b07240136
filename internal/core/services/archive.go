package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService manages stored conversions.
type ArchiveService struct {
	records driven.RecordStore
}

// NewArchiveService creates the archive service. records may be nil
// when the archive is disabled; every operation then fails with
// domain.ErrArchiveDisabled.
func NewArchiveService(records driven.RecordStore) *ArchiveService {
	return &ArchiveService{records: records}
}

// List returns all archived conversions, newest first.
func (s *ArchiveService) List(ctx context.Context) ([]domain.Record, error) {
	if s.records == nil {
		return nil, domain.ErrArchiveDisabled
	}
	records, err := s.records.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

// Get retrieves one archived conversion.
func (s *ArchiveService) Get(ctx context.Context, id string) (*domain.Record, error) {
	if s.records == nil {
		return nil, domain.ErrArchiveDisabled
	}
	rec, err := s.records.GetRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting record %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes an archived conversion.
func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	if s.records == nil {
		return domain.ErrArchiveDisabled
	}
	if err := s.records.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	return nil
}
