package driven

import (
	"context"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// RecordStore persists archived conversions.
// Backed by SQLite for local storage.
type RecordStore interface {
	// SaveRecord stores or updates a conversion record.
	SaveRecord(ctx context.Context, rec *domain.Record) error

	// GetRecord retrieves a record by ID.
	GetRecord(ctx context.Context, id string) (*domain.Record, error)

	// ListRecords returns all records, newest first.
	ListRecords(ctx context.Context) ([]domain.Record, error)

	// DeleteRecord removes a record by ID.
	DeleteRecord(ctx context.Context, id string) error
}
