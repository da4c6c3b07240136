package driving

import (
	"context"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// ArchiveService manages stored conversions.
type ArchiveService interface {
	// List returns all archived conversions, newest first.
	List(ctx context.Context) ([]domain.Record, error)

	// Get retrieves one archived conversion.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes an archived conversion.
	Delete(ctx context.Context, id string) error
}
