package driven

import (
	"context"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// ConfigStore loads and persists the application configuration.
type ConfigStore interface {
	// Load reads the configuration, returning defaults when no file
	// exists yet.
	Load(ctx context.Context) (*domain.Config, error)

	// Save writes the configuration.
	Save(ctx context.Context, cfg *domain.Config) error

	// Path returns the location of the backing file.
	Path() string
}
