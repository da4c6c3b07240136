package mcp

import (
	"context"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

// mockConvertService is a mock implementation of driving.ConvertService.
type mockConvertService struct {
	result    *driving.ConvertResult
	markup    string
	formatted string
	stats     domain.Stats
	err       error
}

func (m *mockConvertService) Convert(
	_ context.Context,
	_ string,
	_ driving.ConvertOptions,
) (*driving.ConvertResult, error) {
	return m.result, m.err
}

func (m *mockConvertService) Render(_ context.Context, _ []byte) (string, error) {
	return m.markup, m.err
}

func (m *mockConvertService) Format(
	_ context.Context,
	_ string,
	_ driving.ConvertOptions,
) (string, error) {
	return m.formatted, m.err
}

func (m *mockConvertService) Inspect(
	_ context.Context,
	_ string,
	_ driving.ConvertOptions,
) (domain.Stats, error) {
	return m.stats, m.err
}

// mockArchiveService is a mock implementation of driving.ArchiveService.
type mockArchiveService struct {
	records []domain.Record
	record  *domain.Record
	err     error
}

func (m *mockArchiveService) List(_ context.Context) ([]domain.Record, error) {
	return m.records, m.err
}

func (m *mockArchiveService) Get(_ context.Context, _ string) (*domain.Record, error) {
	return m.record, m.err
}

func (m *mockArchiveService) Delete(_ context.Context, _ string) error {
	return m.err
}
