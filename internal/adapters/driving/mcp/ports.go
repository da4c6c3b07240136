package mcp

import (
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Convert turns markup into trees and back.
	Convert driving.ConvertService

	// Archive exposes stored conversions.
	Archive driving.ArchiveService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Convert == nil {
		return ErrMissingConvertService
	}
	// Archive is optional; without it the record resources are empty.
	return nil
}
