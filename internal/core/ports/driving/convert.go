package driving

import (
	"context"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// ConvertOptions control one conversion.
type ConvertOptions struct {
	// Name labels the conversion, usually the source file name.
	Name string

	// Strict selects the HTML5 fragment parser instead of the relaxed
	// scanner. The configured default applies when false.
	Strict bool

	// Pretty indents the JSON tree output.
	Pretty bool

	// Save archives the conversion.
	Save bool
}

// ConvertResult is every derived form of one conversion.
type ConvertResult struct {
	// Document is the parsed node tree.
	Document domain.Document

	// Markup is the tree serialised back to markup text.
	Markup string

	// JSON is the tree in the interchange form.
	JSON []byte

	// Stats summarises the tree shape.
	Stats domain.Stats

	// RecordID is set when the conversion was archived.
	RecordID string
}

// ConvertService turns markup into trees and trees back into markup.
type ConvertService interface {
	// Convert parses input and returns every derived form.
	Convert(ctx context.Context, input string, opts ConvertOptions) (*ConvertResult, error)

	// Render turns an interchange JSON tree back into markup.
	Render(ctx context.Context, tree []byte) (string, error)

	// Format reparses input and serialises it straight back, which
	// normalises tag case, attribute quoting and whitespace.
	Format(ctx context.Context, input string, opts ConvertOptions) (string, error)

	// Inspect parses input and returns the tree statistics.
	Inspect(ctx context.Context, input string, opts ConvertOptions) (domain.Stats, error)
}
