package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
	"github.com/custodia-labs/treeml-cli/internal/interchange"
	"github.com/custodia-labs/treeml-cli/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.ConvertService = (*ConvertService)(nil)

// ConvertService turns markup into node trees and every derived form:
// serialised markup, the JSON interchange tree, and statistics.
type ConvertService struct {
	parser     driven.TreeParser
	serialiser driven.TreeSerialiser
	records    driven.RecordStore
	strict     bool
	pretty     bool
}

// ConvertOption configures a ConvertService.
type ConvertOption func(*ConvertService)

// WithStrictDefault makes the HTML5 fragment parser the default path.
// A per-call Strict option still forces it on.
func WithStrictDefault(strict bool) ConvertOption {
	return func(s *ConvertService) {
		s.strict = strict
	}
}

// WithPrettyDefault indents JSON tree output unless a call overrides
// it.
func WithPrettyDefault(pretty bool) ConvertOption {
	return func(s *ConvertService) {
		s.pretty = pretty
	}
}

// NewConvertService creates the conversion service. records may be nil
// when the archive is disabled; saving then fails with
// domain.ErrArchiveDisabled while plain conversions keep working.
func NewConvertService(parser driven.TreeParser, serialiser driven.TreeSerialiser, records driven.RecordStore, opts ...ConvertOption) *ConvertService {
	s := &ConvertService{
		parser:     parser,
		serialiser: serialiser,
		records:    records,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert parses input and returns every derived form. The relaxed
// path cannot fail; errors come only from strict parsing, interchange
// encoding or archiving.
func (s *ConvertService) Convert(ctx context.Context, input string, opts driving.ConvertOptions) (*driving.ConvertResult, error) {
	doc, err := s.parse(input, opts.Strict)
	if err != nil {
		return nil, err
	}

	tree, err := s.encode(doc, opts.Pretty)
	if err != nil {
		return nil, err
	}

	result := &driving.ConvertResult{
		Document: doc,
		Markup:   s.serialiser.Serialise(doc),
		JSON:     tree,
		Stats:    domain.CollectStats(doc),
	}

	if opts.Save {
		id, err := s.save(ctx, input, doc, result.Stats, opts.Name)
		if err != nil {
			return nil, err
		}
		result.RecordID = id
	}

	return result, nil
}

// Render turns an interchange JSON tree back into markup.
func (s *ConvertService) Render(_ context.Context, tree []byte) (string, error) {
	doc, err := interchange.Unmarshal(tree)
	if err != nil {
		return "", fmt.Errorf("reading tree: %w", err)
	}
	return s.serialiser.Serialise(doc), nil
}

// Format reparses input and serialises it straight back.
func (s *ConvertService) Format(_ context.Context, input string, opts driving.ConvertOptions) (string, error) {
	doc, err := s.parse(input, opts.Strict)
	if err != nil {
		return "", err
	}
	return s.serialiser.Serialise(doc), nil
}

// Inspect parses input and returns the tree statistics.
func (s *ConvertService) Inspect(_ context.Context, input string, opts driving.ConvertOptions) (domain.Stats, error) {
	doc, err := s.parse(input, opts.Strict)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.CollectStats(doc), nil
}

func (s *ConvertService) parse(input string, strict bool) (domain.Document, error) {
	if strict || s.strict {
		doc, err := s.parser.ParseStrict(input)
		if err != nil {
			return nil, fmt.Errorf("strict parse: %w", err)
		}
		return doc, nil
	}
	return s.parser.Parse(input), nil
}

func (s *ConvertService) encode(doc domain.Document, pretty bool) ([]byte, error) {
	if pretty || s.pretty {
		return interchange.MarshalIndent(doc)
	}
	return interchange.Marshal(doc)
}

func (s *ConvertService) save(ctx context.Context, input string, doc domain.Document, stats domain.Stats, name string) (string, error) {
	if s.records == nil {
		return "", domain.ErrArchiveDisabled
	}

	// Archived trees are always stored compact.
	tree, err := interchange.Marshal(doc)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = "untitled"
	}
	rec := &domain.Record{
		ID:        uuid.New().String(),
		Name:      name,
		Source:    input,
		Tree:      string(tree),
		Stats:     stats,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return "", fmt.Errorf("saving record: %w", err)
	}

	logger.Debug("archived conversion %s (%d nodes)", rec.ID, stats.TotalNodes())
	return rec.ID, nil
}
