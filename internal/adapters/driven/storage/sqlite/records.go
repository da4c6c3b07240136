package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
)

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

// SaveRecord stores or updates a conversion record.
func (s *recordStore) SaveRecord(ctx context.Context, rec *domain.Record) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO records (id, name, source, tree, elements, text_nodes, comments, attributes, max_depth, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			source = excluded.source,
			tree = excluded.tree,
			elements = excluded.elements,
			text_nodes = excluded.text_nodes,
			comments = excluded.comments,
			attributes = excluded.attributes,
			max_depth = excluded.max_depth,
			created_at = excluded.created_at
	`, rec.ID, rec.Name, rec.Source, rec.Tree,
		rec.Stats.Elements, rec.Stats.TextNodes, rec.Stats.Comments,
		rec.Stats.Attributes, rec.Stats.MaxDepth, rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// GetRecord retrieves a record by ID.
func (s *recordStore) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, source, tree, elements, text_nodes, comments, attributes, max_depth, created_at
		FROM records WHERE id = ?
	`, id)

	return scanRecord(row)
}

// ListRecords returns all records, newest first.
func (s *recordStore) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, source, tree, elements, text_nodes, comments, attributes, max_depth, created_at
		FROM records
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanRecordRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// DeleteRecord removes a record by ID.
func (s *recordStore) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanRecord scans a single record row.
func scanRecord(row *sql.Row) (*domain.Record, error) {
	var rec domain.Record
	var createdAt sql.NullTime

	if err := row.Scan(&rec.ID, &rec.Name, &rec.Source, &rec.Tree,
		&rec.Stats.Elements, &rec.Stats.TextNodes, &rec.Stats.Comments,
		&rec.Stats.Attributes, &rec.Stats.MaxDepth, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}

	return &rec, nil
}

// scanRecordRows scans a record from *sql.Rows.
func scanRecordRows(rows *sql.Rows) (*domain.Record, error) {
	var rec domain.Record
	var createdAt sql.NullTime

	if err := rows.Scan(&rec.ID, &rec.Name, &rec.Source, &rec.Tree,
		&rec.Stats.Elements, &rec.Stats.TextNodes, &rec.Stats.Comments,
		&rec.Stats.Attributes, &rec.Stats.MaxDepth, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}

	return &rec, nil
}
