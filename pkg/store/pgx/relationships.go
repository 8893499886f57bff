package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

const relationshipColumns = `id, parent_id, child_id, is_father, confidence`

func scanRelationship(row pgx.Row) (*common.Relationship, error) {
	var r common.Relationship
	err := row.Scan(&r.ID, &r.ParentID, &r.ChildID, &r.IsFather, &r.Confidence)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateRelationship(ctx context.Context, parentID, childID int64, isFather bool, confidence float64) (*common.Relationship, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO relationships (parent_id, child_id, is_father, confidence)
		VALUES ($1, $2, $3, $4)
		RETURNING `+relationshipColumns,
		parentID, childID, isFather, confidence,
	)
	rel, err := scanRelationship(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}
	return rel, nil
}

func (s *Store) FindRelationship(ctx context.Context, parentID, childID int64) (*common.Relationship, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT `+relationshipColumns+`
		FROM relationships
		WHERE parent_id = $1 AND child_id = $2`,
		parentID, childID,
	)
	return scanRelationship(row)
}

func (s *Store) ParentsOf(ctx context.Context, childID int64) ([]*common.Relationship, error) {
	return s.queryRelationships(ctx, `
		SELECT `+relationshipColumns+` FROM relationships WHERE child_id = $1 ORDER BY id`, childID)
}

func (s *Store) ChildrenOf(ctx context.Context, parentID int64) ([]*common.Relationship, error) {
	return s.queryRelationships(ctx, `
		SELECT `+relationshipColumns+` FROM relationships WHERE parent_id = $1 ORDER BY id`, parentID)
}

func (s *Store) AllRelationships(ctx context.Context) ([]*common.Relationship, error) {
	return s.queryRelationships(ctx, `
		SELECT `+relationshipColumns+` FROM relationships ORDER BY id`)
}

func (s *Store) queryRelationships(ctx context.Context, sql string, args ...any) ([]*common.Relationship, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	var rels []*common.Relationship
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}

func (s *Store) DeleteRelationship(ctx context.Context, id int64) error {
	_, err := s.conn.Exec(ctx, `DELETE FROM relationships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete relationship %d: %w", id, err)
	}
	return nil
}
