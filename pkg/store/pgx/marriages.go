package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

const marriageColumns = `id, person1_id, person2_id, marriage_date, marriage_place, confidence, event_id`

func scanMarriage(row pgx.Row) (*common.Marriage, error) {
	var m common.Marriage
	err := row.Scan(
		&m.ID,
		&m.Person1ID,
		&m.Person2ID,
		&m.MarriageDate,
		&m.MarriagePlace,
		&m.Confidence,
		&m.EventID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) CreateMarriage(ctx context.Context, marriage common.Marriage) (*common.Marriage, error) {
	if marriage.Confidence == 0 {
		marriage.Confidence = 1.0
	}
	row := s.conn.QueryRow(ctx, `
		INSERT INTO marriages (person1_id, person2_id, marriage_date, marriage_place, confidence, event_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+marriageColumns,
		marriage.Person1ID,
		marriage.Person2ID,
		marriage.MarriageDate,
		marriage.MarriagePlace,
		marriage.Confidence,
		marriage.EventID,
	)
	created, err := scanMarriage(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create marriage: %w", err)
	}
	return created, nil
}

func (s *Store) FindMarriage(ctx context.Context, personA, personB int64) (*common.Marriage, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT `+marriageColumns+`
		FROM marriages
		WHERE (person1_id = $1 AND person2_id = $2)
		   OR (person1_id = $2 AND person2_id = $1)`,
		personA, personB,
	)
	return scanMarriage(row)
}

func (s *Store) MarriagesOf(ctx context.Context, personID int64) ([]*common.Marriage, error) {
	return s.queryMarriages(ctx, `
		SELECT `+marriageColumns+`
		FROM marriages
		WHERE person1_id = $1 OR person2_id = $1
		ORDER BY id`, personID)
}

func (s *Store) AllMarriages(ctx context.Context) ([]*common.Marriage, error) {
	return s.queryMarriages(ctx, `
		SELECT `+marriageColumns+` FROM marriages ORDER BY id`)
}

func (s *Store) queryMarriages(ctx context.Context, sql string, args ...any) ([]*common.Marriage, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query marriages: %w", err)
	}
	defer rows.Close()

	var marriages []*common.Marriage
	for rows.Next() {
		m, err := scanMarriage(rows)
		if err != nil {
			return nil, err
		}
		marriages = append(marriages, m)
	}
	return marriages, rows.Err()
}

func (s *Store) DeleteMarriage(ctx context.Context, id int64) error {
	_, err := s.conn.Exec(ctx, `DELETE FROM marriages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete marriage %d: %w", id, err)
	}
	return nil
}
