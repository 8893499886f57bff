package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

const personColumns = `id, first_name, last_name, birth_date, birth_place, death_date, death_place, confidence`

func scanPerson(row pgx.Row) (*common.Person, error) {
	var p common.Person
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.BirthDate,
		&p.BirthPlace,
		&p.DeathDate,
		&p.DeathPlace,
		&p.Confidence,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreatePerson(ctx context.Context, person common.Person) (*common.Person, error) {
	if person.Confidence == 0 {
		person.Confidence = 1.0
	}
	row := s.conn.QueryRow(ctx, `
		INSERT INTO persons (first_name, last_name, birth_date, birth_place, death_date, death_place, confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+personColumns,
		person.FirstName,
		person.LastName,
		person.BirthDate,
		person.BirthPlace,
		person.DeathDate,
		person.DeathPlace,
		person.Confidence,
	)
	created, err := scanPerson(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return created, nil
}

func (s *Store) UpdatePerson(ctx context.Context, person *common.Person) error {
	_, err := s.conn.Exec(ctx, `
		UPDATE persons
		SET first_name = $2, last_name = $3, birth_date = $4, birth_place = $5,
		    death_date = $6, death_place = $7, confidence = $8
		WHERE id = $1`,
		person.ID,
		person.FirstName,
		person.LastName,
		person.BirthDate,
		person.BirthPlace,
		person.DeathDate,
		person.DeathPlace,
		person.Confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to update person %d: %w", person.ID, err)
	}
	return nil
}

func (s *Store) GetPerson(ctx context.Context, id int64) (*common.Person, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id)
	return scanPerson(row)
}

func (s *Store) FindPersons(ctx context.Context, firstName, lastName string) ([]*common.Person, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT `+personColumns+`
		FROM persons
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR last_name ILIKE '%' || $2 || '%')
		ORDER BY id`,
		firstName, lastName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find persons: %w", err)
	}
	defer rows.Close()

	var persons []*common.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func (s *Store) AllPersons(ctx context.Context) ([]*common.Person, error) {
	return s.FindPersons(ctx, "", "")
}

func (s *Store) DeletePerson(ctx context.Context, id int64) error {
	_, err := s.conn.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person %d: %w", id, err)
	}
	return nil
}
