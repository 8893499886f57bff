package pgx

import (
	"context"
	"fmt"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

func (s *Store) CreateBirthEvent(ctx context.Context, event common.BirthEvent) (*common.BirthEvent, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO birth_events (
			day, month, year, parish, first_name, last_name, location,
			father_first_name, mother_first_name, mother_maiden_name,
			godparents_notes, signature, page, position, archive,
			scan_number, index_author, scan_url, person_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`,
		event.Day, event.Month, event.Year, event.Parish,
		event.FirstName, event.LastName, event.Location,
		event.FatherFirstName, event.MotherFirstName, event.MotherMaidenName,
		event.GodparentsNotes, event.Signature, event.Page, event.Position,
		event.Archive, event.ScanNumber, event.IndexAuthor, event.ScanURL,
		event.PersonID,
	)
	if err := row.Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("failed to create birth event: %w", err)
	}
	return &event, nil
}

func (s *Store) CreateDeathEvent(ctx context.Context, event common.DeathEvent) (*common.DeathEvent, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO death_events (
			day, month, year, parish, first_name, last_name, age, location,
			about_deceased_and_family, signature, page, position, archive,
			scan_number, index_author, scan_url, person_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		event.Day, event.Month, event.Year, event.Parish,
		event.FirstName, event.LastName, event.Age, event.Location,
		event.AboutDeceasedAndFamily, event.Signature, event.Page,
		event.Position, event.Archive, event.ScanNumber, event.IndexAuthor,
		event.ScanURL, event.PersonID,
	)
	if err := row.Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("failed to create death event: %w", err)
	}
	return &event, nil
}

func (s *Store) CreateMarriageEvent(ctx context.Context, event common.MarriageEvent) (*common.MarriageEvent, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO marriage_events (
			day, month, year, parish,
			groom_first_name, groom_last_name, groom_location, groom_age,
			groom_father_first_name, groom_mother_first_name, groom_mother_maiden_name,
			bride_first_name, bride_last_name, bride_location, bride_age,
			bride_father_first_name, bride_mother_first_name, bride_mother_maiden_name,
			witnesses_notes, signature, page, position, archive,
			scan_number, index_author, scan_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id`,
		event.Day, event.Month, event.Year, event.Parish,
		event.GroomFirstName, event.GroomLastName, event.GroomLocation, event.GroomAge,
		event.GroomFatherFirstName, event.GroomMotherFirstName, event.GroomMotherMaidenName,
		event.BrideFirstName, event.BrideLastName, event.BrideLocation, event.BrideAge,
		event.BrideFatherFirstName, event.BrideMotherFirstName, event.BrideMotherMaidenName,
		event.WitnessesNotes, event.Signature, event.Page, event.Position,
		event.Archive, event.ScanNumber, event.IndexAuthor, event.ScanURL,
	)
	if err := row.Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("failed to create marriage event: %w", err)
	}
	return &event, nil
}

func (s *Store) CreateCensusEntry(ctx context.Context, entry common.CensusEntry) (*common.CensusEntry, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO census_entries (
			household_number, male_number, female_number, full_name,
			male_age, female_age, parish, location, year, archive,
			index_author, signature, page, scan_number, notes, person_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		entry.HouseholdNumber, entry.MaleNumber, entry.FemaleNumber, entry.FullName,
		entry.MaleAge, entry.FemaleAge, entry.Parish, entry.Location, entry.Year,
		entry.Archive, entry.IndexAuthor, entry.Signature, entry.Page,
		entry.ScanNumber, entry.Notes, entry.PersonID,
	)
	if err := row.Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("failed to create census entry: %w", err)
	}
	return &entry, nil
}

func (s *Store) LinkBirthEvent(ctx context.Context, eventID, personID int64) error {
	_, err := s.conn.Exec(ctx, `UPDATE birth_events SET person_id = $2 WHERE id = $1`, eventID, personID)
	if err != nil {
		return fmt.Errorf("failed to link birth event %d: %w", eventID, err)
	}
	return nil
}

func (s *Store) LinkDeathEvent(ctx context.Context, eventID, personID int64) error {
	_, err := s.conn.Exec(ctx, `UPDATE death_events SET person_id = $2 WHERE id = $1`, eventID, personID)
	if err != nil {
		return fmt.Errorf("failed to link death event %d: %w", eventID, err)
	}
	return nil
}

func (s *Store) ReassignEvents(ctx context.Context, fromPersonID, toPersonID int64) error {
	if _, err := s.conn.Exec(ctx, `UPDATE birth_events SET person_id = $2 WHERE person_id = $1`, fromPersonID, toPersonID); err != nil {
		return fmt.Errorf("failed to reassign birth events: %w", err)
	}
	if _, err := s.conn.Exec(ctx, `UPDATE death_events SET person_id = $2 WHERE person_id = $1`, fromPersonID, toPersonID); err != nil {
		return fmt.Errorf("failed to reassign death events: %w", err)
	}
	return nil
}
