package graph

import (
	"context"
	"sort"
	"time"

	"github.com/wolyn-genealogy/explorer/internal/util"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/names"
	"github.com/wolyn-genealogy/explorer/pkg/store"
)

// Up to 30 days between a recorded birth and a candidate's known birth date
// still counts as the same person (baptism vs. birth date).
const birthDateToleranceDays = 30

// Ages in registers are approximate; a birth year implied by age may be off
// by a few years and still describe the same person.
const impliedYearTolerance = 5

// FindMatches scores every known person against the given name pair and
// returns those at or above the threshold, best match first. A threshold of
// zero falls back to the client's configured one.
func (g *GraphClient) FindMatches(ctx context.Context, firstName, lastName string, threshold float64) ([]common.Match, error) {
	if threshold <= 0 {
		threshold = g.matchThreshold
	}
	return findMatches(ctx, g.store, firstName, lastName, threshold)
}

// findMatches is the candidate scan behind every resolution path. The
// storage handle is the matching universe; passing the transaction handle
// keeps check-then-create sequences atomic.
func findMatches(ctx context.Context, s store.Storage, firstName, lastName string, threshold float64) ([]common.Match, error) {
	persons, err := s.AllPersons(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]common.Match, 0)
	for _, p := range persons {
		firstSim := names.Similarity(firstName, p.FirstName)
		lastSim := names.Similarity(lastName, p.LastName)
		avg := (firstSim + lastSim) / 2

		if avg >= threshold {
			matches = append(matches, common.Match{Person: p, Similarity: avg})
		}
	}

	// Ties go to the earlier record so repeated imports stay deterministic.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Person.ID < matches[j].Person.ID
	})

	return matches, nil
}

// resolveFromBirth finds or creates the person a birth event describes and
// links the event to it. Reports whether a new person was created.
func (g *GraphClient) resolveFromBirth(ctx context.Context, s store.Storage, event *common.BirthEvent) (*common.Person, bool, error) {
	birthDate := util.DateFromParts(event.Year, event.Month, event.Day)

	matches, err := findMatches(ctx, s, event.FirstName, event.LastName, g.matchThreshold)
	if err != nil {
		return nil, false, err
	}

	for _, match := range matches {
		person := match.Person

		if person.BirthDate != nil && birthDate != nil {
			diff := person.BirthDate.Sub(*birthDate)
			if diff < 0 {
				diff = -diff
			}
			if diff.Hours() <= birthDateToleranceDays*24 {
				if person.BirthPlace == "" && event.Location != "" {
					person.BirthPlace = event.Location
					if err := s.UpdatePerson(ctx, person); err != nil {
						return nil, false, err
					}
				}
				if err := linkBirth(ctx, s, event, person.ID); err != nil {
					return nil, false, err
				}
				return person, false, nil
			}
		} else if person.BirthDate == nil && person.BirthPlace == event.Location {
			person.BirthDate = birthDate
			if err := s.UpdatePerson(ctx, person); err != nil {
				return nil, false, err
			}
			if err := linkBirth(ctx, s, event, person.ID); err != nil {
				return nil, false, err
			}
			return person, false, nil
		}
	}

	person, err := s.CreatePerson(ctx, common.Person{
		FirstName:  event.FirstName,
		LastName:   event.LastName,
		BirthDate:  birthDate,
		BirthPlace: event.Location,
		Confidence: confidenceRegister,
	})
	if err != nil {
		return nil, false, err
	}
	if err := linkBirth(ctx, s, event, person.ID); err != nil {
		return nil, false, err
	}
	return person, true, nil
}

func linkBirth(ctx context.Context, s store.Storage, event *common.BirthEvent, personID int64) error {
	if err := s.LinkBirthEvent(ctx, event.ID, personID); err != nil {
		return err
	}
	event.PersonID = &personID
	return nil
}

// resolveFromDeath finds or creates the person a death event describes,
// enriches it with the death date and place, and links the event.
func (g *GraphClient) resolveFromDeath(ctx context.Context, s store.Storage, event *common.DeathEvent) (*common.Person, bool, error) {
	deathDate := util.DateFromParts(event.Year, event.Month, event.Day)

	var impliedBirthYear int
	if event.Age > 0 && event.Year > 0 {
		impliedBirthYear = event.Year - event.Age
	}

	matches, err := findMatches(ctx, s, event.FirstName, event.LastName, g.matchThreshold)
	if err != nil {
		return nil, false, err
	}

	for _, match := range matches {
		person := match.Person

		if person.BirthDate != nil && impliedBirthYear > 0 {
			yearDiff := person.BirthDate.Year() - impliedBirthYear
			if yearDiff < 0 {
				yearDiff = -yearDiff
			}
			if yearDiff <= impliedYearTolerance {
				person.DeathDate = deathDate
				person.DeathPlace = event.Location
				if err := s.UpdatePerson(ctx, person); err != nil {
					return nil, false, err
				}
				if err := linkDeath(ctx, s, event, person.ID); err != nil {
					return nil, false, err
				}
				return person, false, nil
			}
		} else if person.DeathDate == nil {
			person.DeathDate = deathDate
			person.DeathPlace = event.Location
			if impliedBirthYear > 0 && person.BirthDate == nil {
				person.BirthDate = util.YearOnlyDate(impliedBirthYear)
			}
			if err := s.UpdatePerson(ctx, person); err != nil {
				return nil, false, err
			}
			if err := linkDeath(ctx, s, event, person.ID); err != nil {
				return nil, false, err
			}
			return person, false, nil
		}
	}

	var birthDate *time.Time
	if impliedBirthYear > 0 {
		birthDate = util.YearOnlyDate(impliedBirthYear)
	}

	person, err := s.CreatePerson(ctx, common.Person{
		FirstName:  event.FirstName,
		LastName:   event.LastName,
		BirthDate:  birthDate,
		DeathDate:  deathDate,
		DeathPlace: event.Location,
		Confidence: confidenceRegister,
	})
	if err != nil {
		return nil, false, err
	}
	if err := linkDeath(ctx, s, event, person.ID); err != nil {
		return nil, false, err
	}
	return person, true, nil
}

func linkDeath(ctx context.Context, s store.Storage, event *common.DeathEvent, personID int64) error {
	if err := s.LinkDeathEvent(ctx, event.ID, personID); err != nil {
		return err
	}
	event.PersonID = &personID
	return nil
}

// resolveSpouse finds or creates the groom or bride of a marriage event.
func (g *GraphClient) resolveSpouse(ctx context.Context, s store.Storage, event *common.MarriageEvent, isGroom bool) (*common.Person, bool, error) {
	firstName := event.BrideFirstName
	lastName := event.BrideLastName
	age := event.BrideAge
	location := event.BrideLocation
	if isGroom {
		firstName = event.GroomFirstName
		lastName = event.GroomLastName
		age = event.GroomAge
		location = event.GroomLocation
	}

	var impliedBirthYear int
	if age > 0 && event.Year > 0 {
		impliedBirthYear = event.Year - age
	}

	matches, err := findMatches(ctx, s, firstName, lastName, g.matchThreshold)
	if err != nil {
		return nil, false, err
	}

	for _, match := range matches {
		person := match.Person

		if person.BirthDate != nil && impliedBirthYear > 0 {
			yearDiff := person.BirthDate.Year() - impliedBirthYear
			if yearDiff < 0 {
				yearDiff = -yearDiff
			}
			if yearDiff <= impliedYearTolerance {
				return person, false, nil
			}
		} else if person.BirthDate == nil && impliedBirthYear > 0 {
			person.BirthDate = util.YearOnlyDate(impliedBirthYear)
			if err := s.UpdatePerson(ctx, person); err != nil {
				return nil, false, err
			}
			return person, false, nil
		} else if person.BirthPlace == location {
			return person, false, nil
		}
	}

	var birthDate *time.Time
	if impliedBirthYear > 0 {
		birthDate = util.YearOnlyDate(impliedBirthYear)
	}

	person, err := s.CreatePerson(ctx, common.Person{
		FirstName:  firstName,
		LastName:   lastName,
		BirthDate:  birthDate,
		BirthPlace: location,
		Confidence: confidenceRegister,
	})
	if err != nil {
		return nil, false, err
	}
	return person, true, nil
}

// resolveRelative finds or creates a person known only by name and place,
// as mentioned in a register's parent fields or extracted from notes.
// Fathers without a surname of their own inherit the child's; when no
// surname is derivable at all the person cannot be identified and nil is
// returned without error.
func (g *GraphClient) resolveRelative(ctx context.Context, s store.Storage, firstName, lastName, fallbackLastName, gender, location string, confidence float64) (*common.Person, bool, error) {
	if gender == common.Male && lastName == "" {
		lastName = fallbackLastName
	}
	if lastName == "" {
		return nil, false, nil
	}

	matches, err := findMatches(ctx, s, firstName, lastName, g.matchThreshold)
	if err != nil {
		return nil, false, err
	}

	for _, match := range matches {
		person := match.Person
		if person.BirthPlace == location || person.DeathPlace == location {
			return person, false, nil
		}
	}

	person, err := s.CreatePerson(ctx, common.Person{
		FirstName:  firstName,
		LastName:   lastName,
		BirthPlace: location,
		Confidence: confidence,
	})
	if err != nil {
		return nil, false, err
	}
	return person, true, nil
}

// resolveFromCensus finds or creates the person a census row describes.
// Census persons carry lowered confidence; the birth year is estimated
// from the gendered age column.
func (g *GraphClient) resolveFromCensus(ctx context.Context, s store.Storage, entry *common.CensusEntry) (*common.Person, bool, error) {
	parsed := parseCensusName(entry.FullName)
	if parsed.FirstName == "" {
		return nil, false, nil
	}

	var age int
	switch parsed.Gender {
	case common.Male:
		age = entry.MaleAge
	case common.Female:
		age = entry.FemaleAge
	default:
		if entry.MaleAge > 0 {
			age = entry.MaleAge
		} else {
			age = entry.FemaleAge
		}
	}

	var estimatedBirthYear int
	if age > 0 && entry.Year > 0 {
		estimatedBirthYear = entry.Year - age
	}

	matches, err := findMatches(ctx, s, parsed.FirstName, parsed.LastName, g.matchThreshold)
	if err != nil {
		return nil, false, err
	}

	for _, match := range matches {
		person := match.Person

		if person.BirthDate != nil && estimatedBirthYear > 0 {
			yearDiff := person.BirthDate.Year() - estimatedBirthYear
			if yearDiff < 0 {
				yearDiff = -yearDiff
			}
			if yearDiff <= impliedYearTolerance {
				entry.PersonID = &person.ID
				return person, false, nil
			}
		} else if person.BirthDate == nil && estimatedBirthYear > 0 {
			person.BirthDate = util.YearOnlyDate(estimatedBirthYear)
			if err := s.UpdatePerson(ctx, person); err != nil {
				return nil, false, err
			}
			entry.PersonID = &person.ID
			return person, false, nil
		} else if person.BirthPlace == entry.Location {
			entry.PersonID = &person.ID
			return person, false, nil
		}
	}

	var birthDate *time.Time
	if estimatedBirthYear > 0 {
		birthDate = util.YearOnlyDate(estimatedBirthYear)
	}

	person, err := s.CreatePerson(ctx, common.Person{
		FirstName:  parsed.FirstName,
		LastName:   parsed.LastName,
		BirthDate:  birthDate,
		BirthPlace: entry.Location,
		Confidence: confidenceCensus,
	})
	if err != nil {
		return nil, false, err
	}
	entry.PersonID = &person.ID
	return person, true, nil
}
