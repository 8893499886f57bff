// Package store defines the persistence contract for persons, relationships,
// marriages, and source events. Implementations live in store/pgx
// (PostgreSQL) and store/memory (in-process, for tests and one-off
// resolution sessions).
package store

import (
	"context"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

// Storage is the persistence collaborator for the genealogy engine.
//
// "Not found" is reported as a nil result with a nil error; errors are
// reserved for storage failures. Create methods return the stored record
// with its assigned id.
type Storage interface {
	// Transact runs fn against a storage handle whose writes either all
	// persist or all roll back. Implementations must serialize Transact
	// against concurrent writers enough to keep check-then-insert
	// sequences (duplicate checks, candidate scans) atomic.
	Transact(ctx context.Context, fn func(Storage) error) error

	CreatePerson(ctx context.Context, person common.Person) (*common.Person, error)
	UpdatePerson(ctx context.Context, person *common.Person) error
	GetPerson(ctx context.Context, id int64) (*common.Person, error)
	// FindPersons returns persons whose names contain the given fragments,
	// case-insensitively. Empty fragments match everything.
	FindPersons(ctx context.Context, firstName, lastName string) ([]*common.Person, error)
	AllPersons(ctx context.Context) ([]*common.Person, error)
	DeletePerson(ctx context.Context, id int64) error

	CreateRelationship(ctx context.Context, parentID, childID int64, isFather bool, confidence float64) (*common.Relationship, error)
	FindRelationship(ctx context.Context, parentID, childID int64) (*common.Relationship, error)
	ParentsOf(ctx context.Context, childID int64) ([]*common.Relationship, error)
	ChildrenOf(ctx context.Context, parentID int64) ([]*common.Relationship, error)
	AllRelationships(ctx context.Context) ([]*common.Relationship, error)
	DeleteRelationship(ctx context.Context, id int64) error

	CreateMarriage(ctx context.Context, marriage common.Marriage) (*common.Marriage, error)
	// FindMarriage checks both orderings of the person pair.
	FindMarriage(ctx context.Context, personA, personB int64) (*common.Marriage, error)
	MarriagesOf(ctx context.Context, personID int64) ([]*common.Marriage, error)
	AllMarriages(ctx context.Context) ([]*common.Marriage, error)
	DeleteMarriage(ctx context.Context, id int64) error

	CreateBirthEvent(ctx context.Context, event common.BirthEvent) (*common.BirthEvent, error)
	CreateDeathEvent(ctx context.Context, event common.DeathEvent) (*common.DeathEvent, error)
	CreateMarriageEvent(ctx context.Context, event common.MarriageEvent) (*common.MarriageEvent, error)
	CreateCensusEntry(ctx context.Context, entry common.CensusEntry) (*common.CensusEntry, error)
	LinkBirthEvent(ctx context.Context, eventID, personID int64) error
	LinkDeathEvent(ctx context.Context, eventID, personID int64) error
	// ReassignEvents repoints every birth and death event referencing
	// fromPersonID to toPersonID. Used by person merges.
	ReassignEvents(ctx context.Context, fromPersonID, toPersonID int64) error
}
