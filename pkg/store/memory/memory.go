// Package memory provides an in-process store.Storage implementation. It
// backs tests and short-lived resolution sessions where no database is
// available; each Store instance is an independent person population.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/store"
)

// Store keeps all records in maps guarded by one mutex. Transactions are
// serialized: Transact holds the write lock for the whole unit of work and
// restores a snapshot when the unit fails.
type Store struct {
	mu sync.RWMutex
	t  tables
}

type tables struct {
	seq int64

	persons       map[int64]*common.Person
	relationships map[int64]*common.Relationship
	marriages     map[int64]*common.Marriage

	birthEvents    map[int64]*common.BirthEvent
	deathEvents    map[int64]*common.DeathEvent
	marriageEvents map[int64]*common.MarriageEvent
	censusEntries  map[int64]*common.CensusEntry
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		t: tables{
			persons:        make(map[int64]*common.Person),
			relationships:  make(map[int64]*common.Relationship),
			marriages:      make(map[int64]*common.Marriage),
			birthEvents:    make(map[int64]*common.BirthEvent),
			deathEvents:    make(map[int64]*common.DeathEvent),
			marriageEvents: make(map[int64]*common.MarriageEvent),
			censusEntries:  make(map[int64]*common.CensusEntry),
		},
	}
}

var _ store.Storage = (*Store)(nil)

func (t *tables) nextID() int64 {
	t.seq++
	return t.seq
}

func (t *tables) snapshot() tables {
	cp := tables{
		seq:            t.seq,
		persons:        make(map[int64]*common.Person, len(t.persons)),
		relationships:  make(map[int64]*common.Relationship, len(t.relationships)),
		marriages:      make(map[int64]*common.Marriage, len(t.marriages)),
		birthEvents:    make(map[int64]*common.BirthEvent, len(t.birthEvents)),
		deathEvents:    make(map[int64]*common.DeathEvent, len(t.deathEvents)),
		marriageEvents: make(map[int64]*common.MarriageEvent, len(t.marriageEvents)),
		censusEntries:  make(map[int64]*common.CensusEntry, len(t.censusEntries)),
	}
	for id, p := range t.persons {
		v := *p
		cp.persons[id] = &v
	}
	for id, r := range t.relationships {
		v := *r
		cp.relationships[id] = &v
	}
	for id, m := range t.marriages {
		v := *m
		cp.marriages[id] = &v
	}
	for id, e := range t.birthEvents {
		v := *e
		cp.birthEvents[id] = &v
	}
	for id, e := range t.deathEvents {
		v := *e
		cp.deathEvents[id] = &v
	}
	for id, e := range t.marriageEvents {
		v := *e
		cp.marriageEvents[id] = &v
	}
	for id, e := range t.censusEntries {
		v := *e
		cp.censusEntries[id] = &v
	}
	return cp
}

// Transact runs fn under the store's write lock. When fn returns an error,
// every change it made is rolled back.
func (s *Store) Transact(ctx context.Context, fn func(store.Storage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.t.snapshot()
	if err := fn(&txStore{t: &s.t}); err != nil {
		s.t = backup
		return err
	}
	return nil
}

// txStore exposes the same tables without locking; it only ever runs inside
// Transact, which already holds the write lock.
type txStore struct {
	t *tables
}

var _ store.Storage = (*txStore)(nil)

// Transact inside a transaction reuses the surrounding one.
func (s *txStore) Transact(ctx context.Context, fn func(store.Storage) error) error {
	return fn(s)
}

func (s *Store) CreatePerson(ctx context.Context, person common.Person) (*common.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createPerson(person)
}

func (s *txStore) CreatePerson(ctx context.Context, person common.Person) (*common.Person, error) {
	return s.t.createPerson(person)
}

func (t *tables) createPerson(person common.Person) (*common.Person, error) {
	person.ID = t.nextID()
	if person.Confidence == 0 {
		person.Confidence = 1.0
	}
	t.persons[person.ID] = &person
	cp := person
	return &cp, nil
}

func (s *Store) UpdatePerson(ctx context.Context, person *common.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.updatePerson(person)
}

func (s *txStore) UpdatePerson(ctx context.Context, person *common.Person) error {
	return s.t.updatePerson(person)
}

func (t *tables) updatePerson(person *common.Person) error {
	if _, ok := t.persons[person.ID]; !ok {
		return nil
	}
	cp := *person
	t.persons[person.ID] = &cp
	return nil
}

func (s *Store) GetPerson(ctx context.Context, id int64) (*common.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.getPerson(id)
}

func (s *txStore) GetPerson(ctx context.Context, id int64) (*common.Person, error) {
	return s.t.getPerson(id)
}

func (t *tables) getPerson(id int64) (*common.Person, error) {
	p, ok := t.persons[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) FindPersons(ctx context.Context, firstName, lastName string) ([]*common.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.findPersons(firstName, lastName)
}

func (s *txStore) FindPersons(ctx context.Context, firstName, lastName string) ([]*common.Person, error) {
	return s.t.findPersons(firstName, lastName)
}

func (t *tables) findPersons(firstName, lastName string) ([]*common.Person, error) {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)
	out := make([]*common.Person, 0)
	for _, p := range t.persons {
		if first != "" && !strings.Contains(strings.ToLower(p.FirstName), first) {
			continue
		}
		if last != "" && !strings.Contains(strings.ToLower(p.LastName), last) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sortByID(out, func(p *common.Person) int64 { return p.ID })
	return out, nil
}

func (s *Store) AllPersons(ctx context.Context) ([]*common.Person, error) {
	return s.FindPersons(ctx, "", "")
}

func (s *txStore) AllPersons(ctx context.Context) ([]*common.Person, error) {
	return s.t.findPersons("", "")
}

func (s *Store) DeletePerson(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.deletePerson(id)
}

func (s *txStore) DeletePerson(ctx context.Context, id int64) error {
	return s.t.deletePerson(id)
}

// deletePerson mirrors the ON DELETE behavior of the Postgres schema:
// relationships and marriages cascade, event back-references null out.
func (t *tables) deletePerson(id int64) error {
	delete(t.persons, id)
	for relID, rel := range t.relationships {
		if rel.ParentID == id || rel.ChildID == id {
			delete(t.relationships, relID)
		}
	}
	for mID, m := range t.marriages {
		if m.Person1ID == id || m.Person2ID == id {
			delete(t.marriages, mID)
		}
	}
	for _, e := range t.birthEvents {
		if e.PersonID != nil && *e.PersonID == id {
			e.PersonID = nil
		}
	}
	for _, e := range t.deathEvents {
		if e.PersonID != nil && *e.PersonID == id {
			e.PersonID = nil
		}
	}
	for _, e := range t.censusEntries {
		if e.PersonID != nil && *e.PersonID == id {
			e.PersonID = nil
		}
	}
	return nil
}

func (s *Store) CreateRelationship(ctx context.Context, parentID, childID int64, isFather bool, confidence float64) (*common.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createRelationship(parentID, childID, isFather, confidence)
}

func (s *txStore) CreateRelationship(ctx context.Context, parentID, childID int64, isFather bool, confidence float64) (*common.Relationship, error) {
	return s.t.createRelationship(parentID, childID, isFather, confidence)
}

func (t *tables) createRelationship(parentID, childID int64, isFather bool, confidence float64) (*common.Relationship, error) {
	rel := &common.Relationship{
		ID:         t.nextID(),
		ParentID:   parentID,
		ChildID:    childID,
		IsFather:   isFather,
		Confidence: confidence,
	}
	t.relationships[rel.ID] = rel
	cp := *rel
	return &cp, nil
}

func (s *Store) FindRelationship(ctx context.Context, parentID, childID int64) (*common.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.findRelationship(parentID, childID)
}

func (s *txStore) FindRelationship(ctx context.Context, parentID, childID int64) (*common.Relationship, error) {
	return s.t.findRelationship(parentID, childID)
}

func (t *tables) findRelationship(parentID, childID int64) (*common.Relationship, error) {
	for _, rel := range t.relationships {
		if rel.ParentID == parentID && rel.ChildID == childID {
			cp := *rel
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) ParentsOf(ctx context.Context, childID int64) ([]*common.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.relationshipsWhere(func(r *common.Relationship) bool { return r.ChildID == childID })
}

func (s *txStore) ParentsOf(ctx context.Context, childID int64) ([]*common.Relationship, error) {
	return s.t.relationshipsWhere(func(r *common.Relationship) bool { return r.ChildID == childID })
}

func (s *Store) ChildrenOf(ctx context.Context, parentID int64) ([]*common.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.relationshipsWhere(func(r *common.Relationship) bool { return r.ParentID == parentID })
}

func (s *txStore) ChildrenOf(ctx context.Context, parentID int64) ([]*common.Relationship, error) {
	return s.t.relationshipsWhere(func(r *common.Relationship) bool { return r.ParentID == parentID })
}

func (s *Store) AllRelationships(ctx context.Context) ([]*common.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.relationshipsWhere(func(*common.Relationship) bool { return true })
}

func (s *txStore) AllRelationships(ctx context.Context) ([]*common.Relationship, error) {
	return s.t.relationshipsWhere(func(*common.Relationship) bool { return true })
}

func (t *tables) relationshipsWhere(keep func(*common.Relationship) bool) ([]*common.Relationship, error) {
	out := make([]*common.Relationship, 0)
	for _, rel := range t.relationships {
		if keep(rel) {
			cp := *rel
			out = append(out, &cp)
		}
	}
	sortByID(out, func(r *common.Relationship) int64 { return r.ID })
	return out, nil
}

func (s *Store) DeleteRelationship(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.t.relationships, id)
	return nil
}

func (s *txStore) DeleteRelationship(ctx context.Context, id int64) error {
	delete(s.t.relationships, id)
	return nil
}

func (s *Store) CreateMarriage(ctx context.Context, marriage common.Marriage) (*common.Marriage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createMarriage(marriage)
}

func (s *txStore) CreateMarriage(ctx context.Context, marriage common.Marriage) (*common.Marriage, error) {
	return s.t.createMarriage(marriage)
}

func (t *tables) createMarriage(marriage common.Marriage) (*common.Marriage, error) {
	marriage.ID = t.nextID()
	if marriage.Confidence == 0 {
		marriage.Confidence = 1.0
	}
	t.marriages[marriage.ID] = &marriage
	cp := marriage
	return &cp, nil
}

func (s *Store) FindMarriage(ctx context.Context, personA, personB int64) (*common.Marriage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.findMarriage(personA, personB)
}

func (s *txStore) FindMarriage(ctx context.Context, personA, personB int64) (*common.Marriage, error) {
	return s.t.findMarriage(personA, personB)
}

func (t *tables) findMarriage(personA, personB int64) (*common.Marriage, error) {
	for _, m := range t.marriages {
		if (m.Person1ID == personA && m.Person2ID == personB) ||
			(m.Person1ID == personB && m.Person2ID == personA) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) MarriagesOf(ctx context.Context, personID int64) ([]*common.Marriage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.marriagesWhere(func(m *common.Marriage) bool {
		return m.Person1ID == personID || m.Person2ID == personID
	})
}

func (s *txStore) MarriagesOf(ctx context.Context, personID int64) ([]*common.Marriage, error) {
	return s.t.marriagesWhere(func(m *common.Marriage) bool {
		return m.Person1ID == personID || m.Person2ID == personID
	})
}

func (s *Store) AllMarriages(ctx context.Context) ([]*common.Marriage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.marriagesWhere(func(*common.Marriage) bool { return true })
}

func (s *txStore) AllMarriages(ctx context.Context) ([]*common.Marriage, error) {
	return s.t.marriagesWhere(func(*common.Marriage) bool { return true })
}

func (t *tables) marriagesWhere(keep func(*common.Marriage) bool) ([]*common.Marriage, error) {
	out := make([]*common.Marriage, 0)
	for _, m := range t.marriages {
		if keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sortByID(out, func(m *common.Marriage) int64 { return m.ID })
	return out, nil
}

func (s *Store) DeleteMarriage(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.t.marriages, id)
	return nil
}

func (s *txStore) DeleteMarriage(ctx context.Context, id int64) error {
	delete(s.t.marriages, id)
	return nil
}

func (s *Store) CreateBirthEvent(ctx context.Context, event common.BirthEvent) (*common.BirthEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createBirthEvent(event)
}

func (s *txStore) CreateBirthEvent(ctx context.Context, event common.BirthEvent) (*common.BirthEvent, error) {
	return s.t.createBirthEvent(event)
}

func (t *tables) createBirthEvent(event common.BirthEvent) (*common.BirthEvent, error) {
	event.ID = t.nextID()
	t.birthEvents[event.ID] = &event
	cp := event
	return &cp, nil
}

func (s *Store) CreateDeathEvent(ctx context.Context, event common.DeathEvent) (*common.DeathEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createDeathEvent(event)
}

func (s *txStore) CreateDeathEvent(ctx context.Context, event common.DeathEvent) (*common.DeathEvent, error) {
	return s.t.createDeathEvent(event)
}

func (t *tables) createDeathEvent(event common.DeathEvent) (*common.DeathEvent, error) {
	event.ID = t.nextID()
	t.deathEvents[event.ID] = &event
	cp := event
	return &cp, nil
}

func (s *Store) CreateMarriageEvent(ctx context.Context, event common.MarriageEvent) (*common.MarriageEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createMarriageEvent(event)
}

func (s *txStore) CreateMarriageEvent(ctx context.Context, event common.MarriageEvent) (*common.MarriageEvent, error) {
	return s.t.createMarriageEvent(event)
}

func (t *tables) createMarriageEvent(event common.MarriageEvent) (*common.MarriageEvent, error) {
	event.ID = t.nextID()
	t.marriageEvents[event.ID] = &event
	cp := event
	return &cp, nil
}

func (s *Store) CreateCensusEntry(ctx context.Context, entry common.CensusEntry) (*common.CensusEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.createCensusEntry(entry)
}

func (s *txStore) CreateCensusEntry(ctx context.Context, entry common.CensusEntry) (*common.CensusEntry, error) {
	return s.t.createCensusEntry(entry)
}

func (t *tables) createCensusEntry(entry common.CensusEntry) (*common.CensusEntry, error) {
	entry.ID = t.nextID()
	t.censusEntries[entry.ID] = &entry
	cp := entry
	return &cp, nil
}

func (s *Store) LinkBirthEvent(ctx context.Context, eventID, personID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.linkBirthEvent(eventID, personID)
}

func (s *txStore) LinkBirthEvent(ctx context.Context, eventID, personID int64) error {
	return s.t.linkBirthEvent(eventID, personID)
}

func (t *tables) linkBirthEvent(eventID, personID int64) error {
	if e, ok := t.birthEvents[eventID]; ok {
		pid := personID
		e.PersonID = &pid
	}
	return nil
}

func (s *Store) LinkDeathEvent(ctx context.Context, eventID, personID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.linkDeathEvent(eventID, personID)
}

func (s *txStore) LinkDeathEvent(ctx context.Context, eventID, personID int64) error {
	return s.t.linkDeathEvent(eventID, personID)
}

func (t *tables) linkDeathEvent(eventID, personID int64) error {
	if e, ok := t.deathEvents[eventID]; ok {
		pid := personID
		e.PersonID = &pid
	}
	return nil
}

func (s *Store) ReassignEvents(ctx context.Context, fromPersonID, toPersonID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.reassignEvents(fromPersonID, toPersonID)
}

func (s *txStore) ReassignEvents(ctx context.Context, fromPersonID, toPersonID int64) error {
	return s.t.reassignEvents(fromPersonID, toPersonID)
}

func (t *tables) reassignEvents(fromPersonID, toPersonID int64) error {
	for _, e := range t.birthEvents {
		if e.PersonID != nil && *e.PersonID == fromPersonID {
			pid := toPersonID
			e.PersonID = &pid
		}
	}
	for _, e := range t.deathEvents {
		if e.PersonID != nil && *e.PersonID == fromPersonID {
			pid := toPersonID
			e.PersonID = &pid
		}
	}
	return nil
}
