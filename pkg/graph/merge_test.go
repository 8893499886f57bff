package graph

import (
	"context"
	"testing"
	"time"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestMergePersonsBackfillsAndRepoints(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	keep, _ := st.CreatePerson(ctx, common.Person{
		FirstName: "Jan",
		LastName:  "Kowalski",
		BirthDate: date(1850, 3, 1),
	})
	drop, _ := st.CreatePerson(ctx, common.Person{
		FirstName:  "Jan",
		LastName:   "Kowalski",
		DeathDate:  date(1902, 5, 10),
		DeathPlace: "Łuck",
	})

	father, _ := st.CreatePerson(ctx, common.Person{FirstName: "Adam", LastName: "Kowalski"})
	spouse, _ := st.CreatePerson(ctx, common.Person{FirstName: "Marianna", LastName: "Kowalska"})
	son, _ := st.CreatePerson(ctx, common.Person{FirstName: "Piotr", LastName: "Kowalski"})

	st.CreateRelationship(ctx, father.ID, drop.ID, true, 1.0)
	st.CreateRelationship(ctx, drop.ID, son.ID, true, 1.0)
	st.CreateMarriage(ctx, common.Marriage{Person1ID: drop.ID, Person2ID: spouse.ID, MarriagePlace: "Łuck"})

	event, _ := st.CreateDeathEvent(ctx, common.DeathEvent{FirstName: "Jan", LastName: "Kowalski", Year: 1902})
	st.LinkDeathEvent(ctx, event.ID, drop.ID)

	merged, err := client.MergePersons(ctx, keep.ID, drop.ID)
	if err != nil {
		t.Fatalf("MergePersons: %v", err)
	}
	if merged == nil {
		t.Fatal("MergePersons returned nil")
	}

	gone, _ := st.GetPerson(ctx, drop.ID)
	if gone != nil {
		t.Errorf("merged person still exists: %+v", gone)
	}

	kept, _ := st.GetPerson(ctx, keep.ID)
	if kept.DeathDate == nil || kept.DeathDate.Year() != 1902 {
		t.Errorf("DeathDate = %v, want backfilled 1902", kept.DeathDate)
	}
	if kept.DeathPlace != "Łuck" {
		t.Errorf("DeathPlace = %q, want backfilled Łuck", kept.DeathPlace)
	}
	if kept.BirthDate == nil || kept.BirthDate.Year() != 1850 {
		t.Errorf("BirthDate = %v, want preserved 1850", kept.BirthDate)
	}

	if rel, _ := st.FindRelationship(ctx, father.ID, keep.ID); rel == nil {
		t.Errorf("parent relationship was not repointed to the kept person")
	}
	if rel, _ := st.FindRelationship(ctx, keep.ID, son.ID); rel == nil {
		t.Errorf("child relationship was not repointed to the kept person")
	}
	if m, _ := st.FindMarriage(ctx, keep.ID, spouse.ID); m == nil {
		t.Errorf("marriage was not repointed to the kept person")
	}

	rels, _ := st.AllRelationships(ctx)
	if len(rels) != 2 {
		t.Errorf("got %d relationships, want 2 (no duplicates, no leftovers)", len(rels))
	}
	marriages, _ := st.AllMarriages(ctx)
	if len(marriages) != 1 {
		t.Errorf("got %d marriages, want 1", len(marriages))
	}
}

func TestMergePersonsSkipsExistingEdges(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	keep, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})
	drop, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})
	father, _ := st.CreatePerson(ctx, common.Person{FirstName: "Adam", LastName: "Kowalski"})

	// Both duplicates already carry the same father edge.
	st.CreateRelationship(ctx, father.ID, keep.ID, true, 1.0)
	st.CreateRelationship(ctx, father.ID, drop.ID, true, 1.0)

	if _, err := client.MergePersons(ctx, keep.ID, drop.ID); err != nil {
		t.Fatalf("MergePersons: %v", err)
	}

	rels, _ := st.AllRelationships(ctx)
	if len(rels) != 1 {
		t.Fatalf("got %d relationships, want 1", len(rels))
	}
	if rels[0].ParentID != father.ID || rels[0].ChildID != keep.ID {
		t.Errorf("surviving relationship = %+v, want %d -> %d", rels[0], father.ID, keep.ID)
	}
}

func TestMergePersonsUnknownID(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	keep, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})

	merged, err := client.MergePersons(ctx, keep.ID, 999)
	if err != nil {
		t.Fatalf("MergePersons: %v", err)
	}
	if merged != nil {
		t.Fatalf("got %+v, want nil for unknown merge id", merged)
	}

	// Nothing changed.
	persons, _ := st.AllPersons(ctx)
	if len(persons) != 1 {
		t.Fatalf("got %d persons, want 1", len(persons))
	}
}

func TestMergePersonsReassignsEvents(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	keep, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})
	drop, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})

	birth, _ := st.CreateBirthEvent(ctx, common.BirthEvent{FirstName: "Jan", LastName: "Kowalski", Year: 1850})
	st.LinkBirthEvent(ctx, birth.ID, drop.ID)

	if _, err := client.MergePersons(ctx, keep.ID, drop.ID); err != nil {
		t.Fatalf("MergePersons: %v", err)
	}

	// Re-importing the same birth event must not resurrect the duplicate:
	// the stored event now points at the kept person.
	stats, err := client.Import(ctx, common.EventBatch{
		Births: []common.BirthEvent{{FirstName: "Jan", LastName: "Kowalski", Year: 1850, Location: ""}},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats.PersonsCreated != 0 {
		t.Errorf("PersonsCreated = %d, want 0", stats.PersonsCreated)
	}
}
