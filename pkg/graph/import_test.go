package graph

import (
	"context"
	"testing"

	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/store/memory"
)

func newTestClient(t *testing.T) (*GraphClient, *memory.Store) {
	t.Helper()
	st := memory.NewStore()
	client, err := NewGraphClient(NewGraphClientParams{Store: st})
	if err != nil {
		t.Fatalf("NewGraphClient: %v", err)
	}
	return client, st
}

func TestImportBirthWithFather(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	stats, err := client.Import(ctx, common.EventBatch{
		Births: []common.BirthEvent{
			{FirstName: "Jan", LastName: "Kowalski", Year: 1850, FatherFirstName: "Adam"},
		},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if stats.BirthsImported != 1 {
		t.Errorf("BirthsImported = %d, want 1", stats.BirthsImported)
	}
	if stats.PersonsCreated != 2 {
		t.Errorf("PersonsCreated = %d, want 2", stats.PersonsCreated)
	}
	if stats.RelationshipsCreated != 1 {
		t.Errorf("RelationshipsCreated = %d, want 1", stats.RelationshipsCreated)
	}

	rels, err := st.AllRelationships(ctx)
	if err != nil {
		t.Fatalf("AllRelationships: %v", err)
	}
	if len(rels) != 1 {
		t.Fatalf("got %d relationships, want 1", len(rels))
	}
	if !rels[0].IsFather {
		t.Errorf("relationship IsFather = false, want true")
	}

	// The father inherits the child's surname.
	father, err := st.GetPerson(ctx, rels[0].ParentID)
	if err != nil {
		t.Fatalf("GetPerson: %v", err)
	}
	if father.FirstName != "Adam" || father.LastName != "Kowalski" {
		t.Errorf("father = %s %s, want Adam Kowalski", father.FirstName, father.LastName)
	}
}

func TestImportBirthResolvesSamePersonWithinTolerance(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	batch := func(day int) common.EventBatch {
		return common.EventBatch{Births: []common.BirthEvent{
			{FirstName: "Jan", LastName: "Kowalski", Year: 1850, Month: 3, Day: day},
		}}
	}

	if _, err := client.Import(ctx, batch(1)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	stats, err := client.Import(ctx, batch(11))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if stats.PersonsCreated != 0 {
		t.Errorf("PersonsCreated = %d, want 0 for a 10-day difference", stats.PersonsCreated)
	}
	persons, _ := st.AllPersons(ctx)
	if len(persons) != 1 {
		t.Fatalf("got %d persons, want 1", len(persons))
	}
}

func TestImportBirthCreatesDistinctPersonBeyondTolerance(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	first := common.EventBatch{Births: []common.BirthEvent{
		{FirstName: "Jan", LastName: "Kowalski", Year: 1850, Month: 3, Day: 1},
	}}
	second := common.EventBatch{Births: []common.BirthEvent{
		{FirstName: "Jan", LastName: "Kowalski", Year: 1850, Month: 4, Day: 10},
	}}

	if _, err := client.Import(ctx, first); err != nil {
		t.Fatalf("first import: %v", err)
	}
	stats, err := client.Import(ctx, second)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if stats.PersonsCreated != 1 {
		t.Errorf("PersonsCreated = %d, want 1 for a 40-day difference", stats.PersonsCreated)
	}
	persons, _ := st.AllPersons(ctx)
	if len(persons) != 2 {
		t.Fatalf("got %d persons, want 2", len(persons))
	}
}

func TestImportKeepsFirstFatherEdge(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	batch := func(day int, father string) common.EventBatch {
		return common.EventBatch{Births: []common.BirthEvent{
			{FirstName: "Jan", LastName: "Kowalski", Year: 1850, Month: 3, Day: day, FatherFirstName: father},
		}}
	}

	if _, err := client.Import(ctx, batch(1, "Adam")); err != nil {
		t.Fatalf("first import: %v", err)
	}
	// Ten days apart, so the child resolves to the same person; the second
	// record claims a different father.
	stats, err := client.Import(ctx, batch(11, "Tomasz"))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if stats.RelationshipsCreated != 0 {
		t.Errorf("RelationshipsCreated = %d, want 0 for a conflicting father claim", stats.RelationshipsCreated)
	}

	rels, _ := st.AllRelationships(ctx)
	var fatherEdges []*common.Relationship
	for _, rel := range rels {
		if rel.IsFather {
			fatherEdges = append(fatherEdges, rel)
		}
	}
	if len(fatherEdges) != 1 {
		t.Fatalf("got %d father edges, want 1", len(fatherEdges))
	}

	father, _ := st.GetPerson(ctx, fatherEdges[0].ParentID)
	if father.FirstName != "Adam" {
		t.Errorf("surviving father = %s, want the first-recorded Adam", father.FirstName)
	}
}

func TestImportMarriageIsIdempotent(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	event := common.MarriageEvent{
		Year:           1870,
		Parish:         "Łuck",
		GroomFirstName: "Jan",
		GroomLastName:  "Kowalski",
		GroomAge:       25,
		BrideFirstName: "Marianna",
		BrideLastName:  "Nowak",
		BrideAge:       22,
	}

	if _, err := client.Import(ctx, common.EventBatch{Marriages: []common.MarriageEvent{event}}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	stats, err := client.Import(ctx, common.EventBatch{Marriages: []common.MarriageEvent{event}})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if stats.PersonsCreated != 0 {
		t.Errorf("PersonsCreated = %d, want 0 on re-import", stats.PersonsCreated)
	}
	if stats.MarriagesCreated != 0 {
		t.Errorf("MarriagesCreated = %d, want 0 on re-import", stats.MarriagesCreated)
	}

	marriages, _ := st.AllMarriages(ctx)
	if len(marriages) != 1 {
		t.Fatalf("got %d marriages, want 1", len(marriages))
	}
}

func TestImportDeathLinksFamilyFromNotes(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	stats, err := client.Import(ctx, common.EventBatch{
		Deaths: []common.DeathEvent{
			{
				FirstName:              "Adam",
				LastName:               "Kowalski",
				Year:                   1880,
				Age:                    60,
				Location:               "Równe",
				AboutDeceasedAndFamily: "syn Józefa, dzieci: Jan, Maria",
			},
		},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if stats.DeathsImported != 1 {
		t.Errorf("DeathsImported = %d, want 1", stats.DeathsImported)
	}
	// Deceased, his father, and two children.
	if stats.PersonsCreated != 4 {
		t.Errorf("PersonsCreated = %d, want 4", stats.PersonsCreated)
	}
	if stats.RelationshipsCreated != 3 {
		t.Errorf("RelationshipsCreated = %d, want 3", stats.RelationshipsCreated)
	}

	rels, _ := st.AllRelationships(ctx)
	noteConfident := 0
	for _, rel := range rels {
		if rel.Confidence == confidenceNotes {
			noteConfident++
		}
	}
	if noteConfident != 3 {
		t.Errorf("got %d note-confidence relationships, want 3", noteConfident)
	}
}

func TestImportDeathEnrichesExistingPerson(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Import(ctx, common.EventBatch{
		Births: []common.BirthEvent{
			{FirstName: "Jan", LastName: "Kowalski", Year: 1850, Month: 3, Day: 1, Location: "Łuck"},
		},
	}); err != nil {
		t.Fatalf("birth import: %v", err)
	}

	stats, err := client.Import(ctx, common.EventBatch{
		Deaths: []common.DeathEvent{
			{FirstName: "Jan", LastName: "Kowalski", Year: 1902, Age: 52, Location: "Łuck"},
		},
	})
	if err != nil {
		t.Fatalf("death import: %v", err)
	}

	if stats.PersonsCreated != 0 {
		t.Errorf("PersonsCreated = %d, want 0", stats.PersonsCreated)
	}

	persons, _ := st.AllPersons(ctx)
	if len(persons) != 1 {
		t.Fatalf("got %d persons, want 1", len(persons))
	}
	p := persons[0]
	if p.DeathDate == nil || p.DeathDate.Year() != 1902 {
		t.Errorf("DeathDate = %v, want year 1902", p.DeathDate)
	}
	if p.DeathPlace != "Łuck" {
		t.Errorf("DeathPlace = %q, want Łuck", p.DeathPlace)
	}
	if p.BirthDate == nil || p.BirthDate.Year() != 1850 {
		t.Errorf("BirthDate = %v, want year 1850 preserved", p.BirthDate)
	}
}

func TestImportCensusEstimatesBirthYear(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	stats, err := client.Import(ctx, common.EventBatch{
		Census: []common.CensusEntry{
			{FullName: "Jan Kowalski", MaleAge: 30, Year: 1890, Location: "Równe"},
		},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if stats.CensusImported != 1 {
		t.Errorf("CensusImported = %d, want 1", stats.CensusImported)
	}
	if stats.PersonsCreated != 1 {
		t.Errorf("PersonsCreated = %d, want 1", stats.PersonsCreated)
	}

	persons, _ := st.AllPersons(ctx)
	if len(persons) != 1 {
		t.Fatalf("got %d persons, want 1", len(persons))
	}
	p := persons[0]
	if p.BirthDate == nil || p.BirthDate.Year() != 1860 {
		t.Errorf("BirthDate = %v, want year 1860", p.BirthDate)
	}
	if p.Confidence != confidenceCensus {
		t.Errorf("Confidence = %v, want %v", p.Confidence, confidenceCensus)
	}
}

func TestImportCensusMatchesExistingPerson(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Import(ctx, common.EventBatch{
		Births: []common.BirthEvent{
			{FirstName: "Jan", LastName: "Kowalski", Year: 1862, Location: "Równe"},
		},
	}); err != nil {
		t.Fatalf("birth import: %v", err)
	}

	stats, err := client.Import(ctx, common.EventBatch{
		Census: []common.CensusEntry{
			{FullName: "Jan Kowalski", MaleAge: 30, Year: 1890, Location: "Równe"},
		},
	})
	if err != nil {
		t.Fatalf("census import: %v", err)
	}

	if stats.PersonsCreated != 0 {
		t.Errorf("PersonsCreated = %d, want 0", stats.PersonsCreated)
	}
	persons, _ := st.AllPersons(ctx)
	if len(persons) != 1 {
		t.Fatalf("got %d persons, want 1", len(persons))
	}
}

func TestImportSkipsUnparseableRecords(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	stats, err := client.Import(ctx, common.EventBatch{
		Births: []common.BirthEvent{
			// Father has no surname and the child has none to fall back on.
			{FirstName: "Jan", Year: 1850, FatherFirstName: "Adam"},
		},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if stats.BirthsImported != 1 {
		t.Errorf("BirthsImported = %d, want 1", stats.BirthsImported)
	}
	if stats.PersonsCreated != 1 {
		t.Errorf("PersonsCreated = %d, want 1 (child only)", stats.PersonsCreated)
	}
	if stats.RelationshipsCreated != 0 {
		t.Errorf("RelationshipsCreated = %d, want 0", stats.RelationshipsCreated)
	}

	rels, _ := st.AllRelationships(ctx)
	if len(rels) != 0 {
		t.Fatalf("got %d relationships, want 0", len(rels))
	}
}
