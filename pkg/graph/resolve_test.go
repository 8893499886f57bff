package graph

import (
	"context"
	"testing"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

func TestFindMatchesOrdersByScore(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	exact, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})
	diminutive, _ := st.CreatePerson(ctx, common.Person{FirstName: "Janek", LastName: "Kowalski"})
	if _, err := st.CreatePerson(ctx, common.Person{FirstName: "Piotr", LastName: "Nowak"}); err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}

	matches, err := client.FindMatches(ctx, "Jan", "Kowalski", 0.8)
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Person.ID != exact.ID {
		t.Errorf("best match = person %d, want exact match %d", matches[0].Person.ID, exact.ID)
	}
	if matches[0].Similarity != 1.0 {
		t.Errorf("best similarity = %v, want 1.0", matches[0].Similarity)
	}
	if matches[1].Person.ID != diminutive.ID {
		t.Errorf("second match = person %d, want diminutive %d", matches[1].Person.ID, diminutive.ID)
	}
	if matches[1].Similarity != 0.95 {
		t.Errorf("diminutive similarity = %v, want 0.95", matches[1].Similarity)
	}
}

func TestFindMatchesTieBreaksByLowerID(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	first, _ := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"})
	if _, err := st.CreatePerson(ctx, common.Person{FirstName: "Jan", LastName: "Kowalski"}); err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}

	matches, err := client.FindMatches(ctx, "Jan", "Kowalski", 0.8)
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Person.ID != first.ID {
		t.Errorf("tie broke to person %d, want the earlier record %d", matches[0].Person.ID, first.ID)
	}
}

func TestFindMatchesZeroThresholdUsesDefault(t *testing.T) {
	client, st := newTestClient(t)
	ctx := context.Background()

	if _, err := st.CreatePerson(ctx, common.Person{FirstName: "Piotr", LastName: "Nowak"}); err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}

	matches, err := client.FindMatches(ctx, "Jan", "Kowalski", 0)
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0 at the default threshold", len(matches))
	}
}
