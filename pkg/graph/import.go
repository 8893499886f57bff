package graph

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wolyn-genealogy/explorer/internal/util"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
	"github.com/wolyn-genealogy/explorer/pkg/names"
	"github.com/wolyn-genealogy/explorer/pkg/store"
)

// Import drives one batch of source events through resolution and linking
// and reports what it produced. A record that cannot be processed is logged
// and skipped; the batch never aborts as a whole.
//
// Births, deaths, and marriages are processed in order. Census entries are
// sharded by normalized surname so buckets can run in parallel without two
// workers racing to create the same person.
func (g *GraphClient) Import(ctx context.Context, batch common.EventBatch) (*common.ImportStats, error) {
	stats := &common.ImportStats{}

	for i := range batch.Births {
		if err := g.importBirth(ctx, &batch.Births[i], stats); err != nil {
			logger.Warn("[Import] Skipping birth record", "first_name", batch.Births[i].FirstName, "last_name", batch.Births[i].LastName, "error", err)
		}
	}

	for i := range batch.Deaths {
		if err := g.importDeath(ctx, &batch.Deaths[i], stats); err != nil {
			logger.Warn("[Import] Skipping death record", "first_name", batch.Deaths[i].FirstName, "last_name", batch.Deaths[i].LastName, "error", err)
		}
	}

	for i := range batch.Marriages {
		if err := g.importMarriage(ctx, &batch.Marriages[i], stats); err != nil {
			logger.Warn("[Import] Skipping marriage record", "groom", batch.Marriages[i].GroomLastName, "bride", batch.Marriages[i].BrideLastName, "error", err)
		}
	}

	g.importCensus(ctx, batch.Census, stats)

	logger.Info("[Import] Batch finished",
		"births", stats.BirthsImported,
		"deaths", stats.DeathsImported,
		"marriages", stats.MarriagesImported,
		"census", stats.CensusImported,
		"persons_created", stats.PersonsCreated,
	)

	return stats, nil
}

func (g *GraphClient) importBirth(ctx context.Context, event *common.BirthEvent, stats *common.ImportStats) error {
	stored, err := g.store.CreateBirthEvent(ctx, *event)
	if err != nil {
		return err
	}
	*event = *stored

	var delta common.ImportStats
	err = g.store.Transact(ctx, func(s store.Storage) error {
		person, created, err := g.resolveFromBirth(ctx, s, event)
		if err != nil {
			return err
		}
		if created {
			delta.PersonsCreated++
		}

		if event.FatherFirstName != "" {
			if err := g.linkRelative(ctx, s, relativeLink{
				FirstName:        event.FatherFirstName,
				FallbackLastName: event.LastName,
				Gender:           common.Male,
				Location:         event.Location,
				Confidence:       confidenceRegister,
				ChildID:          person.ID,
				IsFatherEdge:     true,
			}, &delta); err != nil {
				return err
			}
		}

		if event.MotherFirstName != "" {
			if err := g.linkRelative(ctx, s, relativeLink{
				FirstName:  event.MotherFirstName,
				LastName:   event.MotherMaidenName,
				Gender:     common.Female,
				Location:   event.Location,
				Confidence: confidenceRegister,
				ChildID:    person.ID,
			}, &delta); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	stats.BirthsImported++
	stats.Add(delta)
	return nil
}

func (g *GraphClient) importDeath(ctx context.Context, event *common.DeathEvent, stats *common.ImportStats) error {
	stored, err := g.store.CreateDeathEvent(ctx, *event)
	if err != nil {
		return err
	}
	*event = *stored

	var delta common.ImportStats
	err = g.store.Transact(ctx, func(s store.Storage) error {
		person, created, err := g.resolveFromDeath(ctx, s, event)
		if err != nil {
			return err
		}
		if created {
			delta.PersonsCreated++
		}

		if event.AboutDeceasedAndFamily != "" {
			if err := g.applyNoteHints(ctx, s, person, event.AboutDeceasedAndFamily, event.Location, &delta); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	stats.DeathsImported++
	stats.Add(delta)
	return nil
}

func (g *GraphClient) importMarriage(ctx context.Context, event *common.MarriageEvent, stats *common.ImportStats) error {
	stored, err := g.store.CreateMarriageEvent(ctx, *event)
	if err != nil {
		return err
	}
	*event = *stored

	var delta common.ImportStats
	err = g.store.Transact(ctx, func(s store.Storage) error {
		groom, groomCreated, err := g.resolveSpouse(ctx, s, event, true)
		if err != nil {
			return err
		}
		if groomCreated {
			delta.PersonsCreated++
		}

		bride, brideCreated, err := g.resolveSpouse(ctx, s, event, false)
		if err != nil {
			return err
		}
		if brideCreated {
			delta.PersonsCreated++
		}

		marriageDate := util.DateFromParts(event.Year, event.Month, event.Day)
		made, err := linkSpouses(ctx, s, groom.ID, bride.ID, marriageDate, event.Parish, confidenceRegister, &event.ID)
		if err != nil {
			return err
		}
		if made {
			delta.MarriagesCreated++
		}

		parents := []relativeLink{
			{
				FirstName:        event.GroomFatherFirstName,
				FallbackLastName: event.GroomLastName,
				Gender:           common.Male,
				Location:         event.GroomLocation,
				ChildID:          groom.ID,
				IsFatherEdge:     true,
			},
			{
				FirstName: event.GroomMotherFirstName,
				LastName:  event.GroomMotherMaidenName,
				Gender:    common.Female,
				Location:  event.GroomLocation,
				ChildID:   groom.ID,
			},
			{
				FirstName:        event.BrideFatherFirstName,
				FallbackLastName: event.BrideLastName,
				Gender:           common.Male,
				Location:         event.BrideLocation,
				ChildID:          bride.ID,
				IsFatherEdge:     true,
			},
			{
				FirstName: event.BrideMotherFirstName,
				LastName:  event.BrideMotherMaidenName,
				Gender:    common.Female,
				Location:  event.BrideLocation,
				ChildID:   bride.ID,
			},
		}
		for _, link := range parents {
			if link.FirstName == "" {
				continue
			}
			link.Confidence = confidenceRegister
			if err := g.linkRelative(ctx, s, link, &delta); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	stats.MarriagesImported++
	stats.Add(delta)
	return nil
}

// importCensus shards entries by normalized surname and imports the buckets
// concurrently. Workers only compete for persons within their own surname
// bucket; near-miss surnames that straddle buckets can still race under a
// concurrent backend and leave a near-duplicate for a later merge.
func (g *GraphClient) importCensus(ctx context.Context, entries []common.CensusEntry, stats *common.ImportStats) {
	if len(entries) == 0 {
		return
	}

	buckets := make(map[string][]*common.CensusEntry)
	for i := range entries {
		key := names.Normalize(parseCensusName(entries[i].FullName).LastName)
		buckets[key] = append(buckets[key], &entries[i])
	}

	var mu sync.Mutex
	var eg errgroup.Group
	eg.SetLimit(g.censusWorkers)

	for _, bucket := range buckets {
		bucket := bucket
		eg.Go(func() error {
			var delta common.ImportStats
			for _, entry := range bucket {
				if err := g.importCensusEntry(ctx, entry, &delta); err != nil {
					logger.Warn("[Import] Skipping census entry", "full_name", entry.FullName, "error", err)
				}
			}
			mu.Lock()
			stats.Add(delta)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; record failures are logged and skipped.
	_ = eg.Wait()
}

func (g *GraphClient) importCensusEntry(ctx context.Context, entry *common.CensusEntry, stats *common.ImportStats) error {
	var delta common.ImportStats
	err := g.store.Transact(ctx, func(s store.Storage) error {
		_, created, err := g.resolveFromCensus(ctx, s, entry)
		if err != nil {
			return err
		}
		if created {
			delta.PersonsCreated++
		}

		stored, err := s.CreateCensusEntry(ctx, *entry)
		if err != nil {
			return err
		}
		*entry = *stored
		return nil
	})
	if err != nil {
		return err
	}

	stats.CensusImported++
	stats.Add(delta)
	return nil
}

// relativeLink describes a parent or guardian edge to establish from a
// register's secondary name fields.
type relativeLink struct {
	FirstName        string
	LastName         string
	FallbackLastName string
	Gender           string
	Location         string
	Confidence       float64
	ChildID          int64
	IsFatherEdge     bool
}

func (g *GraphClient) linkRelative(ctx context.Context, s store.Storage, link relativeLink, delta *common.ImportStats) error {
	person, created, err := g.resolveRelative(ctx, s, link.FirstName, link.LastName, link.FallbackLastName, link.Gender, link.Location, link.Confidence)
	if err != nil {
		return err
	}
	if person == nil {
		return nil
	}
	if created {
		delta.PersonsCreated++
	}

	made, err := linkParent(ctx, s, person.ID, link.ChildID, link.IsFatherEdge, link.Confidence)
	if err != nil {
		return err
	}
	if made {
		delta.RelationshipsCreated++
	}
	return nil
}

// applyNoteHints resolves the relatives a death note mentions and links
// them to the deceased at note confidence.
func (g *GraphClient) applyNoteHints(ctx context.Context, s store.Storage, person *common.Person, text, location string, delta *common.ImportStats) error {
	for _, hint := range g.extractor.Extract(text, person) {
		relative, created, err := g.resolveRelative(ctx, s, hint.FirstName, hint.LastName, "", hint.Gender, location, confidenceNotes)
		if err != nil {
			return err
		}
		if relative == nil {
			continue
		}
		if created {
			delta.PersonsCreated++
		}

		switch hint.Kind {
		case HintSpouse:
			made, err := linkSpouses(ctx, s, person.ID, relative.ID, nil, location, confidenceNotes, nil)
			if err != nil {
				return err
			}
			if made {
				delta.MarriagesCreated++
			}
		case HintParent:
			made, err := linkParent(ctx, s, relative.ID, person.ID, hint.IsFatherEdge, confidenceNotes)
			if err != nil {
				return err
			}
			if made {
				delta.RelationshipsCreated++
			}
		case HintChild:
			made, err := linkParent(ctx, s, person.ID, relative.ID, hint.IsFatherEdge, confidenceNotes)
			if err != nil {
				return err
			}
			if made {
				delta.RelationshipsCreated++
			}
		}
	}
	return nil
}
