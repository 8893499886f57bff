package graph

import (
	"context"

	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
	"github.com/wolyn-genealogy/explorer/pkg/store"
)

// MergePersons folds mergeID into keepID as one atomic unit: the kept
// person's missing fields are backfilled, every relationship and marriage
// referencing the merged person is repointed (skipping edges the kept
// person already has), event back-references move over, and the merged
// person is deleted. Returns nil when either id is unknown; nothing is
// changed in that case.
func (g *GraphClient) MergePersons(ctx context.Context, keepID, mergeID int64) (*common.Person, error) {
	if keepID == mergeID {
		return nil, nil
	}

	var merged *common.Person
	err := g.store.Transact(ctx, func(s store.Storage) error {
		keep, err := s.GetPerson(ctx, keepID)
		if err != nil {
			return err
		}
		drop, err := s.GetPerson(ctx, mergeID)
		if err != nil {
			return err
		}
		if keep == nil || drop == nil {
			return nil
		}

		if keep.BirthDate == nil {
			keep.BirthDate = drop.BirthDate
		}
		if keep.BirthPlace == "" {
			keep.BirthPlace = drop.BirthPlace
		}
		if keep.DeathDate == nil {
			keep.DeathDate = drop.DeathDate
		}
		if keep.DeathPlace == "" {
			keep.DeathPlace = drop.DeathPlace
		}
		if err := s.UpdatePerson(ctx, keep); err != nil {
			return err
		}

		parents, err := s.ParentsOf(ctx, drop.ID)
		if err != nil {
			return err
		}
		for _, rel := range parents {
			if rel.ParentID == keep.ID {
				continue
			}
			if _, err := linkParent(ctx, s, rel.ParentID, keep.ID, rel.IsFather, rel.Confidence); err != nil {
				return err
			}
		}

		children, err := s.ChildrenOf(ctx, drop.ID)
		if err != nil {
			return err
		}
		for _, rel := range children {
			if rel.ChildID == keep.ID {
				continue
			}
			// Remove the superseded edge first; the linker refuses a second
			// father or mother edge while the old one is still present.
			if err := s.DeleteRelationship(ctx, rel.ID); err != nil {
				return err
			}
			if _, err := linkParent(ctx, s, keep.ID, rel.ChildID, rel.IsFather, rel.Confidence); err != nil {
				return err
			}
		}

		marriages, err := s.MarriagesOf(ctx, drop.ID)
		if err != nil {
			return err
		}
		for _, m := range marriages {
			otherID := m.Other(drop.ID)
			if otherID == keep.ID {
				continue
			}
			if _, err := linkSpouses(ctx, s, keep.ID, otherID, m.MarriageDate, m.MarriagePlace, m.Confidence, m.EventID); err != nil {
				return err
			}
		}

		if err := s.ReassignEvents(ctx, drop.ID, keep.ID); err != nil {
			return err
		}

		// Deleting the merged person cascades its remaining edges.
		if err := s.DeletePerson(ctx, drop.ID); err != nil {
			return err
		}

		merged = keep
		return nil
	})
	if err != nil {
		return nil, err
	}

	if merged != nil {
		logger.Info("[Merge] Persons merged", "kept", keepID, "merged", mergeID)
	}
	return merged, nil
}
