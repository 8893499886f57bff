package graph

import (
	"context"
	"time"

	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
	"github.com/wolyn-genealogy/explorer/pkg/store"
)

// linkParent creates a parent->child edge unless one already exists for the
// pair, or the child already has a father (or mother) edge to a different
// person. The first recorded edge wins; later conflicting claims are
// dropped. Reports whether an edge was created.
func linkParent(ctx context.Context, s store.Storage, parentID, childID int64, isFather bool, confidence float64) (bool, error) {
	if parentID == childID {
		return false, nil
	}

	existing, err := s.FindRelationship(ctx, parentID, childID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	parents, err := s.ParentsOf(ctx, childID)
	if err != nil {
		return false, err
	}
	for _, rel := range parents {
		if rel.IsFather == isFather {
			logger.Debug("[Link] Skipping conflicting parent edge",
				"child_id", childID,
				"parent_id", parentID,
				"existing_parent_id", rel.ParentID,
				"is_father", isFather,
			)
			return false, nil
		}
	}

	if _, err := s.CreateRelationship(ctx, parentID, childID, isFather, confidence); err != nil {
		return false, err
	}
	return true, nil
}

// linkSpouses creates a marriage between the two persons unless one exists
// in either ordering. Reports whether a marriage was created.
func linkSpouses(ctx context.Context, s store.Storage, person1ID, person2ID int64, date *time.Time, place string, confidence float64, eventID *int64) (bool, error) {
	if person1ID == person2ID {
		return false, nil
	}

	existing, err := s.FindMarriage(ctx, person1ID, person2ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	_, err = s.CreateMarriage(ctx, common.Marriage{
		Person1ID:     person1ID,
		Person2ID:     person2ID,
		MarriageDate:  date,
		MarriagePlace: place,
		Confidence:    confidence,
		EventID:       eventID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
