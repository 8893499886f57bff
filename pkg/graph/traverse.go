package graph

import (
	"context"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

// Ancestors expands the bounded ancestor neighborhood of a person: parents
// up to the generation limit, with each ancestor's other spouses attached
// at their generation. Returns nil when the person does not exist.
//
// A visited set guards the walk; a relationship cycle in bad data ends the
// expansion at the repeated person instead of recursing forever.
func (g *GraphClient) Ancestors(ctx context.Context, personID int64, generations int) (*common.Tree, error) {
	if generations <= 0 {
		generations = DefaultGenerations
	}

	person, err := g.store.GetPerson(ctx, personID)
	if err != nil || person == nil {
		return nil, err
	}

	tree := &common.Tree{
		Nodes: []common.TreeNode{personNode(person, common.Unknown)},
		Edges: make([]common.TreeEdge, 0),
	}
	visited := map[int64]bool{person.ID: true}

	if err := g.addAncestors(ctx, person, tree, visited, generations, 0); err != nil {
		return nil, err
	}
	return tree, nil
}

func (g *GraphClient) addAncestors(ctx context.Context, person *common.Person, tree *common.Tree, visited map[int64]bool, maxGenerations, currentGen int) error {
	if currentGen >= maxGenerations {
		return nil
	}

	rels, err := g.store.ParentsOf(ctx, person.ID)
	if err != nil {
		return err
	}

	for _, rel := range rels {
		parent, err := g.store.GetPerson(ctx, rel.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			continue
		}

		parentGender := common.Female
		if rel.IsFather {
			parentGender = common.Male
		}

		if !tree.HasNode(parent.ID) {
			tree.Nodes = append(tree.Nodes, personNode(parent, parentGender))
		}
		addEdge(tree, parent.ID, person.ID, common.EdgeParent)

		if !visited[parent.ID] {
			visited[parent.ID] = true
			if err := g.addAncestors(ctx, parent, tree, visited, maxGenerations, currentGen+1); err != nil {
				return err
			}
		}

		// Attach the parent's spouses who are not themselves a parent of
		// this person.
		marriages, err := g.store.MarriagesOf(ctx, parent.ID)
		if err != nil {
			return err
		}
		for _, m := range marriages {
			otherID := m.Other(parent.ID)
			if isParentIn(rels, otherID) {
				continue
			}

			spouse, err := g.store.GetPerson(ctx, otherID)
			if err != nil {
				return err
			}
			if spouse == nil {
				continue
			}

			spouseGender := common.Male
			if rel.IsFather {
				spouseGender = common.Female
			}
			if !tree.HasNode(spouse.ID) {
				tree.Nodes = append(tree.Nodes, personNode(spouse, spouseGender))
			}
			addEdge(tree, parent.ID, spouse.ID, common.EdgeSpouse)
			addEdge(tree, spouse.ID, parent.ID, common.EdgeSpouse)
		}
	}

	return nil
}

// Descendants expands the bounded descendant neighborhood of a person:
// children down to the generation limit, with each child's other parent
// attached as a spouse of the expanded person. Returns nil when the person
// does not exist.
func (g *GraphClient) Descendants(ctx context.Context, personID int64, generations int) (*common.Tree, error) {
	if generations <= 0 {
		generations = DefaultGenerations
	}

	person, err := g.store.GetPerson(ctx, personID)
	if err != nil || person == nil {
		return nil, err
	}

	tree := &common.Tree{
		Nodes: []common.TreeNode{personNode(person, common.Unknown)},
		Edges: make([]common.TreeEdge, 0),
	}
	visited := map[int64]bool{person.ID: true}

	if err := g.addDescendants(ctx, person, tree, visited, generations, 0); err != nil {
		return nil, err
	}
	return tree, nil
}

func (g *GraphClient) addDescendants(ctx context.Context, person *common.Person, tree *common.Tree, visited map[int64]bool, maxGenerations, currentGen int) error {
	if currentGen >= maxGenerations {
		return nil
	}

	rels, err := g.store.ChildrenOf(ctx, person.ID)
	if err != nil {
		return err
	}

	for _, rel := range rels {
		child, err := g.store.GetPerson(ctx, rel.ChildID)
		if err != nil {
			return err
		}
		if child == nil {
			continue
		}

		if !tree.HasNode(child.ID) {
			tree.Nodes = append(tree.Nodes, personNode(child, common.Unknown))
		}
		addEdge(tree, person.ID, child.ID, common.EdgeParent)

		// The child's other parent is this person's co-parent; render them
		// as a spouse at the same generation.
		childParents, err := g.store.ParentsOf(ctx, child.ID)
		if err != nil {
			return err
		}
		for _, cp := range childParents {
			if cp.ParentID == person.ID {
				continue
			}

			other, err := g.store.GetPerson(ctx, cp.ParentID)
			if err != nil {
				return err
			}
			if other == nil {
				continue
			}

			otherGender := common.Female
			if cp.IsFather {
				otherGender = common.Male
			}
			if !tree.HasNode(other.ID) {
				tree.Nodes = append(tree.Nodes, personNode(other, otherGender))
			}
			addEdge(tree, other.ID, child.ID, common.EdgeParent)
			addEdge(tree, person.ID, other.ID, common.EdgeSpouse)
			addEdge(tree, other.ID, person.ID, common.EdgeSpouse)
		}

		if !visited[child.ID] {
			visited[child.ID] = true
			if err := g.addDescendants(ctx, child, tree, visited, maxGenerations, currentGen+1); err != nil {
				return err
			}
		}
	}

	return nil
}

func isParentIn(rels []*common.Relationship, personID int64) bool {
	for _, rel := range rels {
		if rel.ParentID == personID {
			return true
		}
	}
	return false
}

func addEdge(tree *common.Tree, source, target int64, relationship string) {
	for _, e := range tree.Edges {
		if e.Source == source && e.Target == target && e.Relationship == relationship {
			return
		}
	}
	tree.Edges = append(tree.Edges, common.TreeEdge{
		Source:       source,
		Target:       target,
		Relationship: relationship,
	})
}
