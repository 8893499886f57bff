package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

// BuildTrees assembles the full family graph and partitions it into weakly
// connected clusters, one Tree per cluster. Parent edges keep their
// direction; every marriage contributes a spouse edge in both directions.
func (g *GraphClient) BuildTrees(ctx context.Context) ([]common.Tree, error) {
	persons, err := g.store.AllPersons(ctx)
	if err != nil {
		return nil, err
	}
	relationships, err := g.store.AllRelationships(ctx)
	if err != nil {
		return nil, err
	}
	marriages, err := g.store.AllMarriages(ctx)
	if err != nil {
		return nil, err
	}

	uf := newUnionFind()
	for _, p := range persons {
		uf.add(p.ID)
	}
	for _, rel := range relationships {
		uf.union(rel.ParentID, rel.ChildID)
	}
	for _, m := range marriages {
		uf.union(m.Person1ID, m.Person2ID)
	}

	// A person who appears as a father in any edge is male, as a mother
	// female. Persons with no parent role stay unknown.
	genders := make(map[int64]string)
	for _, rel := range relationships {
		if _, ok := genders[rel.ParentID]; !ok {
			if rel.IsFather {
				genders[rel.ParentID] = common.Male
			} else {
				genders[rel.ParentID] = common.Female
			}
		}
	}

	// Persons arrive sorted by id, so components come out in first-seen
	// order and each component lists its members by id.
	components := make(map[int64][]*common.Person)
	var order []int64
	for _, p := range persons {
		root := uf.find(p.ID)
		if _, seen := components[root]; !seen {
			order = append(order, root)
		}
		components[root] = append(components[root], p)
	}

	trees := make([]common.Tree, 0, len(order))
	for i, root := range order {
		members := components[root]
		memberSet := make(map[int64]bool, len(members))
		for _, p := range members {
			memberSet[p.ID] = true
		}

		tree := common.Tree{
			ID:    i,
			Name:  fmt.Sprintf("Family Tree %d", i+1),
			Nodes: make([]common.TreeNode, 0, len(members)),
			Edges: make([]common.TreeEdge, 0),
		}

		for _, p := range members {
			gender, ok := genders[p.ID]
			if !ok {
				gender = common.Unknown
			}
			tree.Nodes = append(tree.Nodes, personNode(p, gender))
		}

		for _, rel := range relationships {
			if memberSet[rel.ParentID] && memberSet[rel.ChildID] {
				tree.Edges = append(tree.Edges, common.TreeEdge{
					Source:       rel.ParentID,
					Target:       rel.ChildID,
					Relationship: common.EdgeParent,
				})
			}
		}
		for _, m := range marriages {
			if memberSet[m.Person1ID] && memberSet[m.Person2ID] {
				tree.Edges = append(tree.Edges,
					common.TreeEdge{Source: m.Person1ID, Target: m.Person2ID, Relationship: common.EdgeSpouse},
					common.TreeEdge{Source: m.Person2ID, Target: m.Person1ID, Relationship: common.EdgeSpouse},
				)
			}
		}

		trees = append(trees, tree)
	}

	return trees, nil
}

func personNode(p *common.Person, gender string) common.TreeNode {
	return common.TreeNode{
		ID:         p.ID,
		Name:       strings.TrimSpace(p.FirstName + " " + p.LastName),
		BirthDate:  p.BirthDate,
		DeathDate:  p.DeathDate,
		BirthPlace: p.BirthPlace,
		DeathPlace: p.DeathPlace,
		Gender:     gender,
	}
}

// unionFind tracks weakly connected components over person ids.
type unionFind struct {
	parent map[int64]int64
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[int64]int64)}
}

func (u *unionFind) add(id int64) {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
	}
}

func (u *unionFind) find(id int64) int64 {
	u.add(id)
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		u.parent[id], id = root, u.parent[id]
	}
	return root
}

func (u *unionFind) union(a, b int64) {
	rootA, rootB := u.find(a), u.find(b)
	if rootA != rootB {
		u.parent[rootB] = rootA
	}
}
