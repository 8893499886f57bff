package common

import "time"

// Gender markers used on tree nodes. Gender is never stored on a person;
// it is inferred from parent edges (is_father) where possible.
const (
	Male    = "M"
	Female  = "F"
	Unknown = "U"
)

// Person represents one resolved individual. A person is created the first
// time no compatible match is found for a source event, enriched (null
// fields filled, never overwritten) by later events that resolve to it, and
// retired only by a merge.
//
// Confidence expresses how certain the system is that the record describes
// one real individual: 1.0 for persons backed by a parish register entry,
// lower for persons inferred from census rows or free-text notes.
type Person struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	BirthPlace string     `json:"birth_place,omitempty"`
	DeathDate  *time.Time `json:"death_date,omitempty"`
	DeathPlace string     `json:"death_place,omitempty"`
	Confidence float64    `json:"confidence"`
}

// Relationship is a directed parent->child edge. IsFather false denotes a
// mother edge. At most one edge should exist per (parent, child) pair; the
// linker checks before insert.
type Relationship struct {
	ID         int64   `json:"id"`
	ParentID   int64   `json:"parent_id"`
	ChildID    int64   `json:"child_id"`
	IsFather   bool    `json:"is_father"`
	Confidence float64 `json:"confidence"`
}

// Marriage is an undirected spouse relation materialized as one record with
// two person references. The unordered pair {Person1ID, Person2ID} is
// unique; existence checks consider both orderings.
type Marriage struct {
	ID            int64      `json:"id"`
	Person1ID     int64      `json:"person1_id"`
	Person2ID     int64      `json:"person2_id"`
	MarriageDate  *time.Time `json:"marriage_date,omitempty"`
	MarriagePlace string     `json:"marriage_place,omitempty"`
	Confidence    float64    `json:"confidence"`
	EventID       *int64     `json:"event_id,omitempty"`
}

// Other returns the spouse on the other side of the marriage from personID.
func (m *Marriage) Other(personID int64) int64 {
	if m.Person1ID == personID {
		return m.Person2ID
	}
	return m.Person1ID
}

// TreeNode is one person as rendered inside a Tree.
type TreeNode struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	DeathDate  *time.Time `json:"death_date,omitempty"`
	BirthPlace string     `json:"birth_place,omitempty"`
	DeathPlace string     `json:"death_place,omitempty"`
	Gender     string     `json:"gender"`
}

// Edge relationship labels.
const (
	EdgeParent = "parent"
	EdgeSpouse = "spouse"
)

// TreeEdge connects two tree nodes. Parent edges keep their direction
// (source is the parent); spouse edges appear once per direction.
type TreeEdge struct {
	Source       int64  `json:"source"`
	Target       int64  `json:"target"`
	Relationship string `json:"relationship"`
}

// Tree is an ephemeral view over a family cluster or a bounded ancestor/
// descendant neighborhood. Trees are built on demand and never persisted.
type Tree struct {
	ID    int        `json:"id"`
	Name  string     `json:"name,omitempty"`
	Nodes []TreeNode `json:"nodes"`
	Edges []TreeEdge `json:"edges"`
}

// HasNode reports whether the tree already contains a node with the id.
func (t *Tree) HasNode(id int64) bool {
	for _, n := range t.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// ImportStats reports what one import batch produced. Records that fail to
// resolve are skipped and simply not counted; a batch never aborts on a
// single bad record.
type ImportStats struct {
	BirthsImported       int `json:"births_imported"`
	DeathsImported       int `json:"deaths_imported"`
	MarriagesImported    int `json:"marriages_imported"`
	CensusImported       int `json:"census_imported"`
	PersonsCreated       int `json:"persons_created"`
	RelationshipsCreated int `json:"relationships_created"`
	MarriagesCreated     int `json:"marriages_created"`
}

// Add folds another stats block into this one.
func (s *ImportStats) Add(other ImportStats) {
	s.BirthsImported += other.BirthsImported
	s.DeathsImported += other.DeathsImported
	s.MarriagesImported += other.MarriagesImported
	s.CensusImported += other.CensusImported
	s.PersonsCreated += other.PersonsCreated
	s.RelationshipsCreated += other.RelationshipsCreated
	s.MarriagesCreated += other.MarriagesCreated
}

// Match pairs a person with the name-similarity score that selected it.
type Match struct {
	Person     *Person `json:"person"`
	Similarity float64 `json:"similarity"`
}
