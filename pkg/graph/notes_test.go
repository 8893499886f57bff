package graph

import (
	"reflect"
	"testing"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

func TestPolishNoteExtractor(t *testing.T) {
	extractor := NewPolishNoteExtractor()

	tests := []struct {
		name    string
		text    string
		subject *common.Person
		want    []RelationHint
	}{
		{
			name:    "empty note",
			text:    "",
			subject: &common.Person{LastName: "Kowalska"},
			want:    nil,
		},
		{
			name:    "wife of named husband",
			text:    "żona Adama",
			subject: &common.Person{LastName: "Kowalska"},
			want: []RelationHint{
				{Kind: HintSpouse, FirstName: "Adama", LastName: "Kowalska", Gender: common.Male},
			},
		},
		{
			name:    "husband of named wife",
			text:    "mąż Marianny",
			subject: &common.Person{LastName: "Kowalski"},
			want: []RelationHint{
				{Kind: HintSpouse, FirstName: "Marianny", Gender: common.Female},
			},
		},
		{
			name:    "son of both parents",
			text:    "syn Józefa i Marianny",
			subject: &common.Person{LastName: "Kowalski"},
			want: []RelationHint{
				{Kind: HintParent, FirstName: "Józefa", LastName: "Kowalski", Gender: common.Male, IsFatherEdge: true},
				{Kind: HintParent, FirstName: "Marianny", Gender: common.Female},
			},
		},
		{
			name:    "daughter of father only",
			text:    "córka Adama",
			subject: &common.Person{LastName: "Kowalska"},
			want: []RelationHint{
				{Kind: HintParent, FirstName: "Adama", LastName: "Kowalska", Gender: common.Male, IsFatherEdge: true},
			},
		},
		{
			name:    "children of a father",
			text:    "syn Józefa, dzieci: Jan, Maria",
			subject: &common.Person{LastName: "Kowalski"},
			want: []RelationHint{
				{Kind: HintParent, FirstName: "Józefa", LastName: "Kowalski", Gender: common.Male, IsFatherEdge: true},
				{Kind: HintChild, FirstName: "Jan", LastName: "Kowalski", Gender: common.Unknown, IsFatherEdge: true},
				{Kind: HintChild, FirstName: "Maria", LastName: "Kowalski", Gender: common.Unknown, IsFatherEdge: true},
			},
		},
		{
			name:    "children of a mother have no derivable surname",
			text:    "dzieci: Jan, Maria",
			subject: &common.Person{LastName: "Kowalska"},
			want: []RelationHint{
				{Kind: HintChild, FirstName: "Jan", Gender: common.Unknown},
				{Kind: HintChild, FirstName: "Maria", Gender: common.Unknown},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.text, tt.subject)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Extract(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
