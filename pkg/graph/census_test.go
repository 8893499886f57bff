package graph

import (
	"reflect"
	"testing"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

func TestParseCensusName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     parsedName
	}{
		{
			name:     "plain male name",
			fullName: "Jan Kowalski",
			want:     parsedName{FirstName: "Jan", LastName: "Kowalski", Gender: common.Unknown},
		},
		{
			name:     "plain female name",
			fullName: "Marianna Kowalska",
			want:     parsedName{FirstName: "Marianna", LastName: "Kowalska", Gender: common.Unknown},
		},
		{
			name:     "maiden name only",
			fullName: "Marianna z Kowalskich",
			want:     parsedName{FirstName: "Marianna", MaidenName: "Kowalskich", Gender: common.Unknown},
		},
		{
			name:     "wife with maiden name",
			fullName: "żona Adama - Ewa z Nowaków",
			want:     parsedName{FirstName: "Ewa", MaidenName: "Nowaków", Gender: common.Female},
		},
		{
			name:     "daughter with masculine surname ending",
			fullName: "córka Jana - Ewa Kowalski",
			want:     parsedName{FirstName: "Ewa", LastName: "Kowalska", Gender: common.Female},
		},
		{
			name:     "son",
			fullName: "syn Adama - Piotr Nowak",
			want:     parsedName{FirstName: "Piotr", LastName: "Nowak", Gender: common.Male},
		},
		{
			name:     "single word",
			fullName: "Marianna",
			want:     parsedName{FirstName: "Marianna", Gender: common.Unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCensusName(tt.fullName)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseCensusName(%q) = %+v, want %+v", tt.fullName, got, tt.want)
			}
		})
	}
}

func TestFeminizeSurname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kowalski", "Kowalska"},
		{"Kowalska", "Kowalska"},
		{"Nowak", "Nowak"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := feminizeSurname(tt.in); got != tt.want {
			t.Errorf("feminizeSurname(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
