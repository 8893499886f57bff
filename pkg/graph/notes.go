package graph

import (
	"regexp"
	"strings"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

// Relation hint kinds produced by a NoteExtractor.
const (
	HintSpouse = "spouse"
	HintParent = "parent"
	HintChild  = "child"
)

// RelationHint is one family member mentioned in a free-text note about a
// person. LastName is empty when the note gives no way to derive one.
// For parent hints IsFatherEdge describes the mentioned person; for child
// hints it describes the note's subject.
type RelationHint struct {
	Kind         string
	FirstName    string
	LastName     string
	Gender       string
	IsFatherEdge bool
}

// NoteExtractor turns a free-text note about a person into relation hints.
// Extraction is best effort; an empty result is normal.
type NoteExtractor interface {
	Extract(text string, subject *common.Person) []RelationHint
}

const polishWord = `[A-Za-zżźćńółęąśŻŹĆĄŚĘŁÓŃ]+`

// PolishNoteExtractor recognizes the relationship phrasing found in Polish
// death register notes:
//
//	"żona Adama"              wife of Adam
//	"mąż Marianny"            husband of Marianna
//	"syn/córka Józefa i Anny" son/daughter of Józef and Anna
//	"dzieci: Jan, Maria"      children: Jan, Maria
type PolishNoteExtractor struct {
	spouseRe   *regexp.Regexp
	parentsRe  *regexp.Regexp
	childrenRe *regexp.Regexp
}

// NewPolishNoteExtractor compiles the pattern set.
func NewPolishNoteExtractor() *PolishNoteExtractor {
	return &PolishNoteExtractor{
		spouseRe:   regexp.MustCompile(`(?:żona|mąż) (` + polishWord + `)`),
		parentsRe:  regexp.MustCompile(`(?:syn|córka) (` + polishWord + `)(?: i (` + polishWord + `))?`),
		childrenRe: regexp.MustCompile(`(?:dzieci|synowie|córki): ([A-Za-zżźćńółęąśŻŹĆĄŚĘŁÓŃ, ]+)`),
	}
}

var _ NoteExtractor = (*PolishNoteExtractor)(nil)

func (e *PolishNoteExtractor) Extract(text string, subject *common.Person) []RelationHint {
	var hints []RelationHint

	if m := e.spouseRe.FindStringSubmatch(text); m != nil {
		// "mąż X" means the subject was the husband, so the mentioned
		// spouse is the wife, and the other way around. A husband named
		// in a wife's note shares her married surname.
		subjectIsHusband := strings.HasPrefix(m[0], "mąż")
		hint := RelationHint{Kind: HintSpouse, FirstName: m[1]}
		if subjectIsHusband {
			hint.Gender = common.Female
		} else {
			hint.Gender = common.Male
			hint.LastName = subject.LastName
		}
		hints = append(hints, hint)
	}

	if m := e.parentsRe.FindStringSubmatch(text); m != nil {
		hints = append(hints, RelationHint{
			Kind:         HintParent,
			FirstName:    m[1],
			LastName:     subject.LastName,
			Gender:       common.Male,
			IsFatherEdge: true,
		})
		if m[2] != "" {
			hints = append(hints, RelationHint{
				Kind:      HintParent,
				FirstName: m[2],
				Gender:    common.Female,
			})
		}
	}

	if m := e.childrenRe.FindStringSubmatch(text); m != nil {
		// "syn" anywhere in the note marks the subject as a father, and
		// sons carry the subject's surname.
		subjectIsFather := strings.Contains(text, "syn")
		for _, name := range strings.Split(m[1], ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			hint := RelationHint{
				Kind:         HintChild,
				FirstName:    name,
				Gender:       common.Unknown,
				IsFatherEdge: subjectIsFather,
			}
			if subjectIsFather {
				hint.LastName = subject.LastName
			}
			hints = append(hints, hint)
		}
	}

	return hints
}
