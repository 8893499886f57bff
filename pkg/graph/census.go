package graph

import (
	"regexp"
	"strings"

	"github.com/wolyn-genealogy/explorer/pkg/common"
)

// parsedName is the structured form of a census full-name column.
type parsedName struct {
	FirstName  string
	LastName   string
	MaidenName string
	Gender     string
}

var (
	censusMaidenRe = regexp.MustCompile(`\bz (` + polishWord + `)`)
	censusRoleRe   = regexp.MustCompile(`(?:żona|mąż|córka|syn) ` + polishWord + `\s*-?\s*`)
	censusPairRe   = regexp.MustCompile(`(` + polishWord + `) (` + polishWord + `)`)
)

// parseCensusName splits a census full-name column into its parts. The
// column mixes several conventions:
//
//	"Jan Kowalski"               male
//	"Marianna Kowalska"          female
//	"Marianna z Kowalskich"      female, maiden name Kowalskich
//	"żona Adama - Ewa z Nowaków" wife of Adam, maiden name Nowaków
//
// Gender is inferred from role words when present. Surnames recorded with
// a masculine -i ending are adjusted to the feminine -a form for women.
func parseCensusName(fullName string) parsedName {
	parsed := parsedName{Gender: common.Unknown}

	if m := censusMaidenRe.FindStringSubmatch(fullName); m != nil {
		parsed.MaidenName = m[1]
		fullName = strings.TrimSpace(strings.Replace(fullName, m[0], "", 1))
	}

	if strings.Contains(fullName, "żona") || strings.Contains(fullName, "córka") {
		parsed.Gender = common.Female
	} else if strings.Contains(fullName, "mąż") || strings.Contains(fullName, "syn") {
		parsed.Gender = common.Male
	}

	// The role phrase names someone else ("żona Adama"); drop it before
	// reading the subject's own name.
	fullName = strings.TrimSpace(censusRoleRe.ReplaceAllString(fullName, ""))

	if m := censusPairRe.FindStringSubmatch(fullName); m != nil {
		parsed.FirstName = m[1]
		parsed.LastName = m[2]
		if parsed.Gender == common.Female {
			parsed.LastName = feminizeSurname(parsed.LastName)
		}
		return parsed
	}

	parsed.FirstName = strings.TrimSpace(fullName)
	return parsed
}

// feminizeSurname maps a masculine -i surname ending to the feminine -a
// form (Kowalski -> Kowalska). Surnames already ending in -a are kept.
func feminizeSurname(surname string) string {
	runes := []rune(surname)
	if len(runes) == 0 {
		return surname
	}
	last := runes[len(runes)-1]
	if last == 'i' {
		return string(runes[:len(runes)-1]) + "a"
	}
	return surname
}
