// Package names canonicalizes and compares personal names as they appear in
// Polish-language vital records: case and diacritic folding, a curated
// diminutive table, and normalized edit distance.
package names

import "strings"

// Polish diacritics mapped to their base Latin letters. Record indexes mix
// both spellings freely, so comparison always runs on the folded form.
var diacritics = map[rune]rune{
	'ą': 'a',
	'ć': 'c',
	'ę': 'e',
	'ł': 'l',
	'ń': 'n',
	'ó': 'o',
	'ś': 's',
	'ż': 'z',
	'ź': 'z',
}

// Normalize lower-cases a name and strips Polish diacritics. Empty input
// normalizes to the empty string; Normalize never fails.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	lowered := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if repl, ok := diacritics[r]; ok {
			b.WriteRune(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
