package names

// diminutives maps canonical given names (normalized form) to their known
// informal variants. A canonical/diminutive pair scores 0.9, just below an
// exact match: "Janek" in a death note and "Jan" in a birth register are
// almost certainly the same name.
var diminutives = map[string][]string{
	"adam":      {"adas", "adek"},
	"jan":       {"janek", "jas", "jasiek"},
	"jozef":     {"jozek", "jozio"},
	"marianna":  {"marysia", "maryna", "mania"},
	"katarzyna": {"kasia", "kasienka", "kaska"},
	"anna":      {"ania", "anka", "anusia"},
	"magdalena": {"magda", "madzia"},
	"stanislaw": {"stas", "staszek"},
	"waclaw":    {"wacek"},
	"zofia":     {"zosia", "zoska"},
}

// isDiminutiveOf reports whether b is a listed diminutive of canonical name a.
// Both arguments must already be normalized.
func isDiminutiveOf(a, b string) bool {
	for _, d := range diminutives[a] {
		if d == b {
			return true
		}
	}
	return false
}
