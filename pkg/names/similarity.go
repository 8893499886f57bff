package names

// Similarity scores how likely two name strings refer to the same name,
// in [0,1]. The score is symmetric: Similarity(a, b) == Similarity(b, a).
//
// Scoring order: empty input 0.0, normalized exact match 1.0, known
// diminutive pair 0.9, otherwise 1 - levenshtein/maxLen.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 1.0
	}

	if isDiminutiveOf(na, nb) || isDiminutiveOf(nb, na) {
		return 0.9
	}

	ra := []rune(na)
	rb := []rune(nb)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 0.0
	}

	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein computes the edit distance between two rune slices with the
// classic two-row dynamic program.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
