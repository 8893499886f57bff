package names

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Jan", "jan"},
		{"KOWALSKI", "kowalski"},
		{"Stanisław", "stanislaw"},
		{"Jaś", "jas"},
		{"Żółć", "zolc"},
		{"Kasieńka", "kasienka"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSimilarityExactAndEmpty(t *testing.T) {
	if got := Similarity("Jan", "Jan"); got != 1.0 {
		t.Fatalf("exact match = %v, want 1.0", got)
	}
	if got := Similarity("Jan", "jan"); got != 1.0 {
		t.Fatalf("case-folded match = %v, want 1.0", got)
	}
	if got := Similarity("Stanisław", "Stanislaw"); got != 1.0 {
		t.Fatalf("diacritic-folded match = %v, want 1.0", got)
	}
	if got := Similarity("", "Jan"); got != 0.0 {
		t.Fatalf("empty left = %v, want 0.0", got)
	}
	if got := Similarity("Jan", ""); got != 0.0 {
		t.Fatalf("empty right = %v, want 0.0", got)
	}
}

func TestSimilarityDiminutives(t *testing.T) {
	if got := Similarity("Jan", "Janek"); got != 0.9 {
		t.Fatalf("Similarity(Jan, Janek) = %v, want 0.9", got)
	}
	if got := Similarity("Janek", "Jan"); got != 0.9 {
		t.Fatalf("Similarity(Janek, Jan) = %v, want 0.9", got)
	}
	if got := Similarity("Katarzyna", "Kaśka"); got != 0.9 {
		t.Fatalf("Similarity(Katarzyna, Kaśka) = %v, want 0.9", got)
	}
}

func TestSimilarityEditDistance(t *testing.T) {
	// kowalski vs kowalsky: one substitution over eight runes.
	got := Similarity("Kowalski", "Kowalsky")
	want := 1.0 - 1.0/8.0
	if got != want {
		t.Fatalf("Similarity(Kowalski, Kowalsky) = %v, want %v", got, want)
	}

	if got := Similarity("Jan", "Xyzzy"); got >= 0.5 {
		t.Fatalf("dissimilar names scored %v, want < 0.5", got)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Jan", "Janek"},
		{"Kowalski", "Kowalska"},
		{"Marianna", "Mania"},
		{"Józef", "Jozio"},
		{"", "Adam"},
		{"Wacław", "Wacek"},
		{"Zofia", "Zośka"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}
