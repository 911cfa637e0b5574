package eval

import "testing"

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"bonjour", "bonjours", 1},
		{"marché", "marche", 1}, // runes, not bytes
		{"chat", "chien", 3},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarityBounds(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"", ""},
		{"a", ""},
		{"bonjour", "salut"},
		{"je vais au marché", "je vais aller au marché"},
		{"tout à fait", "pas du tout"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		if s < 0 || s > 1 {
			t.Errorf("Similarity(%q, %q) = %v out of [0,1]", p[0], p[1], s)
		}
		if rev := Similarity(p[1], p[0]); rev != s {
			t.Errorf("Similarity not symmetric for (%q, %q): %v vs %v", p[0], p[1], s, rev)
		}
	}

	if s := Similarity("", ""); s != 1.0 {
		t.Errorf("Similarity(\"\", \"\") = %v, want 1.0", s)
	}
	if s := Similarity("déjà vu", "déjà vu"); s != 1.0 {
		t.Errorf("Similarity(x, x) = %v, want 1.0", s)
	}
}

func TestSimilarityNormalizes(t *testing.T) {
	t.Parallel()

	// Accents and punctuation spacing are removed before distance, so
	// these pairs are identical for similarity purposes even though the
	// accent check still tells them apart.
	if s := Similarity("cafe", "café"); s != 1.0 {
		t.Errorf("Similarity(cafe, café) = %v, want 1.0", s)
	}
	if s := Similarity("Comment ça va ?", "comment ca va?"); s != 1.0 {
		t.Errorf("punctuation-spaced pair scored %v, want 1.0", s)
	}
}
