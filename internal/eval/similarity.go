package eval

import "math"

// Levenshtein computes the edit distance between two strings, runes
// counted, insertion/deletion/substitution each cost 1. Single rolling
// DP row; short answers keep the quadratic cost negligible.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	row := make([]int, m+1)
	for j := 0; j <= m; j++ {
		row[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= m; j++ {
			tmp := row[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			row[j] = min(row[j]+1, row[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return row[m]
}

// Similarity converts edit distance between the canonical forms of a
// and b into a ratio in [0,1]. Identical normalized strings, including
// two empties, score 1.0. Symmetric.
func Similarity(a, b string) float64 {
	na := canonical(a)
	nb := canonical(b)
	la, lb := len([]rune(na)), len([]rune(nb))
	longest := max(la, lb)
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(na, nb))/float64(longest)
}

// similarityPct is the rounded percent used for scores and diagnostics.
func similarityPct(sim float64) int {
	return int(math.Round(sim * 100))
}
