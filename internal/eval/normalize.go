package eval

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Formal French puts a (often non-breaking) space before ? ! ; : so it
// must be treated as equivalent to no space and never mistaken for a
// content or accent error. \p{Zs} covers U+00A0 and the narrow NBSP.
var spaceBeforePunct = regexp.MustCompile(`[\s\p{Zs}]+([?!;:])`)

// Normalize produces the diacritic-stripped comparison form: lowercase,
// accents removed, whitespace collapsed to single spaces, trimmed.
// Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s, _, _ = transform.String(stripAccents, s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizePunctuationSpacing removes a whitespace run immediately
// preceding ? ! ; or :.
func NormalizePunctuationSpacing(s string) string {
	return spaceBeforePunct.ReplaceAllString(s, "$1")
}

// canonical is the full comparison form used for equality and
// similarity: Normalize plus punctuation-spacing normalization.
func canonical(s string) string {
	return NormalizePunctuationSpacing(Normalize(s))
}

// HasCorrectAccents reports whether a and b match with diacritics kept:
// lowercased, whitespace collapsed, punctuation spacing normalized, but
// NOT accent-stripped. It isolates "right word, wrong accent" from
// "wrong word".
func HasCorrectAccents(a, b string) bool {
	return accentSensitive(a) == accentSensitive(b)
}

func accentSensitive(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	return NormalizePunctuationSpacing(s)
}
