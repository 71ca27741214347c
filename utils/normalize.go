package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Arabic tashkeel (diacritics) and tatweel (kashida) code points stripped
// before matching, so diacritic-bearing queries match diacritic-free catalog
// text and vice versa.
func isTashkeelOrTatweel(r rune) bool {
	switch {
	case r >= 0x0610 && r <= 0x061A:
		return true
	case r == 0x0640:
		return true
	case r >= 0x064B && r <= 0x065F:
		return true
	case r == 0x0670:
		return true
	}
	return false
}

// Punctuation replaced with spaces, covering both Latin and Arabic marks.
const punctuation = "؟،؛.,:;!?'\"()[]{}-_/"

// NormalizeText normalizes free text for matching: lowercase, NFKC, strip
// Arabic diacritics, replace punctuation with spaces, collapse whitespace,
// trim. Pure and deterministic.
func NormalizeText(text string) string {
	lowered := norm.NFKC.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case isTashkeelOrTatweel(r):
			// drop
		case strings.ContainsRune(punctuation, r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits text into normalized search tokens.
func Tokenize(text string) []string {
	return strings.Fields(NormalizeText(text))
}
