package symbols

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// apostrophes are deleted rather than treated as separators: O'Brien → obrien
var apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "", "ʼ", "", "`", "", "´", "")

// letters that survive NFD decomposition unchanged
var foldLetters = strings.NewReplacer(
	"ß", "ss", "ø", "o", "ł", "l", "đ", "d", "ð", "d", "þ", "th",
	"æ", "ae", "œ", "oe", "ı", "i", "ħ", "h",
)

// Normalize returns the NFC, lower-cased form of s with apostrophes removed
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	return apostrophes.Replace(s)
}

// Tokenize normalizes s and splits it on every rune that is not a letter,
// mark or digit. Empty tokens are dropped.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Normalize(s), isSeparator)
}

// Comparable returns the space-joined tokens of s
func Comparable(s string) string {
	return strings.Join(Tokenize(s), " ")
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsDigit(r)
}

// Fold strips diacritics from an already normalized token: "müller" → "muller"
func Fold(s string) string {
	if isASCII(s) {
		return s
	}
	// transform.Chain keeps state, so each call builds its own
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return foldLetters.Replace(folded)
}

// IsASCIILetters reports whether s is non-empty and consists of a-z only
func IsASCIILetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is non-empty and consists of ASCII digits only
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
