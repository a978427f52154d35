package distance

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// DefaultStrictRate allows one edit per four characters
const DefaultStrictRate = 4

// LevenshteinSimilarity scores two strings by edit distance with a
// log-scaled edit budget. Scores below 0.5 are reported as 0.
func LevenshteinSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	maxEdits := int(math.Log(math.Max(float64(maxLen-2), 1)))
	d := edlib.LevenshteinDistance(a, b)
	if d > maxEdits {
		return 0.0
	}
	score := math.Pow(1-float64(d)/float64(maxLen), 2)
	if score < 0.5 {
		return 0.0
	}
	return score
}

// StrictLevenshtein scores two strings allowing maxLen/rate edits at most.
// A rate below 1 falls back to DefaultStrictRate.
func StrictLevenshtein(a, b string, rate int) float64 {
	if a == b {
		return 1.0
	}
	if rate < 1 {
		rate = DefaultStrictRate
	}
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	maxEdits := maxLen / rate
	d := edlib.LevenshteinDistance(a, b)
	if d > maxEdits {
		return 0.0
	}
	return math.Pow(1-float64(d)/float64(maxLen), float64(maxEdits))
}

// JaroWinkler returns the Jaro-Winkler similarity of two strings
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return float64(score)
}
