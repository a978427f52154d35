package names

import "github.com/standardbeagle/namesake/internal/symbols"

// Normalize returns the NFC, lower-cased form of a raw name
func Normalize(raw string) string {
	return symbols.Normalize(raw)
}

// Tokenize splits a raw name into normalized tokens
func Tokenize(raw string) []string {
	return symbols.Tokenize(raw)
}

// Comparable returns the normalized space-joined form of a raw name
func Comparable(raw string) string {
	return symbols.Comparable(raw)
}
