package symbols

import (
	"slices"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/surgebase/porter2"

	"github.com/standardbeagle/namesake/internal/types"
)

// minPhoneticLength is the shortest folded part given a phonetic code
const minPhoneticLength = 3

// TagOrganization annotates an organization or legal entity name with legal
// form (ORG_TYPE and ORG_CLASS), generic word (ORG_SYMBOL), location and
// number symbols
func (d *Dictionaries) TagOrganization(name *types.Name) {
	forms := name.Forms()
	d.orgPhrases.Apply(name, forms)

	folded := foldAll(forms)
	if !slices.Equal(folded, forms) {
		d.orgPhrases.Apply(name, folded)
	}

	for i, part := range name.Parts {
		key := folded[i]
		if !IsASCIILetters(key) || len(key) < minStemLength {
			continue
		}
		for _, sym := range d.orgStems[porter2.Stem(key)] {
			name.ApplyPart(part, sym)
		}
	}

	d.tagNumbers(name, folded)
}

// TagPerson annotates a person name with particles and suffixes
// (PER_SYMBOL), known given names (PER_NAME), nicknames (NICK), numbers and
// Double Metaphone codes (PHONETIC)
func (d *Dictionaries) TagPerson(name *types.Name) {
	forms := name.Forms()
	d.personPhrases.Apply(name, forms)

	folded := foldAll(forms)
	if !slices.Equal(folded, forms) {
		d.personPhrases.Apply(name, folded)
	}

	d.tagNumbers(name, folded)

	for i, part := range name.Parts {
		for _, code := range PhoneticCodes(folded[i]) {
			name.ApplyPart(part, types.NewSymbol(types.CategoryPhonetic, code))
		}
	}
}

// PhoneticCodes returns the distinct Double Metaphone codes of a folded
// token, or nil when the token is too short or not plain latin letters
func PhoneticCodes(token string) []string {
	if len(token) < minPhoneticLength || !IsASCIILetters(token) {
		return nil
	}
	primary, secondary := matchr.DoubleMetaphone(token)
	var codes []string
	if primary != "" {
		codes = append(codes, primary)
	}
	if secondary != "" && secondary != primary {
		codes = append(codes, secondary)
	}
	return codes
}

// tagNumbers adds NUMERIC symbols for digit runs and number words and
// ORDINAL symbols for ordinal words and digit ordinals ("3rd")
func (d *Dictionaries) tagNumbers(name *types.Name, folded []string) {
	d.numberWords.Apply(name, folded)

	for i, part := range name.Parts {
		key := folded[i]
		if IsDigits(key) {
			name.ApplyPart(part, types.NewSymbol(types.CategoryNumeric, canonicalNumber(key)))
			continue
		}
		if n, ok := digitOrdinal(key); ok {
			name.ApplyPart(part, types.NewSymbol(types.CategoryOrdinal, n))
		}
	}
}

// canonicalNumber drops leading zeros so "007" and "7" share a symbol
func canonicalNumber(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func digitOrdinal(token string) (string, bool) {
	if len(token) < 3 {
		return "", false
	}
	suffix := token[len(token)-2:]
	switch suffix {
	case "st", "nd", "rd", "th":
	default:
		return "", false
	}
	digits := token[:len(token)-2]
	if !IsDigits(digits) {
		return "", false
	}
	if _, err := strconv.Atoi(digits); err != nil {
		return "", false
	}
	return canonicalNumber(digits), true
}

func foldAll(forms []string) []string {
	out := make([]string, len(forms))
	for i, f := range forms {
		out[i] = Fold(f)
	}
	return out
}
