package types

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// NameTypeTag is the matching-relevant classification of an entity schema
type NameTypeTag uint8

const (
	NameTypeUnknown NameTypeTag = iota
	NameTypePerson
	NameTypeOrganization
	NameTypeLegalEntity
	NameTypeObject
)

func (t NameTypeTag) String() string {
	switch t {
	case NameTypePerson:
		return "PER"
	case NameTypeOrganization:
		return "ORG"
	case NameTypeLegalEntity:
		return "ENT"
	case NameTypeObject:
		return "OBJ"
	default:
		return "UNK"
	}
}

// NamePartTag is the role a token plays inside a name
type NamePartTag uint8

const (
	PartUnset NamePartTag = iota
	PartGiven
	PartMiddle
	PartFamily
	PartPatronymic
	PartMatronymic
	PartHonorific
	PartSuffix
	PartNick
	PartNum
	PartLegal
)

var partTagNames = [...]string{
	PartUnset:      "UNSET",
	PartGiven:      "GIVEN",
	PartMiddle:     "MIDDLE",
	PartFamily:     "FAMILY",
	PartPatronymic: "PATRONYMIC",
	PartMatronymic: "MATRONYMIC",
	PartHonorific:  "HONORIFIC",
	PartSuffix:     "SUFFIX",
	PartNick:       "NICK",
	PartNum:        "NUM",
	PartLegal:      "LEGAL",
}

func (t NamePartTag) String() string {
	if int(t) < len(partTagNames) {
		return partTagNames[t]
	}
	return "NamePartTag(" + strconv.Itoa(int(t)) + ")"
}

// IsGivenLike reports whether the tag denotes a given-name style part
func (t NamePartTag) IsGivenLike() bool {
	switch t {
	case PartGiven, PartMiddle, PartPatronymic, PartMatronymic:
		return true
	}
	return false
}

// Compatible reports whether two parts with these tags may be aligned
// against each other when re-ordering person names
func (t NamePartTag) Compatible(other NamePartTag) bool {
	if t == PartUnset || other == PartUnset || t == other {
		return true
	}
	return t.IsGivenLike() && other.IsGivenLike()
}

// NamePart is one normalized token of a name. Identity is the full value
// (form, position and tag) so a part can be used as a set member.
type NamePart struct {
	Form  string
	Index int
	Tag   NamePartTag
}

// Len returns the length of the form in runes
func (p NamePart) Len() int {
	return utf8.RuneCountInString(p.Form)
}

// IsNumeric reports whether the part consists only of digits
func (p NamePart) IsNumeric() bool {
	if p.Form == "" {
		return false
	}
	for _, r := range p.Form {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p NamePart) String() string {
	return p.Form
}

// JoinParts joins the forms of parts with a single space
func JoinParts(parts []NamePart) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0].Form
	}
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Form)
	}
	return sb.String()
}

// Span marks a contiguous run of parts as carrying one symbol
type Span struct {
	Parts  []NamePart
	Symbol Symbol
}

// Comparable returns the space-joined forms of the span parts
func (s Span) Comparable() string {
	return JoinParts(s.Parts)
}

// PartsKey identifies the exact set of parts covered by the span
func (s Span) PartsKey() string {
	var sb strings.Builder
	for i, p := range s.Parts {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.Itoa(p.Index))
		sb.WriteByte(':')
		sb.WriteString(p.Form)
	}
	return sb.String()
}

// Covers reports whether the span includes the given part
func (s Span) Covers(part NamePart) bool {
	for _, p := range s.Parts {
		if p == part {
			return true
		}
	}
	return false
}

// CoversExactly reports whether the span parts equal parts (order-insensitive)
func (s Span) CoversExactly(parts []NamePart) bool {
	if len(s.Parts) != len(parts) {
		return false
	}
	for _, p := range parts {
		if !s.Covers(p) {
			return false
		}
	}
	return true
}

func (s Span) String() string {
	return s.Symbol.String() + "<" + s.Comparable() + ">"
}

// Name is an analyzed name: its parts and the symbol spans annotating them.
// Names are built once by the analyzer and are read-only afterwards; part
// tags must be assigned before any span is applied since spans hold copies.
type Name struct {
	Original string
	Form     string
	Tag      NameTypeTag
	Parts    []NamePart
	Spans    []Span
}

// NewName builds a name from already normalized tokens
func NewName(original string, tokens []string, tag NameTypeTag) *Name {
	parts := make([]NamePart, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		parts = append(parts, NamePart{Form: tok, Index: len(parts)})
	}
	return &Name{
		Original: original,
		Form:     JoinParts(parts),
		Tag:      tag,
		Parts:    parts,
	}
}

// Comparable returns the normalized form used for equality and containment
func (n *Name) Comparable() string {
	return n.Form
}

// Forms returns the part forms in order
func (n *Name) Forms() []string {
	forms := make([]string, len(n.Parts))
	for i, p := range n.Parts {
		forms[i] = p.Form
	}
	return forms
}

// TagText assigns tag to every untagged run of parts matching text.
// text must already be normalized into space-separated tokens.
func (n *Name) TagText(text string, tag NamePartTag) {
	tokens := strings.Fields(text)
	for _, start := range n.findRuns(tokens) {
		for i := start; i < start+len(tokens); i++ {
			if n.Parts[i].Tag == PartUnset {
				n.Parts[i].Tag = tag
			}
		}
	}
}

// ApplyPhrase adds a span for every run of parts matching phrase
func (n *Name) ApplyPhrase(phrase string, symbol Symbol) {
	tokens := strings.Fields(phrase)
	for _, start := range n.findRuns(tokens) {
		parts := make([]NamePart, len(tokens))
		copy(parts, n.Parts[start:start+len(tokens)])
		n.addSpan(Span{Parts: parts, Symbol: symbol})
	}
}

// ApplyPart adds a single-part span
func (n *Name) ApplyPart(part NamePart, symbol Symbol) {
	n.addSpan(Span{Parts: []NamePart{part}, Symbol: symbol})
}

func (n *Name) addSpan(span Span) {
	key := span.PartsKey()
	for _, existing := range n.Spans {
		if existing.Symbol == span.Symbol && existing.PartsKey() == key {
			return
		}
	}
	n.Spans = append(n.Spans, span)
}

func (n *Name) findRuns(tokens []string) []int {
	if len(tokens) == 0 || len(tokens) > len(n.Parts) {
		return nil
	}
	var starts []int
outer:
	for i := 0; i+len(tokens) <= len(n.Parts); i++ {
		for j, tok := range tokens {
			if n.Parts[i+j].Form != tok {
				continue outer
			}
		}
		starts = append(starts, i)
	}
	return starts
}

// Symbols returns the set of symbols present in the name's spans
func (n *Name) Symbols() map[Symbol]struct{} {
	syms := make(map[Symbol]struct{}, len(n.Spans))
	for _, span := range n.Spans {
		syms[span.Symbol] = struct{}{}
	}
	return syms
}

// SpansFor returns the spans covering part, in application order
func (n *Name) SpansFor(part NamePart) []Span {
	var spans []Span
	for _, span := range n.Spans {
		if span.Covers(part) {
			spans = append(spans, span)
		}
	}
	return spans
}

// ContainsName reports whether other's parts occur, in order, among n's parts
func (n *Name) ContainsName(other *Name) bool {
	if len(other.Parts) == 0 || len(other.Parts) > len(n.Parts) {
		return false
	}
	j := 0
	for _, p := range n.Parts {
		if p.Form == other.Parts[j].Form {
			j++
			if j == len(other.Parts) {
				return true
			}
		}
	}
	return false
}

func (n *Name) String() string {
	return "<Name(" + strconv.Quote(n.Original) + ", " + strconv.Quote(n.Form) + ", " + n.Tag.String() + ")>"
}
