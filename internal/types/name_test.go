package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNameJoinsForms(t *testing.T) {
	n := NewName("John  K. Smith", []string{"john", "", "k", "smith"}, NameTypePerson)

	require.Len(t, n.Parts, 3)
	assert.Equal(t, "john k smith", n.Comparable())
	for i, p := range n.Parts {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, PartUnset, p.Tag)
	}
}

func TestTagTextOnlyTagsUnsetParts(t *testing.T) {
	n := NewName("", []string{"maria", "de", "la", "cruz", "cruz"}, NameTypePerson)
	n.TagText("cruz", PartFamily)
	n.TagText("maria", PartGiven)
	n.TagText("maria", PartMiddle)

	assert.Equal(t, PartGiven, n.Parts[0].Tag)
	assert.Equal(t, PartUnset, n.Parts[1].Tag)
	assert.Equal(t, PartFamily, n.Parts[3].Tag)
	assert.Equal(t, PartFamily, n.Parts[4].Tag)
}

func TestApplyPhraseAddsSpanPerOccurrence(t *testing.T) {
	n := NewName("", []string{"bank", "of", "new", "york", "new", "york"}, NameTypeOrganization)
	sym := NewSymbol(CategoryLocation, "NY")
	n.ApplyPhrase("new york", sym)
	n.ApplyPhrase("new york", sym)

	require.Len(t, n.Spans, 2)
	assert.Equal(t, "new york", n.Spans[0].Comparable())
	assert.Equal(t, 2, n.Spans[0].Parts[0].Index)
	assert.Equal(t, 4, n.Spans[1].Parts[0].Index)

	_, ok := n.Symbols()[sym]
	assert.True(t, ok)
	assert.Len(t, n.SpansFor(n.Parts[3]), 1)
	assert.Empty(t, n.SpansFor(n.Parts[0]))
}

func TestContainsName(t *testing.T) {
	long := NewName("", []string{"john", "k", "smith"}, NameTypePerson)
	short := NewName("", []string{"john", "smith"}, NameTypePerson)
	reversed := NewName("", []string{"smith", "john"}, NameTypePerson)

	assert.True(t, long.ContainsName(short))
	assert.False(t, short.ContainsName(long))
	assert.False(t, long.ContainsName(reversed))
	assert.True(t, short.ContainsName(short))
}

func TestSpanCoversExactly(t *testing.T) {
	n := NewName("", []string{"acme", "holding", "ltd"}, NameTypeOrganization)
	span := Span{Parts: n.Parts[1:3], Symbol: NewSymbol(CategoryOrgSymbol, "HOLDING")}

	assert.True(t, span.CoversExactly([]NamePart{n.Parts[2], n.Parts[1]}))
	assert.False(t, span.CoversExactly(n.Parts[1:2]))
	assert.Equal(t, "1:holding|2:ltd", span.PartsKey())
}

func TestTagCompatibility(t *testing.T) {
	assert.True(t, PartGiven.Compatible(PartMiddle))
	assert.True(t, PartUnset.Compatible(PartFamily))
	assert.False(t, PartGiven.Compatible(PartFamily))
	assert.True(t, PartFamily.Compatible(PartFamily))
}

func TestMatchFamilyNameAndString(t *testing.T) {
	q := []NamePart{{Form: "putin", Index: 1, Tag: PartFamily}}
	r := []NamePart{{Form: "pudin", Index: 1}}
	sym := NewSymbol(CategoryPhonetic, "PTN")
	m := NewMatch(q, r, &sym, 0.5)

	assert.True(t, m.IsFamilyName())
	assert.Equal(t, 0.5, m.WeightedScore())
	assert.Equal(t, "[putin~pudin PHON 0.50/1.00]", m.String())
	assert.Equal(t, "[ORGCLS:LLC]", NewSymbol(CategoryOrgClass, "LLC").String())
}
