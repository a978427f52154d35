package namesake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameMatchFacade(t *testing.T) {
	q := NewEntity("Person").Add("name", "Vladimir Putin")
	r := NewEntity("Person").Add("name", "Vladimir Pudin")

	res := NameMatch(q, r, nil)
	assert.GreaterOrEqual(t, res.Score, 0.95)
	assert.Less(t, res.Score, 1.0)
	assert.Equal(t, TypePerson, TypeTagOf(q, r))

	assert.Equal(t, 1.0, NameMatch(q, q, DefaultConfig()).Score)
}

func TestEntityNamesIdempotent(t *testing.T) {
	e, err := DecodeEntity([]byte(`{"id":"c1","schema":"Company","properties":{"name":["ABC Gesellschaft mit beschränkter Haftung","ABC GmbH"]}}`))
	require.NoError(t, err)

	first := EntityNames(TypeOrganization, e, true)
	second := EntityNames(TypeOrganization, e, true)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Form, second[0].Form)
	assert.Equal(t, "abc gmbh", first[0].Form)
}

func TestBuildingBlocks(t *testing.T) {
	q := EntityNames(TypeOrganization, NewEntity("Company").Add("name", "ABC Ltd"), true)
	r := EntityNames(TypeOrganization, NewEntity("Company").Add("name", "ABC GmbH"), false)
	require.Len(t, q, 1)
	require.Len(t, r, 1)

	pairings := GenerateSymbolPairings(q[0], r[0])
	require.NotEmpty(t, pairings)
	assert.Equal(t, 1, pairings[0].Len())

	score, detail := MatchNames(q[0], r[0], nil)
	assert.Greater(t, score, 0.9)
	assert.NotEmpty(t, detail)

	sims := WeightedEditSimilarity(q[0].Parts, q[0].Parts)
	assert.Equal(t, []float64{1, 1, 1, 1}, sims)
}
