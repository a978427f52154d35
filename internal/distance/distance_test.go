package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/namesake/internal/types"
)

func parts(forms ...string) []types.NamePart {
	out := make([]types.NamePart, len(forms))
	for i, f := range forms {
		out[i] = types.NamePart{Form: f, Index: i}
	}
	return out
}

func TestEditOps(t *testing.T) {
	ops := EditOps([]rune("kitten"), []rune("sitting"))
	assert.Equal(t, 3, Distance(ops))

	var a, b []rune
	for _, op := range ops {
		if op.APos >= 0 {
			a = append(a, []rune("kitten")[op.APos])
		}
		if op.BPos >= 0 {
			b = append(b, []rune("sitting")[op.BPos])
		}
	}
	assert.Equal(t, "kitten", string(a), "script must visit every rune of a in order")
	assert.Equal(t, "sitting", string(b), "script must visit every rune of b in order")

	assert.Empty(t, EditOps(nil, nil))
	ops = EditOps(nil, []rune("ab"))
	require.Len(t, ops, 2)
	assert.Equal(t, OpInsert, ops[0].Kind)
	assert.Equal(t, -1, ops[0].APos)
}

func TestWeightedEditSimilarityIdentical(t *testing.T) {
	p := parts("vladimir", "putin")
	assert.Equal(t, []float64{1, 1, 1, 1}, WeightedEditSimilarity(p, p))
}

func TestWeightedEditSimilarityEmptySides(t *testing.T) {
	assert.Empty(t, WeightedEditSimilarity(nil, nil))
	assert.Equal(t, []float64{0, 0}, WeightedEditSimilarity(nil, parts("vladimir", "putin")))
	assert.Equal(t, []float64{0}, WeightedEditSimilarity(parts("putin"), nil))
}

func TestCostSimilarity(t *testing.T) {
	assert.Equal(t, 0.0, costSimilarity(nil))
	assert.Equal(t, 1.0, costSimilarity([]float64{0, 0, 0}))
	// every entry counts, including separator gaps beyond the part's letters
	assert.InDelta(t, 1-0.4/12, costSimilarity([]float64{0, 0, 0, 0.2, 0, 0, 0, 0.2, 0, 0, 0, 0}), 1e-9)
	// budget is ln(len-2): 1.5 exceeds ln(3)
	assert.Equal(t, 0.0, costSimilarity([]float64{0, 1.5, 0, 0, 0}))
}

func TestWeightedEditSimilarityCosts(t *testing.T) {
	tests := []struct {
		name string
		qry  []types.NamePart
		res  []types.NamePart
		want []float64
	}{
		{
			name: "separator against gap",
			qry:  parts("vanderbilt"),
			res:  parts("van", "der", "bilt"),
			// ten letters plus two charged separator gaps
			want: []float64{1 - 0.4/12, 1, 1, 1},
		},
		{
			name: "confusable characters",
			qry:  parts("b0ris"),
			res:  parts("boris"),
			want: []float64{0.88, 0.88},
		},
		{
			name: "plain substitution",
			qry:  parts("bxris"),
			res:  parts("boris"),
			want: []float64{0.8, 0.8},
		},
		{
			name: "digit edits exceed the budget",
			qry:  parts("a1"),
			res:  parts("a2"),
			want: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedEditSimilarity(tt.qry, tt.res)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9, "part %d", i)
			}
		})
	}
}

func TestAlignGroupsSharedCharacters(t *testing.T) {
	matches := Align(parts("jon", "smith"), parts("john", "smyth"))
	require.Len(t, matches, 2)

	assert.Equal(t, "jon", matches[0].QueryText())
	assert.Equal(t, "john", matches[0].ResultText())
	assert.InDelta(t, 1-1.0/7, matches[0].Score, 1e-9)
	assert.Nil(t, matches[0].Symbol)

	assert.Equal(t, "smith", matches[1].QueryText())
	assert.Equal(t, "smyth", matches[1].ResultText())
	assert.InDelta(t, 0.88, matches[1].Score, 1e-9)
}

func TestAlignExtras(t *testing.T) {
	matches := Align(parts("acme"), parts("zzzz"))
	require.Len(t, matches, 2)
	assert.Equal(t, "acme", matches[0].QueryText())
	assert.Empty(t, matches[0].RPs)
	assert.Equal(t, 0.0, matches[0].Score)
	assert.Empty(t, matches[1].QPs)
	assert.Equal(t, "zzzz", matches[1].ResultText())

	assert.Nil(t, Align(nil, nil))
	only := Align(nil, parts("acme", "corp"))
	require.Len(t, only, 2)
	assert.Empty(t, only[0].QPs)
	assert.Empty(t, only[1].QPs)
}

func TestLevenshteinSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, LevenshteinSimilarity("putin", "putin"))
	assert.Equal(t, 0.0, LevenshteinSimilarity("", "putin"))
	assert.InDelta(t, 0.64, LevenshteinSimilarity("putin", "pudin"), 1e-9)
	assert.Equal(t, 0.0, LevenshteinSimilarity("abc", "xyz"))
}

func TestStrictLevenshtein(t *testing.T) {
	assert.Equal(t, 1.0, StrictLevenshtein("abc", "abc", DefaultStrictRate))
	assert.Equal(t, 0.0, StrictLevenshtein("abc", "ab", DefaultStrictRate))
	assert.InDelta(t, 0.765625, StrictLevenshtein("abcdefgh", "abcdefgx", DefaultStrictRate), 1e-9)
	assert.Equal(t, StrictLevenshtein("abcdefgh", "abcdefgx", 4), StrictLevenshtein("abcdefgh", "abcdefgx", 0))
}

func TestJaroWinkler(t *testing.T) {
	assert.Equal(t, 1.0, JaroWinkler("martha", "martha"))
	assert.Equal(t, 0.0, JaroWinkler("", "martha"))
	assert.InDelta(t, 0.961, JaroWinkler("martha", "marhta"), 0.01)
}
