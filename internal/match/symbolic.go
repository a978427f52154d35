package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/standardbeagle/namesake/internal/config"
	"github.com/standardbeagle/namesake/internal/debug"
	"github.com/standardbeagle/namesake/internal/distance"
	"github.com/standardbeagle/namesake/internal/pairing"
	"github.com/standardbeagle/namesake/internal/symbols"
	"github.com/standardbeagle/namesake/internal/types"
)

// MatchNameSymbolic scores two analyzed names. Every symbol pairing is
// completed with an edit alignment of its leftover parts; the best scoring
// pairing wins and the first one is kept on ties.
func MatchNameSymbolic(query, result *types.Name, cfg *config.ScoringConfig) (float64, string) {
	if cfg == nil {
		cfg = config.Default()
	}
	dict := symbols.Default()

	bestScore := 0.0
	var best []types.Match
	found := false
	for _, p := range pairing.GenerateSymbolPairings(query, result) {
		matches := p.Matches()

		qLeft := p.QueryLeftovers(query)
		rLeft := p.ResultLeftovers(result)
		if len(qLeft) > 0 || len(rLeft) > 0 {
			if query.Tag == types.NameTypePerson {
				qLeft, rLeft = alignPersonNameOrder(qLeft, rLeft)
			} else {
				qLeft, rLeft = sortByTag(qLeft), sortByTag(rLeft)
			}
			matches = append(matches, distance.Align(qLeft, rLeft)...)
		}

		for i := range matches {
			weigh(&matches[i], query, result, cfg, dict)
		}
		score := pairingScore(matches)
		if !found || score > bestScore {
			found = true
			bestScore = score
			best = matches
		}
	}

	detail := explain(query, result, best)
	debug.LogMatch("%s ~ %s: %.3f %s", query.Form, result.Form, bestScore, detail)
	return bestScore, detail
}

// weigh sets the score and weight of one match in place
func weigh(m *types.Match, query, result *types.Name, cfg *config.ScoringConfig, dict *symbols.Dictionaries) {
	switch {
	case len(m.QPs) == 0:
		m.Weight = cfg.ExtraResultName * extraBias(result, m.RPs, dict)
	case len(m.RPs) == 0:
		m.Weight = cfg.ExtraQueryName * extraBias(query, m.QPs, dict)
	case m.Symbol != nil:
		m.Score = categoryScore(m.Symbol.Category)
		m.Weight = categoryWeight(m.Symbol.Category)
	}

	if m.QueryText() == m.ResultText() {
		m.Score = 1.0
	}
	// Applies to extras as well: a missing family name costs more
	if m.IsFamilyName() {
		m.Weight *= cfg.FamilyNameWeight
	}
}

// extraBias discounts parts present on one side only: half for a lone
// stop-word, otherwise the extra weight of a span covering exactly those parts
func extraBias(name *types.Name, parts []types.NamePart, dict *symbols.Dictionaries) float64 {
	if len(parts) == 1 && dict.IsStopword(parts[0].Form) {
		return stopwordBias
	}
	for _, span := range name.Spans {
		if span.CoversExactly(parts) {
			return extraWeight(span.Symbol.Category)
		}
	}
	return 1.0
}

func pairingScore(matches []types.Match) float64 {
	var total, weights float64
	for _, m := range matches {
		total += m.WeightedScore()
		weights += m.Weight
	}
	if weights == 0 {
		return 0
	}
	return total / weights
}

func explain(query, result *types.Name, matches []types.Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("[%s vs %s: no match]", query.Form, result.Form)
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.String()
	}
	return strings.Join(out, " ")
}

func sortByTag(parts []types.NamePart) []types.NamePart {
	out := append([]types.NamePart(nil), parts...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tag < out[j].Tag
	})
	return out
}

// alignPersonNameOrder reorders leftover person name parts so the most
// similar tag-compatible parts line up. Pairs are chosen greedily by
// Jaro-Winkler similarity and emitted first, in query order; unpaired parts
// follow in their original order.
func alignPersonNameOrder(qry, res []types.NamePart) ([]types.NamePart, []types.NamePart) {
	if len(qry) == 0 || len(res) == 0 {
		return qry, res
	}

	type candidate struct {
		qi, ri int
		score  float64
	}
	var candidates []candidate
	for qi, q := range qry {
		for ri, r := range res {
			if !q.Tag.Compatible(r.Tag) {
				continue
			}
			if s := distance.JaroWinkler(q.Form, r.Form); s > 0 {
				candidates = append(candidates, candidate{qi, ri, s})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	pairedWith := make(map[int]int)
	resUsed := make(map[int]bool)
	for _, c := range candidates {
		if _, ok := pairedWith[c.qi]; ok || resUsed[c.ri] {
			continue
		}
		pairedWith[c.qi] = c.ri
		resUsed[c.ri] = true
	}

	outQ := make([]types.NamePart, 0, len(qry))
	outR := make([]types.NamePart, 0, len(res))
	for qi, q := range qry {
		if ri, ok := pairedWith[qi]; ok {
			outQ = append(outQ, q)
			outR = append(outR, res[ri])
		}
	}
	for qi, q := range qry {
		if _, ok := pairedWith[qi]; !ok {
			outQ = append(outQ, q)
		}
	}
	for ri, r := range res {
		if !resUsed[ri] {
			outR = append(outR, r)
		}
	}
	return outQ, outR
}
