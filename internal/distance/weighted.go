package distance

import (
	"math"
	"unicode"

	"github.com/standardbeagle/namesake/internal/types"
)

// Edit costs
const (
	CostEqual      = 0.0
	CostSeparator  = 0.2 // a space facing a gap: "vanderbilt" vs "van der bilt"
	CostConfusable = 0.6 // visually or phonetically similar characters
	CostDigit      = 1.5 // numbers carry identity, so editing them costs more
	CostDefault    = 1.0
)

const separator = ' '

var confusables = map[[2]rune]bool{}

func init() {
	pairs := [][2]rune{
		{'0', 'o'}, {'1', 'i'}, {'1', 'l'}, {'g', '9'}, {'q', '9'}, {'b', '6'},
		{'5', 's'}, {'e', 'i'}, {'o', 'u'}, {'i', 'j'}, {'i', 'y'}, {'c', 'k'},
	}
	for _, p := range pairs {
		confusables[p] = true
		confusables[[2]rune{p[1], p[0]}] = true
	}
}

// replaceCost prices substituting b for a
func replaceCost(a, b rune) float64 {
	if confusables[[2]rune{a, b}] {
		return CostConfusable
	}
	if unicode.IsDigit(a) || unicode.IsDigit(b) {
		return CostDigit
	}
	return CostDefault
}

// gapCost prices inserting or deleting r
func gapCost(r rune) float64 {
	if unicode.IsDigit(r) {
		return CostDigit
	}
	return CostDefault
}

// side is one joined string with the part index of every rune
type side struct {
	runes  []rune
	partOf []int // -1 for separators
}

func newSide(parts []types.NamePart) side {
	var s side
	for i, p := range parts {
		if i > 0 {
			s.runes = append(s.runes, separator)
			s.partOf = append(s.partOf, -1)
		}
		for _, r := range p.Form {
			s.runes = append(s.runes, r)
			s.partOf = append(s.partOf, i)
		}
	}
	return s
}

// alignment holds per-part edit costs for both sides plus the number of
// equal characters shared by every (query part, result part) combination
type alignment struct {
	qry, res side
	qryCosts [][]float64
	resCosts [][]float64
	overlap  [][]int
}

func align(qry, res []types.NamePart) *alignment {
	a := &alignment{
		qry:      newSide(qry),
		res:      newSide(res),
		qryCosts: make([][]float64, len(qry)),
		resCosts: make([][]float64, len(res)),
		overlap:  make([][]int, len(qry)),
	}
	for i := range a.overlap {
		a.overlap[i] = make([]int, len(res))
	}

	// current part on each side; separator gaps are charged to the part
	// the opposite side is in
	curQ, curR := 0, 0
	for _, op := range EditOps(a.qry.runes, a.res.runes) {
		qp, rp := -1, -1
		if op.APos >= 0 {
			qp = a.qry.partOf[op.APos]
			if qp >= 0 {
				curQ = qp
			}
		}
		if op.BPos >= 0 {
			rp = a.res.partOf[op.BPos]
			if rp >= 0 {
				curR = rp
			}
		}

		switch op.Kind {
		case OpEqual:
			if qp >= 0 && rp >= 0 {
				a.qryCosts[qp] = append(a.qryCosts[qp], CostEqual)
				a.resCosts[rp] = append(a.resCosts[rp], CostEqual)
				a.overlap[qp][rp]++
			}
		case OpReplace:
			c := replaceCost(a.qry.runes[op.APos], a.res.runes[op.BPos])
			if qp >= 0 {
				a.qryCosts[qp] = append(a.qryCosts[qp], c)
			}
			if rp >= 0 {
				a.resCosts[rp] = append(a.resCosts[rp], c)
			}
		case OpDelete:
			if qp < 0 {
				if len(a.resCosts) > 0 {
					a.resCosts[curR] = append(a.resCosts[curR], CostSeparator)
				}
				continue
			}
			a.qryCosts[qp] = append(a.qryCosts[qp], gapCost(a.qry.runes[op.APos]))
		case OpInsert:
			if rp < 0 {
				if len(a.qryCosts) > 0 {
					a.qryCosts[curQ] = append(a.qryCosts[curQ], CostSeparator)
				}
				continue
			}
			a.resCosts[rp] = append(a.resCosts[rp], gapCost(a.res.runes[op.BPos]))
		}
	}
	return a
}

// costSimilarity turns accumulated edit costs into a similarity: 1 for no
// edits, 0 once the costs exceed the log-scaled budget, otherwise
// 1 - total/len(costs). Separator gaps charged to a part count as entries.
func costSimilarity(costs []float64) float64 {
	n := len(costs)
	if n == 0 {
		return 0
	}
	total := 0.0
	for _, c := range costs {
		total += c
	}
	if total == 0 {
		return 1
	}
	maxCost := math.Log(math.Max(float64(n-2), 1))
	if total > maxCost {
		return 0
	}
	return 1 - total/float64(n)
}

// WeightedEditSimilarity scores every part of both sides by the weighted
// character edits needed to align the joined query with the joined result.
// The query similarities come first, then the result similarities.
func WeightedEditSimilarity(qry, res []types.NamePart) []float64 {
	if len(qry) == 0 && len(res) == 0 {
		return []float64{}
	}
	if len(qry) == 0 || len(res) == 0 {
		return make([]float64, len(qry)+len(res))
	}

	a := align(qry, res)
	out := make([]float64, 0, len(qry)+len(res))
	for i := range qry {
		out = append(out, costSimilarity(a.qryCosts[i]))
	}
	for i := range res {
		out = append(out, costSimilarity(a.resCosts[i]))
	}
	return out
}

// Align groups leftover parts that share characters and scores each group
// by its joined edit costs. A query part and a result part join the same
// group when their equal characters cover at least half of the shorter
// part. Parts left alone become extra matches with score 0.
func Align(qry, res []types.NamePart) []types.Match {
	if len(qry) == 0 && len(res) == 0 {
		return nil
	}
	if len(qry) == 0 || len(res) == 0 {
		return extras(qry, res)
	}

	a := align(qry, res)

	// union-find over query parts [0, len(qry)) and result parts after them
	parent := make([]int, len(qry)+len(res))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for i, qp := range qry {
		for j, rp := range res {
			shorter := min(qp.Len(), rp.Len())
			if a.overlap[i][j] > 0 && 2*a.overlap[i][j] >= shorter {
				parent[find(i)] = find(len(qry) + j)
			}
		}
	}

	type group struct {
		qps   []types.NamePart
		rps   []types.NamePart
		costs []float64
	}
	groups := make(map[int]*group)
	var order []int
	member := func(root int) *group {
		g, ok := groups[root]
		if !ok {
			g = &group{}
			groups[root] = g
			order = append(order, root)
		}
		return g
	}
	for i, p := range qry {
		g := member(find(i))
		g.qps = append(g.qps, p)
		g.costs = append(g.costs, a.qryCosts[i]...)
	}
	for j, p := range res {
		g := member(find(len(qry) + j))
		g.rps = append(g.rps, p)
		g.costs = append(g.costs, a.resCosts[j]...)
	}

	var matches, extraQry, extraRes []types.Match
	for _, root := range order {
		g := groups[root]
		switch {
		case len(g.qps) > 0 && len(g.rps) > 0:
			matches = append(matches, types.NewMatch(g.qps, g.rps, nil, costSimilarity(g.costs)))
		case len(g.qps) > 0:
			for _, p := range g.qps {
				extraQry = append(extraQry, types.NewMatch([]types.NamePart{p}, nil, nil, 0))
			}
		default:
			for _, p := range g.rps {
				extraRes = append(extraRes, types.NewMatch(nil, []types.NamePart{p}, nil, 0))
			}
		}
	}
	matches = append(matches, extraQry...)
	return append(matches, extraRes...)
}

func extras(qry, res []types.NamePart) []types.Match {
	out := make([]types.Match, 0, len(qry)+len(res))
	for _, p := range qry {
		out = append(out, types.NewMatch([]types.NamePart{p}, nil, nil, 0))
	}
	for _, p := range res {
		out = append(out, types.NewMatch(nil, []types.NamePart{p}, nil, 0))
	}
	return out
}
