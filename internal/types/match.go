package types

import "fmt"

// Match aligns query parts with result parts. A match with no query parts
// (or no result parts) describes an extra part present only on the other side.
type Match struct {
	QPs    []NamePart
	RPs    []NamePart
	Symbol *Symbol
	Score  float64
	Weight float64
}

// NewMatch creates a match with unit weight
func NewMatch(qps, rps []NamePart, symbol *Symbol, score float64) Match {
	return Match{QPs: qps, RPs: rps, Symbol: symbol, Score: score, Weight: 1.0}
}

// WeightedScore returns Score * Weight
func (m Match) WeightedScore() float64 {
	return m.Score * m.Weight
}

// QueryText returns the space-joined query side forms
func (m Match) QueryText() string {
	return JoinParts(m.QPs)
}

// ResultText returns the space-joined result side forms
func (m Match) ResultText() string {
	return JoinParts(m.RPs)
}

// IsFamilyName reports whether any part on either side is tagged as a family name
func (m Match) IsFamilyName() bool {
	for _, p := range m.QPs {
		if p.Tag == PartFamily {
			return true
		}
	}
	for _, p := range m.RPs {
		if p.Tag == PartFamily {
			return true
		}
	}
	return false
}

func (m Match) String() string {
	sym := ""
	if m.Symbol != nil {
		sym = " " + m.Symbol.Category.String()
	}
	return fmt.Sprintf("[%s~%s%s %.2f/%.2f]", m.QueryText(), m.ResultText(), sym, m.Score, m.Weight)
}
