package match

import "github.com/standardbeagle/namesake/internal/types"

// categoryScores is the score of a symbol match by category. A symbol match
// whose two sides are spelled identically scores 1.0 regardless.
var categoryScores = map[types.Category]float64{
	types.CategoryOrgClass:  0.95,
	types.CategoryOrgType:   1.0,
	types.CategoryOrgSymbol: 0.9,
	types.CategoryPerSymbol: 0.9,
	types.CategoryPerName:   0.9,
	types.CategoryInitial:   0.9,
	types.CategoryNick:      0.75,
	types.CategoryNumeric:   1.0,
	types.CategoryOrdinal:   0.95,
	types.CategoryLocation:  0.9,
	types.CategoryPhonetic:  0.92,
}

// categoryWeights is the weight of a symbol match by category
var categoryWeights = map[types.Category]float64{
	types.CategoryPerName:   1.0,
	types.CategoryPhonetic:  0.9,
	types.CategoryOrgClass:  0.7,
	types.CategoryInitial:   0.5,
	types.CategoryNick:      0.8,
	types.CategoryOrgSymbol: 0.7,
	types.CategoryPerSymbol: 0.7,
	types.CategoryNumeric:   1.3,
	types.CategoryLocation:  0.8,
}

// extraWeights scales the weight of a part present on one side only when a
// span of that category covers it. Missing generic symbol words ("holding",
// "group", "bin") are weak evidence against a match.
var extraWeights = map[types.Category]float64{
	types.CategoryPerName:   1.0,
	types.CategoryPhonetic:  0.9,
	types.CategoryOrgClass:  0.7,
	types.CategoryInitial:   0.5,
	types.CategoryNick:      0.8,
	types.CategoryOrgSymbol: 0.5,
	types.CategoryPerSymbol: 0.5,
	types.CategoryNumeric:   1.3,
	types.CategoryLocation:  0.8,
}

// stopwordBias halves the weight of a single extra stop-word part
const stopwordBias = 0.5

func categoryScore(c types.Category) float64 {
	if s, ok := categoryScores[c]; ok {
		return s
	}
	return 1.0
}

func categoryWeight(c types.Category) float64 {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return 1.0
}

func extraWeight(c types.Category) float64 {
	if w, ok := extraWeights[c]; ok {
		return w
	}
	return 1.0
}
