package pairing

import (
	"github.com/standardbeagle/namesake/internal/debug"
	"github.com/standardbeagle/namesake/internal/types"
)

// seenKey identifies a span combination already incorporated by the search
type seenKey struct {
	query    string
	result   string
	category types.Category
}

// GenerateSymbolPairings searches for the non-overlapping alignments of the
// symbols two names share. The result is never empty: names with nothing in
// common yield a single empty pairing.
//
// Query parts are visited in order. Every span covering the part is tried
// against every result span with the same symbol, on every pairing in the
// worklist. When the part produced at least one extension the worklist is
// replaced by the extensions, otherwise it carries over unchanged. A span
// combination extends every pairing that can take it, and once incorporated
// it is not revisited for later parts of the same span.
func GenerateSymbolPairings(query, result *types.Name) []Pairing {
	querySymbols := query.Symbols()
	resultMap := make(map[types.Symbol][]types.Span)
	for _, span := range result.Spans {
		if _, ok := querySymbols[span.Symbol]; ok {
			resultMap[span.Symbol] = append(resultMap[span.Symbol], span)
		}
	}

	pairings := []Pairing{Empty()}
	if len(resultMap) == 0 {
		return pairings
	}

	seen := make(map[seenKey]struct{})
	for _, part := range query.Parts {
		var next []Pairing
		for _, qspan := range query.SpansFor(part) {
			for _, rspan := range resultMap[qspan.Symbol] {
				key := seenKey{qspan.PartsKey(), rspan.PartsKey(), qspan.Symbol.Category}
				if _, done := seen[key]; done {
					continue
				}
				extended := false
				for _, pairing := range pairings {
					if !pairing.CanPair(qspan, rspan) {
						continue
					}
					next = append(next, pairing.Add(qspan, rspan))
					extended = true
				}
				if extended {
					seen[key] = struct{}{}
				}
			}
		}
		if len(next) > 0 {
			pairings = next
		}
	}

	debug.Log("PAIRING", "%s ~ %s: %d pairings", query.Form, result.Form, len(pairings))
	return pairings
}
