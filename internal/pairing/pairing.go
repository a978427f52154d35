package pairing

import (
	nserrors "github.com/standardbeagle/namesake/internal/errors"
	"github.com/standardbeagle/namesake/internal/types"
)

// Pairing is a set of non-overlapping symbol matches between a query name
// and a result name. It is persistent: Add returns a new value and never
// modifies the receiver.
type Pairing struct {
	queryUsed  map[types.NamePart]struct{}
	resultUsed map[types.NamePart]struct{}
	matches    []types.Match
	symbols    []types.Symbol
}

// Empty returns a pairing with no matches
func Empty() Pairing {
	return Pairing{}
}

// CanPair reports whether two spans can join the pairing: none of their
// parts may be used yet, and initials only pair with a single-letter part
func (p Pairing) CanPair(q, r types.Span) bool {
	for _, part := range q.Parts {
		if _, ok := p.queryUsed[part]; ok {
			return false
		}
	}
	for _, part := range r.Parts {
		if _, ok := p.resultUsed[part]; ok {
			return false
		}
	}
	if q.Symbol.Category == types.CategoryInitial && len(q.Parts) > 0 && len(r.Parts) > 0 {
		if q.Parts[0].Len() > 1 && r.Parts[0].Len() > 1 {
			return false
		}
	}
	return true
}

// Add returns a new pairing extended by the match of q and r. Claiming a
// part that is already used panics with *errors.InvariantError.
func (p Pairing) Add(q, r types.Span) Pairing {
	next := Pairing{
		queryUsed:  make(map[types.NamePart]struct{}, len(p.queryUsed)+len(q.Parts)),
		resultUsed: make(map[types.NamePart]struct{}, len(p.resultUsed)+len(r.Parts)),
		matches:    make([]types.Match, len(p.matches), len(p.matches)+1),
		symbols:    make([]types.Symbol, len(p.symbols), len(p.symbols)+1),
	}
	for part := range p.queryUsed {
		next.queryUsed[part] = struct{}{}
	}
	for part := range p.resultUsed {
		next.resultUsed[part] = struct{}{}
	}
	copy(next.matches, p.matches)
	copy(next.symbols, p.symbols)

	for _, part := range q.Parts {
		if _, ok := next.queryUsed[part]; ok {
			panic(nserrors.NewInvariantError("pairing", "query part %q (index %d) already used", part.Form, part.Index))
		}
		next.queryUsed[part] = struct{}{}
	}
	for _, part := range r.Parts {
		if _, ok := next.resultUsed[part]; ok {
			panic(nserrors.NewInvariantError("pairing", "result part %q (index %d) already used", part.Form, part.Index))
		}
		next.resultUsed[part] = struct{}{}
	}

	sym := q.Symbol
	next.matches = append(next.matches, types.NewMatch(q.Parts, r.Parts, &sym, 0))
	next.symbols = append(next.symbols, sym)
	return next
}

// Len returns the number of symbol matches
func (p Pairing) Len() int {
	return len(p.matches)
}

// Matches returns a copy of the symbol matches in the order they were added
func (p Pairing) Matches() []types.Match {
	out := make([]types.Match, len(p.matches))
	copy(out, p.matches)
	return out
}

// Symbols returns the matched symbols in the order they were added
func (p Pairing) Symbols() []types.Symbol {
	out := make([]types.Symbol, len(p.symbols))
	copy(out, p.symbols)
	return out
}

// QueryUsed reports whether a query part is covered by a match
func (p Pairing) QueryUsed(part types.NamePart) bool {
	_, ok := p.queryUsed[part]
	return ok
}

// ResultUsed reports whether a result part is covered by a match
func (p Pairing) ResultUsed(part types.NamePart) bool {
	_, ok := p.resultUsed[part]
	return ok
}

// QueryLeftovers returns the parts of the query name no match covers
func (p Pairing) QueryLeftovers(query *types.Name) []types.NamePart {
	return leftovers(query, p.queryUsed)
}

// ResultLeftovers returns the parts of the result name no match covers
func (p Pairing) ResultLeftovers(result *types.Name) []types.NamePart {
	return leftovers(result, p.resultUsed)
}

func leftovers(name *types.Name, used map[types.NamePart]struct{}) []types.NamePart {
	var out []types.NamePart
	for _, part := range name.Parts {
		if _, ok := used[part]; !ok {
			out = append(out, part)
		}
	}
	return out
}
