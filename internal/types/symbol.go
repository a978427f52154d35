package types

import "fmt"

// Category classifies the kind of structure a Symbol represents
type Category uint8

const (
	CategoryOrgClass Category = iota
	CategoryOrgType
	CategoryOrgSymbol
	CategoryPerSymbol
	CategoryPerName
	CategoryInitial
	CategoryNick
	CategoryNumeric
	CategoryOrdinal
	CategoryLocation
	CategoryPhonetic
)

var categoryNames = [...]string{
	CategoryOrgClass:  "ORGCLS",
	CategoryOrgType:   "ORGTYPE",
	CategoryOrgSymbol: "ORGSYM",
	CategoryPerSymbol: "PERSYM",
	CategoryPerName:   "NAME",
	CategoryInitial:   "INITIAL",
	CategoryNick:      "NICK",
	CategoryNumeric:   "NUM",
	CategoryOrdinal:   "ORD",
	CategoryLocation:  "LOC",
	CategoryPhonetic:  "PHON",
}

// String returns the short upper-case label used in match explanations
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// IsSymbolic reports whether the category marks a generic symbol word
// (organization or person symbol) rather than a name-specific annotation
func (c Category) IsSymbolic() bool {
	return c == CategoryOrgSymbol || c == CategoryPerSymbol
}

// Symbol is a semantic annotation applied to one or more name parts.
// Two symbols are equal iff category and id match, so Symbol can be used
// directly as a map key.
type Symbol struct {
	Category Category
	ID       string
}

// NewSymbol creates a symbol
func NewSymbol(category Category, id string) Symbol {
	return Symbol{Category: category, ID: id}
}

func (s Symbol) String() string {
	return "[" + s.Category.String() + ":" + s.ID + "]"
}
