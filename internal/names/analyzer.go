package names

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/namesake/internal/cache"
	"github.com/standardbeagle/namesake/internal/debug"
	"github.com/standardbeagle/namesake/internal/entity"
	"github.com/standardbeagle/namesake/internal/symbols"
	"github.com/standardbeagle/namesake/internal/types"
)

// personField maps a structured person property to the tag its tokens get
type personField struct {
	prop string
	tag  types.NamePartTag
}

// Tagging order matters: TagText only tags parts that are still unset
var personFields = []personField{
	{"firstName", types.PartGiven},
	{"secondName", types.PartMiddle},
	{"middleName", types.PartMiddle},
	{"lastName", types.PartFamily},
	{"fatherName", types.PartPatronymic},
	{"motherName", types.PartMatronymic},
	{"title", types.PartHonorific},
	{"nameSuffix", types.PartSuffix},
	{"weakAlias", types.PartNick},
}

// composeFields builds a name for persons that only carry structured fields
var composeFields = []string{"firstName", "secondName", "middleName", "fatherName", "lastName"}

// Analyzer turns entities into analyzed names
type Analyzer struct {
	dict  *symbols.Dictionaries
	cache *cache.NameCache
}

// NewAnalyzer creates an analyzer. A positive cacheSize keeps that many
// analyzed entities; zero disables caching.
func NewAnalyzer(cacheSize int) *Analyzer {
	a := &Analyzer{dict: symbols.Default()}
	if cacheSize > 0 {
		a.cache = cache.NewNameCache(cacheSize)
	}
	return a
}

// defaultAnalyzer has no cache; its dictionaries resolve on first use
var defaultAnalyzer = &Analyzer{}

func (a *Analyzer) dictionaries() *symbols.Dictionaries {
	if a.dict != nil {
		return a.dict
	}
	return symbols.Default()
}

// EntityNames analyzes an entity without caching
func EntityNames(tag types.NameTypeTag, e entity.Entity, isQuery bool) []*types.Name {
	return defaultAnalyzer.EntityNames(tag, e, isQuery)
}

// CacheStats reports name cache counters; zero when caching is disabled
func (a *Analyzer) CacheStats() cache.Stats {
	if a.cache == nil {
		return cache.Stats{}
	}
	return a.cache.Stats()
}

// EntityNames returns the distinct analyzed names of an entity for the given
// type tag. Unknown tags yield no names. The returned names are shared with
// the cache and must be treated as read-only.
func (a *Analyzer) EntityNames(tag types.NameTypeTag, e entity.Entity, isQuery bool) []*types.Name {
	if tag == types.NameTypeUnknown {
		return nil
	}
	values := nameValues(tag, e)
	if len(values) == 0 {
		return nil
	}

	var key uint64
	if a.cache != nil {
		key = cacheKey(tag, e, isQuery, values)
		if cached, ok := a.cache.Get(key); ok {
			return append([]*types.Name(nil), cached...)
		}
	}

	seen := make(map[string]bool, len(values))
	var out []*types.Name
	for _, raw := range values {
		name := a.analyze(tag, e, raw, isQuery)
		if name == nil || seen[name.Form] {
			continue
		}
		seen[name.Form] = true
		out = append(out, name)
	}
	out = Consolidate(out)
	debug.Log("NAMES", "%s %s: %d values -> %d names", tag, e.Schema(), len(values), len(out))

	if a.cache != nil {
		a.cache.Set(key, out)
		return append([]*types.Name(nil), out...)
	}
	return out
}

func nameValues(tag types.NameTypeTag, e entity.Entity) []string {
	values := e.GetTypeValues(entity.TypeName, true)
	if len(values) > 0 || tag != types.NameTypePerson {
		return values
	}
	var parts []string
	for _, prop := range composeFields {
		if vs := e.Get(prop); len(vs) > 0 {
			parts = append(parts, vs[0])
		}
	}
	if composed := strings.TrimSpace(strings.Join(parts, " ")); composed != "" {
		return []string{composed}
	}
	return nil
}

func cacheKey(tag types.NameTypeTag, e entity.Entity, isQuery bool, values []string) uint64 {
	fields := []string{tag.String(), strconv.FormatBool(isQuery), e.Schema()}
	fields = append(fields, values...)
	if tag == types.NameTypePerson {
		for _, f := range personFields {
			fields = append(fields, "\x01"+f.prop)
			fields = append(fields, e.Get(f.prop)...)
		}
	}
	return cache.Key(fields...)
}

func (a *Analyzer) analyze(tag types.NameTypeTag, e entity.Entity, raw string, isQuery bool) *types.Name {
	switch tag {
	case types.NameTypePerson:
		return a.analyzePerson(e, raw, isQuery)
	case types.NameTypeOrganization, types.NameTypeLegalEntity:
		return a.analyzeOrganization(tag, raw)
	case types.NameTypeObject:
		return a.analyzeObject(raw)
	}
	return nil
}

func (a *Analyzer) analyzePerson(e entity.Entity, raw string, isQuery bool) *types.Name {
	tokens := a.dictionaries().StripHonorifics(symbols.Tokenize(raw))
	if len(tokens) == 0 {
		return nil
	}
	name := types.NewName(raw, tokens, types.NameTypePerson)

	// Tags first: spans copy the parts they cover
	for _, f := range personFields {
		for _, v := range e.Get(f.prop) {
			if text := symbols.Comparable(v); text != "" {
				name.TagText(text, f.tag)
			}
		}
	}
	tagNumericParts(name)

	tagInitials(name, isQuery)
	a.dictionaries().TagPerson(name)
	return name
}

func (a *Analyzer) analyzeOrganization(tag types.NameTypeTag, raw string) *types.Name {
	dict := a.dictionaries()
	tokens := dict.ReplaceOrgTypes(symbols.Tokenize(raw))
	tokens = dict.StripOrgPrefixes(tokens)
	if len(tokens) == 0 {
		return nil
	}
	name := types.NewName(raw, tokens, tag)
	for _, form := range dict.OrgTypeForms() {
		name.TagText(form, types.PartLegal)
	}
	tagNumericParts(name)

	dict.TagOrganization(name)
	return name
}

// analyzeObject normalizes vessel and other asset names; they are compared
// by edit distance only and carry no symbols
func (a *Analyzer) analyzeObject(raw string) *types.Name {
	tokens := a.dictionaries().StripObjectPrefixes(symbols.Tokenize(raw))
	if len(tokens) == 0 {
		return nil
	}
	return types.NewName(raw, tokens, types.NameTypeObject)
}

func tagNumericParts(name *types.Name) {
	for i := range name.Parts {
		if name.Parts[i].Tag == types.PartUnset && name.Parts[i].IsNumeric() {
			name.Parts[i].Tag = types.PartNum
		}
	}
}

// tagInitials marks single-letter parts as initials. Query names also offer
// the first letter of every given-like part, so "Vladimir" can meet "V.".
func tagInitials(name *types.Name, isQuery bool) {
	for _, part := range name.Parts {
		if part.IsNumeric() {
			continue
		}
		if part.Len() == 1 {
			name.ApplyPart(part, types.NewSymbol(types.CategoryInitial, symbols.Fold(part.Form)))
			continue
		}
		if !isQuery {
			continue
		}
		if part.Tag == types.PartUnset || part.Tag.IsGivenLike() {
			r, _ := utf8.DecodeRuneInString(part.Form)
			name.ApplyPart(part, types.NewSymbol(types.CategoryInitial, symbols.Fold(string(r))))
		}
	}
}

// Consolidate drops names whose parts occur, in order, inside another
// name. Longer names are visited first so only the contained one is dropped;
// survivors keep their input order.
func Consolidate(names []*types.Name) []*types.Name {
	if len(names) < 2 {
		return names
	}
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(names[order[i]].Parts) > len(names[order[j]].Parts)
	})

	keep := make([]bool, len(names))
	var kept []*types.Name
	for _, idx := range order {
		n := names[idx]
		contained := false
		for _, k := range kept {
			if k.ContainsName(n) {
				contained = true
				break
			}
		}
		if !contained {
			keep[idx] = true
			kept = append(kept, n)
		}
	}

	out := make([]*types.Name, 0, len(kept))
	for i, n := range names {
		if keep[i] {
			out = append(out, n)
		}
	}
	return out
}
