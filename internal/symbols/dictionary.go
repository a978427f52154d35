package symbols

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/surgebase/porter2"

	"github.com/standardbeagle/namesake/internal/debug"
	nserrors "github.com/standardbeagle/namesake/internal/errors"
	"github.com/standardbeagle/namesake/internal/types"
)

//go:embed data/*.toml
var dataFS embed.FS

// minStemLength is the shortest token looked up by porter2 stem
const minStemLength = 3

// OrgType is one legal form designation
type OrgType struct {
	Display string   `toml:"display"`
	Compare string   `toml:"compare"`
	Class   string   `toml:"class"`
	Aliases []string `toml:"aliases"`
}

// NameGroup is a set of equivalent given names and their nicknames
type NameGroup struct {
	ID    string   `toml:"id"`
	Names []string `toml:"names"`
	Nicks []string `toml:"nicks"`
}

type orgTypeFile struct {
	Types []OrgType `toml:"type"`
}

type symbolFile struct {
	Symbols map[string][]string `toml:"symbols"`
}

type locationFile struct {
	Locations map[string][]string `toml:"locations"`
}

type numeralFile struct {
	Numbers  map[string][]string `toml:"numbers"`
	Ordinals map[string][]string `toml:"ordinals"`
}

type nameFile struct {
	Groups []NameGroup `toml:"group"`
}

type lexiconFile struct {
	Honorifics     []string `toml:"honorifics"`
	Stopwords      []string `toml:"stopwords"`
	OrgPrefixes    []string `toml:"org_prefixes"`
	ObjectPrefixes []string `toml:"object_prefixes"`
}

// Dictionaries holds every symbol table, built once and read-only afterwards
type Dictionaries struct {
	OrgTypes   []OrgType
	NameGroups []NameGroup

	orgTypeReplace *phraseMap
	orgTypeForms   []string
	orgPhrases     *phraseIndex
	orgStems       map[string][]types.Symbol
	personPhrases  *phraseIndex
	numberWords    *phraseIndex

	honorifics     *prefixList
	orgPrefixes    *prefixList
	objectPrefixes *prefixList
	stopwords      map[string]struct{}

	digest uint64
}

// Singleton built on first use
var (
	defaultDict     *Dictionaries
	defaultDictOnce sync.Once
)

// Default returns the process-wide dictionaries, building them on first use.
// A broken embedded data file panics with *errors.DictionaryError.
func Default() *Dictionaries {
	defaultDictOnce.Do(func() {
		d, err := build(dataFS)
		if err != nil {
			panic(err)
		}
		defaultDict = d
	})
	return defaultDict
}

// Digest fingerprints the data files the dictionaries were built from
func (d *Dictionaries) Digest() string {
	return fmt.Sprintf("%016x", d.digest)
}

func build(fsys fs.FS) (*Dictionaries, error) {
	d := &Dictionaries{
		orgTypeReplace: newPhraseMap(),
		orgPhrases:     newPhraseIndex(),
		orgStems:       make(map[string][]types.Symbol),
		personPhrases:  newPhraseIndex(),
		numberWords:    newPhraseIndex(),
		stopwords:      make(map[string]struct{}),
	}

	steps := []struct {
		file string
		load func([]byte) error
	}{
		{"org_types", d.loadOrgTypes},
		{"org_symbols", d.loadOrgSymbols},
		{"locations", d.loadLocations},
		{"numerals", d.loadNumerals},
		{"person_names", d.loadPersonNames},
		{"person_symbols", d.loadPersonSymbols},
		{"lexicon", d.loadLexicon},
	}
	h := xxhash.New()
	for _, step := range steps {
		data, err := fs.ReadFile(fsys, "data/"+step.file+".toml")
		if err != nil {
			return nil, nserrors.NewDictionaryError(step.file, err)
		}
		_, _ = h.WriteString(step.file)
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(data)
		if err := step.load(data); err != nil {
			return nil, nserrors.NewDictionaryError(step.file, err)
		}
	}

	d.digest = h.Sum64()
	debug.LogDictionary("loaded %d org types, %d name groups, %d org phrases, %d person phrases",
		len(d.OrgTypes), len(d.NameGroups), d.orgPhrases.Len(), d.personPhrases.Len())
	return d, nil
}

// sortedKeys fixes the order symbols are registered in, which decides span
// order when one phrase carries several symbols
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *Dictionaries) loadOrgTypes(data []byte) error {
	var f orgTypeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for i, ot := range f.Types {
		compare := Comparable(ot.Compare)
		if compare == "" || ot.Class == "" {
			return fmt.Errorf("org type %d (%q) needs compare and class", i, ot.Display)
		}
		typeSym := types.NewSymbol(types.CategoryOrgType, compare)
		classSym := types.NewSymbol(types.CategoryOrgClass, ot.Class)
		d.orgPhrases.Add(compare, typeSym, classSym)
		d.orgTypeForms = append(d.orgTypeForms, compare)
		for _, alias := range ot.Aliases {
			phrase := Comparable(alias)
			if phrase == "" {
				continue
			}
			d.orgTypeReplace.Set(phrase, compare)
			d.orgPhrases.Add(phrase, typeSym, classSym)
		}
		f.Types[i].Compare = compare
	}
	d.OrgTypes = f.Types
	return nil
}

func (d *Dictionaries) loadOrgSymbols(data []byte) error {
	var f symbolFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, id := range sortedKeys(f.Symbols) {
		words := f.Symbols[id]
		sym := types.NewSymbol(types.CategoryOrgSymbol, id)
		for _, w := range words {
			phrase := Comparable(w)
			if IsASCIILetters(phrase) && len(phrase) >= minStemLength {
				stem := porter2.Stem(phrase)
				d.orgStems[stem] = appendSymbol(d.orgStems[stem], sym)
				continue
			}
			d.orgPhrases.Add(phrase, sym)
		}
	}
	return nil
}

func (d *Dictionaries) loadLocations(data []byte) error {
	var f locationFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, id := range sortedKeys(f.Locations) {
		names := f.Locations[id]
		sym := types.NewSymbol(types.CategoryLocation, id)
		for _, n := range names {
			d.orgPhrases.Add(Comparable(n), sym)
		}
	}
	return nil
}

func (d *Dictionaries) loadNumerals(data []byte) error {
	var f numeralFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, value := range sortedKeys(f.Numbers) {
		words := f.Numbers[value]
		if !IsDigits(value) {
			return fmt.Errorf("number key %q is not numeric", value)
		}
		sym := types.NewSymbol(types.CategoryNumeric, value)
		for _, w := range words {
			d.numberWords.Add(Comparable(w), sym)
		}
	}
	for _, value := range sortedKeys(f.Ordinals) {
		words := f.Ordinals[value]
		if !IsDigits(value) {
			return fmt.Errorf("ordinal key %q is not numeric", value)
		}
		sym := types.NewSymbol(types.CategoryOrdinal, value)
		for _, w := range words {
			d.numberWords.Add(Comparable(w), sym)
		}
	}
	return nil
}

func (d *Dictionaries) loadPersonNames(data []byte) error {
	var f nameFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for i, g := range f.Groups {
		if g.ID == "" {
			return fmt.Errorf("name group %d has no id", i)
		}
		nameSym := types.NewSymbol(types.CategoryPerName, g.ID)
		for _, n := range g.Names {
			d.personPhrases.Add(Comparable(n), nameSym)
		}
		nickSym := types.NewSymbol(types.CategoryNick, g.ID)
		for _, n := range g.Nicks {
			d.personPhrases.Add(Comparable(n), nickSym)
		}
	}
	d.NameGroups = f.Groups
	return nil
}

func (d *Dictionaries) loadPersonSymbols(data []byte) error {
	var f symbolFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, id := range sortedKeys(f.Symbols) {
		words := f.Symbols[id]
		sym := types.NewSymbol(types.CategoryPerSymbol, id)
		for _, w := range words {
			d.personPhrases.Add(Comparable(w), sym)
		}
	}
	return nil
}

func (d *Dictionaries) loadLexicon(data []byte) error {
	var f lexiconFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	d.honorifics = newPrefixList(f.Honorifics)
	d.orgPrefixes = newPrefixList(f.OrgPrefixes)
	d.objectPrefixes = newPrefixList(f.ObjectPrefixes)
	for _, w := range f.Stopwords {
		d.stopwords[Comparable(w)] = struct{}{}
	}
	return nil
}

// ReplaceOrgTypes rewrites every recognized legal form phrase to its compare
// form, preferring the longest phrase at each position
func (d *Dictionaries) ReplaceOrgTypes(tokens []string) []string {
	return d.orgTypeReplace.Replace(tokens)
}

// OrgTypeForms returns the compare forms of all legal form designations
func (d *Dictionaries) OrgTypeForms() []string {
	return d.orgTypeForms
}

// StripHonorifics removes leading titles ("mr", "his excellency")
func (d *Dictionaries) StripHonorifics(tokens []string) []string {
	return d.honorifics.Strip(tokens)
}

// StripOrgPrefixes removes leading articles from organization names
func (d *Dictionaries) StripOrgPrefixes(tokens []string) []string {
	return d.orgPrefixes.Strip(tokens)
}

// StripObjectPrefixes removes vessel designations ("mv", "m v", "hms")
func (d *Dictionaries) StripObjectPrefixes(tokens []string) []string {
	return d.objectPrefixes.Strip(tokens)
}

// IsStopword reports whether form is a function word
func (d *Dictionaries) IsStopword(form string) bool {
	_, ok := d.stopwords[form]
	return ok
}

func appendSymbol(syms []types.Symbol, sym types.Symbol) []types.Symbol {
	for _, s := range syms {
		if s == sym {
			return syms
		}
	}
	return append(syms, sym)
}

// phraseIndex maps space-joined token phrases to symbols
type phraseIndex struct {
	entries   map[string][]types.Symbol
	maxTokens int
}

func newPhraseIndex() *phraseIndex {
	return &phraseIndex{entries: make(map[string][]types.Symbol)}
}

// Add registers symbols for a normalized phrase
func (p *phraseIndex) Add(phrase string, syms ...types.Symbol) {
	if phrase == "" {
		return
	}
	for _, sym := range syms {
		p.entries[phrase] = appendSymbol(p.entries[phrase], sym)
	}
	if n := strings.Count(phrase, " ") + 1; n > p.maxTokens {
		p.maxTokens = n
	}
}

// Lookup returns the symbols registered for phrase
func (p *phraseIndex) Lookup(phrase string) []types.Symbol {
	return p.entries[phrase]
}

// Len returns the number of phrases
func (p *phraseIndex) Len() int {
	return len(p.entries)
}

// Apply tags every run of name parts whose keys form a known phrase. keys
// holds one lookup key per part (the form itself or a folded variant).
func (p *phraseIndex) Apply(name *types.Name, keys []string) {
	forms := name.Forms()
	for i := range keys {
		for l := 1; l <= p.maxTokens && i+l <= len(keys); l++ {
			syms := p.entries[strings.Join(keys[i:i+l], " ")]
			if len(syms) == 0 {
				continue
			}
			phrase := strings.Join(forms[i:i+l], " ")
			for _, sym := range syms {
				name.ApplyPhrase(phrase, sym)
			}
		}
	}
}

// phraseMap rewrites token phrases into replacement phrases
type phraseMap struct {
	entries   map[string][]string
	maxTokens int
}

func newPhraseMap() *phraseMap {
	return &phraseMap{entries: make(map[string][]string)}
}

// Set registers a replacement; the first registration of a phrase wins
func (m *phraseMap) Set(phrase, replacement string) {
	if _, ok := m.entries[phrase]; ok {
		return
	}
	m.entries[phrase] = strings.Fields(replacement)
	if n := strings.Count(phrase, " ") + 1; n > m.maxTokens {
		m.maxTokens = n
	}
}

// Replace scans tokens left to right, replacing the longest known phrase
// starting at each position
func (m *phraseMap) Replace(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := false
		for l := min(m.maxTokens, len(tokens)-i); l > 0; l-- {
			if repl, ok := m.entries[strings.Join(tokens[i:i+l], " ")]; ok {
				out = append(out, repl...)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}

// prefixList strips leading token sequences
type prefixList struct {
	prefixes [][]string // longest first
}

func newPrefixList(phrases []string) *prefixList {
	pl := &prefixList{}
	for _, p := range phrases {
		if toks := Tokenize(p); len(toks) > 0 {
			pl.prefixes = append(pl.prefixes, toks)
		}
	}
	sort.SliceStable(pl.prefixes, func(i, j int) bool {
		return len(pl.prefixes[i]) > len(pl.prefixes[j])
	})
	return pl
}

// Strip removes known prefixes repeatedly, always leaving at least one token
func (pl *prefixList) Strip(tokens []string) []string {
	for {
		stripped := false
		for _, prefix := range pl.prefixes {
			if len(tokens) > len(prefix) && hasTokenPrefix(tokens, prefix) {
				tokens = tokens[len(prefix):]
				stripped = true
				break
			}
		}
		if !stripped {
			return tokens
		}
	}
}

func hasTokenPrefix(tokens, prefix []string) bool {
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}
