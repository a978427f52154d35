// Package namesake scores how likely two entity records name the same
// real-world person, organization or object.
//
// Usage:
//
//	q := namesake.NewEntity("Person").Add("name", "Vladimir Putin")
//	r := namesake.NewEntity("Person").Add("name", "Vladimir Pudin")
//	res := namesake.NameMatch(q, r, nil)
//	fmt.Println(res.Score, res.Detail)
package namesake

import (
	"github.com/standardbeagle/namesake/internal/config"
	"github.com/standardbeagle/namesake/internal/distance"
	"github.com/standardbeagle/namesake/internal/entity"
	"github.com/standardbeagle/namesake/internal/match"
	"github.com/standardbeagle/namesake/internal/names"
	"github.com/standardbeagle/namesake/internal/pairing"
	"github.com/standardbeagle/namesake/internal/types"
)

type (
	// Entity is the read-only view of a record the matcher needs
	Entity = entity.Entity
	// Proxy is the JSON property-bag entity
	Proxy = entity.Proxy
	// ScoringConfig holds the named scoring weights
	ScoringConfig = config.ScoringConfig
	// Config is the file-level configuration
	Config = config.Config
	// Result is a score with its explanation
	Result = match.Result
	// Pair is one comparison in a batch
	Pair = match.Pair
	// Engine scores pairs with a shared name cache
	Engine = match.Engine
	// Name is an analyzed name
	Name = types.Name
	// NamePart is one token of an analyzed name
	NamePart = types.NamePart
	// NameTypeTag classifies an entity schema for matching
	NameTypeTag = types.NameTypeTag
	// Pairing is one alignment of shared symbols
	Pairing = pairing.Pairing
)

// Type tags
const (
	TypeUnknown      = types.NameTypeUnknown
	TypePerson       = types.NameTypePerson
	TypeOrganization = types.NameTypeOrganization
	TypeLegalEntity  = types.NameTypeLegalEntity
	TypeObject       = types.NameTypeObject
)

// DefaultConfig returns the default scoring weights
func DefaultConfig() *ScoringConfig {
	return config.Default()
}

// LoadConfig reads a KDL or TOML configuration file
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// NewEntity creates an empty entity of the given schema
func NewEntity(schema string) *Proxy {
	return entity.NewProxy(schema)
}

// DecodeEntity parses one entity in the FollowTheMoney JSON shape
func DecodeEntity(data []byte) (*Proxy, error) {
	return entity.DecodeProxy(data)
}

// TypeTagOf classifies the common schema of two entities
func TypeTagOf(query, result Entity) NameTypeTag {
	return entity.CommonTypeTag(query, result)
}

// NameMatch compares the names of two entities. A nil cfg uses the defaults.
func NameMatch(query, result Entity, cfg *ScoringConfig) Result {
	return match.NameMatch(query, result, cfg)
}

// EntityNames returns the analyzed names of an entity
func EntityNames(tag NameTypeTag, e Entity, isQuery bool) []*Name {
	return names.EntityNames(tag, e, isQuery)
}

// GenerateSymbolPairings returns every non-overlapping alignment of the
// symbols two names share; never empty
func GenerateSymbolPairings(query, result *Name) []Pairing {
	return pairing.GenerateSymbolPairings(query, result)
}

// WeightedEditSimilarity scores query parts then result parts by weighted
// character edits
func WeightedEditSimilarity(qry, res []NamePart) []float64 {
	return distance.WeightedEditSimilarity(qry, res)
}

// MatchNames scores two analyzed names
func MatchNames(query, result *Name, cfg *ScoringConfig) (float64, string) {
	return match.MatchNameSymbolic(query, result, cfg)
}

// NewEngine creates a batch engine; a nil config uses the defaults
func NewEngine(cfg *Config) *Engine {
	return match.NewEngine(cfg)
}
