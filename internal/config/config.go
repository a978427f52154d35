package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/standardbeagle/namesake/internal/debug"
	nserrors "github.com/standardbeagle/namesake/internal/errors"
)

// Scoring weight names as they appear in override maps and config files
const (
	KeyExtraQueryName     = "extra_query_name"
	KeyExtraResultName    = "extra_result_name"
	KeyFamilyNameWeight   = "family_name_weight"
	KeyNumberMismatch     = "number_mismatch"
	KeyIdentifierMismatch = "identifier_mismatch"
)

// Default scoring weights
const (
	DefaultExtraQueryName     = 0.8
	DefaultExtraResultName    = 0.2
	DefaultFamilyNameWeight   = 1.3
	DefaultNumberMismatch     = 0.3
	DefaultIdentifierMismatch = 0.15
)

// Engine defaults
const (
	DefaultCacheSize = 2048
	DefaultWorkers   = 0 // 0 = auto-detect (NumCPU)
)

// ScoringConfig holds the named weights used when combining matches.
// The engine only reads it; callers own it.
type ScoringConfig struct {
	ExtraQueryName     float64 // Weight applied to query parts left unmatched
	ExtraResultName    float64 // Weight applied to result parts left unmatched
	FamilyNameWeight   float64 // Multiplier for matches involving a family name
	NumberMismatch     float64 // Penalty when object names carry different numbers
	IdentifierMismatch float64 // Penalty when registration identifiers disagree
}

// Engine controls the batch matcher
type Engine struct {
	CacheSize int // Analyzed-name cache entries, 0 disables caching
	Workers   int // Parallel comparisons in Batch, 0 = NumCPU
}

// Config is the full file-level configuration
type Config struct {
	Scoring ScoringConfig
	Engine  Engine
}

// Default returns the default scoring weights
func Default() *ScoringConfig {
	return &ScoringConfig{
		ExtraQueryName:     DefaultExtraQueryName,
		ExtraResultName:    DefaultExtraResultName,
		FamilyNameWeight:   DefaultFamilyNameWeight,
		NumberMismatch:     DefaultNumberMismatch,
		IdentifierMismatch: DefaultIdentifierMismatch,
	}
}

// DefaultConfig returns the default file-level configuration
func DefaultConfig() *Config {
	return &Config{
		Scoring: *Default(),
		Engine: Engine{
			CacheSize: DefaultCacheSize,
			Workers:   DefaultWorkers,
		},
	}
}

// FromMap returns the defaults overridden by values. Unknown keys are ignored.
func FromMap(values map[string]float64) *ScoringConfig {
	cfg := Default()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cfg.Set(k, values[k])
	}
	return cfg
}

func (c *ScoringConfig) field(key string) *float64 {
	switch key {
	case KeyExtraQueryName:
		return &c.ExtraQueryName
	case KeyExtraResultName:
		return &c.ExtraResultName
	case KeyFamilyNameWeight:
		return &c.FamilyNameWeight
	case KeyNumberMismatch:
		return &c.NumberMismatch
	case KeyIdentifierMismatch:
		return &c.IdentifierMismatch
	}
	return nil
}

// Get returns the weight stored under key
func (c *ScoringConfig) Get(key string) (float64, bool) {
	if f := c.field(key); f != nil {
		return *f, true
	}
	return 0, false
}

// Set stores a weight, reporting whether the key is known
func (c *ScoringConfig) Set(key string, value float64) bool {
	f := c.field(key)
	if f == nil {
		debug.LogConfig("ignoring unknown scoring key %q", key)
		return false
	}
	*f = value
	return true
}

// Keys lists the known weight names
func Keys() []string {
	return []string{
		KeyExtraQueryName,
		KeyExtraResultName,
		KeyFamilyNameWeight,
		KeyNumberMismatch,
		KeyIdentifierMismatch,
	}
}

// Load reads a configuration file, choosing the format by extension,
// and validates it
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".kdl":
		cfg, err = LoadKDL(path)
	case ".toml":
		cfg, err = LoadTOML(path)
	default:
		return nil, nserrors.NewConfigError("path", path, errUnsupportedFormat(ext))
	}
	if err != nil {
		return nil, err
	}

	if err := NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type errUnsupportedFormat string

func (e errUnsupportedFormat) Error() string {
	if e == "" {
		return "config file has no extension, expected .kdl or .toml"
	}
	return "unsupported config format " + string(e) + ", expected .kdl or .toml"
}
