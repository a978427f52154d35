package config

import (
	"fmt"
	"runtime"
	"strconv"

	nserrors "github.com/standardbeagle/namesake/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
// Returns an error if validation fails
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.ValidateScoring(&cfg.Scoring); err != nil {
		return err
	}

	if err := v.validateEngineConfig(&cfg.Engine); err != nil {
		return nserrors.NewConfigError("engine", "", err)
	}

	v.setSmartDefaults(cfg)
	return nil
}

// ValidateScoring checks that every weight is usable: penalties are
// fractions, weights are non-negative
func (v *Validator) ValidateScoring(s *ScoringConfig) error {
	for _, key := range Keys() {
		value, _ := s.Get(key)
		if err := validateWeight(key, value); err != nil {
			return nserrors.NewConfigError(key, strconv.FormatFloat(value, 'g', -1, 64), err)
		}
	}
	return nil
}

func validateWeight(key string, value float64) error {
	if value != value { // NaN
		return fmt.Errorf("%s must be a number", key)
	}
	switch key {
	case KeyNumberMismatch, KeyIdentifierMismatch:
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", key, value)
		}
	default:
		if value < 0 {
			return fmt.Errorf("%s cannot be negative, got %v", key, value)
		}
		if value > 10 {
			return fmt.Errorf("%s should not exceed 10, got %v", key, value)
		}
	}
	return nil
}

// validateEngineConfig validates engine configuration
func (v *Validator) validateEngineConfig(engine *Engine) error {
	if engine.CacheSize < 0 {
		return fmt.Errorf("CacheSize cannot be negative, got %d", engine.CacheSize)
	}

	// Workers: 0 means auto-detect (will be set by smart defaults)
	if engine.Workers < 0 {
		return fmt.Errorf("Workers cannot be negative, got %d", engine.Workers)
	}

	return nil
}

// setSmartDefaults applies smart defaults based on system capabilities
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Engine.Workers == 0 {
		cfg.Engine.Workers = max(1, runtime.NumCPU())
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
