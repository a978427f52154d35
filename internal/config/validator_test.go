package config

import (
	"math"
	"testing"
)

func TestValidateAndSetDefaults(t *testing.T) {
	cfg := DefaultConfig()

	validator := NewValidator()
	err := validator.ValidateAndSetDefaults(cfg)
	if err != nil {
		t.Fatalf("ValidateAndSetDefaults failed: %v", err)
	}

	if cfg.Engine.Workers == 0 {
		t.Errorf("Workers should have been set to CPU count")
	}
}

func TestValidateScoring(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   float64
		wantErr bool
	}{
		{"default family weight", KeyFamilyNameWeight, 1.3, false},
		{"zero extra weight", KeyExtraResultName, 0, false},
		{"negative extra weight", KeyExtraQueryName, -0.1, true},
		{"huge weight", KeyFamilyNameWeight, 50, true},
		{"penalty above one", KeyNumberMismatch, 1.01, true},
		{"penalty of one", KeyIdentifierMismatch, 1, false},
		{"negative penalty", KeyIdentifierMismatch, -0.5, true},
		{"NaN", KeyExtraQueryName, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.Set(tt.key, tt.value)
			err := NewValidator().ValidateScoring(s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScoring() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEngineConfig(t *testing.T) {
	validator := NewValidator()

	if err := validator.validateEngineConfig(&Engine{CacheSize: -1}); err == nil {
		t.Errorf("Expected error for negative CacheSize")
	}

	if err := validator.validateEngineConfig(&Engine{Workers: -2}); err == nil {
		t.Errorf("Expected error for negative Workers")
	}

	if err := validator.validateEngineConfig(&Engine{}); err != nil {
		t.Errorf("Expected zero engine config to be valid, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Workers = 3
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
	if cfg.Engine.Workers != 3 {
		t.Errorf("Explicit Workers should be preserved, got %d", cfg.Engine.Workers)
	}
}
