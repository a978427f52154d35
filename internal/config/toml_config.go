package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/namesake/internal/debug"
	nserrors "github.com/standardbeagle/namesake/internal/errors"
)

// LoadTOML loads configuration from a TOML file with [scoring] and [engine]
// tables, mirroring the KDL layout
func LoadTOML(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nserrors.NewConfigError("path", path, err)
	}
	return parseTOML(content)
}

func parseTOML(content []byte) (*Config, error) {
	cfg := DefaultConfig()

	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, nserrors.NewConfigError("toml", "", fmt.Errorf("failed to parse TOML config: %w", err))
	}

	for section, raw := range doc {
		table, ok := raw.(map[string]interface{})
		if !ok {
			debug.LogConfig("ignoring non-table key %q", section)
			continue
		}
		switch section {
		case "scoring":
			for key, value := range table {
				v, ok := tomlNumber(value)
				if !ok {
					return nil, nserrors.NewConfigError(key, fmt.Sprint(value), fmt.Errorf("expected a number"))
				}
				cfg.Scoring.Set(key, v)
			}
		case "engine":
			for key, value := range table {
				v, ok := value.(int64)
				switch key {
				case "cache_size", "workers":
					if !ok {
						return nil, nserrors.NewConfigError(key, fmt.Sprint(value), fmt.Errorf("expected an integer"))
					}
				}
				switch key {
				case "cache_size":
					cfg.Engine.CacheSize = int(v)
				case "workers":
					cfg.Engine.Workers = int(v)
				default:
					debug.LogConfig("ignoring unknown engine key %q", key)
				}
			}
		default:
			debug.LogConfig("ignoring unknown section %q", section)
		}
	}

	return cfg, nil
}

func tomlNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}
