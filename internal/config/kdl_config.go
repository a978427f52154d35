package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/namesake/internal/debug"
	nserrors "github.com/standardbeagle/namesake/internal/errors"
)

// LoadKDL loads configuration from a KDL file such as:
//
//	scoring {
//	    family_name_weight 1.5
//	}
//	engine {
//	    cache_size 4096
//	    workers 8
//	}
func LoadKDL(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nserrors.NewConfigError("path", path, err)
	}
	return parseKDL(string(content))
}

func parseKDL(content string) (*Config, error) {
	cfg := DefaultConfig()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, nserrors.NewConfigError("kdl", "", fmt.Errorf("failed to parse KDL config: %w", err))
	}

	for _, n := range doc.Nodes {
		switch name := nodeName(n); name {
		case "scoring":
			for _, cn := range n.Children {
				key := nodeName(cn)
				v, ok := firstFloatArg(cn)
				if !ok {
					return nil, nserrors.NewConfigError(key, argString(cn), fmt.Errorf("expected a number"))
				}
				cfg.Scoring.Set(key, v)
			}
		case "engine":
			for _, cn := range n.Children {
				switch key := nodeName(cn); key {
				case "cache_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Engine.CacheSize = v
					} else {
						return nil, nserrors.NewConfigError(key, argString(cn), fmt.Errorf("expected an integer"))
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Engine.Workers = v
					} else {
						return nil, nserrors.NewConfigError(key, argString(cn), fmt.Errorf("expected an integer"))
					}
				default:
					debug.LogConfig("ignoring unknown engine key %q", key)
				}
			}
		default:
			debug.LogConfig("ignoring unknown section %q", name)
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func argString(n *document.Node) string {
	if len(n.Arguments) == 0 {
		return ""
	}
	return fmt.Sprint(n.Arguments[0].Value)
}
