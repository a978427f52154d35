package entity

import (
	"encoding/json"
	"errors"
	"strings"

	nserrors "github.com/standardbeagle/namesake/internal/errors"
)

// Entity is the read-only view of a record the matcher needs
type Entity interface {
	Schema() string
	Get(prop string) []string
	GetTypeValues(t PropertyType, matchableOnly bool) []string
}

// Proxy is a property-bag entity in the FollowTheMoney JSON shape:
//
//	{"id": "...", "schema": "Person", "properties": {"name": ["..."]}}
type Proxy struct {
	ID         string              `json:"id,omitempty"`
	SchemaName string              `json:"schema"`
	Properties map[string][]string `json:"properties"`
}

// NewProxy creates an empty entity of the given schema
func NewProxy(schema string) *Proxy {
	return &Proxy{SchemaName: schema, Properties: make(map[string][]string)}
}

// DecodeProxy parses one JSON entity
func DecodeProxy(data []byte) (*Proxy, error) {
	var p Proxy
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.SchemaName == "" {
		return nil, errors.New("entity has no schema")
	}
	clean := make(map[string][]string, len(p.Properties))
	for prop, values := range p.Properties {
		for _, v := range values {
			clean[prop] = appendValue(clean[prop], v)
		}
	}
	p.Properties = clean
	return &p, nil
}

// DecodeProxyAt parses one JSON entity, reporting errors with their source
func DecodeProxyAt(source string, line int, data []byte) (*Proxy, error) {
	p, err := DecodeProxy(data)
	if err != nil {
		return nil, nserrors.NewInputError(source, line, err)
	}
	return p, nil
}

// Schema returns the schema name
func (p *Proxy) Schema() string {
	return p.SchemaName
}

// Add appends trimmed, non-empty, distinct values to a property
func (p *Proxy) Add(prop string, values ...string) *Proxy {
	if p.Properties == nil {
		p.Properties = make(map[string][]string)
	}
	for _, v := range values {
		p.Properties[prop] = appendValue(p.Properties[prop], v)
	}
	return p
}

// Get returns the values of a property
func (p *Proxy) Get(prop string) []string {
	return p.Properties[prop]
}

// GetTypeValues returns the values of every schema property of type t, in
// schema order. Properties unknown to the schema are ignored.
func (p *Proxy) GetTypeValues(t PropertyType, matchableOnly bool) []string {
	var out []string
	for _, prop := range PropertiesOf(p.SchemaName) {
		if prop.Type != t || (matchableOnly && !prop.Matchable) {
			continue
		}
		for _, v := range p.Properties[prop.Name] {
			out = appendValue(out, v)
		}
	}
	return out
}

// MarshalJSON always emits a properties object
func (p *Proxy) MarshalJSON() ([]byte, error) {
	type alias Proxy
	a := alias(*p)
	if a.Properties == nil {
		a.Properties = map[string][]string{}
	}
	return json.Marshal(a)
}

func appendValue(values []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return values
	}
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
