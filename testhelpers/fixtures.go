package testhelpers

import (
	"github.com/standardbeagle/namesake/internal/entity"
)

// EntityBuilder provides a fluent API for building test entities
// Usage:
//
//	e := testhelpers.NewEntity("Company").
//		Names("CRYSTALORD LTD").
//		With("registrationNumber", "137332").
//		Build()
type EntityBuilder struct {
	proxy *entity.Proxy
}

// NewEntity starts an entity of the given schema
func NewEntity(schema string) *EntityBuilder {
	return &EntityBuilder{proxy: entity.NewProxy(schema)}
}

// Names adds name values
func (b *EntityBuilder) Names(names ...string) *EntityBuilder {
	b.proxy.Add("name", names...)
	return b
}

// With adds values to any property
func (b *EntityBuilder) With(prop string, values ...string) *EntityBuilder {
	b.proxy.Add(prop, values...)
	return b
}

// ID sets the entity id
func (b *EntityBuilder) ID(id string) *EntityBuilder {
	b.proxy.ID = id
	return b
}

// Build returns the entity
func (b *EntityBuilder) Build() *entity.Proxy {
	return b.proxy
}

// Person returns a person carrying the given names
func Person(names ...string) *entity.Proxy {
	return NewEntity(entity.SchemaPerson).Names(names...).Build()
}

// Company returns a company carrying the given names
func Company(names ...string) *entity.Proxy {
	return NewEntity(entity.SchemaCompany).Names(names...).Build()
}

// Organization returns an organization carrying the given names
func Organization(names ...string) *entity.Proxy {
	return NewEntity(entity.SchemaOrganization).Names(names...).Build()
}

// Vessel returns a vessel carrying the given names
func Vessel(names ...string) *entity.Proxy {
	return NewEntity(entity.SchemaVessel).Names(names...).Build()
}
