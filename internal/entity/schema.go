package entity

import (
	"github.com/standardbeagle/namesake/internal/types"
)

// PropertyType is the value type of a schema property
type PropertyType string

const (
	TypeName       PropertyType = "name"
	TypeIdentifier PropertyType = "identifier"
	TypeString     PropertyType = "string"
	TypeCountry    PropertyType = "country"
	TypeDate       PropertyType = "date"
)

// Property describes one schema property. Matchable properties feed name and
// identifier comparison; the rest are descriptive.
type Property struct {
	Name      string
	Type      PropertyType
	Matchable bool
}

// Schema is a node in the schema graph
type Schema struct {
	Name       string
	Extends    []string
	Properties []Property
}

// Schema names used for classification
const (
	SchemaThing        = "Thing"
	SchemaLegalEntity  = "LegalEntity"
	SchemaPerson       = "Person"
	SchemaOrganization = "Organization"
	SchemaCompany      = "Company"
	SchemaPublicBody   = "PublicBody"
	SchemaAsset        = "Asset"
	SchemaVehicle      = "Vehicle"
	SchemaVessel       = "Vessel"
	SchemaAirplane     = "Airplane"
	SchemaSecurity     = "Security"
)

var schemata = map[string]*Schema{
	SchemaThing: {
		Name: SchemaThing,
		Properties: []Property{
			{Name: "name", Type: TypeName, Matchable: true},
			{Name: "alias", Type: TypeName, Matchable: true},
			{Name: "previousName", Type: TypeName, Matchable: true},
			{Name: "weakAlias", Type: TypeName, Matchable: false},
			{Name: "country", Type: TypeCountry, Matchable: true},
		},
	},
	SchemaLegalEntity: {
		Name:    SchemaLegalEntity,
		Extends: []string{SchemaThing},
		Properties: []Property{
			{Name: "registrationNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "idNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "taxNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "innCode", Type: TypeIdentifier, Matchable: true},
			{Name: "ogrnCode", Type: TypeIdentifier, Matchable: true},
			{Name: "leiCode", Type: TypeIdentifier, Matchable: true},
			{Name: "jurisdiction", Type: TypeCountry, Matchable: true},
			{Name: "incorporationDate", Type: TypeDate, Matchable: true},
		},
	},
	SchemaPerson: {
		Name:    SchemaPerson,
		Extends: []string{SchemaLegalEntity},
		Properties: []Property{
			{Name: "title", Type: TypeString, Matchable: false},
			{Name: "firstName", Type: TypeString, Matchable: false},
			{Name: "secondName", Type: TypeString, Matchable: false},
			{Name: "middleName", Type: TypeString, Matchable: false},
			{Name: "fatherName", Type: TypeString, Matchable: false},
			{Name: "motherName", Type: TypeString, Matchable: false},
			{Name: "lastName", Type: TypeString, Matchable: false},
			{Name: "nameSuffix", Type: TypeString, Matchable: false},
			{Name: "passportNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "birthDate", Type: TypeDate, Matchable: true},
			{Name: "nationality", Type: TypeCountry, Matchable: true},
		},
	},
	SchemaOrganization: {
		Name:    SchemaOrganization,
		Extends: []string{SchemaLegalEntity},
		Properties: []Property{
			{Name: "swiftBic", Type: TypeIdentifier, Matchable: true},
		},
	},
	SchemaCompany: {
		Name:    SchemaCompany,
		Extends: []string{SchemaOrganization, SchemaAsset},
		Properties: []Property{
			{Name: "ticker", Type: TypeIdentifier, Matchable: true},
		},
	},
	SchemaPublicBody: {
		Name:    SchemaPublicBody,
		Extends: []string{SchemaOrganization},
	},
	SchemaAsset: {
		Name:    SchemaAsset,
		Extends: []string{SchemaThing},
	},
	SchemaVehicle: {
		Name:    SchemaVehicle,
		Extends: []string{SchemaAsset},
		Properties: []Property{
			{Name: "registrationNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "model", Type: TypeString, Matchable: false},
			{Name: "buildDate", Type: TypeDate, Matchable: true},
		},
	},
	SchemaVessel: {
		Name:    SchemaVessel,
		Extends: []string{SchemaVehicle},
		Properties: []Property{
			{Name: "imoNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "mmsi", Type: TypeIdentifier, Matchable: true},
			{Name: "callSign", Type: TypeIdentifier, Matchable: true},
			{Name: "flag", Type: TypeCountry, Matchable: true},
		},
	},
	SchemaAirplane: {
		Name:    SchemaAirplane,
		Extends: []string{SchemaVehicle},
		Properties: []Property{
			{Name: "serialNumber", Type: TypeIdentifier, Matchable: true},
			{Name: "icaoCode", Type: TypeIdentifier, Matchable: true},
		},
	},
	SchemaSecurity: {
		Name:    SchemaSecurity,
		Extends: []string{SchemaAsset},
		Properties: []Property{
			{Name: "isin", Type: TypeIdentifier, Matchable: true},
			{Name: "ticker", Type: TypeIdentifier, Matchable: true},
		},
	},
}

// LookupSchema returns the named schema
func LookupSchema(name string) (*Schema, bool) {
	s, ok := schemata[name]
	return s, ok
}

// IsA reports whether schema equals or descends from parent
func IsA(schema, parent string) bool {
	if schema == parent {
		_, ok := schemata[schema]
		return ok
	}
	s, ok := schemata[schema]
	if !ok {
		return false
	}
	for _, ext := range s.Extends {
		if IsA(ext, parent) {
			return true
		}
	}
	return false
}

// PropertiesOf returns the properties of a schema, ancestors first, each
// property name once
func PropertiesOf(schema string) []Property {
	var props []Property
	seen := make(map[string]bool)
	var walk func(name string)
	walk = func(name string) {
		s, ok := schemata[name]
		if !ok {
			return
		}
		for _, ext := range s.Extends {
			walk(ext)
		}
		for _, p := range s.Properties {
			if !seen[p.Name] {
				seen[p.Name] = true
				props = append(props, p)
			}
		}
	}
	walk(schema)
	return props
}

// TypeTag classifies a schema for matching. Persons are checked first, then
// organizations, then other legal entities, then assets.
func TypeTag(schema string) types.NameTypeTag {
	switch {
	case IsA(schema, SchemaPerson):
		return types.NameTypePerson
	case IsA(schema, SchemaOrganization):
		return types.NameTypeOrganization
	case IsA(schema, SchemaLegalEntity):
		return types.NameTypeLegalEntity
	case IsA(schema, SchemaAsset):
		return types.NameTypeObject
	}
	return types.NameTypeUnknown
}

// CommonSchema returns the more specific of two schemata when one descends
// from the other
func CommonSchema(a, b string) (string, bool) {
	switch {
	case IsA(a, b):
		return a, true
	case IsA(b, a):
		return b, true
	}
	return "", false
}

// CommonTypeTag classifies the common schema of two entities; schemata with
// no common descendant path are unknown
func CommonTypeTag(a, b Entity) types.NameTypeTag {
	schema, ok := CommonSchema(a.Schema(), b.Schema())
	if !ok {
		return types.NameTypeUnknown
	}
	return TypeTag(schema)
}
