// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides JSON Schema loading, compilation, and traversal utilities.
//
// A loaded document is compiled into a read-only graph of Schema and Property
// nodes. References and single-allOf inheritance are kept as explicit edges and
// are only followed through ActualSchema and ActualPropertySchema.
package jschema

import (
	"strings"
)

// Format identifies the serialization format of a schema file.
type Format int

// Supported schema file formats.
const (
	JSON Format = iota
	YAML
)

// FormatFromPath returns the format implied by a file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#/".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#/")
}

// IsInternalRef returns true if ref points into the current document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// Node is a schema node the default value generator accepts: a *Schema or a *Property.
type Node interface {
	// Base returns the schema carrying the node's own keywords.
	Base() *Schema
}

// Schema is one compiled schema (sub)definition.
type Schema struct {
	Name        string // definition name when declared under $defs, definitions or components/schemas
	Pointer     string // JSON pointer of the node within its document
	Type        TypeFlags
	Format      string
	Title       string
	Description string

	// Default is the declared default value, nil when absent or null.
	// Numbers are json.Number so their text is preserved.
	Default any

	Enum      []any
	EnumNames []string // parallel to Enum

	Ref   *Schema
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Items *Schema

	Properties    map[string]*Property
	PropertyOrder []string
	Required      []string
	Defs          map[string]*Schema
}

// Base implements Node.
func (s *Schema) Base() *Schema { return s }

// HasDefault reports whether a non-null default is declared.
func (s *Schema) HasDefault() bool { return s.Default != nil }

// IsEnumeration reports whether the schema declares an enumeration.
func (s *Schema) IsEnumeration() bool { return len(s.Enum) > 0 }

// ActualSchema follows references and single-allOf inheritance to the schema
// that carries the semantic definition. It is idempotent.
func (s *Schema) ActualSchema() *Schema {
	seen := make(map[*Schema]struct{})
	cur := s
	for {
		if _, ok := seen[cur]; ok {
			return cur
		}
		seen[cur] = struct{}{}

		next := cur.indirection()
		if next == nil {
			return cur
		}
		cur = next
	}
}

// indirection returns the schema this one delegates to, or nil if it is actual.
func (s *Schema) indirection() *Schema {
	if s.Ref != nil {
		return s.Ref
	}
	if len(s.AllOf) == 1 && s.Type == TypeNone && !s.IsEnumeration() && len(s.Properties) == 0 {
		return s.AllOf[0]
	}
	return nil
}

// IsNullOnly reports whether the schema admits only null.
func (s *Schema) IsNullOnly() bool {
	return s.Type == TypeNull
}

// Property is a schema used as an object property.
type Property struct {
	*Schema
	Name       string
	Parent     *Schema
	IsRequired bool
}

// Base implements Node.
func (p *Property) Base() *Schema { return p.Schema }

// ActualPropertySchema resolves the property to its semantic schema.
// An enumeration declared on the property itself overrides whatever the
// property references. The nullable reference form (oneOf/anyOf of null and
// one other schema) resolves to the non-null branch.
func (p *Property) ActualPropertySchema() *Schema {
	if p.Schema.IsEnumeration() {
		return p.Schema
	}
	if other := nonNullBranch(p.OneOf); other != nil {
		return other.ActualSchema()
	}
	if other := nonNullBranch(p.AnyOf); other != nil {
		return other.ActualSchema()
	}
	return p.ActualSchema()
}

func nonNullBranch(branches []*Schema) *Schema {
	if len(branches) != 2 {
		return nil
	}
	switch {
	case branches[0].ActualSchema().IsNullOnly() && !branches[1].ActualSchema().IsNullOnly():
		return branches[1]
	case branches[1].ActualSchema().IsNullOnly() && !branches[0].ActualSchema().IsNullOnly():
		return branches[0]
	}
	return nil
}
