// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package defaults converts schema default values into target-language literals.
//
// A Generator resolves a schema node to its actual schema, picks a literal
// form from the node's type flags and looks enumeration defaults up by
// position in the parallel value and name lists. Only the final formatting
// of a literal varies per language, through a Dialect.
package defaults

import (
	"fmt"
	"strings"

	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

// Generator produces default value literals. It holds no mutable state and
// may be used concurrently if its TypeResolver may.
type Generator struct {
	resolver TypeResolver
	dialect  Dialect
}

// New creates a Generator. A nil dialect uses DotDialect.
func New(resolver TypeResolver, dialect Dialect) *Generator {
	if dialect == nil {
		dialect = DotDialect{}
	}
	return &Generator{resolver: resolver, dialect: dialect}
}

// DefaultValue returns the literal for the default declared on node.
//
// ok is false when no literal should be emitted: no default is declared,
// useSchemaDefault is off, or the schema type has no literal form (objects,
// arrays). allowsNull and targetType are passed through to dialects that
// decorate literals; typeNameHint names enum types that lack a name.
func (g *Generator) DefaultValue(node jschema.Node, allowsNull bool, targetType, typeNameHint string, useSchemaDefault bool) (literal string, ok bool, err error) {
	schema := node.Base()
	if !schema.HasDefault() || !useSchemaDefault {
		return "", false, nil
	}

	var actual *jschema.Schema
	if p, isProperty := node.(*jschema.Property); isProperty {
		actual = p.ActualPropertySchema()
	} else {
		actual = schema.ActualSchema()
	}

	if actual.IsEnumeration() && !actual.Type.Has(jschema.TypeObject) && actual.Type != jschema.TypeNone {
		literal, err := g.EnumDefaultValue(node, actual, typeNameHint)
		if err != nil {
			return "", false, err
		}
		return literal, true, nil
	}

	text := jschema.ValueText(schema.Default)
	switch {
	case schema.Type.Has(jschema.TypeString):
		return `"` + text + `"`, true, nil
	case schema.Type.Has(jschema.TypeBoolean):
		text = strings.ToLower(text)
		if f, ok := g.dialect.(BooleanFormatter); ok {
			text = f.Boolean(text)
		}
		return text, true, nil
	case schema.Type.HasAny(jschema.TypeInteger | jschema.TypeNumber):
		if f, ok := g.dialect.(NumberFormatter); ok {
			text = f.Number(text, targetType)
		}
		return text, true, nil
	}

	return "", false, nil
}

// EnumDefaultValue returns the enum member literal for the default declared
// on node, using actual for the enumeration metadata.
func (g *Generator) EnumDefaultValue(node jschema.Node, actual *jschema.Schema, typeNameHint string) (string, error) {
	typeName := g.resolver.Resolve(actual, false, typeNameHint)

	member, err := enumMemberName(node.Base().Default, actual)
	if err != nil {
		return "", err
	}

	return g.dialect.EnumMember(typeName, naming.ToUpperCamelCase(member, true)), nil
}

// enumMemberName maps a raw default to a member name. Textual defaults
// already name the member; other values are located in Enum and named by the
// entry at the same index of EnumNames.
func enumMemberName(def any, actual *jschema.Schema) (string, error) {
	if s, ok := def.(string); ok {
		return s, nil
	}

	for i, v := range actual.Enum {
		if !jschema.ValuesEqual(v, def) {
			continue
		}
		if i >= len(actual.EnumNames) {
			return "", &SchemaError{
				Pointer: actual.Pointer,
				Default: def,
				Reason:  fmt.Sprintf("enumeration has %d values but %d names", len(actual.Enum), len(actual.EnumNames)),
			}
		}
		return actual.EnumNames[i], nil
	}

	return "", &SchemaError{
		Pointer: actual.Pointer,
		Default: def,
		Reason:  "default is not one of the enumeration values",
	}
}
