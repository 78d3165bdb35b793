// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

type mapper struct{}

func (m *mapper) PrimitiveType(flags jschema.TypeFlags, _ string) string {
	switch {
	case flags.Has(jschema.TypeString):
		return "string"
	case flags.Has(jschema.TypeBoolean):
		return "boolean"
	case flags.HasAny(jschema.TypeInteger | jschema.TypeNumber):
		return "number"
	default:
		return "any"
	}
}

func (m *mapper) ArrayType(elemType string) string {
	return elemType + "[]"
}

func (m *mapper) NullableType(typeName string) string {
	return typeName + " | null"
}

func (m *mapper) FormatTypeName(name string) string {
	return naming.ToPascalCase(name)
}
