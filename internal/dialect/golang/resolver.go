// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

type mapper struct{}

func (m *mapper) PrimitiveType(flags jschema.TypeFlags, format string) string {
	switch {
	case flags.Has(jschema.TypeString):
		if format == "date" || format == "date-time" {
			return "time.Time"
		}
		return "string"
	case flags.Has(jschema.TypeBoolean):
		return "bool"
	case flags.Has(jschema.TypeInteger):
		if format == "int32" {
			return "int32"
		}
		return "int64"
	case flags.Has(jschema.TypeNumber):
		if format == "float" {
			return "float32"
		}
		return "float64"
	default:
		return "any"
	}
}

func (m *mapper) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (m *mapper) NullableType(typeName string) string {
	return "*" + typeName
}

func (m *mapper) FormatTypeName(name string) string {
	return naming.ToGoName(name)
}
