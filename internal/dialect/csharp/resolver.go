// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package csharp

import (
	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

type mapper struct{}

func (m *mapper) PrimitiveType(flags jschema.TypeFlags, format string) string {
	switch {
	case flags.Has(jschema.TypeString):
		switch format {
		case "date-time":
			return "System.DateTimeOffset"
		case "date":
			return "System.DateTime"
		case "uuid":
			return "System.Guid"
		}
		return "string"
	case flags.Has(jschema.TypeBoolean):
		return "bool"
	case flags.Has(jschema.TypeInteger):
		if format == "int64" {
			return "long"
		}
		return "int"
	case flags.Has(jschema.TypeNumber):
		switch format {
		case "decimal":
			return "decimal"
		case "float":
			return "float"
		}
		return "double"
	default:
		return "object"
	}
}

func (m *mapper) ArrayType(elemType string) string {
	return "System.Collections.Generic.ICollection<" + elemType + ">"
}

func (m *mapper) NullableType(typeName string) string {
	return typeName + "?"
}

func (m *mapper) FormatTypeName(name string) string {
	return naming.ToPascalCase(name)
}
