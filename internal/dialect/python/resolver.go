// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

type mapper struct{}

func (m *mapper) PrimitiveType(flags jschema.TypeFlags, format string) string {
	switch {
	case flags.Has(jschema.TypeString):
		switch format {
		case "date":
			return "datetime.date"
		case "date-time":
			return "datetime.datetime"
		}
		return "str"
	case flags.Has(jschema.TypeBoolean):
		return "bool"
	case flags.Has(jschema.TypeInteger):
		return "int"
	case flags.Has(jschema.TypeNumber):
		return "float"
	default:
		return "Any"
	}
}

func (m *mapper) ArrayType(elemType string) string {
	return "list[" + elemType + "]"
}

func (m *mapper) NullableType(typeName string) string {
	return "Optional[" + typeName + "]"
}

func (m *mapper) FormatTypeName(name string) string {
	return naming.ToPascalCase(name)
}
