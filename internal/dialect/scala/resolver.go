// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scala

import (
	"fmt"

	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

type mapper struct{}

func (m *mapper) PrimitiveType(flags jschema.TypeFlags, format string) string {
	switch {
	case flags.Has(jschema.TypeString):
		switch format {
		case "date":
			return "java.time.LocalDate"
		case "date-time":
			return "java.time.Instant"
		}
		return "String"
	case flags.Has(jschema.TypeBoolean):
		return "Boolean"
	case flags.Has(jschema.TypeInteger):
		if format == "int32" {
			return "Int"
		}
		return "Long"
	case flags.Has(jschema.TypeNumber):
		if format == "float" {
			return "Float"
		}
		return "Double"
	default:
		return "String"
	}
}

func (m *mapper) ArrayType(elemType string) string {
	return fmt.Sprintf("List[%s]", elemType)
}

func (m *mapper) NullableType(typeName string) string {
	return fmt.Sprintf("Option[%s]", typeName)
}

func (m *mapper) FormatTypeName(name string) string {
	return naming.ToPascalCase(name)
}
