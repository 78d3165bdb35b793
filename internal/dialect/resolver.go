// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dialect

import (
	"strconv"
	"sync"

	"github.com/dacolabs/defaultgen/internal/jschema"
)

// TypeMapper converts JSON Schema types to target-language type strings and naming conventions.
// Each language implements this interface to control how schemas map to its type system.
type TypeMapper interface {
	// PrimitiveType maps a type (without the null bit) and format to a target type string.
	// Format is checked first, allowing "int64" to override "integer".
	PrimitiveType(flags jschema.TypeFlags, format string) string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// NullableType wraps a type so it admits null.
	NullableType(typeName string) string

	// FormatTypeName formats a definition, title or hint name as a type identifier.
	FormatTypeName(name string) string
}

// Resolver implements defaults.TypeResolver on top of a TypeMapper.
// Named types (enumerations and objects) are memoised per schema instance, so
// a schema keeps its identifier for the resolver's lifetime; clashing names
// get a numeric suffix in first-come order. Resolver is safe for concurrent use.
type Resolver struct {
	mapper TypeMapper

	mu    sync.Mutex
	names map[*jschema.Schema]string
	taken map[string]struct{}
}

// NewResolver creates a Resolver for the given mapper.
func NewResolver(mapper TypeMapper) *Resolver {
	return &Resolver{
		mapper: mapper,
		names:  make(map[*jschema.Schema]string),
		taken:  make(map[string]struct{}),
	}
}

// Resolve returns the target type identifier for schema.
func (r *Resolver) Resolve(schema *jschema.Schema, nullable bool, nameHint string) string {
	actual := schema.ActualSchema()

	var typeName string
	switch {
	case actual.IsEnumeration() || actual.Type.Has(jschema.TypeObject) || len(actual.Properties) > 0:
		typeName = r.namedType(actual, nameHint)
	case actual.Type.Has(jschema.TypeArray):
		elem := r.mapper.PrimitiveType(jschema.TypeNone, "")
		if actual.Items != nil {
			elem = r.Resolve(actual.Items, actual.Items.ActualSchema().Type.Has(jschema.TypeNull), nameHint+"Item")
		}
		typeName = r.mapper.ArrayType(elem)
	default:
		typeName = r.mapper.PrimitiveType(actual.Type&^jschema.TypeNull, actual.Format)
	}

	if nullable {
		return r.mapper.NullableType(typeName)
	}
	return typeName
}

func (r *Resolver) namedType(s *jschema.Schema, hint string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.names[s]; ok {
		return name
	}

	base := s.Name
	if base == "" {
		base = s.Title
	}
	if base == "" {
		base = hint
	}
	if base == "" {
		base = "Anonymous"
	}
	base = r.mapper.FormatTypeName(base)

	name := base
	for i := 2; ; i++ {
		if _, clash := r.taken[name]; !clash {
			break
		}
		name = base + strconv.Itoa(i)
	}

	r.taken[name] = struct{}{}
	r.names[s] = name
	return name
}
