// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType indicates a "type" keyword value outside the JSON Schema type names.
var ErrUnknownType = errors.New("unknown schema type")

// TypeFlags is the set of JSON Schema types a schema admits.
// Several bits may be set at once, e.g. a nullable string is TypeString|TypeNull.
type TypeFlags uint8

// Type flags. TypeNone means no "type" keyword was declared.
const (
	TypeNone   TypeFlags = 0
	TypeObject TypeFlags = 1 << (iota - 1)
	TypeString
	TypeNumber
	TypeInteger
	TypeBoolean
	TypeArray
	TypeNull
)

var typeNames = []struct {
	flag TypeFlags
	name string
}{
	{TypeObject, "object"},
	{TypeString, "string"},
	{TypeNumber, "number"},
	{TypeInteger, "integer"},
	{TypeBoolean, "boolean"},
	{TypeArray, "array"},
	{TypeNull, "null"},
}

// ParseTypeFlags builds a TypeFlags value from JSON Schema type names.
// Empty names are ignored.
func ParseTypeFlags(names ...string) (TypeFlags, error) {
	var flags TypeFlags
	for _, name := range names {
		if name == "" {
			continue
		}
		found := false
		for _, tn := range typeNames {
			if tn.name == name {
				flags |= tn.flag
				found = true
				break
			}
		}
		if !found {
			return TypeNone, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
	}
	return flags, nil
}

// Has reports whether every bit of f is set in t.
func (t TypeFlags) Has(f TypeFlags) bool {
	return f != TypeNone && t&f == f
}

// HasAny reports whether at least one bit of f is set in t.
func (t TypeFlags) HasAny(f TypeFlags) bool {
	return t&f != 0
}

// Names returns the JSON Schema type names of the set bits in declaration order.
func (t TypeFlags) Names() []string {
	var names []string
	for _, tn := range typeNames {
		if t&tn.flag != 0 {
			names = append(names, tn.name)
		}
	}
	return names
}

// String renders the flags as "string|null", or "none" when empty.
func (t TypeFlags) String() string {
	if t == TypeNone {
		return "none"
	}
	return strings.Join(t.Names(), "|")
}
