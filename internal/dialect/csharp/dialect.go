// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package csharp provides C# default value literals.
package csharp

import (
	"strings"

	"github.com/dacolabs/defaultgen/internal/defaults"
	"github.com/dacolabs/defaultgen/internal/dialect"
)

// Dialect formats C# literals: enum members as Type.Member and numeric
// literals with the suffix their target type requires.
type Dialect struct {
	defaults.DotDialect
}

// numberSuffixes maps C# numeric types to literal suffixes.
var numberSuffixes = map[string]string{
	"long":    "L",
	"ulong":   "UL",
	"uint":    "U",
	"float":   "F",
	"double":  "D",
	"decimal": "M",
}

// Number implements defaults.NumberFormatter.
func (Dialect) Number(text, targetType string) string {
	t := strings.TrimPrefix(strings.TrimSuffix(targetType, "?"), "System.")
	switch t {
	case "Int64":
		t = "long"
	case "Double":
		t = "double"
	case "Single":
		t = "float"
	case "Decimal":
		t = "decimal"
	}
	suffix, ok := numberSuffixes[t]
	if !ok {
		return text
	}
	return text + suffix
}

// New creates the C# language.
func New() dialect.Language {
	return dialect.Language{
		Name:        "csharp",
		Description: "C# (Type.Member, numeric suffixes from the target type)",
		Resolver:    dialect.NewResolver(&mapper{}),
		Dialect:     Dialect{},
	}
}
