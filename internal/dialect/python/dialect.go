// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python provides Python default value literals.
package python

import (
	"github.com/dacolabs/defaultgen/internal/dialect"
	"github.com/dacolabs/defaultgen/internal/naming"
)

// Dialect formats enum members in upper snake case (Priority.VERY_HIGH) and
// booleans as True and False.
type Dialect struct{}

// EnumMember implements defaults.Dialect.
func (Dialect) EnumMember(typeName, member string) string {
	return typeName + "." + naming.ToScreamingSnakeCase(member)
}

// Boolean implements defaults.BooleanFormatter.
func (Dialect) Boolean(text string) string {
	switch text {
	case "true":
		return "True"
	case "false":
		return "False"
	}
	return text
}

// New creates the Python language.
func New() dialect.Language {
	return dialect.Language{
		Name:        "python",
		Description: "Python (Type.MEMBER, True/False)",
		Resolver:    dialect.NewResolver(&mapper{}),
		Dialect:     Dialect{},
	}
}
