// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package golang provides Go default value literals.
package golang

import "github.com/dacolabs/defaultgen/internal/dialect"

// Dialect formats enum members as prefixed constants, e.g. PriorityMedium.
type Dialect struct{}

// EnumMember implements defaults.Dialect.
func (Dialect) EnumMember(typeName, member string) string {
	return typeName + member
}

// New creates the Go language.
func New() dialect.Language {
	return dialect.Language{
		Name:        "go",
		Description: "Go (TypeMember constants)",
		Resolver:    dialect.NewResolver(&mapper{}),
		Dialect:     Dialect{},
	}
}
