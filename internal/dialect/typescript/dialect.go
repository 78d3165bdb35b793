// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript provides TypeScript default value literals.
package typescript

import (
	"github.com/dacolabs/defaultgen/internal/defaults"
	"github.com/dacolabs/defaultgen/internal/dialect"
)

// New creates the TypeScript language. Enum members use the base Type.Member form.
func New() dialect.Language {
	return dialect.Language{
		Name:        "typescript",
		Description: "TypeScript (Type.Member)",
		Resolver:    dialect.NewResolver(&mapper{}),
		Dialect:     defaults.DotDialect{},
	}
}
