// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package scala provides Scala default value literals.
package scala

import (
	"strings"

	"github.com/dacolabs/defaultgen/internal/defaults"
	"github.com/dacolabs/defaultgen/internal/dialect"
)

// Dialect formats Scala literals: enum members as Type.Member, Long and
// Float literals with their suffix.
type Dialect struct {
	defaults.DotDialect
}

// Number implements defaults.NumberFormatter.
func (Dialect) Number(text, targetType string) string {
	t := strings.TrimSuffix(strings.TrimPrefix(targetType, "Option["), "]")
	switch t {
	case "Long":
		return text + "L"
	case "Float":
		return text + "f"
	}
	return text
}

// New creates the Scala language.
func New() dialect.Language {
	return dialect.Language{
		Name:        "scala",
		Description: "Scala (Type.Member, L/f numeric suffixes)",
		Resolver:    dialect.NewResolver(&mapper{}),
		Dialect:     Dialect{},
	}
}
