// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package defaults

import "github.com/dacolabs/defaultgen/internal/jschema"

// TypeResolver maps a schema to a target-language type identifier.
// Implementations must be deterministic: the same schema instance and hint
// yield the same identifier for the lifetime of the resolver.
type TypeResolver interface {
	Resolve(schema *jschema.Schema, nullable bool, nameHint string) string
}

// Dialect formats enumeration member access for a target language.
// It only formats: type resolution and member lookup happen in the Generator.
type Dialect interface {
	// EnumMember returns the literal naming member of the enum type typeName.
	// member is already upper camel case.
	EnumMember(typeName, member string) string
}

// BooleanFormatter is implemented by dialects whose boolean keywords are not
// the lower-case "true" and "false". text is already lower-cased.
type BooleanFormatter interface {
	Boolean(text string) string
}

// NumberFormatter is implemented by dialects that decorate numeric literals,
// for example with a type suffix chosen from the target type.
type NumberFormatter interface {
	Number(text, targetType string) string
}

// DotDialect formats enum members as "Type.Member".
type DotDialect struct{}

// EnumMember implements Dialect.
func (DotDialect) EnumMember(typeName, member string) string {
	return typeName + "." + member
}
