// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dialect bundles per-language type resolvers and literal formatting.
package dialect

import (
	"fmt"
	"sort"

	"github.com/dacolabs/defaultgen/internal/defaults"
	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/dacolabs/defaultgen/internal/naming"
)

// Language is everything the generator needs to emit literals for one target language.
type Language struct {
	Name        string
	Description string
	Resolver    *Resolver
	Dialect     defaults.Dialect
}

// Generator returns a default value generator for the language.
func (l Language) Generator() *defaults.Generator {
	return defaults.New(l.Resolver, l.Dialect)
}

// PropertyLiteral is the default value literal computed for one property.
type PropertyLiteral struct {
	Path       string // JSON pointer of the property, e.g. "#/properties/id"
	Name       string
	Type       jschema.TypeFlags
	TargetType string // type the literal initializes, as resolved for the language
	Literal    string
	HasLiteral bool // false when no literal should be emitted
}

// Literals computes the default literal of every property declared in root,
// in declaration order. Optional properties and types admitting null are
// treated as nullable.
func (l Language) Literals(root *jschema.Schema, useSchemaDefault bool) ([]PropertyLiteral, error) {
	gen := l.Generator()

	var out []PropertyLiteral
	for path, p := range jschema.Properties(root) {
		actual := p.ActualPropertySchema()
		nullable := !p.IsRequired || actual.Type.Has(jschema.TypeNull)
		hint := naming.ToPascalCase(p.Name)
		target := l.Resolver.Resolve(actual, nullable, hint)

		literal, ok, err := gen.DefaultValue(p, nullable, target, hint, useSchemaDefault)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, PropertyLiteral{
			Path:       path,
			Name:       p.Name,
			Type:       p.Type,
			TargetType: target,
			Literal:    literal,
			HasLiteral: ok,
		})
	}
	return out, nil
}

// Factory creates a Language with a fresh resolver. Type names are stable
// within one resolver, so callers create one Language per generation run.
type Factory func() Language

// Register maps dialect names to their factories.
type Register map[string]Factory

// Get creates the named language.
func (r Register) Get(name string) (Language, error) {
	f, ok := r[name]
	if !ok {
		return Language{}, fmt.Errorf("unknown dialect: %s", name)
	}
	return f(), nil
}

// Available returns all registered dialect names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
