// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dialect

import (
	"testing"

	"github.com/dacolabs/defaultgen/internal/defaults"
	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLanguage() Language {
	return Language{
		Name:     "stub",
		Resolver: NewResolver(&stubMapper{}),
		Dialect:  defaults.DotDialect{},
	}
}

func TestRegister_Get(t *testing.T) {
	r := Register{"stub": stubLanguage}

	lang, err := r.Get("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", lang.Name)

	_, err = r.Get("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect: cobol")
}

func TestRegister_GetReturnsFreshResolver(t *testing.T) {
	r := Register{"stub": stubLanguage}

	a, err := r.Get("stub")
	require.NoError(t, err)
	b, err := r.Get("stub")
	require.NoError(t, err)

	assert.NotSame(t, a.Resolver, b.Resolver)
}

func TestRegister_Available(t *testing.T) {
	r := Register{"zeta": stubLanguage, "alpha": stubLanguage, "mid": stubLanguage}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Available())
}

func TestLanguage_Generator(t *testing.T) {
	gen := stubLanguage().Generator()

	s := &jschema.Schema{
		Name:      "level",
		Type:      jschema.TypeInteger,
		Enum:      []any{json.Number("1"), json.Number("2")},
		EnumNames: []string{"low", "high"},
		Default:   json.Number("1"),
	}
	got, ok, err := gen.DefaultValue(s, false, "", "", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Level.Low", got)
}

func TestLanguage_Literals_NullableTypes(t *testing.T) {
	root := compileYAML(t, `
type: object
required: [level, note]
properties:
  level:
    $ref: "#/$defs/level"
    default: high
  note:
    type: [string, "null"]
    default: hi
$defs:
  level:
    type: [string, "null"]
    enum: [low, high]
`)

	literals, err := stubLanguage().Literals(root, true)
	require.NoError(t, err)
	require.Len(t, literals, 2)

	assert.Equal(t, "Level?", literals[0].TargetType)
	assert.Equal(t, "Level.High", literals[0].Literal)
	assert.Equal(t, "string?", literals[1].TargetType)
	assert.Equal(t, `"hi"`, literals[1].Literal)
}
