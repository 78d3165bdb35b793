// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"os"
	"testing"

	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	root, err := jschema.NewLoader(os.DirFS("../testdata")).Load("order.yaml")
	require.NoError(t, err)

	literals, err := New().Literals(root, true)
	require.NoError(t, err)
	require.Len(t, literals, 9)

	assert.Equal(t, "#/properties/id", literals[0].Path)
	assert.Equal(t, "number", literals[0].TargetType)
	assert.Equal(t, "7", literals[0].Literal)

	got := make(map[string]string)
	for _, l := range literals {
		if l.HasLiteral {
			got[l.Name] = l.Literal
		}
	}
	assert.Equal(t, map[string]string{
		"id":       "7",
		"title":    `"untitled"`,
		"active":   "true",
		"ratio":    "0.25",
		"weight":   "1.5",
		"price":    "9.99",
		"priority": "Priority.Medium",
		"status":   "Status.InProgress",
	}, got)
}

func TestLiterals_SchemaDefaultsOff(t *testing.T) {
	root, err := jschema.NewLoader(os.DirFS("../testdata")).Load("order.yaml")
	require.NoError(t, err)

	literals, err := New().Literals(root, false)
	require.NoError(t, err)

	for _, l := range literals {
		assert.False(t, l.HasLiteral, l.Name)
	}
}

func TestDefaultValue_NullableEnumType(t *testing.T) {
	priority := &jschema.Schema{
		Name:      "priority",
		Type:      jschema.TypeString | jschema.TypeNull,
		Enum:      []any{"low", "medium"},
		EnumNames: []string{"low", "medium"},
	}
	node := &jschema.Schema{Ref: priority, Default: "medium"}

	got, ok, err := New().Generator().DefaultValue(node, false, "", "P", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Priority.Medium", got)
}
