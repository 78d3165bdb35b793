// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

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

	got := make(map[string]string)
	targets := make(map[string]string)
	for _, l := range literals {
		if l.HasLiteral {
			got[l.Name] = l.Literal
		}
		targets[l.Name] = l.TargetType
	}

	assert.Equal(t, map[string]string{
		"id":       "7",
		"title":    `"untitled"`,
		"active":   "True",
		"ratio":    "0.25",
		"weight":   "1.5",
		"price":    "9.99",
		"priority": "Priority.MEDIUM",
		"status":   "Status.IN_PROGRESS",
	}, got)

	assert.Equal(t, "int", targets["id"])
	assert.Equal(t, "Optional[Priority]", targets["priority"])
}

func TestDialect_Boolean(t *testing.T) {
	assert.Equal(t, "True", Dialect{}.Boolean("true"))
	assert.Equal(t, "False", Dialect{}.Boolean("false"))
	assert.Equal(t, "maybe", Dialect{}.Boolean("maybe"))
}

func TestDialect_EnumMember(t *testing.T) {
	assert.Equal(t, "Priority.VERY_HIGH", Dialect{}.EnumMember("Priority", "VeryHigh"))
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
	assert.Equal(t, "Priority.MEDIUM", got)
}
