// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scala

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
	for _, l := range literals {
		if l.HasLiteral {
			got[l.Name] = l.Literal
		}
	}

	assert.Equal(t, map[string]string{
		"id":       "7L",
		"title":    `"untitled"`,
		"active":   "true",
		"ratio":    "0.25",
		"weight":   "1.5f",
		"price":    "9.99",
		"priority": "Priority.Medium",
		"status":   "Status.InProgress",
	}, got)
}

func TestDialect_Number(t *testing.T) {
	assert.Equal(t, "1L", Dialect{}.Number("1", "Long"))
	assert.Equal(t, "1L", Dialect{}.Number("1", "Option[Long]"))
	assert.Equal(t, "1", Dialect{}.Number("1", "Int"))
	assert.Equal(t, "2.5f", Dialect{}.Number("2.5", "Option[Float]"))
}
