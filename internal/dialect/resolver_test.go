// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dialect

import (
	"strings"
	"sync"
	"testing"

	"github.com/dacolabs/defaultgen/internal/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMapper is a minimal TypeMapper for testing Resolver logic.
type stubMapper struct{}

func (s *stubMapper) PrimitiveType(flags jschema.TypeFlags, format string) string {
	if format != "" {
		return format
	}
	return flags.String()
}

func (s *stubMapper) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (s *stubMapper) NullableType(typeName string) string {
	return typeName + "?"
}

func (s *stubMapper) FormatTypeName(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

func compileYAML(t *testing.T, data string) *jschema.Schema {
	t.Helper()
	doc, err := jschema.Parse([]byte(data), jschema.YAML)
	require.NoError(t, err)
	s, err := jschema.Compile(doc.Schema, doc.KeyOrder)
	require.NoError(t, err)
	return s
}

const resolverSchema = `
type: object
properties:
  name:
    type: string
  nick:
    type: [string, "null"]
  born:
    type: string
    format: date
  tags:
    type: array
    items:
      type: string
  status:
    $ref: "#/$defs/status"
  inline:
    type: string
    enum: [a, b]
  titled:
    title: mood
    type: string
    enum: [up, down]
  maybe:
    $ref: "#/$defs/maybe"
$defs:
  maybe:
    type: [string, "null"]
    enum: [low, high, null]
  status:
    type: string
    enum: [active, retired]
`

func TestResolver_Resolve(t *testing.T) {
	root := compileYAML(t, resolverSchema)
	r := NewResolver(&stubMapper{})

	tests := []struct {
		prop     string
		nullable bool
		hint     string
		want     string
	}{
		{"name", false, "", "string"},
		{"name", true, "", "string?"},
		{"nick", false, "", "string"},
		{"nick", true, "", "string?"},
		{"born", false, "", "date"},
		{"tags", false, "", "[]string"},
		{"status", false, "ignored", "Status"},
		{"status", true, "ignored", "Status?"},
		{"inline", false, "inline", "Inline"},
		{"titled", false, "ignored", "Mood"},
		{"maybe", false, "ignored", "Maybe"},
		{"maybe", true, "ignored", "Maybe?"},
	}

	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			got := r.Resolve(root.Properties[tt.prop].Schema, tt.nullable, tt.hint)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_StableNames(t *testing.T) {
	root := compileYAML(t, resolverSchema)
	r := NewResolver(&stubMapper{})
	inline := root.Properties["inline"].Schema

	first := r.Resolve(inline, false, "first")
	second := r.Resolve(inline, false, "second")

	assert.Equal(t, "First", first)
	assert.Equal(t, first, second, "a schema keeps its name regardless of later hints")
}

func TestResolver_ClashingNames(t *testing.T) {
	root := compileYAML(t, resolverSchema)
	r := NewResolver(&stubMapper{})

	a := r.Resolve(root.Properties["inline"].Schema, false, "kind")
	b := r.Resolve(root.Properties["titled"].Schema, false, "")
	c := r.Resolve(root.Defs["status"], false, "")
	d := r.Resolve(root.Properties["titled"].Schema, false, "")
	e := r.Resolve(&jschema.Schema{Type: jschema.TypeObject}, false, "kind")

	assert.Equal(t, "Kind", a)
	assert.Equal(t, "Mood", b)
	assert.Equal(t, "Status", c)
	assert.Equal(t, "Mood", d)
	assert.Equal(t, "Kind2", e)
}

func TestResolver_Anonymous(t *testing.T) {
	r := NewResolver(&stubMapper{})
	got := r.Resolve(&jschema.Schema{Type: jschema.TypeObject}, false, "")
	assert.Equal(t, "Anonymous", got)
}

func TestResolver_Concurrent(t *testing.T) {
	root := compileYAML(t, resolverSchema)
	r := NewResolver(&stubMapper{})
	status := root.Defs["status"]

	var wg sync.WaitGroup
	names := make([]string, 16)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = r.Resolve(status, false, "")
		}(i)
	}
	wg.Wait()

	for _, n := range names {
		assert.Equal(t, "Status", n)
	}
}
