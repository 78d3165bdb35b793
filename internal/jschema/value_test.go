// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same number", json.Number("2"), json.Number("2"), true},
		{"integer and decimal", json.Number("2"), json.Number("2.0"), true},
		{"number and float", json.Number("1.5"), 1.5, true},
		{"different numbers", json.Number("2"), json.Number("3"), false},
		{"number and string", json.Number("2"), "2", false},
		{"strings", "a", "a", true},
		{"booleans", true, false, false},
		{"nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValuesEqual(tt.a, tt.b))
		})
	}
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "hi", ValueText("hi"))
	assert.Equal(t, "1.50", ValueText(json.Number("1.50")))
	assert.Equal(t, "true", ValueText(true))
	assert.Equal(t, "0.1", ValueText(0.1))
	assert.Equal(t, "", ValueText(nil))
}

func TestDecodeValue_KeepsNumberText(t *testing.T) {
	v, err := decodeValue([]byte(`1.50`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1.50"), v)

	v, err = decodeValue([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = decodeValue(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}
