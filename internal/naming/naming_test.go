// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUpperCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		force bool
		want  string
	}{
		{"lower word", "medium", true, "Medium"},
		{"already upper", "Medium", true, "Medium"},
		{"keeps inner case", "myValue", true, "MyValue"},
		{"snake case", "very_high", true, "VeryHigh"},
		{"kebab case", "very-high", true, "VeryHigh"},
		{"spaces and slashes", "in progress/now", true, "InProgressNow"},
		{"dots", "v1.beta", true, "V1Beta"},
		{"no force keeps first", "medium_high", false, "mediumHigh"},
		{"leading digit", "2fast", true, "_2fast"},
		{"digits only", "42", true, "_42"},
		{"unicode", "élan", true, "Élan"},
		{"empty", "", true, ""},
		{"only separators", "__", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUpperCamelCase(tt.input, tt.force))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "UserProfile", ToPascalCase("user_profile"))
	assert.Equal(t, "OrderItems", ToPascalCase("order-items"))
}

func TestToGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user_id", "UserID"},
		{"api_url", "APIURL"},
		{"created_at", "CreatedAt"},
		{"priority", "Priority"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToGoName(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"medium", "medium"},
		{"VeryHigh", "very_high"},
		{"very-high", "very_high"},
		{"HTTPServer", "http_server"},
		{"in progress", "in_progress"},
		{"3d", "_3d"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input))
		})
	}
}

func TestToScreamingSnakeCase(t *testing.T) {
	assert.Equal(t, "VERY_HIGH", ToScreamingSnakeCase("veryHigh"))
	assert.Equal(t, "MEDIUM", ToScreamingSnakeCase("Medium"))
}
