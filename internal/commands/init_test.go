// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/defaultgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.yaml"), []byte("type: object\n"), 0o600))
	t.Chdir(dir)

	out, err := execute(t, "init", "--schema", "order.yaml", "--dialect", "csharp", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "order.yaml", cfg.Schema)
	assert.Equal(t, "csharp", cfg.Dialect)
	assert.Nil(t, cfg.UseSchemaDefault)
	assert.True(t, cfg.SchemaDefaults())
}

func TestInit_NoSchemaDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "init", "--no-schema-default", "--non-interactive")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, fallbackDialect, cfg.Dialect)
	assert.Empty(t, cfg.Schema)
	require.NotNil(t, cfg.UseSchemaDefault)
	assert.False(t, cfg.SchemaDefaults())
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		args    []string
		wantMsg string
	}{
		{
			name: "already initialized",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("version: 1\n"), 0o600))
			},
			args:    []string{"init", "--non-interactive"},
			wantMsg: "already initialized",
		},
		{
			name:    "unknown dialect",
			args:    []string{"init", "--dialect", "cobol", "--non-interactive"},
			wantMsg: "unknown dialect: cobol",
		},
		{
			name:    "missing schema",
			args:    []string{"init", "--schema", "missing.yaml", "--non-interactive"},
			wantMsg: "schema file not found: missing.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}
			t.Chdir(dir)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			if tt.setup == nil {
				assert.NoFileExists(t, filepath.Join(dir, config.FileName))
			}
		})
	}
}
