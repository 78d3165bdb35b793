// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/defaultgen/internal/config"
	"github.com/dacolabs/defaultgen/internal/jschema"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates no schema was given or the schema file doesn't exist.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrInvalidSchema indicates the schema file exists but couldn't be parsed or compiled.
	ErrInvalidSchema = errors.New("invalid schema")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the compiled schema.
type Context struct {
	// Config is the loaded defaultgen.yaml, or a default one when absent.
	Config *config.Config

	// SchemaPath is the schema file the Schema was loaded from.
	SchemaPath string

	// Schema is the compiled root schema.
	Schema *jschema.Schema
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the session Context stored in it.
// schemaPath overrides the schema named in the config when non-empty.
func Load(ctx context.Context, schemaPath string) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadDir(ctx, cwd, schemaPath)
}

// LoadDir is Load rooted at dir instead of the working directory.
func LoadDir(ctx context.Context, dir, schemaPath string) (context.Context, error) {
	cfg := &config.Config{Version: config.CurrentConfigVersion}

	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
	}

	if schemaPath == "" {
		schemaPath = cfg.Schema
	}
	if schemaPath == "" {
		return nil, fmt.Errorf("%w: pass a schema file or set \"schema\" in %s", ErrSchemaNotFound, config.FileName)
	}
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(dir, schemaPath)
	}
	if _, err := os.Stat(schemaPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaNotFound, err)
	}

	loader := jschema.NewLoader(os.DirFS(filepath.Dir(schemaPath)))
	schema, err := loader.Load(filepath.Base(schemaPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	sessionCtx := &Context{
		Config:     cfg,
		SchemaPath: schemaPath,
		Schema:     schema,
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
