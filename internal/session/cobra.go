// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("schema context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PreRunE function that loads the config and the schema
// (first positional argument, if any) and stores them in the command's context.
func PreRunLoad(cmd *cobra.Command, args []string) error {
	var schemaPath string
	if len(args) > 0 {
		schemaPath = args[0]
	}
	ctx, err := Load(cmd.Context(), schemaPath)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
