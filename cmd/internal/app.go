// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/defaultgen/internal/commands"
	"github.com/dacolabs/defaultgen/internal/dialect"
	"github.com/dacolabs/defaultgen/internal/dialect/csharp"
	"github.com/dacolabs/defaultgen/internal/dialect/golang"
	"github.com/dacolabs/defaultgen/internal/dialect/python"
	"github.com/dacolabs/defaultgen/internal/dialect/scala"
	"github.com/dacolabs/defaultgen/internal/dialect/typescript"
)

// Dialects returns every built-in target dialect.
func Dialects() dialect.Register {
	return dialect.Register{
		"csharp":     csharp.New,
		"typescript": typescript.New,
		"go":         golang.New,
		"python":     python.New,
		"scala":      scala.New,
	}
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(Dialects())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
