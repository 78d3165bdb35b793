// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/defaultgen/internal/dialect"
	"github.com/dacolabs/defaultgen/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(dialects dialect.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "defaultgen",
		Short: "Generate default value literals from JSON Schema defaults",
		Long: `defaultgen reads a JSON or YAML schema and renders the "default" of every
property as a literal of the target language, the way a code generator
would initialize the corresponding field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Info(),
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newInitCmd(dialects))
	rootCmd.AddCommand(newLiteralsCmd(dialects))
	rootCmd.AddCommand(newDialectsCmd(dialects))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
