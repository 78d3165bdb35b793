// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(schema, dialect *string, useSchemaDefault *bool, dialects []DialectOption) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to schema file").
				Placeholder("./schema.yaml").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := os.Stat(s); err != nil {
						return errors.New("schema file not found")
					}
					return nil
				}).
				Value(schema),
		),
		huh.NewGroup(DialectSelect(dialect, dialects)),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Emit literals for schema defaults?").
				Affirmative("Yes").
				Negative("No").
				Value(useSchemaDefault),
		),
	).WithTheme(Theme()).Run()
}
