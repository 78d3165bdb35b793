// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// DialectOption is one selectable target language.
type DialectOption struct {
	Name        string
	Description string
}

// DialectSelect returns a select field for choosing the target dialect.
func DialectSelect(value *string, dialects []DialectOption) *huh.Select[string] {
	options := make([]huh.Option[string], len(dialects))
	for i, d := range dialects {
		label := d.Name
		if d.Description != "" {
			label = d.Name + "  " + Muted(d.Description)
		}
		options[i] = huh.NewOption(label, d.Name)
	}
	return huh.NewSelect[string]().
		Title("Target dialect").
		Options(options...).
		Value(value)
}

// RunDialectForm prompts for the target dialect.
func RunDialectForm(value *string, dialects []DialectOption) error {
	return huh.NewForm(
		huh.NewGroup(DialectSelect(value, dialects)),
	).WithTheme(Theme()).Run()
}
