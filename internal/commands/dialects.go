// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dacolabs/defaultgen/internal/dialect"
	"github.com/spf13/cobra"
)

func newDialectsCmd(dialects dialect.Register) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List the available target dialects",
		Example: `  # List dialects
  defaultgen dialects`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialects(cmd.OutOrStdout(), dialects)
		},
	}

	return cmd
}

func runDialects(out io.Writer, dialects dialect.Register) error {
	names := dialects.Available()
	if len(names) == 0 {
		_, err := fmt.Fprintln(out, "No dialects registered.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range names {
		lang, err := dialects.Get(name)
		if err != nil {
			return err
		}
		desc := lang.Description
		if desc == "" {
			desc = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, desc)
	}

	return w.Flush()
}
