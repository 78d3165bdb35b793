// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dacolabs/defaultgen/internal/dialect"
	"github.com/dacolabs/defaultgen/internal/prompts"
	"github.com/dacolabs/defaultgen/internal/session"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fallbackDialect is used when no dialect is configured and no terminal is attached.
const fallbackDialect = "typescript"

type literalsOptions struct {
	dialect         string
	noSchemaDefault bool
	output          string
}

// literalRow is the serialized form of one property literal.
type literalRow struct {
	Path       string  `json:"path" yaml:"path"`
	Type       string  `json:"type" yaml:"type"`
	TargetType string  `json:"targetType" yaml:"targetType"`
	Literal    *string `json:"literal" yaml:"literal"`
}

func newLiteralsCmd(dialects dialect.Register) *cobra.Command {
	opts := &literalsOptions{}

	cmd := &cobra.Command{
		Use:   "literals [schema-file]",
		Short: "Print the default value literal of every property",
		Long: fmt.Sprintf(`Load a schema and print, for every property, the literal a generated class
would use to initialize it from the schema's "default".

The schema comes from the argument or from "schema" in defaultgen.yaml.

Available dialects: %s`, strings.Join(dialects.Available(), ", ")),
		Example: `  # Literals for the schema named in defaultgen.yaml
  defaultgen literals

  # C# literals for a given schema
  defaultgen literals order.yaml --dialect csharp

  # Machine readable output
  defaultgen literals order.yaml -d go -o json`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLiterals(cmd, dialects, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", fmt.Sprintf("Target dialect (%s)", strings.Join(dialects.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.noSchemaDefault, "no-schema-default", false, "Ignore schema defaults and emit no literals")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, yaml, json)")

	return cmd
}

func runLiterals(cmd *cobra.Command, dialects dialect.Register, opts *literalsOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	switch opts.output {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("unsupported output format %q (table, yaml, json)", opts.output)
	}

	name, err := selectDialect(cmd, dialects, opts.dialect, ctx.Config.Dialect)
	if err != nil {
		return err
	}
	lang, err := dialects.Get(name)
	if err != nil {
		return fmt.Errorf("%w. Available dialects: %s", err, strings.Join(dialects.Available(), ", "))
	}

	useSchemaDefault := ctx.Config.SchemaDefaults() && !opts.noSchemaDefault
	literals, err := lang.Literals(ctx.Schema, useSchemaDefault)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.output {
	case "json":
		data, err := json.MarshalIndent(toRows(literals), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(toRows(literals))
	default:
		return printLiteralsTable(out, literals)
	}
}

// selectDialect picks the dialect from the flag, then the config, then an
// interactive prompt when a terminal is attached.
func selectDialect(cmd *cobra.Command, dialects dialect.Register, flag, configured string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configured != "" {
		return configured, nil
	}
	if !isTerminal(cmd.InOrStdin()) {
		return fallbackDialect, nil
	}

	names := dialects.Available()
	options := make([]prompts.DialectOption, 0, len(names))
	for _, n := range names {
		lang, err := dialects.Get(n)
		if err != nil {
			return "", err
		}
		options = append(options, prompts.DialectOption{Name: lang.Name, Description: lang.Description})
	}

	var selected string
	if err := prompts.RunDialectForm(&selected, options); err != nil {
		return "", err
	}
	return selected, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func toRows(literals []dialect.PropertyLiteral) []literalRow {
	rows := make([]literalRow, len(literals))
	for i, l := range literals {
		rows[i] = literalRow{
			Path:       l.Path,
			Type:       l.Type.String(),
			TargetType: l.TargetType,
		}
		if l.HasLiteral {
			literal := l.Literal
			rows[i].Literal = &literal
		}
	}
	return rows
}

func printLiteralsTable(w io.Writer, literals []dialect.PropertyLiteral) error {
	if len(literals) == 0 {
		_, err := fmt.Fprintln(w, "No properties found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tTYPE\tTARGET\tLITERAL")
	for _, l := range literals {
		literal := prompts.Muted("-")
		if l.HasLiteral {
			literal = l.Literal
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Path, l.Type, l.TargetType, literal)
	}
	return tw.Flush()
}
