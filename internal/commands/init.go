// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dacolabs/defaultgen/internal/config"
	"github.com/dacolabs/defaultgen/internal/dialect"
	"github.com/dacolabs/defaultgen/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	schema          string
	dialect         string
	noSchemaDefault bool
	nonInteractive  bool
}

func newInitCmd(dialects dialect.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a defaultgen project",
		Long: fmt.Sprintf(`Initialize a defaultgen project with a %s configuration file
naming the schema and the target dialect, so "defaultgen literals" can run
without arguments.`, config.FileName),
		Example: `  # Interactive mode
  defaultgen init

  # Non-interactive
  defaultgen init --schema order.yaml --dialect csharp --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cmd, cwd, dialects, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Path to the schema file")
	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", fallbackDialect, fmt.Sprintf("Target dialect (%s)", strings.Join(dialects.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.noSchemaDefault, "no-schema-default", false, "Do not emit literals for schema defaults")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, dialects dialect.Register, opts *initOptions) error {
	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", config.FileName)
	}

	useSchemaDefault := !opts.noSchemaDefault
	if !opts.nonInteractive {
		options := make([]prompts.DialectOption, 0, len(dialects))
		for _, name := range dialects.Available() {
			lang, err := dialects.Get(name)
			if err != nil {
				return err
			}
			options = append(options, prompts.DialectOption{Name: lang.Name, Description: lang.Description})
		}
		if err := prompts.RunInitForm(&opts.schema, &opts.dialect, &useSchemaDefault, options); err != nil {
			return err
		}
	}

	if _, err := dialects.Get(opts.dialect); err != nil {
		return fmt.Errorf("%w. Available dialects: %s", err, strings.Join(dialects.Available(), ", "))
	}
	if opts.schema != "" {
		schemaPath := opts.schema
		if !filepath.IsAbs(schemaPath) {
			schemaPath = filepath.Join(dir, schemaPath)
		}
		if _, err := os.Stat(schemaPath); err != nil {
			return fmt.Errorf("schema file not found: %s", opts.schema)
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  opts.schema,
		Dialect: opts.dialect,
	}
	if !useSchemaDefault {
		cfg.UseSchemaDefault = &useSchemaDefault
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	schema := opts.schema
	if schema == "" {
		schema = prompts.Muted("(none)")
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Schema", Value: schema},
		{Label: "Dialect", Value: opts.dialect},
		{Label: "Schema defaults", Value: strconv.FormatBool(useSchemaDefault)},
	}, "Initialization completed")

	return nil
}
