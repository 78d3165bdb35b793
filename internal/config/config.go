// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles defaultgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the defaultgen configuration file.
const FileName = "defaultgen.yaml"

// Config represents the defaultgen.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Schema  string `yaml:"schema,omitempty"`
	Dialect string `yaml:"dialect,omitempty"`

	// UseSchemaDefault is nil when omitted, which means enabled.
	UseSchemaDefault *bool `yaml:"useSchemaDefault,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// ErrUnsupportedVersion indicates a config file written for another format version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("%w %d (expected %d)", ErrUnsupportedVersion, c.Version, CurrentConfigVersion)
	}
	return nil
}

// SchemaDefaults reports whether schema default values should be emitted.
func (c *Config) SchemaDefaults() bool {
	return c.UseSchemaDefault == nil || *c.UseSchemaDefault
}
