// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Document is a parsed schema file together with the source order of its
// object properties, keyed by the JSON pointer of the owning schema.
type Document struct {
	Schema   *jsonschema.Schema
	KeyOrder map[string][]string
}

// Parse decodes schema bytes in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	keyOrder, err := ExtractKeyOrder(data, format)
	if err != nil {
		return nil, err
	}

	if format == YAML {
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}

	tree, err := decodeValue(data)
	if err != nil {
		return nil, err
	}
	restoreEnumNumbers(&schema, tree)

	return &Document{Schema: &schema, KeyOrder: keyOrder}, nil
}

// restoreEnumNumbers replaces enum values, which jsonschema decodes as
// float64, with the json.Number values of the same document.
func restoreEnumNumbers(s *jsonschema.Schema, raw any) {
	m, ok := raw.(map[string]any)
	if s == nil || !ok {
		return
	}

	if enum, ok := m["enum"].([]any); ok && len(enum) == len(s.Enum) {
		s.Enum = enum
	}

	for _, kw := range []string{"properties", "$defs", "definitions"} {
		children, _ := m[kw].(map[string]any)
		var target map[string]*jsonschema.Schema
		switch kw {
		case "properties":
			target = s.Properties
		case "$defs":
			target = s.Defs
		default:
			target = s.Definitions
		}
		for name, child := range target {
			restoreEnumNumbers(child, children[name])
		}
	}

	restoreEnumNumbers(s.Items, m["items"])

	for kw, list := range map[string][]*jsonschema.Schema{"allOf": s.AllOf, "anyOf": s.AnyOf, "oneOf": s.OneOf} {
		raws, _ := m[kw].([]any)
		for i, sub := range list {
			if i < len(raws) {
				restoreEnumNumbers(sub, raws[i])
			}
		}
	}
}

// yamlToJSON re-encodes a YAML document as JSON. Numeric scalars keep their
// source text so defaults such as 1.50 are not reformatted.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return []byte("{}"), nil
	}
	v, err := yamlValue(doc.Content[0])
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.ScalarNode:
		if (n.Tag == "!!int" || n.Tag == "!!float") && json.Valid([]byte(n.Value)) {
			return json.Number(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data, FormatFromPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return doc, nil
}

// ResolveRefs resolves all external file $refs in the document in-place.
// It recursively loads referenced schemas and replaces the ref with the loaded content.
// Internal refs (starting with #/) are left unchanged.
func (l *Loader) ResolveRefs(doc *Document, basePath string) error {
	return l.resolveRefs(doc, doc.Schema, "", basePath, make(map[string]bool))
}

func (l *Loader) resolveRefs(doc *Document, s *jsonschema.Schema, pointer, basePath string, loading map[string]bool) error {
	if s == nil {
		return nil
	}

	if IsFileRef(s.Ref) {
		refPath := path.Join(basePath, s.Ref)
		if loading[refPath] {
			return fmt.Errorf("%w: %s", ErrRefCycle, refPath)
		}
		loaded, err := l.LoadFile(refPath)
		if err != nil {
			return err
		}
		loading[refPath] = true
		if err := l.resolveRefs(loaded, loaded.Schema, "", path.Dir(refPath), loading); err != nil {
			return err
		}
		delete(loading, refPath)

		// Annotations next to the ref describe the use site and win.
		def, description := s.Default, s.Description
		*s = *loaded.Schema
		if def != nil {
			s.Default = def
		}
		if description != "" {
			s.Description = description
		}
		for p, keys := range loaded.KeyOrder {
			doc.KeyOrder[pointer+p] = keys
		}
		return nil
	}

	for name, p := range s.Properties {
		if err := l.resolveRefs(doc, p, pointer+"/properties/"+escapePointer(name), basePath, loading); err != nil {
			return err
		}
	}
	for name, d := range s.Defs {
		if err := l.resolveRefs(doc, d, pointer+"/$defs/"+escapePointer(name), basePath, loading); err != nil {
			return err
		}
	}
	for name, d := range s.Definitions {
		if err := l.resolveRefs(doc, d, pointer+"/definitions/"+escapePointer(name), basePath, loading); err != nil {
			return err
		}
	}
	if err := l.resolveRefs(doc, s.Items, pointer+"/items", basePath, loading); err != nil {
		return err
	}
	for kw, list := range map[string][]*jsonschema.Schema{"allOf": s.AllOf, "anyOf": s.AnyOf, "oneOf": s.OneOf} {
		for i, sub := range list {
			if err := l.resolveRefs(doc, sub, pointer+"/"+kw+"/"+strconv.Itoa(i), basePath, loading); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load reads a schema file, inlines its external file refs and compiles it.
func (l *Loader) Load(filePath string) (*Schema, error) {
	doc, err := l.LoadFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := l.ResolveRefs(doc, path.Dir(filePath)); err != nil {
		return nil, err
	}
	return Compile(doc.Schema, doc.KeyOrder)
}
