// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

var (
	// ErrUnresolvedRef indicates a $ref that does not point at a schema in the document.
	ErrUnresolvedRef = errors.New("unresolved $ref")

	// ErrRefCycle indicates a chain of references that never reaches a definition.
	ErrRefCycle = errors.New("$ref cycle")
)

// Extension keywords carrying enumeration member names, in lookup order.
var enumNameKeywords = []string{"x-enumNames", "x-enum-varnames"}

type pendingRef struct {
	node *Schema
	ref  string
}

type compiler struct {
	keyOrder map[string][]string
	index    map[string]*Schema // JSON pointer -> node
	defs     map[string]*Schema // definition name -> node
	pending  []pendingRef
}

// Compile converts a parsed schema document into a read-only Schema graph.
// keyOrder maps the JSON pointer of an object schema to its property names in
// source order; it may be nil, in which case properties are sorted by name.
func Compile(raw *jsonschema.Schema, keyOrder map[string][]string) (*Schema, error) {
	if raw == nil {
		return nil, errors.New("nil schema")
	}

	c := &compiler{
		keyOrder: keyOrder,
		index:    make(map[string]*Schema),
		defs:     make(map[string]*Schema),
	}

	root, err := c.compile(raw, "")
	if err != nil {
		return nil, err
	}

	for _, p := range c.pending {
		target := c.lookup(p.ref)
		if target == nil {
			return nil, fmt.Errorf("%w: %q at %s", ErrUnresolvedRef, p.ref, pointerOrRoot(p.node.Pointer))
		}
		p.node.Ref = target
	}

	for _, node := range c.index {
		if err := checkIndirection(node); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func (c *compiler) compile(raw *jsonschema.Schema, pointer string) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	types := raw.Types
	if raw.Type != "" {
		types = append([]string{raw.Type}, types...)
	}
	flags, err := ParseTypeFlags(types...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pointerOrRoot(pointer), err)
	}

	def, err := decodeValue(raw.Default)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid default: %w", pointerOrRoot(pointer), err)
	}

	s := &Schema{
		Pointer:     pointer,
		Type:        flags,
		Format:      raw.Format,
		Title:       raw.Title,
		Description: raw.Description,
		Default:     def,
		Required:    raw.Required,
	}
	c.index[pointer] = s

	if len(raw.Enum) > 0 {
		s.Enum = make([]any, len(raw.Enum))
		for i, v := range raw.Enum {
			s.Enum[i] = normalizeValue(v)
		}
		s.EnumNames = enumNames(raw, s.Enum)
	}

	if raw.Ref != "" {
		c.pending = append(c.pending, pendingRef{node: s, ref: raw.Ref})
	}

	if err := c.compileDefs(s, raw.Defs, pointer+"/$defs"); err != nil {
		return nil, err
	}
	if err := c.compileDefs(s, raw.Definitions, pointer+"/definitions"); err != nil {
		return nil, err
	}

	if s.AllOf, err = c.compileList(raw.AllOf, pointer+"/allOf"); err != nil {
		return nil, err
	}
	if s.AnyOf, err = c.compileList(raw.AnyOf, pointer+"/anyOf"); err != nil {
		return nil, err
	}
	if s.OneOf, err = c.compileList(raw.OneOf, pointer+"/oneOf"); err != nil {
		return nil, err
	}
	if s.Items, err = c.compile(raw.Items, pointer+"/items"); err != nil {
		return nil, err
	}

	if len(raw.Properties) > 0 {
		s.PropertyOrder = c.propertyOrder(pointer, raw.Properties)
		s.Properties = make(map[string]*Property, len(raw.Properties))
		for _, name := range s.PropertyOrder {
			ps, err := c.compile(raw.Properties[name], pointer+"/properties/"+escapePointer(name))
			if err != nil {
				return nil, err
			}
			s.Properties[name] = &Property{
				Schema:     ps,
				Name:       name,
				Parent:     s,
				IsRequired: slices.Contains(raw.Required, name),
			}
		}
	}

	return s, nil
}

func (c *compiler) compileDefs(owner *Schema, raw map[string]*jsonschema.Schema, base string) error {
	if len(raw) == 0 {
		return nil
	}
	if owner.Defs == nil {
		owner.Defs = make(map[string]*Schema, len(raw))
	}
	for _, name := range sortedKeys(raw) {
		def, err := c.compile(raw[name], base+"/"+escapePointer(name))
		if err != nil {
			return err
		}
		def.Name = name
		owner.Defs[name] = def
		if _, exists := c.defs[name]; !exists {
			c.defs[name] = def
		}
	}
	return nil
}

func (c *compiler) compileList(raw []*jsonschema.Schema, base string) ([]*Schema, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]*Schema, 0, len(raw))
	for i, r := range raw {
		s, err := c.compile(r, base+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		if s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// propertyOrder returns property names in source order when known,
// otherwise sorted alphabetically for deterministic output.
func (c *compiler) propertyOrder(pointer string, props map[string]*jsonschema.Schema) []string {
	order, ok := c.keyOrder[pointer]
	if !ok {
		return sortedKeys(props)
	}

	seen := make(map[string]bool, len(props))
	result := make([]string, 0, len(props))
	for _, key := range order {
		if _, exists := props[key]; exists && !seen[key] {
			result = append(result, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range props {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(result, rest...)
}

// lookup resolves a local $ref. Definition refs in any of the usual
// locations fall back to the definition name.
func (c *compiler) lookup(ref string) *Schema {
	if ref == "#" {
		return c.index[""]
	}
	if !IsInternalRef(ref) {
		return nil
	}
	pointer := strings.TrimPrefix(ref, "#")
	if s, ok := c.index[pointer]; ok {
		return s
	}
	if name := RefDefName(ref); name != "" {
		return c.defs[unescapePointer(name)]
	}
	return nil
}

// RefDefName extracts the definition name from a $ref string.
// Supports $defs, definitions, and components/schemas (OpenAPI) formats.
// Returns empty string if the ref format is not recognized.
func RefDefName(ref string) string {
	path, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return ""
	}

	for _, prefix := range []string{"$defs/", "definitions/", "components/schemas/"} {
		if name, ok := strings.CutPrefix(path, prefix); ok && !strings.Contains(name, "/") {
			return name
		}
	}
	return ""
}

func checkIndirection(s *Schema) error {
	seen := map[*Schema]struct{}{s: {}}
	for cur := s.indirection(); cur != nil; cur = cur.indirection() {
		if _, ok := seen[cur]; ok {
			return fmt.Errorf("%w: %s", ErrRefCycle, pointerOrRoot(s.Pointer))
		}
		seen[cur] = struct{}{}
	}
	return nil
}

func enumNames(raw *jsonschema.Schema, values []any) []string {
	for _, kw := range enumNameKeywords {
		list, ok := raw.Extra[kw].([]any)
		if !ok {
			continue
		}
		names := make([]string, len(list))
		for i, n := range list {
			names[i] = ValueText(n)
		}
		return names
	}

	names := make([]string, len(values))
	for i, v := range values {
		names[i] = ValueText(v)
	}
	return names
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func unescapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}

func pointerOrRoot(pointer string) string {
	if pointer == "" {
		return "#"
	}
	return "#" + pointer
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
