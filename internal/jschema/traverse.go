// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// Traverse returns an iterator over all schemas in the compiled tree.
// It handles cycles by tracking visited schemas. References are followed when
// followRefs is set; otherwise only the tree as written is visited.
func Traverse(schema *Schema, followRefs bool) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		visited := make(map[*Schema]struct{})
		traverseWithVisited(schema, followRefs, yield, visited)
	}
}

func traverseWithVisited(schema *Schema, followRefs bool, yield func(*Schema) bool, visited map[*Schema]struct{}) bool {
	if schema == nil {
		return true
	}
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(schema) {
		return false
	}

	if followRefs && !traverseWithVisited(schema.Ref, followRefs, yield, visited) {
		return false
	}

	for _, name := range schema.PropertyOrder {
		if !traverseWithVisited(schema.Properties[name].Schema, followRefs, yield, visited) {
			return false
		}
	}
	if !traverseWithVisited(schema.Items, followRefs, yield, visited) {
		return false
	}

	for _, list := range [][]*Schema{schema.AllOf, schema.AnyOf, schema.OneOf} {
		for _, s := range list {
			if !traverseWithVisited(s, followRefs, yield, visited) {
				return false
			}
		}
	}

	for _, name := range sortedKeys(schema.Defs) {
		if !traverseWithVisited(schema.Defs[name], followRefs, yield, visited) {
			return false
		}
	}

	return true
}

// Properties returns an iterator over every property declared in the tree,
// in declaration order, keyed by the property's JSON pointer. References are
// not followed, so each declared property is yielded exactly once.
func Properties(schema *Schema) iter.Seq2[string, *Property] {
	return func(yield func(string, *Property) bool) {
		for s := range Traverse(schema, false) {
			for _, name := range s.PropertyOrder {
				p := s.Properties[name]
				if !yield(pointerOrRoot(p.Pointer), p) {
					return
				}
			}
		}
	}
}
