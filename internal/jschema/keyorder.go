// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	stdjson "encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ExtractKeyOrder parses a raw schema document and records the key order of
// every "properties" object. The result maps the JSON pointer of the schema
// that owns "properties" (root is "") to its property names in source order.
func ExtractKeyOrder(data []byte, format Format) (map[string][]string, error) {
	if format == YAML {
		return extractYAMLKeyOrder(data)
	}
	return extractJSONKeyOrder(data)
}

func extractYAMLKeyOrder(data []byte) (map[string][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	result := make(map[string][]string)
	if len(doc.Content) == 0 {
		return result, nil
	}

	var walk func(n *yaml.Node, pointer string)
	walk = func(n *yaml.Node, pointer string) {
		switch n.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				key, val := n.Content[i].Value, n.Content[i+1]
				if key == "properties" && val.Kind == yaml.MappingNode {
					keys := make([]string, 0, len(val.Content)/2)
					for j := 0; j+1 < len(val.Content); j += 2 {
						keys = append(keys, val.Content[j].Value)
					}
					result[pointer] = keys
				}
				walk(val, pointer+"/"+escapePointer(key))
			}
		case yaml.SequenceNode:
			for i, item := range n.Content {
				walk(item, pointer+"/"+strconv.Itoa(i))
			}
		case yaml.AliasNode:
			if n.Alias != nil {
				walk(n.Alias, pointer)
			}
		}
	}
	walk(doc.Content[0], "")

	return result, nil
}

// extractJSONKeyOrder walks the token stream, since decoding into maps loses order.
func extractJSONKeyOrder(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)
	dec := stdjson.NewDecoder(bytes.NewReader(data))

	var extract func(pointer string) error
	extract = func(pointer string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		delim, ok := token.(stdjson.Delim)
		if !ok {
			return nil
		}

		switch delim {
		case '{':
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, _ := keyToken.(string)
				if key == "properties" {
					keys, err := extractPropertyKeys(dec, extract, pointer+"/properties")
					if err != nil {
						return err
					}
					if keys != nil {
						result[pointer] = keys
					}
					continue
				}
				if err := extract(pointer + "/" + escapePointer(key)); err != nil {
					return err
				}
			}
		case '[':
			for i := 0; dec.More(); i++ {
				if err := extract(pointer + "/" + strconv.Itoa(i)); err != nil {
					return err
				}
			}
		}
		_, err = dec.Token()
		return err
	}

	if err := extract(""); err != nil {
		return nil, err
	}
	return result, nil
}

// extractPropertyKeys consumes the value of a "properties" keyword, returning
// its keys in order when it is an object.
func extractPropertyKeys(dec *stdjson.Decoder, extract func(string) error, pointer string) ([]string, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(stdjson.Delim); !ok || delim != '{' {
		// Not a schema map; skip nested content if it is an array.
		if ok && delim == '[' {
			for i := 0; dec.More(); i++ {
				if err := extract(pointer + "/" + strconv.Itoa(i)); err != nil {
					return nil, err
				}
			}
			_, err = dec.Token()
		}
		return nil, err
	}

	keys := []string{}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyToken.(string)
		keys = append(keys, key)
		if err := extract(pointer + "/" + escapePointer(key)); err != nil {
			return nil, err
		}
	}
	_, err = dec.Token()
	return keys, err
}
