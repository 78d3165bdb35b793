// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package defaults

import (
	"errors"
	"fmt"
)

// ErrSchemaInconsistency indicates enumeration metadata that cannot map a
// default value to a member name: the value is not among the enumeration
// values, or the value and name lists are not parallel.
var ErrSchemaInconsistency = errors.New("schema inconsistency")

// SchemaError describes an inconsistency in a specific schema node.
type SchemaError struct {
	Pointer string // JSON pointer of the offending (actual) schema
	Default any    // the raw default value being looked up
	Reason  string
}

func (e *SchemaError) Error() string {
	pointer := e.Pointer
	if pointer == "" {
		pointer = "#"
	} else {
		pointer = "#" + pointer
	}
	return fmt.Sprintf("%s at %s: %s (default %v)", ErrSchemaInconsistency, pointer, e.Reason, e.Default)
}

// Unwrap makes errors.Is(err, ErrSchemaInconsistency) hold.
func (e *SchemaError) Unwrap() error {
	return ErrSchemaInconsistency
}
