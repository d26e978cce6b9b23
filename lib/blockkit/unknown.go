// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockkit

import "encoding/json"

// UnknownBlock carries a block whose discriminator this version of the
// package does not recognize. Fields holds every top-level member of
// the original object, "type" included, as raw JSON; encoding writes
// them back unchanged.
type UnknownBlock struct {
	Type   string
	Fields map[string]json.RawMessage
}

func (b *UnknownBlock) BlockType() string { return b.Type }
func (*UnknownBlock) isBlock()            {}

func (b UnknownBlock) MarshalJSON() ([]byte, error) {
	return marshalFieldMap(b.Type, b.Fields)
}

// UnknownElement carries an element whose discriminator this version of
// the package does not recognize. It is accepted anywhere an element
// is, including context blocks.
type UnknownElement struct {
	Type   string
	Fields map[string]json.RawMessage
}

func (e *UnknownElement) ElementType() string { return e.Type }
func (*UnknownElement) isElement()            {}
func (*UnknownElement) isContextElement()     {}

func (e UnknownElement) MarshalJSON() ([]byte, error) {
	return marshalFieldMap(e.Type, e.Fields)
}

// UnknownComposition carries a typed composition object whose kind is
// not recognized.
type UnknownComposition struct {
	Type   string
	Fields map[string]json.RawMessage
}

func (c *UnknownComposition) CompositionType() string { return c.Type }
func (*UnknownComposition) isComposition()            {}

func (c UnknownComposition) MarshalJSON() ([]byte, error) {
	return marshalFieldMap(c.Type, c.Fields)
}
