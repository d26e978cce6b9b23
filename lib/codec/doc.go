// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the project's CBOR encoding configuration.
//
// The Web API speaks JSON; CBOR is used only for files this project
// writes for itself, currently recorded exchanges (package cassette).
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items, so
// recording the same exchanges twice produces identical bytes.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types written only as CBOR use `cbor` struct tags. fxamacker/cbor
// falls back to `json` tags, so Web API types embedded in a CBOR
// document keep their wire names without a second tag.
package codec
