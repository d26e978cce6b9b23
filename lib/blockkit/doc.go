// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package blockkit models Slack message content (blocks, interactive
// elements, composition objects, and legacy attachments) and converts
// it to and from the JSON the Web API exchanges.
//
// # Families
//
// Blocks, elements, and composition objects are three discriminated
// unions. Each is a sealed Go interface ([Block], [Element],
// [Composition]) whose implementations are pointer types in this
// package, selected on the wire by the "type" member:
//
//	{"type": "image", "image_url": "https://...", "alt_text": "logo"}
//
// A fourth family, [Attachment], has a single schema and no
// discriminator.
//
// # Decoding
//
// [DecodeBlock], [DecodeElement], [DecodeComposition], and
// [DecodeAttachment] (or [Decode] with a [Family]) read the
// discriminator first and then decode the variant's fields. Decoding
// follows three rules:
//
//   - A known discriminator decodes the variant's schema. Members the
//     schema does not name are ignored. A required member that is
//     absent, or any member with the wrong JSON type, fails with a
//     [DecodeError] of kind [MalformedField] naming the variant and
//     the field.
//   - A missing discriminator fails with kind [MissingDiscriminator].
//   - An unknown discriminator is not an error. The object decodes into
//     [UnknownBlock], [UnknownElement], or [UnknownComposition], which
//     keep every member as raw JSON and re-encode it unchanged.
//
// The same rules apply to nested content: every variant implements
// json.Unmarshaler, and the list types [Blocks], [Elements], and
// [ContextElements] route each item through the codec. A struct that
// embeds these types (a message, an API response) can therefore be
// decoded with encoding/json directly and still report DecodeErrors.
//
// Confirmation dialogs, options, and option groups have no "type" on
// the wire. Inside a known variant their position identifies them;
// [DecodeComposition] recognizes them by their required members.
//
// # Encoding
//
// [Encode] (or encoding/json) writes each known variant as its
// discriminator followed by the fields that are set. Optional fields
// that are unset are omitted, never written as null. Tri-state flags
// use *bool so that an explicit false survives a round trip.
//
// Message timestamps inside attachments are [ref.Timestamp] values,
// which keep the decimal text the server sent.
package blockkit
