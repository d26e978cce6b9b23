// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides immutable value types for identifiers that the
// Slack Web API transmits in forms that must not be reinterpreted.
//
// [Timestamp] is the message timestamp ("ts", "thread_ts", "latest").
// The API uses it both as a point in time and as the primary key of a
// message within a channel, so its textual form must survive a round
// trip exactly: "1503435956.000247" and "1503435956.0002470" name
// different messages even though they are the same number. Timestamps
// are therefore stored as the decimal string the server sent and are
// never parsed into a floating-point value. Ordering uses exact
// decimal arithmetic.
//
// JSON decoding accepts both the string form ("1503435956.000247") and
// a bare number literal (1503435956), which legacy attachment payloads
// use. The literal text is preserved in both cases. Encoding always
// produces the string form.
package ref
