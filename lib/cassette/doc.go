// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cassette records Web API exchanges and replays them.
//
// A [Recorder] wraps a live webapi.Transport and keeps every completed
// exchange. Saved to disk, the exchanges form a cassette: a small
// header followed by a deterministic CBOR document (lib/codec),
// compressed with zstd or LZ4. A [Replayer] is a webapi.Transport that
// answers from a cassette, so client code can be exercised against
// real responses without network access or credentials.
//
// Requests are matched by [Fingerprint], a keyed BLAKE3 digest of the
// method, URL, content type, and body. Request encoding in package
// webapi is deterministic, so the same typed request always produces
// the same fingerprint. Authorization and cookie headers are removed
// before anything is written.
//
// Request bodies are stored verbatim. Recording an OAuth exchange
// stores its client secret; do not commit such cassettes.
package cassette
