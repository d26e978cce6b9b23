// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

// Envelope is the wrapper every API response carries. Every response
// type embeds it. When Invoke returns without error, OK is true and
// Error is empty.
type Envelope struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`

	// Needed and Provided accompany missing_scope failures.
	Needed   string `json:"needed,omitempty"`
	Provided string `json:"provided,omitempty"`

	ResponseMetadata ResponseMetadata `json:"response_metadata,omitzero"`
}

// ResponseEnvelope returns e. Embedding Envelope makes a pointer to any
// response struct satisfy Response.
func (e *Envelope) ResponseEnvelope() *Envelope { return e }

// ResponseMetadata carries pagination state and diagnostics.
type ResponseMetadata struct {
	// NextCursor is empty on the last page.
	NextCursor string   `json:"next_cursor,omitempty"`
	Messages   []string `json:"messages,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Response is the decode target of Invoke: a pointer to a struct that
// embeds Envelope.
type Response interface {
	ResponseEnvelope() *Envelope
}
