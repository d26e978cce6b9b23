// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package webapi is a typed client for the Slack Web API.
//
// Every remote method is a request struct and a response struct. The
// request's json tags give the wire names; its Method value is the key
// into a [Catalog] that records the HTTP verb, the body encoding (form
// or JSON), and whether a token is required. [Client.Invoke] turns any
// request into exactly one [Transport] round trip and decodes the
// answer:
//
//	client, err := webapi.NewClient(webapi.ClientConfig{Token: token})
//	...
//	created, err := client.ChannelsCreate(ctx, webapi.ChannelsCreateRequest{Name: "ops"})
//
// Failures fall into three types. [*TransportError] means no usable
// HTTP exchange happened. [*RemoteError] means the API answered with
// "ok": false; its Code is the API's error string. [*InvalidResponseError]
// means the body could not be understood, including malformed block
// content, whose [blockkit.DecodeError] is reachable with errors.As.
//
// The client never retries. A ratelimited answer surfaces as a
// RemoteError carrying the Retry-After hint; scheduling is the caller's
// concern.
//
// Message content (blocks and attachments) is modelled by package
// blockkit. Response decoding is all-or-nothing: the caller's response
// value is written only when the whole body decodes.
package webapi
