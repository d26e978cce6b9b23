// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP response reading for Web API
// clients.
//
// ReadResponse bounds response body reads at MaxResponseSize to prevent
// unbounded memory allocation from a misbehaving server. ReadEncoded
// additionally undoes a Content-Encoding for transports that request
// compressed responses themselves.
package netutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// MaxResponseSize is the bound on JSON API response body reads: 256 MB. This
// exists solely to prevent a pathological response from exhausting system
// memory. Legitimate API responses (even a full users.list page with
// profiles) are orders of magnitude smaller.
const MaxResponseSize int64 = 256 << 20

// AcceptEncoding is the Accept-Encoding value matching the codings
// ReadEncoded understands.
const AcceptEncoding = "gzip, deflate, zstd"

// ReadResponse reads a JSON API response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ReadEncoded reads a response body compressed with contentEncoding
// (the Content-Encoding header value) and returns the decoded bytes. The
// decoded size is bounded at MaxResponseSize. An empty or "identity"
// encoding reads the body as-is.
func ReadEncoded(body io.Reader, contentEncoding string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "", "identity":
		return ReadResponse(body)

	case "gzip", "x-gzip":
		reader, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("opening gzip body: %w", err)
		}
		defer reader.Close()
		return ReadResponse(reader)

	case "deflate":
		// HTTP "deflate" is the zlib container (RFC 9110 section 8.4.1.2).
		reader, err := zlib.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("opening deflate body: %w", err)
		}
		defer reader.Close()
		return ReadResponse(reader)

	case "zstd":
		decoder, err := zstd.NewReader(body, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("opening zstd body: %w", err)
		}
		defer decoder.Close()
		return ReadResponse(decoder)

	default:
		return nil, fmt.Errorf("unsupported content encoding %q", contentEncoding)
	}
}
