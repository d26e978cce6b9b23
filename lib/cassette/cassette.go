// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cassette

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/slackweb/lib/codec"
	"github.com/bureau-foundation/slackweb/webapi"
)

// magic opens every cassette file.
var magic = [4]byte{'S', 'W', 'C', 'S'}

// formatVersion is the header version this package writes and reads.
const formatVersion = 1

// maxDocumentSize bounds the uncompressed document a header may
// announce.
const maxDocumentSize = 256 << 20

// fingerprintDomainKey separates request fingerprints from other
// BLAKE3 uses. ASCII, zero-padded to 32 bytes.
var fingerprintDomainKey = [32]byte{
	's', 'l', 'a', 'c', 'k', 'w', 'e', 'b', '.', 'c', 'a', 's', 's', 'e', 't', 't',
	'e', '.', 'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't', 0, 0, 0,
}

// redactedHeaders are never written to a cassette.
var redactedHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// ErrNoInteraction is wrapped by the error a Replayer returns for a
// request it holds no unused recording of.
var ErrNoInteraction = errors.New("no recorded interaction")

// Interaction is one recorded exchange.
type Interaction struct {
	// Fingerprint identifies the request; see Fingerprint.
	Fingerprint string           `cbor:"fingerprint"`
	Request     RecordedRequest  `cbor:"request"`
	Response    RecordedResponse `cbor:"response"`
}

// RecordedRequest is a TransportRequest with credentials removed.
type RecordedRequest struct {
	Method string              `cbor:"method"`
	URL    string              `cbor:"url"`
	Header map[string][]string `cbor:"header,omitempty"`
	Body   []byte              `cbor:"body,omitempty"`
}

// RecordedResponse is a TransportResponse.
type RecordedResponse struct {
	StatusCode int                 `cbor:"status"`
	Header     map[string][]string `cbor:"header,omitempty"`
	Body       []byte              `cbor:"body,omitempty"`
}

// document is the CBOR payload of a cassette file.
type document struct {
	Interactions []Interaction `cbor:"interactions"`
}

// Fingerprint returns the hex BLAKE3 digest that matches a replayed
// request to its recording. It covers the HTTP method, URL,
// Content-Type, and body. Headers that vary per run (Authorization,
// User-Agent) are excluded, so a cassette recorded with one token
// replays under another.
func Fingerprint(request *webapi.TransportRequest) string {
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("cassette: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	writeField(hasher, []byte(request.Method))
	writeField(hasher, []byte(request.URL))
	writeField(hasher, []byte(request.Header.Get("Content-Type")))
	writeField(hasher, request.Body)
	return hex.EncodeToString(hasher.Sum(nil))
}

// writeField feeds a length-prefixed value to hasher.
func writeField(hasher *blake3.Hasher, value []byte) {
	var length [20]byte
	hasher.Write(strconv.AppendInt(length[:0], int64(len(value)), 10))
	hasher.Write([]byte{':'})
	hasher.Write(value)
}

func newInteraction(request *webapi.TransportRequest, response *webapi.TransportResponse) Interaction {
	return Interaction{
		Fingerprint: Fingerprint(request),
		Request: RecordedRequest{
			Method: request.Method,
			URL:    request.URL,
			Header: redact(request.Header),
			Body:   bytes.Clone(request.Body),
		},
		Response: RecordedResponse{
			StatusCode: response.StatusCode,
			Header:     redact(response.Header),
			Body:       bytes.Clone(response.Body),
		},
	}
}

func redact(header http.Header) map[string][]string {
	if len(header) == 0 {
		return nil
	}
	clean := header.Clone()
	for _, name := range redactedHeaders {
		clean.Del(name)
	}
	if len(clean) == 0 {
		return nil
	}
	return clean
}

// Encode serializes interactions as a cassette file image:
//
//	"SWCS" | version (1 byte) | compression (1 byte) | size (uvarint) | payload
//
// size is the length of the uncompressed CBOR document. compression is
// a preference: a payload that does not shrink is stored uncompressed.
func Encode(interactions []Interaction, compression Compression) ([]byte, error) {
	if interactions == nil {
		interactions = []Interaction{}
	}
	data, err := codec.Marshal(document{Interactions: interactions})
	if err != nil {
		return nil, fmt.Errorf("cassette: encoding interactions: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("cassette: document of %d bytes exceeds %d", len(data), maxDocumentSize)
	}
	payload, applied, err := compress(data, compression)
	if err != nil {
		return nil, fmt.Errorf("cassette: %w", err)
	}

	output := make([]byte, 0, len(payload)+len(magic)+2+binary.MaxVarintLen64)
	output = append(output, magic[:]...)
	output = append(output, formatVersion, byte(applied))
	output = binary.AppendUvarint(output, uint64(len(data)))
	return append(output, payload...), nil
}

// Decode parses a cassette file image produced by Encode.
func Decode(data []byte) ([]Interaction, error) {
	payload, err := Payload(data)
	if err != nil {
		return nil, err
	}
	var decoded document
	if err := codec.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("cassette: decoding interactions: %w", err)
	}
	return decoded.Interactions, nil
}

// Payload validates the header of a cassette file image and returns
// its uncompressed CBOR document.
func Payload(data []byte) ([]byte, error) {
	if len(data) < len(magic)+2 || !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, errors.New("cassette: not a cassette file")
	}
	if version := data[len(magic)]; version != formatVersion {
		return nil, fmt.Errorf("cassette: unsupported format version %d", version)
	}
	compression := Compression(data[len(magic)+1])
	rest := data[len(magic)+2:]
	size, read := binary.Uvarint(rest)
	if read <= 0 {
		return nil, errors.New("cassette: truncated header")
	}
	if size > maxDocumentSize {
		return nil, fmt.Errorf("cassette: header announces %d bytes, limit is %d", size, maxDocumentSize)
	}

	payload, err := decompress(rest[read:], compression, int(size))
	if err != nil {
		return nil, fmt.Errorf("cassette: %w", err)
	}
	return payload, nil
}

// Dump renders the document of a cassette file image in CBOR
// diagnostic notation.
func Dump(data []byte) (string, error) {
	payload, err := Payload(data)
	if err != nil {
		return "", err
	}
	notation, err := codec.Diagnose(payload)
	if err != nil {
		return "", fmt.Errorf("cassette: %w", err)
	}
	return notation, nil
}

// WriteFile encodes interactions to path, replacing it atomically.
func WriteFile(path string, interactions []Interaction, compression Compression) error {
	data, err := Encode(interactions, compression)
	if err != nil {
		return err
	}
	temporary, err := os.CreateTemp(filepath.Dir(path), ".cassette-*")
	if err != nil {
		return fmt.Errorf("cassette: %w", err)
	}
	defer os.Remove(temporary.Name())
	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		return fmt.Errorf("cassette: writing %s: %w", temporary.Name(), err)
	}
	if err := temporary.Close(); err != nil {
		return fmt.Errorf("cassette: closing %s: %w", temporary.Name(), err)
	}
	if err := os.Rename(temporary.Name(), path); err != nil {
		return fmt.Errorf("cassette: %w", err)
	}
	return nil
}

// ReadFile decodes the cassette at path.
func ReadFile(path string) ([]Interaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cassette: %w", err)
	}
	interactions, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return interactions, nil
}
