// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/slackweb/lib/ref"
)

type sampleExchange struct {
	Method string            `cbor:"method"`
	Status int               `cbor:"status"`
	Header map[string]string `cbor:"header,omitempty"`
	Body   []byte            `cbor:"body,omitempty"`
}

// sampleDual uses json tags, relying on fxamacker's fallback.
type sampleDual struct {
	Channel string        `json:"channel"`
	TS      ref.Timestamp `json:"ts"`
}

func TestMarshalUnmarshal(t *testing.T) {
	original := sampleExchange{
		Method: "chat.postMessage",
		Status: 200,
		Header: map[string]string{"Content-Type": "application/json"},
		Body:   []byte(`{"ok":true}`),
	}
	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleExchange
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Method != original.Method || decoded.Status != original.Status ||
		decoded.Header["Content-Type"] != "application/json" || !bytes.Equal(decoded.Body, original.Body) {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := sampleExchange{
		Method: "users.list",
		Header: map[string]string{"b": "2", "a": "1", "c": "3"},
	}
	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 10 {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("encoding not deterministic: %x vs %x", first, again)
		}
	}
}

func TestTextMarshalerFields(t *testing.T) {
	original := sampleDual{Channel: "C1", TS: ref.MustParseTimestamp("1503435956.000247")}
	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, `"ts": "1503435956.000247"`) {
		t.Errorf("timestamp not encoded as text: %s", diagnostic)
	}

	var decoded sampleDual
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

func TestUnmarshalAnyUsesStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"ok": true, "nested": map[string]any{"n": 1}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map[string]any", decoded)
	}
	if _, ok := object["nested"].(map[string]any); !ok {
		t.Errorf("nested %T, want map[string]any", object["nested"])
	}
}
