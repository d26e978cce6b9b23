// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1503435956.000247", false},
		{"1503435956", false},
		{"0.1", false},
		{"", true},
		{".5", true},
		{"5.", true},
		{"1.2.3", true},
		{"-1.5", true},
		{"1e9", true},
		{"abc", true},
	}

	for _, test := range tests {
		_, err := ParseTimestamp(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTimestamp(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestTimestampPreservesLiteral(t *testing.T) {
	// Trailing zeros are significant: the API treats ts as a string key.
	ts := MustParseTimestamp("1503435956.000240")
	if ts.String() != "1503435956.000240" {
		t.Errorf("String() = %q, want %q", ts.String(), "1503435956.000240")
	}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"1503435956.000240"` {
		t.Errorf("Marshal = %s, want %q", data, "1503435956.000240")
	}
}

func TestTimestampUnmarshalJSON(t *testing.T) {
	type wrapper struct {
		TS Timestamp `json:"ts,omitzero"`
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"string", `{"ts":"1503435956.000247"}`, "1503435956.000247"},
		{"number literal", `{"ts":1503435956}`, "1503435956"},
		{"fractional number literal", `{"ts":1503435956.000247}`, "1503435956.000247"},
		{"null", `{"ts":null}`, ""},
		{"empty string", `{"ts":""}`, ""},
		{"absent", `{}`, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var decoded wrapper
			if err := json.Unmarshal([]byte(test.input), &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if decoded.TS.String() != test.want {
				t.Errorf("TS = %q, want %q", decoded.TS.String(), test.want)
			}
		})
	}
}

func TestTimestampUnmarshalInvalid(t *testing.T) {
	var decoded struct {
		TS Timestamp `json:"ts"`
	}
	err := json.Unmarshal([]byte(`{"ts":"yesterday"}`), &decoded)
	if err == nil {
		t.Fatal("expected error for non-decimal timestamp")
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *json.UnmarshalTypeError, got %T: %v", err, err)
	}
	if typeErr.Field != "ts" {
		t.Errorf("Field = %q, want %q", typeErr.Field, "ts")
	}
}

func TestTimestampOmitZero(t *testing.T) {
	data, err := json.Marshal(struct {
		TS Timestamp `json:"ts,omitzero"`
	}{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("Marshal = %s, want {}", data)
	}
}

func TestTimestampCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1503435956.000247", "1503435956.000248", -1},
		{"1503435956.000248", "1503435956.000247", 1},
		{"1503435956.00024", "1503435956.000240", 0},
		// These differ only past float64 precision.
		{"1503435956.0000000001", "1503435956.0000000002", -1},
		{"9", "10", -1},
	}

	for _, test := range tests {
		got := MustParseTimestamp(test.a).Compare(MustParseTimestamp(test.b))
		if got != test.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", test.a, test.b, got, test.want)
		}
	}

	if (Timestamp{}).Compare(MustParseTimestamp("1")) != -1 {
		t.Error("zero timestamp should sort first")
	}
	if !MustParseTimestamp("1.1").Before(MustParseTimestamp("1.2")) {
		t.Error("1.1 should be before 1.2")
	}
}

func TestTimestampTime(t *testing.T) {
	got := MustParseTimestamp("1503435956.000247").Time()
	want := time.Unix(1503435956, 247000).UTC()
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
	if !(Timestamp{}).Time().IsZero() {
		t.Error("zero Timestamp should convert to zero time")
	}
}

func TestTimestampFromTime(t *testing.T) {
	ts := TimestampFromTime(time.Unix(1503435956, 247000))
	if ts.String() != "1503435956.000247" {
		t.Errorf("TimestampFromTime = %q, want %q", ts.String(), "1503435956.000247")
	}
}

func TestTimestampText(t *testing.T) {
	var ts Timestamp
	if err := ts.UnmarshalText([]byte("12.5")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	text, err := ts.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "12.5" {
		t.Errorf("MarshalText = %q, want %q", text, "12.5")
	}
	if err := ts.UnmarshalText([]byte("x")); err == nil {
		t.Error("expected error for invalid text")
	}
}
