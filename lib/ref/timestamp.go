// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Timestamp is a Slack message timestamp in its wire form: decimal
// digits, optionally followed by a '.' and more decimal digits.
//
// Timestamp is an immutable value type. The zero value represents an
// absent timestamp; use IsZero to check.
type Timestamp struct {
	raw string
}

// ParseTimestamp validates and wraps a raw timestamp string.
func ParseTimestamp(raw string) (Timestamp, error) {
	if raw == "" {
		return Timestamp{}, fmt.Errorf("empty timestamp")
	}
	if !isDecimal(raw) {
		return Timestamp{}, fmt.Errorf("timestamp must be a non-negative decimal number: %q", raw)
	}
	return Timestamp{raw: raw}, nil
}

// MustParseTimestamp is like ParseTimestamp but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseTimestamp(raw string) Timestamp {
	ts, err := ParseTimestamp(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseTimestamp(%q): %v", raw, err))
	}
	return ts
}

// TimestampFromTime formats t with microsecond precision, the
// resolution the API assigns to messages.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{raw: fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))}
}

// String returns the timestamp exactly as it was received.
func (t Timestamp) String() string { return t.raw }

// IsZero reports whether the Timestamp is the zero value (absent).
func (t Timestamp) IsZero() bool { return t.raw == "" }

// Compare returns -1, 0, or +1 depending on whether t is before, equal
// to, or after other as a decimal number. The zero value sorts before
// every non-zero timestamp.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.IsZero() && other.IsZero():
		return 0
	case t.IsZero():
		return -1
	case other.IsZero():
		return 1
	}
	return t.decimal().Cmp(other.decimal())
}

// Before reports whether t is strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool { return t.Compare(other) < 0 }

// Time converts the timestamp to a time.Time, truncated to nanosecond
// precision. Returns the zero time for the zero value.
func (t Timestamp) Time() time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	value := t.decimal()
	seconds := value.IntPart()
	nanos := value.Sub(decimal.NewFromInt(seconds)).Shift(9).IntPart()
	return time.Unix(seconds, nanos).UTC()
}

func (t Timestamp) decimal() decimal.Decimal {
	// raw was validated by ParseTimestamp, so this cannot fail.
	value, err := decimal.NewFromString(t.raw)
	if err != nil {
		panic(fmt.Sprintf("ref: validated timestamp %q failed to parse: %v", t.raw, err))
	}
	return value
}

// MarshalJSON encodes the timestamp as a JSON string. The zero value
// encodes as an empty string; struct fields should use omitzero.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.raw)
}

// UnmarshalJSON accepts a JSON string or a JSON number literal and
// keeps the literal text. null and "" produce the zero value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	literal := string(data)
	switch {
	case literal == "null":
		*t = Timestamp{}
		return nil
	case len(literal) > 0 && literal[0] == '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		literal = raw
	}
	if literal == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(literal)
	if err != nil {
		// Reported as a type error so encoding/json attaches the
		// field path of the offending value.
		return &json.UnmarshalTypeError{
			Value: "timestamp " + literal,
			Type:  reflect.TypeOf(Timestamp{}),
		}
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, used for form and
// query encoding.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (t *Timestamp) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func isDecimal(raw string) bool {
	digits, dots := 0, 0
	for index := 0; index < len(raw); index++ {
		switch c := raw[index]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 || index == 0 || index == len(raw)-1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
