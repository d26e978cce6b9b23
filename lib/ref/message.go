// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// MessageRef identifies one message: the conversation it lives in and
// its timestamp. Edits, deletions, reactions, and thread replies all
// address a message this way.
type MessageRef struct {
	Channel string
	TS      Timestamp
}

// ParseMessageRef parses the "channel/ts" form produced by String.
func ParseMessageRef(raw string) (MessageRef, error) {
	channel, rawTS, found := strings.Cut(raw, "/")
	if !found || channel == "" {
		return MessageRef{}, fmt.Errorf("message reference must be channel/ts: %q", raw)
	}
	ts, err := ParseTimestamp(rawTS)
	if err != nil {
		return MessageRef{}, fmt.Errorf("message reference %q: %w", raw, err)
	}
	return MessageRef{Channel: channel, TS: ts}, nil
}

// String returns "channel/ts".
func (m MessageRef) String() string {
	return m.Channel + "/" + m.TS.String()
}

// IsZero reports whether m names no message.
func (m MessageRef) IsZero() bool {
	return m.Channel == "" && m.TS.IsZero()
}
