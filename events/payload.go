// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package events decodes Events API deliveries and serves the HTTP
// endpoint Slack posts them to.
//
// Slack sends two kinds of request to an events endpoint: a one-time
// url_verification handshake, answered by echoing its challenge, and
// event_callback envelopes wrapping a single workspace event. [Handler]
// does both on a gin router.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/bureau-foundation/slackweb/webapi"
)

// Outer payload types.
const (
	TypeURLVerification = "url_verification"
	TypeEventCallback   = "event_callback"
)

// Inner event types with typed decoding.
const (
	EventSubteamCreated = "subteam_created"
)

// URLVerificationPayload is the handshake Slack sends when an events
// URL is configured.
type URLVerificationPayload struct {
	Token     string `json:"token"`
	Challenge string `json:"challenge"`
	Type      string `json:"type"`
}

// EventCallback is the envelope around every delivered event.
type EventCallback struct {
	Token       string          `json:"token"`
	TeamID      string          `json:"team_id"`
	APIAppID    string          `json:"api_app_id"`
	Type        string          `json:"type"`
	EventID     string          `json:"event_id"`
	EventTime   int64           `json:"event_time"`
	AuthedUsers []string        `json:"authed_users,omitempty"`
	Event       json.RawMessage `json:"event"`
}

// EventType returns the inner event's type field.
func (c *EventCallback) EventType() string {
	return gjson.GetBytes(c.Event, "type").String()
}

// Decode returns the inner event as a typed value: a
// *SubteamCreatedEvent, or an *UnknownEvent for types this package
// does not model.
func (c *EventCallback) Decode() (any, error) {
	switch eventType := c.EventType(); eventType {
	case EventSubteamCreated:
		var event SubteamCreatedEvent
		if err := json.Unmarshal(c.Event, &event); err != nil {
			return nil, fmt.Errorf("events: decoding %s: %w", eventType, err)
		}
		return &event, nil
	default:
		return &UnknownEvent{Type: eventType, Raw: c.Event}, nil
	}
}

// SubteamCreatedEvent reports a new user group.
type SubteamCreatedEvent struct {
	Type    string           `json:"type"`
	Subteam webapi.Usergroup `json:"subteam"`
}

// UnknownEvent carries an event type without a typed model.
type UnknownEvent struct {
	Type string
	Raw  json.RawMessage
}
