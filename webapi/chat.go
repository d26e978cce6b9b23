// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"context"
	"encoding/json"

	"github.com/bureau-foundation/slackweb/lib/blockkit"
	"github.com/bureau-foundation/slackweb/lib/ref"
)

// Method names for the chat.* family.
const (
	MethodChatDelete                 = "chat.delete"
	MethodChatDeleteScheduledMessage = "chat.deleteScheduledMessage"
	MethodChatGetPermalink           = "chat.getPermalink"
	MethodChatMeMessage              = "chat.meMessage"
	MethodChatPostMessage            = "chat.postMessage"
	MethodChatScheduleMessage        = "chat.scheduleMessage"
	MethodChatScheduledMessagesList  = "chat.scheduledMessages.list"
	MethodChatUnfurl                 = "chat.unfurl"
	MethodChatUpdate                 = "chat.update"
)

// MessageResponse is returned by methods that post, update, or delete
// one message.
type MessageResponse struct {
	Envelope
	Channel string        `json:"channel"`
	TS      ref.Timestamp `json:"ts"`
	Text    string        `json:"text,omitempty"`
	Message *Message      `json:"message,omitempty"`
}

// Ref returns the address of the affected message.
func (r *MessageResponse) Ref() ref.MessageRef {
	return ref.MessageRef{Channel: r.Channel, TS: r.TS}
}

type ChatDeleteRequest struct {
	Authenticated
	Channel string        `json:"channel"`
	TS      ref.Timestamp `json:"ts"`
	AsUser  bool          `json:"as_user,omitempty"`
}

func (ChatDeleteRequest) Method() string { return MethodChatDelete }

func (c *Client) ChatDelete(ctx context.Context, request ChatDeleteRequest) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, request)
}

type ChatDeleteScheduledMessageRequest struct {
	Authenticated
	Channel            string `json:"channel"`
	ScheduledMessageID string `json:"scheduled_message_id"`
	AsUser             bool   `json:"as_user,omitempty"`
}

func (ChatDeleteScheduledMessageRequest) Method() string { return MethodChatDeleteScheduledMessage }

func (c *Client) ChatDeleteScheduledMessage(ctx context.Context, request ChatDeleteScheduledMessageRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}

type ChatGetPermalinkRequest struct {
	Authenticated
	Channel   string        `json:"channel"`
	MessageTS ref.Timestamp `json:"message_ts"`
}

func (ChatGetPermalinkRequest) Method() string { return MethodChatGetPermalink }

type ChatGetPermalinkResponse struct {
	Envelope
	Channel   string `json:"channel"`
	Permalink string `json:"permalink"`
}

func (c *Client) ChatGetPermalink(ctx context.Context, request ChatGetPermalinkRequest) (*ChatGetPermalinkResponse, error) {
	return call[ChatGetPermalinkResponse](ctx, c, request)
}

type ChatMeMessageRequest struct {
	Authenticated
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (ChatMeMessageRequest) Method() string { return MethodChatMeMessage }

func (c *Client) ChatMeMessage(ctx context.Context, request ChatMeMessageRequest) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, request)
}

// MessageContent is the content shared by posted, scheduled, and
// updated messages. Text is the notification fallback when Blocks or
// Attachments are set.
type MessageContent struct {
	Text        string                 `json:"text,omitempty"`
	Blocks      blockkit.Blocks        `json:"blocks,omitempty"`
	Attachments []*blockkit.Attachment `json:"attachments,omitempty"`
}

// PostOptions controls how a posted message is rendered and
// attributed.
type PostOptions struct {
	ThreadTS       ref.Timestamp `json:"thread_ts,omitzero"`
	ReplyBroadcast bool          `json:"reply_broadcast,omitempty"`
	AsUser         *bool         `json:"as_user,omitempty"`
	LinkNames      bool          `json:"link_names,omitempty"`
	UnfurlLinks    *bool         `json:"unfurl_links,omitempty"`
	UnfurlMedia    *bool         `json:"unfurl_media,omitempty"`
	Mrkdwn         *bool         `json:"mrkdwn,omitempty"`
	Parse          string        `json:"parse,omitempty"`
	Username       string        `json:"username,omitempty"`
	IconEmoji      string        `json:"icon_emoji,omitempty"`
	IconURL        string        `json:"icon_url,omitempty"`
}

type ChatPostMessageRequest struct {
	Authenticated
	Channel string `json:"channel"`
	MessageContent
	PostOptions
}

func (ChatPostMessageRequest) Method() string { return MethodChatPostMessage }

// ChatPostMessage posts a message. The body is JSON so blocks and
// attachments are sent as structured values.
func (c *Client) ChatPostMessage(ctx context.Context, request ChatPostMessageRequest) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, request)
}

type ChatScheduleMessageRequest struct {
	Authenticated
	Channel string `json:"channel"`
	// PostAt is a Unix time in seconds.
	PostAt int64 `json:"post_at"`
	MessageContent
	PostOptions
}

func (ChatScheduleMessageRequest) Method() string { return MethodChatScheduleMessage }

type ChatScheduleMessageResponse struct {
	Envelope
	Channel            string   `json:"channel"`
	ScheduledMessageID string   `json:"scheduled_message_id"`
	PostAt             int64    `json:"post_at"`
	Message            *Message `json:"message,omitempty"`
}

func (c *Client) ChatScheduleMessage(ctx context.Context, request ChatScheduleMessageRequest) (*ChatScheduleMessageResponse, error) {
	return call[ChatScheduleMessageResponse](ctx, c, request)
}

type ChatScheduledMessagesListRequest struct {
	Authenticated
	Channel string `json:"channel,omitempty"`
	Cursor  string `json:"cursor,omitempty"`
	Latest  int64  `json:"latest,omitempty"`
	Oldest  int64  `json:"oldest,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

func (ChatScheduledMessagesListRequest) Method() string { return MethodChatScheduledMessagesList }

type ChatScheduledMessagesListResponse struct {
	Envelope
	ScheduledMessages []*ScheduledMessage `json:"scheduled_messages"`
}

func (c *Client) ChatScheduledMessagesList(ctx context.Context, request ChatScheduledMessagesListRequest) (*ChatScheduledMessagesListResponse, error) {
	return call[ChatScheduledMessagesListResponse](ctx, c, request)
}

// ChatUnfurlRequest attaches link previews to a message. Unfurls maps
// each URL to its preview: an attachment, or an object holding blocks.
type ChatUnfurlRequest struct {
	Authenticated
	Channel          string                     `json:"channel"`
	TS               ref.Timestamp              `json:"ts"`
	Unfurls          map[string]json.RawMessage `json:"unfurls"`
	UserAuthMessage  string                     `json:"user_auth_message,omitempty"`
	UserAuthRequired bool                       `json:"user_auth_required,omitempty"`
	UserAuthURL      string                     `json:"user_auth_url,omitempty"`
}

func (ChatUnfurlRequest) Method() string { return MethodChatUnfurl }

func (c *Client) ChatUnfurl(ctx context.Context, request ChatUnfurlRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}

type ChatUpdateRequest struct {
	Authenticated
	Channel string        `json:"channel"`
	TS      ref.Timestamp `json:"ts"`
	MessageContent
	LinkNames bool   `json:"link_names,omitempty"`
	AsUser    *bool  `json:"as_user,omitempty"`
	Parse     string `json:"parse,omitempty"`
}

func (ChatUpdateRequest) Method() string { return MethodChatUpdate }

func (c *Client) ChatUpdate(ctx context.Context, request ChatUpdateRequest) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, request)
}
