// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"context"

	"github.com/bureau-foundation/slackweb/lib/ref"
)

// Method names for the legacy channels.* family.
const (
	MethodChannelsArchive    = "channels.archive"
	MethodChannelsCreate     = "channels.create"
	MethodChannelsHistory    = "channels.history"
	MethodChannelsInfo       = "channels.info"
	MethodChannelsInvite     = "channels.invite"
	MethodChannelsJoin       = "channels.join"
	MethodChannelsKick       = "channels.kick"
	MethodChannelsLeave      = "channels.leave"
	MethodChannelsList       = "channels.list"
	MethodChannelsMark       = "channels.mark"
	MethodChannelsRename     = "channels.rename"
	MethodChannelsReplies    = "channels.replies"
	MethodChannelsSetPurpose = "channels.setPurpose"
	MethodChannelsSetTopic   = "channels.setTopic"
	MethodChannelsUnarchive  = "channels.unarchive"
)

// ChannelResponse is returned by methods that answer with one channel.
type ChannelResponse struct {
	Envelope
	Channel Channel `json:"channel"`

	// AlreadyInChannel is set by channels.join when the caller was
	// already a member.
	AlreadyInChannel bool `json:"already_in_channel,omitempty"`
}

// EmptyResponse is returned by methods whose only payload is the
// envelope.
type EmptyResponse struct {
	Envelope
}

// HistoryResponse is a page of messages.
type HistoryResponse struct {
	Envelope
	Latest   ref.Timestamp `json:"latest,omitzero"`
	Messages []*Message    `json:"messages"`
	HasMore  bool          `json:"has_more"`

	// PinCount is reported by conversations.history.
	PinCount int `json:"pin_count,omitempty"`
}

type ChannelsArchiveRequest struct {
	Authenticated
	Channel string `json:"channel"`
}

func (ChannelsArchiveRequest) Method() string { return MethodChannelsArchive }

func (c *Client) ChannelsArchive(ctx context.Context, request ChannelsArchiveRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}

type ChannelsCreateRequest struct {
	Authenticated
	Name     string `json:"name"`
	Validate bool   `json:"validate,omitempty"`
}

func (ChannelsCreateRequest) Method() string { return MethodChannelsCreate }

func (c *Client) ChannelsCreate(ctx context.Context, request ChannelsCreateRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ChannelsHistoryRequest struct {
	Authenticated
	Channel   string        `json:"channel"`
	Count     int           `json:"count,omitempty"`
	Inclusive bool          `json:"inclusive,omitempty"`
	Latest    ref.Timestamp `json:"latest,omitzero"`
	Oldest    ref.Timestamp `json:"oldest,omitzero"`
	Unreads   bool          `json:"unreads,omitempty"`
}

func (ChannelsHistoryRequest) Method() string { return MethodChannelsHistory }

func (c *Client) ChannelsHistory(ctx context.Context, request ChannelsHistoryRequest) (*HistoryResponse, error) {
	return call[HistoryResponse](ctx, c, request)
}

type ChannelsInfoRequest struct {
	Authenticated
	Channel       string `json:"channel"`
	IncludeLocale bool   `json:"include_locale,omitempty"`
}

func (ChannelsInfoRequest) Method() string { return MethodChannelsInfo }

func (c *Client) ChannelsInfo(ctx context.Context, request ChannelsInfoRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ChannelsInviteRequest struct {
	Authenticated
	Channel string `json:"channel"`
	User    string `json:"user"`
}

func (ChannelsInviteRequest) Method() string { return MethodChannelsInvite }

func (c *Client) ChannelsInvite(ctx context.Context, request ChannelsInviteRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ChannelsJoinRequest struct {
	Authenticated
	Name     string `json:"name"`
	Validate bool   `json:"validate,omitempty"`
}

func (ChannelsJoinRequest) Method() string { return MethodChannelsJoin }

func (c *Client) ChannelsJoin(ctx context.Context, request ChannelsJoinRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ChannelsKickRequest struct {
	Authenticated
	Channel string `json:"channel"`
	User    string `json:"user"`
}

func (ChannelsKickRequest) Method() string { return MethodChannelsKick }

func (c *Client) ChannelsKick(ctx context.Context, request ChannelsKickRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}

type ChannelsLeaveRequest struct {
	Authenticated
	Channel string `json:"channel"`
}

func (ChannelsLeaveRequest) Method() string { return MethodChannelsLeave }

// ChannelsLeaveResponse sets NotInChannel when the caller was not a
// member.
type ChannelsLeaveResponse struct {
	Envelope
	NotInChannel bool `json:"not_in_channel,omitempty"`
}

func (c *Client) ChannelsLeave(ctx context.Context, request ChannelsLeaveRequest) (*ChannelsLeaveResponse, error) {
	return call[ChannelsLeaveResponse](ctx, c, request)
}

type ChannelsListRequest struct {
	Authenticated
	Cursor          string `json:"cursor,omitempty"`
	ExcludeArchived bool   `json:"exclude_archived,omitempty"`
	ExcludeMembers  bool   `json:"exclude_members,omitempty"`
	Limit           int    `json:"limit,omitempty"`
}

func (ChannelsListRequest) Method() string { return MethodChannelsList }

// ChannelsListResponse is one page of channels.
type ChannelsListResponse struct {
	Envelope
	Channels []*Channel `json:"channels"`
}

func (c *Client) ChannelsList(ctx context.Context, request ChannelsListRequest) (*ChannelsListResponse, error) {
	return call[ChannelsListResponse](ctx, c, request)
}

type ChannelsMarkRequest struct {
	Authenticated
	Channel string        `json:"channel"`
	TS      ref.Timestamp `json:"ts"`
}

func (ChannelsMarkRequest) Method() string { return MethodChannelsMark }

func (c *Client) ChannelsMark(ctx context.Context, request ChannelsMarkRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}

type ChannelsRenameRequest struct {
	Authenticated
	Channel  string `json:"channel"`
	Name     string `json:"name"`
	Validate bool   `json:"validate,omitempty"`
}

func (ChannelsRenameRequest) Method() string { return MethodChannelsRename }

func (c *Client) ChannelsRename(ctx context.Context, request ChannelsRenameRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ChannelsRepliesRequest struct {
	Authenticated
	Channel  string        `json:"channel"`
	ThreadTS ref.Timestamp `json:"thread_ts"`
}

func (ChannelsRepliesRequest) Method() string { return MethodChannelsReplies }

// RepliesResponse holds a thread: the parent followed by its replies.
type RepliesResponse struct {
	Envelope
	Messages []*Message `json:"messages"`
	HasMore  bool       `json:"has_more,omitempty"`
}

func (c *Client) ChannelsReplies(ctx context.Context, request ChannelsRepliesRequest) (*RepliesResponse, error) {
	return call[RepliesResponse](ctx, c, request)
}

type ChannelsSetPurposeRequest struct {
	Authenticated
	Channel string `json:"channel"`
	Purpose string `json:"purpose"`
}

func (ChannelsSetPurposeRequest) Method() string { return MethodChannelsSetPurpose }

type ChannelsSetPurposeResponse struct {
	Envelope
	Purpose string `json:"purpose"`
}

func (c *Client) ChannelsSetPurpose(ctx context.Context, request ChannelsSetPurposeRequest) (*ChannelsSetPurposeResponse, error) {
	return call[ChannelsSetPurposeResponse](ctx, c, request)
}

type ChannelsSetTopicRequest struct {
	Authenticated
	Channel string `json:"channel"`
	Topic   string `json:"topic"`
}

func (ChannelsSetTopicRequest) Method() string { return MethodChannelsSetTopic }

type ChannelsSetTopicResponse struct {
	Envelope
	Topic string `json:"topic"`
}

func (c *Client) ChannelsSetTopic(ctx context.Context, request ChannelsSetTopicRequest) (*ChannelsSetTopicResponse, error) {
	return call[ChannelsSetTopicResponse](ctx, c, request)
}

type ChannelsUnarchiveRequest struct {
	Authenticated
	Channel string `json:"channel"`
}

func (ChannelsUnarchiveRequest) Method() string { return MethodChannelsUnarchive }

func (c *Client) ChannelsUnarchive(ctx context.Context, request ChannelsUnarchiveRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}
