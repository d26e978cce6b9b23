// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"context"

	"github.com/bureau-foundation/slackweb/lib/ref"
)

// Method names for conversations.*, mpim.*, and groups.*.
const (
	MethodConversationsCreate  = "conversations.create"
	MethodConversationsHistory = "conversations.history"
	MethodConversationsInfo    = "conversations.info"
	MethodConversationsList    = "conversations.list"

	MethodMPIMClose   = "mpim.close"
	MethodMPIMHistory = "mpim.history"
	MethodMPIMList    = "mpim.list"
	MethodMPIMMark    = "mpim.mark"
	MethodMPIMOpen    = "mpim.open"

	MethodGroupsCreateChild = "groups.createChild"
)

// Conversation types accepted by ConversationsListRequest.Types.
const (
	ConversationPublic  = "public_channel"
	ConversationPrivate = "private_channel"
	ConversationMPIM    = "mpim"
	ConversationIM      = "im"
)

type ConversationsCreateRequest struct {
	Authenticated
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
}

func (ConversationsCreateRequest) Method() string { return MethodConversationsCreate }

func (c *Client) ConversationsCreate(ctx context.Context, request ConversationsCreateRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ConversationsHistoryRequest struct {
	Authenticated
	Channel            string        `json:"channel"`
	Cursor             string        `json:"cursor,omitempty"`
	Inclusive          bool          `json:"inclusive,omitempty"`
	IncludeAllMetadata bool          `json:"include_all_metadata,omitempty"`
	Latest             ref.Timestamp `json:"latest,omitzero"`
	Oldest             ref.Timestamp `json:"oldest,omitzero"`
	Limit              int           `json:"limit,omitempty"`
}

func (ConversationsHistoryRequest) Method() string { return MethodConversationsHistory }

func (c *Client) ConversationsHistory(ctx context.Context, request ConversationsHistoryRequest) (*HistoryResponse, error) {
	return call[HistoryResponse](ctx, c, request)
}

type ConversationsInfoRequest struct {
	Authenticated
	Channel           string `json:"channel"`
	IncludeLocale     bool   `json:"include_locale,omitempty"`
	IncludeNumMembers bool   `json:"include_num_members,omitempty"`
}

func (ConversationsInfoRequest) Method() string { return MethodConversationsInfo }

func (c *Client) ConversationsInfo(ctx context.Context, request ConversationsInfoRequest) (*ChannelResponse, error) {
	return call[ChannelResponse](ctx, c, request)
}

type ConversationsListRequest struct {
	Authenticated
	Cursor          string   `json:"cursor,omitempty"`
	ExcludeArchived bool     `json:"exclude_archived,omitempty"`
	Limit           int      `json:"limit,omitempty"`
	TeamID          string   `json:"team_id,omitempty"`
	Types           []string `json:"types,omitempty"`
}

func (ConversationsListRequest) Method() string { return MethodConversationsList }

func (c *Client) ConversationsList(ctx context.Context, request ConversationsListRequest) (*ChannelsListResponse, error) {
	return call[ChannelsListResponse](ctx, c, request)
}

type MPIMCloseRequest struct {
	Authenticated
	Channel string `json:"channel"`
}

func (MPIMCloseRequest) Method() string { return MethodMPIMClose }

// MPIMCloseResponse sets AlreadyClosed when the conversation was not
// open.
type MPIMCloseResponse struct {
	Envelope
	NoOp          bool `json:"no_op,omitempty"`
	AlreadyClosed bool `json:"already_closed,omitempty"`
}

func (c *Client) MPIMClose(ctx context.Context, request MPIMCloseRequest) (*MPIMCloseResponse, error) {
	return call[MPIMCloseResponse](ctx, c, request)
}

type MPIMHistoryRequest struct {
	Authenticated
	Channel   string        `json:"channel"`
	Count     int           `json:"count,omitempty"`
	Inclusive bool          `json:"inclusive,omitempty"`
	Latest    ref.Timestamp `json:"latest,omitzero"`
	Oldest    ref.Timestamp `json:"oldest,omitzero"`
	Unreads   bool          `json:"unreads,omitempty"`
}

func (MPIMHistoryRequest) Method() string { return MethodMPIMHistory }

func (c *Client) MPIMHistory(ctx context.Context, request MPIMHistoryRequest) (*HistoryResponse, error) {
	return call[HistoryResponse](ctx, c, request)
}

type MPIMListRequest struct {
	Authenticated
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

func (MPIMListRequest) Method() string { return MethodMPIMList }

// GroupsListResponse is one page of private groups.
type GroupsListResponse struct {
	Envelope
	Groups []*Channel `json:"groups"`
}

func (c *Client) MPIMList(ctx context.Context, request MPIMListRequest) (*GroupsListResponse, error) {
	return call[GroupsListResponse](ctx, c, request)
}

type MPIMMarkRequest struct {
	Authenticated
	Channel string        `json:"channel"`
	TS      ref.Timestamp `json:"ts"`
}

func (MPIMMarkRequest) Method() string { return MethodMPIMMark }

func (c *Client) MPIMMark(ctx context.Context, request MPIMMarkRequest) (*EmptyResponse, error) {
	return call[EmptyResponse](ctx, c, request)
}

// MPIMOpenRequest opens a multi-party direct message with Users, sent
// as a comma-separated list.
type MPIMOpenRequest struct {
	Authenticated
	Users []string `json:"users"`
}

func (MPIMOpenRequest) Method() string { return MethodMPIMOpen }

// GroupResponse is returned by methods that answer with one group.
type GroupResponse struct {
	Envelope
	Group Channel `json:"group"`
}

func (c *Client) MPIMOpen(ctx context.Context, request MPIMOpenRequest) (*GroupResponse, error) {
	return call[GroupResponse](ctx, c, request)
}

// GroupsCreateChildRequest archives a private group and creates a copy
// holding only its active members.
type GroupsCreateChildRequest struct {
	Authenticated
	Channel string `json:"channel"`
}

func (GroupsCreateChildRequest) Method() string { return MethodGroupsCreateChild }

func (c *Client) GroupsCreateChild(ctx context.Context, request GroupsCreateChildRequest) (*GroupResponse, error) {
	return call[GroupResponse](ctx, c, request)
}
