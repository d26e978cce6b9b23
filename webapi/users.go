// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import "context"

// Method names for users.*, emoji.*, and dnd.*.
const (
	MethodUsersInfo    = "users.info"
	MethodUsersList    = "users.list"
	MethodEmojiList    = "emoji.list"
	MethodDNDEndSnooze = "dnd.endSnooze"
)

type UsersInfoRequest struct {
	Authenticated
	User          string `json:"user"`
	IncludeLocale bool   `json:"include_locale,omitempty"`
}

func (UsersInfoRequest) Method() string { return MethodUsersInfo }

type UsersInfoResponse struct {
	Envelope
	User User `json:"user"`
}

func (c *Client) UsersInfo(ctx context.Context, request UsersInfoRequest) (*UsersInfoResponse, error) {
	return call[UsersInfoResponse](ctx, c, request)
}

type UsersListRequest struct {
	Authenticated
	Cursor        string `json:"cursor,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	IncludeLocale bool   `json:"include_locale,omitempty"`
	Presence      bool   `json:"presence,omitempty"`
}

func (UsersListRequest) Method() string { return MethodUsersList }

type UsersListResponse struct {
	Envelope
	Members []*User `json:"members"`
	// CacheTS is a Unix time in seconds.
	CacheTS int64 `json:"cache_ts,omitempty"`
	// Offset is the legacy pagination marker that predates cursors.
	Offset string `json:"offset,omitempty"`
}

func (c *Client) UsersList(ctx context.Context, request UsersListRequest) (*UsersListResponse, error) {
	return call[UsersListResponse](ctx, c, request)
}

type EmojiListRequest struct {
	Authenticated
}

func (EmojiListRequest) Method() string { return MethodEmojiList }

// EmojiListResponse maps each custom emoji name to its image URL, or
// to "alias:<name>" for an alias.
type EmojiListResponse struct {
	Envelope
	Emoji map[string]string `json:"emoji"`
}

func (c *Client) EmojiList(ctx context.Context, request EmojiListRequest) (*EmojiListResponse, error) {
	return call[EmojiListResponse](ctx, c, request)
}

type DNDEndSnoozeRequest struct {
	Authenticated
}

func (DNDEndSnoozeRequest) Method() string { return MethodDNDEndSnooze }

// DNDEndSnoozeResponse reports do-not-disturb state after the snooze
// ends. Times are Unix seconds.
type DNDEndSnoozeResponse struct {
	Envelope
	DNDEnabled     bool  `json:"dnd_enabled"`
	NextDNDStartTS int64 `json:"next_dnd_start_ts,omitempty"`
	NextDNDEndTS   int64 `json:"next_dnd_end_ts,omitempty"`
	SnoozeEnabled  bool  `json:"snooze_enabled"`
}

func (c *Client) DNDEndSnooze(ctx context.Context, request DNDEndSnoozeRequest) (*DNDEndSnoozeResponse, error) {
	return call[DNDEndSnoozeResponse](ctx, c, request)
}
