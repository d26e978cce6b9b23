// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import "context"

// PageIterator lazily walks a cursor-paginated method. Each call to
// Next fetches one page and returns its items. Returns nil, nil when
// the server reports no further cursor.
//
// The iterator is not safe for concurrent use.
type PageIterator[T any] struct {
	fetch  func(ctx context.Context, cursor string) ([]T, string, error)
	cursor string
	done   bool
}

// Next fetches the next page. An empty page that still carries a
// cursor returns a non-nil empty slice, so callers can tell it apart
// from exhaustion.
func (iterator *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if iterator.done {
		return nil, nil
	}
	items, next, err := iterator.fetch(ctx, iterator.cursor)
	if err != nil {
		return nil, err
	}
	iterator.cursor = next
	if next == "" {
		iterator.done = true
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Collect fetches all remaining pages and returns the items
// concatenated. On error it returns what was gathered so far.
func (iterator *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for {
		items, err := iterator.Next(ctx)
		if err != nil {
			return all, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}

// ConversationsListPages iterates conversations.list starting from
// request.Cursor.
func (c *Client) ConversationsListPages(request ConversationsListRequest) *PageIterator[*Channel] {
	return &PageIterator[*Channel]{
		cursor: request.Cursor,
		fetch: func(ctx context.Context, cursor string) ([]*Channel, string, error) {
			request.Cursor = cursor
			response, err := c.ConversationsList(ctx, request)
			if err != nil {
				return nil, "", err
			}
			return response.Channels, response.ResponseMetadata.NextCursor, nil
		},
	}
}

// ConversationsHistoryPages iterates conversations.history starting
// from request.Cursor.
func (c *Client) ConversationsHistoryPages(request ConversationsHistoryRequest) *PageIterator[*Message] {
	return &PageIterator[*Message]{
		cursor: request.Cursor,
		fetch: func(ctx context.Context, cursor string) ([]*Message, string, error) {
			request.Cursor = cursor
			response, err := c.ConversationsHistory(ctx, request)
			if err != nil {
				return nil, "", err
			}
			return response.Messages, response.ResponseMetadata.NextCursor, nil
		},
	}
}

// UsersListPages iterates users.list starting from request.Cursor.
func (c *Client) UsersListPages(request UsersListRequest) *PageIterator[*User] {
	return &PageIterator[*User]{
		cursor: request.Cursor,
		fetch: func(ctx context.Context, cursor string) ([]*User, string, error) {
			request.Cursor = cursor
			response, err := c.UsersList(ctx, request)
			if err != nil {
				return nil, "", err
			}
			return response.Members, response.ResponseMetadata.NextCursor, nil
		},
	}
}

// ScheduledMessagesPages iterates chat.scheduledMessages.list starting
// from request.Cursor.
func (c *Client) ScheduledMessagesPages(request ChatScheduledMessagesListRequest) *PageIterator[*ScheduledMessage] {
	return &PageIterator[*ScheduledMessage]{
		cursor: request.Cursor,
		fetch: func(ctx context.Context, cursor string) ([]*ScheduledMessage, string, error) {
			request.Cursor = cursor
			response, err := c.ChatScheduledMessagesList(ctx, request)
			if err != nil {
				return nil, "", err
			}
			return response.ScheduledMessages, response.ResponseMetadata.NextCursor, nil
		},
	}
}
