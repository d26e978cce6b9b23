// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

// pagedTransport serves conversations.list pages keyed by cursor.
func pagedTransport(t *testing.T, pages map[string]string) *fakeTransport {
	return &fakeTransport{respond: func(request *TransportRequest) (*TransportResponse, error) {
		parsed, err := url.Parse(request.URL)
		if err != nil {
			t.Fatalf("url.Parse: %v", err)
		}
		cursor := parsed.Query().Get("cursor")
		body, ok := pages[cursor]
		if !ok {
			return nil, fmt.Errorf("unexpected cursor %q", cursor)
		}
		return &TransportResponse{StatusCode: 200, Header: make(http.Header), Body: []byte(body)}, nil
	}}
}

var threePages = map[string]string{
	"":   `{"ok":true,"channels":[{"id":"C1"},{"id":"C2"}],"response_metadata":{"next_cursor":"p2"}}`,
	"p2": `{"ok":true,"channels":[],"response_metadata":{"next_cursor":"p3"}}`,
	"p3": `{"ok":true,"channels":[{"id":"C3"}],"response_metadata":{"next_cursor":""}}`,
}

func TestPageIteratorNext(t *testing.T) {
	transport := pagedTransport(t, threePages)
	client := newTestClient(t, transport, "xoxb-default")
	iterator := client.ConversationsListPages(ConversationsListRequest{Limit: 2})
	ctx := context.Background()

	wantPages := [][]string{{"C1", "C2"}, {}, {"C3"}}
	for index, want := range wantPages {
		page, err := iterator.Next(ctx)
		if err != nil {
			t.Fatalf("page %d: %v", index, err)
		}
		if page == nil {
			t.Fatalf("page %d: nil before exhaustion", index)
		}
		if len(page) != len(want) {
			t.Fatalf("page %d has %d items, want %d", index, len(page), len(want))
		}
		for position, channel := range page {
			if channel.ID != want[position] {
				t.Errorf("page %d item %d = %s, want %s", index, position, channel.ID, want[position])
			}
		}
	}

	page, err := iterator.Next(ctx)
	if err != nil || page != nil {
		t.Errorf("after last page: %v, %v; want nil, nil", page, err)
	}
	if len(transport.requests) != 3 {
		t.Errorf("made %d requests, want 3", len(transport.requests))
	}
	parsed, _ := url.Parse(transport.requests[1].URL)
	if parsed.Query().Get("limit") != "2" {
		t.Errorf("limit not carried to later pages: %s", transport.requests[1].URL)
	}
}

func TestPageIteratorCollect(t *testing.T) {
	client := newTestClient(t, pagedTransport(t, threePages), "xoxb-default")
	channels, err := client.ConversationsListPages(ConversationsListRequest{}).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(channels) != 3 || channels[2].ID != "C3" {
		t.Errorf("channels = %v", channels)
	}
}

func TestPageIteratorCollectPartial(t *testing.T) {
	pages := map[string]string{
		"":   `{"ok":true,"channels":[{"id":"C1"}],"response_metadata":{"next_cursor":"p2"}}`,
		"p2": `{"ok":false,"error":"invalid_cursor"}`,
	}
	client := newTestClient(t, pagedTransport(t, pages), "xoxb-default")
	channels, err := client.ConversationsListPages(ConversationsListRequest{}).Collect(context.Background())
	if !IsRemoteError(err, "invalid_cursor") {
		t.Fatalf("err = %v, want invalid_cursor", err)
	}
	if len(channels) != 1 || channels[0].ID != "C1" {
		t.Errorf("partial result = %v", channels)
	}
}

func TestPageIteratorStartCursor(t *testing.T) {
	transport := pagedTransport(t, threePages)
	client := newTestClient(t, transport, "xoxb-default")
	channels, err := client.ConversationsListPages(ConversationsListRequest{Cursor: "p3"}).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(channels) != 1 || len(transport.requests) != 1 {
		t.Errorf("got %d channels in %d requests", len(channels), len(transport.requests))
	}
}

func TestUsersListPages(t *testing.T) {
	transport := reply(200, `{"ok":true,"members":[{"id":"U1","name":"ada","profile":{"display_name":"Ada"}}],"cache_ts":1498777272}`)
	client := newTestClient(t, transport, "xoxb-default")
	users, err := client.UsersListPages(UsersListRequest{}).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(users) != 1 || users[0].Profile.DisplayName != "Ada" {
		t.Errorf("users = %+v", users)
	}
}
