// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"net/http"
	"slices"
	"testing"
)

// typedRequests holds one value of every typed request in the package.
var typedRequests = []Request{
	APITestRequest{}, AuthTestRequest{}, OAuthAccessRequest{}, OAuthTokenRequest{},

	ChannelsArchiveRequest{}, ChannelsCreateRequest{}, ChannelsHistoryRequest{},
	ChannelsInfoRequest{}, ChannelsInviteRequest{}, ChannelsJoinRequest{},
	ChannelsKickRequest{}, ChannelsLeaveRequest{}, ChannelsListRequest{},
	ChannelsMarkRequest{}, ChannelsRenameRequest{}, ChannelsRepliesRequest{},
	ChannelsSetPurposeRequest{}, ChannelsSetTopicRequest{}, ChannelsUnarchiveRequest{},

	ChatDeleteRequest{}, ChatDeleteScheduledMessageRequest{}, ChatGetPermalinkRequest{},
	ChatMeMessageRequest{}, ChatPostMessageRequest{}, ChatScheduleMessageRequest{},
	ChatScheduledMessagesListRequest{}, ChatUnfurlRequest{}, ChatUpdateRequest{},

	ConversationsCreateRequest{}, ConversationsHistoryRequest{},
	ConversationsInfoRequest{}, ConversationsListRequest{},
	MPIMCloseRequest{}, MPIMHistoryRequest{}, MPIMListRequest{}, MPIMMarkRequest{}, MPIMOpenRequest{},
	GroupsCreateChildRequest{},

	UsersInfoRequest{}, UsersListRequest{}, EmojiListRequest{}, DNDEndSnoozeRequest{},

	UsergroupsCreateRequest{}, UsergroupsDisableRequest{}, UsergroupsEnableRequest{},
	UsergroupsListRequest{}, UsergroupsUpdateRequest{},
	UsergroupsUsersListRequest{}, UsergroupsUsersUpdateRequest{},

	FilesUploadRequest{},
}

func TestDefaultCatalogCoversTypedRequests(t *testing.T) {
	catalog := DefaultCatalog()
	seen := make(map[string]bool)
	for _, request := range typedRequests {
		name := request.Method()
		if seen[name] {
			t.Errorf("%s listed twice", name)
		}
		seen[name] = true
		if _, ok := catalog.Lookup(name); !ok {
			t.Errorf("%s has a request type but no catalog entry", name)
		}
	}
	for _, spec := range catalog.Methods() {
		if !seen[spec.Name] {
			t.Errorf("catalog entry %s has no typed request", spec.Name)
		}
		if err := spec.Validate(); err != nil {
			t.Errorf("invalid builtin spec: %v", err)
		}
	}
}

func TestDefaultCatalogShapes(t *testing.T) {
	tests := []struct {
		method     string
		httpMethod string
		encoding   Encoding
		auth       AuthMode
	}{
		{MethodAPITest, http.MethodPost, EncodingForm, AuthNone},
		{MethodOAuthAccess, http.MethodPost, EncodingForm, AuthNone},
		{MethodAuthTest, http.MethodPost, EncodingForm, AuthRequired},
		{MethodChatPostMessage, http.MethodPost, EncodingJSON, AuthRequired},
		{MethodChatUpdate, http.MethodPost, EncodingJSON, AuthRequired},
		{MethodChatDelete, http.MethodPost, EncodingForm, AuthRequired},
		{MethodConversationsList, http.MethodGet, EncodingForm, AuthRequired},
		{MethodUsersInfo, http.MethodGet, EncodingForm, AuthRequired},
		{MethodFilesUpload, http.MethodPost, EncodingForm, AuthRequired},
	}
	catalog := DefaultCatalog()
	for _, test := range tests {
		spec, ok := catalog.Lookup(test.method)
		if !ok {
			t.Errorf("%s missing", test.method)
			continue
		}
		if spec.HTTPMethod != test.httpMethod || spec.Encoding != test.encoding || spec.Auth != test.auth {
			t.Errorf("%s = %s %s auth=%s, want %s %s auth=%s", test.method,
				spec.HTTPMethod, spec.Encoding, spec.Auth, test.httpMethod, test.encoding, test.auth)
		}
	}
}

func TestMethodSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    MethodSpec
		wantErr bool
	}{
		{"post form", post("a.b"), false},
		{"post json", postJSON("a.b"), false},
		{"get", get("a.b"), false},
		{"empty name", MethodSpec{HTTPMethod: http.MethodPost}, true},
		{"slash in name", post("a/b"), true},
		{"query in name", post("a.b?x=1"), true},
		{"get with json", MethodSpec{Name: "a.b", HTTPMethod: http.MethodGet, Encoding: EncodingJSON}, true},
		{"put", MethodSpec{Name: "a.b", HTTPMethod: http.MethodPut}, true},
		{"empty verb", MethodSpec{Name: "a.b"}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.spec.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}

func TestCatalogRegisterAndClone(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.Register(MethodSpec{Name: "bad", HTTPMethod: "DELETE"}); err == nil {
		t.Error("Register accepted an invalid spec")
	}
	if catalog.Len() != 0 {
		t.Errorf("Len = %d after rejected Register", catalog.Len())
	}

	if err := catalog.Register(post("b.method")); err != nil {
		t.Fatal(err)
	}
	if err := catalog.Register(get("a.method")); err != nil {
		t.Fatal(err)
	}
	// Re-registering replaces.
	if err := catalog.Register(postJSON("b.method")); err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0)
	for _, spec := range catalog.Methods() {
		names = append(names, spec.Name)
	}
	if !slices.Equal(names, []string{"a.method", "b.method"}) {
		t.Errorf("Methods() = %v", names)
	}
	if spec, _ := catalog.Lookup("b.method"); spec.Encoding != EncodingJSON {
		t.Errorf("b.method encoding = %s, want json", spec.Encoding)
	}

	clone := catalog.Clone()
	if err := clone.Register(post("c.method")); err != nil {
		t.Fatal(err)
	}
	if _, ok := catalog.Lookup("c.method"); ok {
		t.Error("Register on a clone changed the original")
	}
	if clone.Len() != 3 || catalog.Len() != 2 {
		t.Errorf("Len: clone %d, original %d", clone.Len(), catalog.Len())
	}
}

func TestEnumStrings(t *testing.T) {
	if EncodingForm.String() != "form" || EncodingJSON.String() != "json" || Encoding(9).String() != "Encoding(9)" {
		t.Error("Encoding.String mismatch")
	}
	if AuthRequired.String() != "required" || AuthNone.String() != "none" || AuthMode(7).String() != "AuthMode(7)" {
		t.Error("AuthMode.String mismatch")
	}
}
