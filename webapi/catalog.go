// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Encoding selects how request fields travel.
type Encoding int

const (
	// EncodingForm sends fields as application/x-www-form-urlencoded (or
	// as the query string for GET). A request carrying file content is
	// promoted to multipart/form-data.
	EncodingForm Encoding = iota

	// EncodingJSON sends fields as an application/json body.
	EncodingJSON
)

func (e Encoding) String() string {
	switch e {
	case EncodingForm:
		return "form"
	case EncodingJSON:
		return "json"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// AuthMode says whether a method needs a token.
type AuthMode int

const (
	// AuthRequired methods receive the client's default token when the
	// request carries none.
	AuthRequired AuthMode = iota

	// AuthNone methods are sent without a token unless the request
	// carries one explicitly.
	AuthNone
)

func (a AuthMode) String() string {
	switch a {
	case AuthRequired:
		return "required"
	case AuthNone:
		return "none"
	default:
		return fmt.Sprintf("AuthMode(%d)", int(a))
	}
}

// MethodSpec is the wire shape of one API method.
type MethodSpec struct {
	// Name is the method name and the final path segment of its URL
	// (e.g., "chat.postMessage").
	Name string

	// HTTPMethod is http.MethodGet or http.MethodPost.
	HTTPMethod string

	Encoding Encoding
	Auth     AuthMode
}

// Validate reports whether spec can be dispatched.
func (spec MethodSpec) Validate() error {
	if spec.Name == "" {
		return fmt.Errorf("webapi: method spec has no name")
	}
	if strings.ContainsAny(spec.Name, "/?# ") {
		return fmt.Errorf("webapi: method name %q contains URL syntax", spec.Name)
	}
	switch spec.HTTPMethod {
	case http.MethodGet:
		if spec.Encoding == EncodingJSON {
			return fmt.Errorf("webapi: %s: GET methods cannot use a JSON body", spec.Name)
		}
	case http.MethodPost:
	default:
		return fmt.Errorf("webapi: %s: unsupported HTTP method %q", spec.Name, spec.HTTPMethod)
	}
	return nil
}

// Catalog maps method names to wire shapes. Adding an API method means
// registering its MethodSpec and defining its request and response
// types; the dispatcher itself does not change.
//
// A Catalog is not safe for concurrent Register calls. A Client takes
// a private copy at construction, so registering after NewClient does
// not affect existing clients.
type Catalog struct {
	specs map[string]MethodSpec
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{specs: make(map[string]MethodSpec)}
}

// Register adds or replaces spec.
func (c *Catalog) Register(spec MethodSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	c.specs[spec.Name] = spec
	return nil
}

// Lookup returns the spec registered for name.
func (c *Catalog) Lookup(name string) (MethodSpec, bool) {
	spec, ok := c.specs[name]
	return spec, ok
}

// Methods returns every registered spec sorted by name.
func (c *Catalog) Methods() []MethodSpec {
	specs := make([]MethodSpec, 0, len(c.specs))
	for _, spec := range c.specs {
		specs = append(specs, spec)
	}
	slices.SortFunc(specs, func(a, b MethodSpec) int { return strings.Compare(a.Name, b.Name) })
	return specs
}

// Len returns the number of registered methods.
func (c *Catalog) Len() int { return len(c.specs) }

// Clone returns an independent copy.
func (c *Catalog) Clone() *Catalog {
	clone := NewCatalog()
	for name, spec := range c.specs {
		clone.specs[name] = spec
	}
	return clone
}

func get(name string) MethodSpec {
	return MethodSpec{Name: name, HTTPMethod: http.MethodGet, Encoding: EncodingForm, Auth: AuthRequired}
}

func post(name string) MethodSpec {
	return MethodSpec{Name: name, HTTPMethod: http.MethodPost, Encoding: EncodingForm, Auth: AuthRequired}
}

func postJSON(name string) MethodSpec {
	return MethodSpec{Name: name, HTTPMethod: http.MethodPost, Encoding: EncodingJSON, Auth: AuthRequired}
}

func unauthenticated(spec MethodSpec) MethodSpec {
	spec.Auth = AuthNone
	return spec
}

// builtinMethods is the wire shape of every method this package has a
// typed request for.
var builtinMethods = []MethodSpec{
	unauthenticated(post(MethodAPITest)),
	post(MethodAuthTest),
	unauthenticated(post(MethodOAuthAccess)),
	unauthenticated(post(MethodOAuthToken)),

	post(MethodChannelsArchive),
	post(MethodChannelsCreate),
	get(MethodChannelsHistory),
	get(MethodChannelsInfo),
	post(MethodChannelsInvite),
	post(MethodChannelsJoin),
	post(MethodChannelsKick),
	post(MethodChannelsLeave),
	get(MethodChannelsList),
	post(MethodChannelsMark),
	post(MethodChannelsRename),
	get(MethodChannelsReplies),
	post(MethodChannelsSetPurpose),
	post(MethodChannelsSetTopic),
	post(MethodChannelsUnarchive),

	post(MethodChatDelete),
	post(MethodChatDeleteScheduledMessage),
	get(MethodChatGetPermalink),
	post(MethodChatMeMessage),
	postJSON(MethodChatPostMessage),
	postJSON(MethodChatScheduleMessage),
	post(MethodChatScheduledMessagesList),
	postJSON(MethodChatUnfurl),
	postJSON(MethodChatUpdate),

	post(MethodConversationsCreate),
	get(MethodConversationsHistory),
	get(MethodConversationsInfo),
	get(MethodConversationsList),

	post(MethodMPIMClose),
	get(MethodMPIMHistory),
	get(MethodMPIMList),
	post(MethodMPIMMark),
	post(MethodMPIMOpen),

	get(MethodUsersInfo),
	get(MethodUsersList),

	get(MethodEmojiList),

	post(MethodUsergroupsCreate),
	post(MethodUsergroupsDisable),
	post(MethodUsergroupsEnable),
	get(MethodUsergroupsList),
	post(MethodUsergroupsUpdate),
	get(MethodUsergroupsUsersList),
	post(MethodUsergroupsUsersUpdate),

	post(MethodDNDEndSnooze),
	post(MethodGroupsCreateChild),
	post(MethodFilesUpload),
}

// DefaultCatalog returns a new catalog holding every built-in method.
// The result is the caller's to extend.
func DefaultCatalog() *Catalog {
	catalog := NewCatalog()
	for _, spec := range builtinMethods {
		if err := catalog.Register(spec); err != nil {
			panic(err)
		}
	}
	return catalog
}
