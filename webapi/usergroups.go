// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import "context"

// Method names for the usergroups.* family.
const (
	MethodUsergroupsCreate      = "usergroups.create"
	MethodUsergroupsDisable     = "usergroups.disable"
	MethodUsergroupsEnable      = "usergroups.enable"
	MethodUsergroupsList        = "usergroups.list"
	MethodUsergroupsUpdate      = "usergroups.update"
	MethodUsergroupsUsersList   = "usergroups.users.list"
	MethodUsergroupsUsersUpdate = "usergroups.users.update"
)

// UsergroupResponse is returned by methods that answer with one group.
type UsergroupResponse struct {
	Envelope
	Usergroup Usergroup `json:"usergroup"`
}

type UsergroupsCreateRequest struct {
	Authenticated
	Name         string   `json:"name"`
	Handle       string   `json:"handle,omitempty"`
	Description  string   `json:"description,omitempty"`
	Channels     []string `json:"channels,omitempty"`
	IncludeCount bool     `json:"include_count,omitempty"`
}

func (UsergroupsCreateRequest) Method() string { return MethodUsergroupsCreate }

func (c *Client) UsergroupsCreate(ctx context.Context, request UsergroupsCreateRequest) (*UsergroupResponse, error) {
	return call[UsergroupResponse](ctx, c, request)
}

type UsergroupsDisableRequest struct {
	Authenticated
	Usergroup    string `json:"usergroup"`
	IncludeCount bool   `json:"include_count,omitempty"`
}

func (UsergroupsDisableRequest) Method() string { return MethodUsergroupsDisable }

func (c *Client) UsergroupsDisable(ctx context.Context, request UsergroupsDisableRequest) (*UsergroupResponse, error) {
	return call[UsergroupResponse](ctx, c, request)
}

type UsergroupsEnableRequest struct {
	Authenticated
	Usergroup    string `json:"usergroup"`
	IncludeCount bool   `json:"include_count,omitempty"`
}

func (UsergroupsEnableRequest) Method() string { return MethodUsergroupsEnable }

func (c *Client) UsergroupsEnable(ctx context.Context, request UsergroupsEnableRequest) (*UsergroupResponse, error) {
	return call[UsergroupResponse](ctx, c, request)
}

type UsergroupsListRequest struct {
	Authenticated
	IncludeCount    bool `json:"include_count,omitempty"`
	IncludeDisabled bool `json:"include_disabled,omitempty"`
	IncludeUsers    bool `json:"include_users,omitempty"`
}

func (UsergroupsListRequest) Method() string { return MethodUsergroupsList }

type UsergroupsListResponse struct {
	Envelope
	Usergroups []*Usergroup `json:"usergroups"`
}

func (c *Client) UsergroupsList(ctx context.Context, request UsergroupsListRequest) (*UsergroupsListResponse, error) {
	return call[UsergroupsListResponse](ctx, c, request)
}

type UsergroupsUpdateRequest struct {
	Authenticated
	Usergroup    string   `json:"usergroup"`
	Name         string   `json:"name,omitempty"`
	Handle       string   `json:"handle,omitempty"`
	Description  string   `json:"description,omitempty"`
	Channels     []string `json:"channels,omitempty"`
	IncludeCount bool     `json:"include_count,omitempty"`
}

func (UsergroupsUpdateRequest) Method() string { return MethodUsergroupsUpdate }

func (c *Client) UsergroupsUpdate(ctx context.Context, request UsergroupsUpdateRequest) (*UsergroupResponse, error) {
	return call[UsergroupResponse](ctx, c, request)
}

type UsergroupsUsersListRequest struct {
	Authenticated
	Usergroup       string `json:"usergroup"`
	IncludeDisabled bool   `json:"include_disabled,omitempty"`
}

func (UsergroupsUsersListRequest) Method() string { return MethodUsergroupsUsersList }

type UsergroupsUsersListResponse struct {
	Envelope
	Users []string `json:"users"`
}

func (c *Client) UsergroupsUsersList(ctx context.Context, request UsergroupsUsersListRequest) (*UsergroupsUsersListResponse, error) {
	return call[UsergroupsUsersListResponse](ctx, c, request)
}

// UsergroupsUsersUpdateRequest replaces the group's membership with
// Users.
type UsergroupsUsersUpdateRequest struct {
	Authenticated
	Usergroup    string   `json:"usergroup"`
	Users        []string `json:"users"`
	IncludeCount bool     `json:"include_count,omitempty"`
}

func (UsergroupsUsersUpdateRequest) Method() string { return MethodUsergroupsUsersUpdate }

func (c *Client) UsergroupsUsersUpdate(ctx context.Context, request UsergroupsUsersUpdateRequest) (*UsergroupResponse, error) {
	return call[UsergroupResponse](ctx, c, request)
}
