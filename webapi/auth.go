// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import "context"

// Method names for connectivity checks and token exchange.
const (
	MethodAPITest     = "api.test"
	MethodAuthTest    = "auth.test"
	MethodOAuthAccess = "oauth.access"
	MethodOAuthToken  = "oauth.token"
)

// APITestRequest checks connectivity. Setting Error makes the server
// answer with that error code, which exercises error handling end to
// end.
type APITestRequest struct {
	Authenticated
	Error string `json:"error,omitempty"`
	Foo   string `json:"foo,omitempty"`
}

func (APITestRequest) Method() string { return MethodAPITest }

type APITestResponse struct {
	Envelope
	// Args echoes the arguments the server received.
	Args map[string]string `json:"args,omitempty"`
}

// APITest calls api.test. No token is sent unless the request sets one.
func (c *Client) APITest(ctx context.Context, request APITestRequest) (*APITestResponse, error) {
	return call[APITestResponse](ctx, c, request)
}

type AuthTestRequest struct {
	Authenticated
}

func (AuthTestRequest) Method() string { return MethodAuthTest }

// AuthTestResponse identifies the token's owner.
type AuthTestResponse struct {
	Envelope
	URL                 string `json:"url"`
	Team                string `json:"team"`
	User                string `json:"user"`
	TeamID              string `json:"team_id"`
	UserID              string `json:"user_id"`
	BotID               string `json:"bot_id,omitempty"`
	EnterpriseID        string `json:"enterprise_id,omitempty"`
	IsEnterpriseInstall bool   `json:"is_enterprise_install,omitempty"`
}

// AuthTest calls auth.test.
func (c *Client) AuthTest(ctx context.Context, request AuthTestRequest) (*AuthTestResponse, error) {
	return call[AuthTestResponse](ctx, c, request)
}

// OAuthAccessRequest exchanges an authorization code for a token. It
// carries client credentials instead of a token.
type OAuthAccessRequest struct {
	Authenticated
	ClientID      string `json:"client_id"`
	ClientSecret  string `json:"client_secret"`
	Code          string `json:"code"`
	RedirectURI   string `json:"redirect_uri,omitempty"`
	SingleChannel bool   `json:"single_channel,omitempty"`
}

func (OAuthAccessRequest) Method() string { return MethodOAuthAccess }

type OAuthAccessResponse struct {
	Envelope
	AccessToken     string           `json:"access_token"`
	Scope           string           `json:"scope"`
	TeamName        string           `json:"team_name,omitempty"`
	TeamID          string           `json:"team_id,omitempty"`
	UserID          string           `json:"user_id,omitempty"`
	EnterpriseID    string           `json:"enterprise_id,omitempty"`
	IncomingWebhook *IncomingWebhook `json:"incoming_webhook,omitempty"`
	Bot             *OAuthBot        `json:"bot,omitempty"`
}

// IncomingWebhook is the webhook granted by an OAuth exchange with the
// incoming-webhook scope.
type IncomingWebhook struct {
	URL              string `json:"url"`
	Channel          string `json:"channel,omitempty"`
	ChannelID        string `json:"channel_id,omitempty"`
	ConfigurationURL string `json:"configuration_url,omitempty"`
}

// OAuthBot is the bot user installed by an OAuth exchange.
type OAuthBot struct {
	BotUserID      string `json:"bot_user_id"`
	BotAccessToken string `json:"bot_access_token"`
}

// OAuthAccess calls oauth.access.
func (c *Client) OAuthAccess(ctx context.Context, request OAuthAccessRequest) (*OAuthAccessResponse, error) {
	return call[OAuthAccessResponse](ctx, c, request)
}

// OAuthTokenRequest is the workspace-app variant of OAuthAccessRequest.
type OAuthTokenRequest struct {
	Authenticated
	ClientID      string `json:"client_id"`
	ClientSecret  string `json:"client_secret"`
	Code          string `json:"code"`
	RedirectURI   string `json:"redirect_uri,omitempty"`
	SingleChannel bool   `json:"single_channel,omitempty"`
}

func (OAuthTokenRequest) Method() string { return MethodOAuthToken }

type OAuthTokenResponse struct {
	Envelope
	AccessToken     string           `json:"access_token"`
	TokenType       string           `json:"token_type,omitempty"`
	AppID           string           `json:"app_id,omitempty"`
	AppUserID       string           `json:"app_user_id,omitempty"`
	InstallerUserID string           `json:"installer_user_id,omitempty"`
	TeamName        string           `json:"team_name,omitempty"`
	TeamID          string           `json:"team_id,omitempty"`
	AuthorizingUser *AuthorizingUser `json:"authorizing_user,omitempty"`
	Permissions     []Permission     `json:"permissions,omitempty"`
}

type AuthorizingUser struct {
	UserID  string `json:"user_id"`
	AppHome string `json:"app_home,omitempty"`
}

// Permission is one granted scope set and the resources it covers.
type Permission struct {
	Scopes       []string `json:"scopes"`
	ResourceType string   `json:"resource_type,omitempty"`
	ResourceID   int64    `json:"resource_id,omitempty"`
}

// OAuthToken calls oauth.token.
func (c *Client) OAuthToken(ctx context.Context, request OAuthTokenRequest) (*OAuthTokenResponse, error) {
	return call[OAuthTokenResponse](ctx, c, request)
}
