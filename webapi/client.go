// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/bureau-foundation/slackweb/lib/secret"
	"github.com/bureau-foundation/slackweb/lib/version"
)

// DefaultBaseURL is the root of the public Web API. Method URLs are
// DefaultBaseURL + "/" + method name.
const DefaultBaseURL = "https://slack.com/api"

// ClientConfig holds configuration for creating a Client. Every field
// is optional.
type ClientConfig struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// Transport executes HTTP exchanges. Defaults to an HTTPTransport
	// over http.DefaultClient.
	Transport Transport

	// Token is sent as a bearer token to methods that require auth when
	// the request carries no token of its own. The Buffer is read but
	// not closed; the caller retains ownership and must keep it open
	// for the Client's lifetime.
	Token *secret.Buffer

	// Catalog lists the methods the client can dispatch. Defaults to
	// DefaultCatalog(). The client keeps a private copy.
	Catalog *Catalog

	// UserAgent defaults to version.UserAgent().
	UserAgent string

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client dispatches typed requests to the Web API. A Client is
// immutable after construction and safe for concurrent use; the
// Transport is the only shared resource.
type Client struct {
	baseURL   string
	transport Transport
	token     *secret.Buffer
	catalog   *Catalog
	userAgent string
	logger    *slog.Logger
}

// NewClient creates a Client from config.
func NewClient(config ClientConfig) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("webapi: invalid BaseURL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("webapi: BaseURL %q must be http or https", baseURL)
	}

	transport := config.Transport
	if transport == nil {
		transport = NewHTTPTransport(nil)
	}

	var catalog *Catalog
	if config.Catalog != nil {
		catalog = config.Catalog.Clone()
	} else {
		catalog = DefaultCatalog()
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
		token:     config.Token,
		catalog:   catalog,
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

// Methods returns the client's catalog entries sorted by name.
func (c *Client) Methods() []MethodSpec {
	return c.catalog.Methods()
}

// Invoke performs one API call: it encodes request according to its
// catalog entry, makes exactly one Transport round trip, checks the
// response envelope, and decodes the body into response, which must be
// a non-nil pointer to a struct embedding Envelope.
//
// The returned error is a *TransportError, *RemoteError, or
// *InvalidResponseError. response is written only when the call
// succeeds.
func (c *Client) Invoke(ctx context.Context, request Request, response Response) error {
	if request == nil {
		return errors.New("webapi: nil request")
	}
	target := reflect.ValueOf(response)
	if response == nil || target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("webapi: response must be a non-nil pointer, got %T", response)
	}

	method := request.Method()
	spec, ok := c.catalog.Lookup(method)
	if !ok {
		return fmt.Errorf("webapi: method %q is not in the catalog", method)
	}

	encoded, err := encodeRequest(spec, request)
	if err != nil {
		return fmt.Errorf("webapi: %s: encoding request: %w", method, err)
	}

	transportRequest := &TransportRequest{
		Method: spec.HTTPMethod,
		URL:    c.baseURL + "/" + method,
		Header: make(http.Header),
	}
	if encoded.query != "" {
		transportRequest.URL += "?" + encoded.query
	}
	if spec.HTTPMethod == http.MethodPost {
		transportRequest.Body = encoded.body
		transportRequest.Header.Set("Content-Type", encoded.contentType)
	}
	transportRequest.Header.Set("Accept", "application/json")
	transportRequest.Header.Set("User-Agent", c.userAgent)
	if token := c.resolveToken(spec, request); token != "" {
		transportRequest.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	transportResponse, err := c.transport.RoundTrip(ctx, transportRequest)
	if err != nil {
		c.logger.Debug("web api call failed",
			"method", method,
			"duration", time.Since(start),
			"error", err,
		)
		return &TransportError{Method: method, Err: err}
	}
	c.logger.Debug("web api call",
		"method", method,
		"status", transportResponse.StatusCode,
		"duration", time.Since(start),
	)

	return c.decodeResponse(method, transportResponse, target)
}

// resolveToken picks the bearer token: the request's own, else the
// client default for methods that require auth, else none.
func (c *Client) resolveToken(spec MethodSpec, request Request) string {
	if carrier, ok := request.(tokenCarrier); ok {
		if token := carrier.AccessToken(); token != "" {
			return token
		}
	}
	if spec.Auth == AuthRequired && c.token != nil {
		return c.token.String()
	}
	return ""
}

func (c *Client) decodeResponse(method string, raw *TransportResponse, target reflect.Value) error {
	envelope, envelopeErr := parseEnvelope(raw.Body)

	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		// A well-formed failure envelope (429 ratelimited, for one) is
		// still an API answer.
		if envelopeErr == nil && !envelope.OK {
			return newRemoteError(method, raw, envelope)
		}
		return &TransportError{Method: method, StatusCode: raw.StatusCode, Body: raw.Body}
	}

	if envelopeErr != nil {
		return &InvalidResponseError{Method: method, Body: raw.Body, Err: envelopeErr}
	}
	if !envelope.OK {
		return newRemoteError(method, raw, envelope)
	}
	if envelope.Warning != "" {
		c.logger.Debug("web api warning", "method", method, "warning", envelope.Warning)
	}

	// Decode into a fresh value so a failed decode leaves the caller's
	// response untouched.
	fresh := reflect.New(target.Type().Elem())
	if err := json.Unmarshal(raw.Body, fresh.Interface()); err != nil {
		return &InvalidResponseError{Method: method, Body: raw.Body, Err: err}
	}
	target.Elem().Set(fresh.Elem())
	return nil
}

// parseEnvelope validates the ok/error envelope of body: ok must be a
// boolean, ok:true must carry no error, and ok:false must carry a
// non-empty error code.
func parseEnvelope(body []byte) (Envelope, error) {
	if !gjson.ValidBytes(body) {
		return Envelope{}, errors.New("response is not JSON")
	}
	object := gjson.ParseBytes(body)
	if !object.IsObject() {
		return Envelope{}, errors.New("response is not a JSON object")
	}

	okField := object.Get("ok")
	if okField.Type != gjson.True && okField.Type != gjson.False {
		return Envelope{}, errors.New(`envelope "ok" is missing or not a boolean`)
	}
	errorField := object.Get("error")
	hasError := errorField.Exists() && errorField.Type != gjson.Null
	switch {
	case okField.Bool() && hasError:
		return Envelope{}, fmt.Errorf("envelope has ok:true and error %s", errorField.Raw)
	case !okField.Bool() && (errorField.Type != gjson.String || errorField.Str == ""):
		return Envelope{}, errors.New("envelope has ok:false and no error code")
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("decoding envelope: %w", err)
	}
	return envelope, nil
}

func newRemoteError(method string, raw *TransportResponse, envelope Envelope) *RemoteError {
	return &RemoteError{
		Method:     method,
		Code:       envelope.Error,
		Warning:    envelope.Warning,
		Needed:     envelope.Needed,
		Provided:   envelope.Provided,
		Messages:   envelope.ResponseMetadata.Messages,
		StatusCode: raw.StatusCode,
		RetryAfter: parseRetryAfter(raw.Header),
	}
}

// parseRetryAfter reads a Retry-After header given in whole seconds.
func parseRetryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// call invokes request and returns a new Resp. It backs every typed
// method.
func call[Resp any, PResp interface {
	*Resp
	Response
}](ctx context.Context, c *Client, request Request) (*Resp, error) {
	response := PResp(new(Resp))
	if err := c.Invoke(ctx, request, response); err != nil {
		return nil, err
	}
	return (*Resp)(response), nil
}
