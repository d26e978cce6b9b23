// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/bureau-foundation/slackweb/lib/netutil"
)

// Transport executes one HTTP exchange. Implementations must be safe
// for concurrent use and must honor ctx cancellation. A Transport
// returns an error only when no response was obtained; any status code
// is a successful round trip.
type Transport interface {
	RoundTrip(ctx context.Context, request *TransportRequest) (*TransportResponse, error)
}

// TransportRequest is a fully encoded API call.
type TransportRequest struct {
	// Method is the HTTP verb, GET or POST.
	Method string
	URL    string
	Header http.Header
	// Body is nil for GET requests.
	Body []byte
}

// TransportResponse is the raw result of an exchange. Body is already
// decompressed.
type TransportResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// HTTPTransport is the net/http Transport. It requests compressed
// responses itself and decodes them with netutil.ReadEncoded, so the
// body is bounded at netutil.MaxResponseSize after decompression.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client, or http.DefaultClient if nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, request *TransportRequest) (*TransportResponse, error) {
	var body io.Reader
	if request.Body != nil {
		body = bytes.NewReader(request.Body)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, request.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for name, values := range request.Header {
		httpRequest.Header[name] = append([]string(nil), values...)
	}
	httpRequest.Header.Set("Accept-Encoding", netutil.AcceptEncoding)

	response, err := t.client.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadEncoded(response.Body, response.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	header := response.Header.Clone()
	header.Del("Content-Encoding")
	header.Del("Content-Length")
	return &TransportResponse{
		StatusCode: response.StatusCode,
		Header:     header,
		Body:       responseBody,
	}, nil
}

// CloseIdleConnections closes idle connections in the underlying
// client's pool.
func (t *HTTPTransport) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}

// RestyTransport executes exchanges through a resty client, for
// callers that already configure proxies, TLS, or debugging there.
// Authentication and retries configured on the resty client apply on
// top of what the dispatcher sends; leave them unset.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport wraps client, or a new resty client if nil.
func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}
	return &RestyTransport{client: client}
}

func (t *RestyTransport) RoundTrip(ctx context.Context, request *TransportRequest) (*TransportResponse, error) {
	restyRequest := t.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(request.Header)
	if request.Body != nil {
		restyRequest.SetBody(request.Body)
	}

	response, err := restyRequest.Execute(request.Method, request.URL)
	if err != nil {
		return nil, err
	}
	return &TransportResponse{
		StatusCode: response.StatusCode(),
		Header:     response.Header(),
		Body:       response.Body(),
	}, nil
}
