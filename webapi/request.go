// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"encoding/json"
)

// Request is a typed API call. Each request type is a plain struct
// whose json tags give the wire (snake_case) name of every field;
// callers build one with a struct literal naming the fields they need.
// Fields left at their zero value are not sent.
type Request interface {
	// Method returns the API method name, the key into the Catalog.
	Method() string
}

// Authenticated is embedded by every request type. Token, when set,
// overrides the client's default token for this call.
type Authenticated struct {
	Token string `json:"-"`
}

// AccessToken returns the per-request token.
func (a Authenticated) AccessToken() string { return a.Token }

// tokenCarrier is satisfied by every request that embeds Authenticated.
type tokenCarrier interface {
	AccessToken() string
}

// FileUpload is binary content sent as a multipart file part. A request
// with a non-nil *FileUpload field is encoded as multipart/form-data
// regardless of the method's default encoding.
type FileUpload struct {
	// Filename is reported in the part's Content-Disposition.
	Filename string
	Content  []byte
}

// Parameterized is implemented by requests that supply their wire
// parameters directly instead of through struct fields.
type Parameterized interface {
	Request
	Parameters() map[string]string
}

// RawRequest calls any method by name with string parameters. The
// method must be registered in the client's catalog. For JSON-encoded
// methods, parameter values that hold a JSON object or array are sent
// as structured JSON.
type RawRequest struct {
	Authenticated
	Name   string
	Params map[string]string
}

func (r RawRequest) Method() string                { return r.Name }
func (r RawRequest) Parameters() map[string]string { return r.Params }

// RawResponse keeps the full response object alongside the envelope.
type RawResponse struct {
	Envelope
	Raw json.RawMessage `json:"-"`
}

func (r *RawResponse) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Envelope); err != nil {
		return err
	}
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}
