// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RemoteError is an explicit failure reported by the API: a response
// envelope with "ok": false. Callers branch on Code:
//
//	var remoteErr *RemoteError
//	if errors.As(err, &remoteErr) && remoteErr.Code == ErrCodeChannelNotFound {
//	    ...
//	}
type RemoteError struct {
	// Method is the API method that failed (e.g., "chat.postMessage").
	Method string

	// Code is the machine-readable "error" string, verbatim.
	Code string

	// Warning is the optional comma-separated "warning" string.
	Warning string

	// Needed and Provided name the scopes involved in a missing_scope
	// failure.
	Needed   string
	Provided string

	// Messages holds response_metadata.messages, which some methods use
	// to explain invalid arguments.
	Messages []string

	// StatusCode is the HTTP status. Usually 200; 429 for ratelimited.
	StatusCode int

	// RetryAfter is the server's Retry-After hint, zero when absent.
	// The client never waits on it.
	RetryAfter time.Duration
}

func (e *RemoteError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "webapi: %s: %s", e.Method, e.Code)
	if e.Needed != "" {
		fmt.Fprintf(&builder, " (needed %s, provided %s)", e.Needed, e.Provided)
	}
	if e.Warning != "" {
		fmt.Fprintf(&builder, " [warning: %s]", e.Warning)
	}
	for _, message := range e.Messages {
		fmt.Fprintf(&builder, "; %s", message)
	}
	return builder.String()
}

// Well-known error codes. The set the API can return is open-ended;
// these are the ones callers most often branch on.
const (
	ErrCodeNotAuthed          = "not_authed"
	ErrCodeInvalidAuth        = "invalid_auth"
	ErrCodeAccountInactive    = "account_inactive"
	ErrCodeTokenRevoked       = "token_revoked"
	ErrCodeMissingScope       = "missing_scope"
	ErrCodeInvalidCode        = "invalid_code"
	ErrCodeBadClientSecret    = "bad_client_secret"
	ErrCodeInvalidArguments   = "invalid_arguments"
	ErrCodeInvalidArgName     = "invalid_arg_name"
	ErrCodeRateLimited        = "ratelimited"
	ErrCodeChannelNotFound    = "channel_not_found"
	ErrCodeUserNotFound       = "user_not_found"
	ErrCodeMessageNotFound    = "message_not_found"
	ErrCodeNotInChannel       = "not_in_channel"
	ErrCodeIsArchived         = "is_archived"
	ErrCodeNameTaken          = "name_taken"
	ErrCodeCantKickSelf       = "cant_kick_self"
	ErrCodeCantInviteSelf     = "cant_invite_self"
	ErrCodeNoSuchSubteam      = "no_such_subteam"
	ErrCodeMissingTS          = "missing_ts"
	ErrCodePaidTeamsOnly      = "paid_teams_only"
	ErrCodeSnoozeNotActive    = "snooze_not_active"
	ErrCodeInvalidBlocks      = "invalid_blocks"
	ErrCodeInvalidAttachments = "invalid_attachments"
	ErrCodeNoText             = "no_text"
	ErrCodeTimeInPast         = "time_in_past"
	ErrCodeFatalError         = "fatal_error"
)

// IsRemoteError reports whether err is a *RemoteError with the given
// code.
func IsRemoteError(err error, code string) bool {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Code == code
	}
	return false
}

// IsRateLimited reports whether err is a ratelimited RemoteError, and
// returns the server's Retry-After hint.
func IsRateLimited(err error) (time.Duration, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && (remoteErr.Code == ErrCodeRateLimited || remoteErr.StatusCode == 429) {
		return remoteErr.RetryAfter, true
	}
	return 0, false
}

// TransportError is a failure below the API envelope: the round trip
// did not complete (Err is set), or the server answered with a non-2xx
// status and a body that is not an API envelope (StatusCode and Body
// are set).
type TransportError struct {
	Method     string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("webapi: %s: transport failure: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("webapi: %s: HTTP %d: %s", e.Method, e.StatusCode, truncateBody(e.Body))
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError is a successful HTTP exchange whose body could
// not be understood: not JSON, an envelope that breaks the ok/error
// rule, or content that failed to decode. Body holds the raw response.
// When the cause is a malformed block or attachment, errors.As reaches
// the underlying *blockkit.DecodeError through Unwrap.
type InvalidResponseError struct {
	Method string
	Body   []byte
	Err    error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("webapi: %s: invalid response body: %v", e.Method, e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// maxErrorBody bounds how much of a raw body an error message quotes.
const maxErrorBody = 512

func truncateBody(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}
	return string(body[:maxErrorBody]) + "..."
}
