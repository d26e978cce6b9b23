// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"context"

	"github.com/bureau-foundation/slackweb/lib/ref"
)

const MethodFilesUpload = "files.upload"

// FilesUploadRequest uploads a file. Set File to send bytes as a
// multipart part, or Content to send text inline in a form body.
type FilesUploadRequest struct {
	Authenticated
	Channels       []string      `json:"channels,omitempty"`
	Content        string        `json:"content,omitempty"`
	File           *FileUpload   `json:"file,omitempty"`
	Filename       string        `json:"filename,omitempty"`
	Filetype       string        `json:"filetype,omitempty"`
	InitialComment string        `json:"initial_comment,omitempty"`
	Title          string        `json:"title,omitempty"`
	ThreadTS       ref.Timestamp `json:"thread_ts,omitzero"`
}

func (FilesUploadRequest) Method() string { return MethodFilesUpload }

type FilesUploadResponse struct {
	Envelope
	File File `json:"file"`
}

func (c *Client) FilesUpload(ctx context.Context, request FilesUploadRequest) (*FilesUploadResponse, error) {
	return call[FilesUploadResponse](ctx, c, request)
}
