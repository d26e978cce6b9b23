// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/bureau-foundation/slackweb/lib/blockkit"
	"github.com/bureau-foundation/slackweb/lib/ref"
)

// assertJSONBody compares got and want as decoded JSON values.
func assertJSONBody(t *testing.T, got []byte, want string) {
	t.Helper()
	var gotValue, wantValue any
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, got)
	}
	if err := json.Unmarshal([]byte(want), &wantValue); err != nil {
		t.Fatalf("want is not JSON: %v", err)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Errorf("body =\n  %s\nwant\n  %s", got, want)
	}
}

func mustSpec(t *testing.T, name string) MethodSpec {
	t.Helper()
	spec, ok := DefaultCatalog().Lookup(name)
	if !ok {
		t.Fatalf("%s is not in the default catalog", name)
	}
	return spec
}

func TestEncodeJSONBody(t *testing.T) {
	request := ChatPostMessageRequest{
		Authenticated: Authenticated{Token: "xoxp-secret"},
		Channel:       "C1",
		MessageContent: MessageContent{
			Text:   "hi",
			Blocks: blockkit.Blocks{&blockkit.SectionBlock{Text: blockkit.NewMarkdown("*hi*")}},
			Attachments: []*blockkit.Attachment{
				{Fallback: "fb", Color: "good"},
			},
		},
		PostOptions: PostOptions{
			ThreadTS:    ref.MustParseTimestamp("1503435956.000247"),
			UnfurlLinks: blockkit.Bool(false),
		},
	}
	encoded, err := encodeRequest(mustSpec(t, MethodChatPostMessage), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	if encoded.contentType != contentTypeJSON {
		t.Errorf("content type = %q", encoded.contentType)
	}
	if encoded.query != "" {
		t.Errorf("query = %q", encoded.query)
	}
	assertJSONBody(t, encoded.body, `{
		"channel": "C1",
		"text": "hi",
		"blocks": [{"type": "section", "text": {"type": "mrkdwn", "text": "*hi*"}}],
		"attachments": [{"fallback": "fb", "color": "good"}],
		"thread_ts": "1503435956.000247",
		"unfurl_links": false
	}`)
	if strings.Contains(string(encoded.body), "xoxp-secret") {
		t.Error("token leaked into the body")
	}
}

func TestEncodeJSONBodyKeepsMarkup(t *testing.T) {
	request := ChatPostMessageRequest{
		Channel: "C1",
		MessageContent: MessageContent{
			Text:   "<@U1> & co",
			Blocks: blockkit.Blocks{&blockkit.SectionBlock{Text: blockkit.NewMarkdown("see <https://example.com|docs>")}},
		},
	}
	encoded, err := encodeRequest(mustSpec(t, MethodChatPostMessage), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	body := string(encoded.body)
	for _, want := range []string{`"<@U1> & co"`, `"see <https://example.com|docs>"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %s verbatim: %s", want, body)
		}
	}
	for _, escaped := range []string{`\u003c`, `\u003e`, `\u0026`} {
		if strings.Contains(body, escaped) {
			t.Errorf("body contains %s: %s", escaped, body)
		}
	}
}

func TestEncodeFormBody(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		want    url.Values
		// spec overrides the default catalog entry.
		spec *MethodSpec
	}{
		{
			name:    "scalars",
			request: ChannelsRenameRequest{Channel: "C1", Name: "new-name", Validate: true},
			want:    url.Values{"channel": {"C1"}, "name": {"new-name"}, "validate": {"true"}},
		},
		{
			name:    "zero values omitted",
			request: ChannelsRenameRequest{Channel: "C1"},
			want:    url.Values{"channel": {"C1"}},
		},
		{
			name:    "string list",
			request: MPIMOpenRequest{Users: []string{"U1", "U2", "U3"}},
			want:    url.Values{"users": {"U1,U2,U3"}},
		},
		{
			name:    "timestamp",
			request: ChatDeleteRequest{Channel: "C1", TS: ref.MustParseTimestamp("1503435956.000247")},
			want:    url.Values{"channel": {"C1"}, "ts": {"1503435956.000247"}},
		},
		{
			name:    "explicit false pointer",
			request: ChatUpdateRequest{Channel: "C1", TS: ref.MustParseTimestamp("1.2"), AsUser: blockkit.Bool(false)},
			want:    url.Values{"channel": {"C1"}, "ts": {"1.2"}, "as_user": {"false"}},
		},
		{
			name: "structured field as JSON",
			spec: &MethodSpec{Name: MethodChatUnfurl, HTTPMethod: http.MethodPost},
			request: ChatUnfurlRequest{
				Channel: "C1",
				TS:      ref.MustParseTimestamp("1.2"),
				Unfurls: map[string]json.RawMessage{"https://example.com": json.RawMessage(`{"text":"preview"}`)},
			},
			want: url.Values{"channel": {"C1"}, "ts": {"1.2"}, "unfurls": {`{"https://example.com":{"text":"preview"}}`}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var spec MethodSpec
			if test.spec != nil {
				spec = *test.spec
			} else {
				spec = mustSpec(t, test.request.Method())
			}
			encoded, err := encodeRequest(spec, test.request)
			if err != nil {
				t.Fatalf("encodeRequest: %v", err)
			}
			if encoded.contentType != contentTypeForm {
				t.Errorf("content type = %q", encoded.contentType)
			}
			got, err := url.ParseQuery(string(encoded.body))
			if err != nil {
				t.Fatalf("body is not form data: %v", err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("form = %v, want %v", got, test.want)
			}
		})
	}
}

func TestEncodeParameters(t *testing.T) {
	request := RawRequest{
		Name: MethodChatPostMessage,
		Params: map[string]string{
			"channel":  "C1",
			"blocks":   `[{"type":"divider"}]`,
			"text":     "[not json",
			"username": "",
		},
	}
	encoded, err := encodeRequest(mustSpec(t, MethodChatPostMessage), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	assertJSONBody(t, encoded.body, `{"channel":"C1","blocks":[{"type":"divider"}],"text":"[not json"}`)

	// Form-encoded methods keep the JSON text as a string value.
	request.Name = MethodChatMeMessage
	encoded, err = encodeRequest(mustSpec(t, MethodChatMeMessage), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	if got := string(encoded.body); got != "blocks=%5B%7B%22type%22%3A%22divider%22%7D%5D&channel=C1&text=%5Bnot+json" {
		t.Errorf("form body = %q", got)
	}
}

func TestEncodeMultipart(t *testing.T) {
	request := FilesUploadRequest{
		Channels:       []string{"C1", "C2"},
		File:           &FileUpload{Filename: "report.csv", Content: []byte("a,b\n1,2\n")},
		InitialComment: "nightly report",
	}
	encoded, err := encodeRequest(mustSpec(t, MethodFilesUpload), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	mediaType, params, err := mime.ParseMediaType(encoded.contentType)
	if err != nil {
		t.Fatalf("ParseMediaType(%q): %v", encoded.contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q", mediaType)
	}
	if !strings.HasPrefix(params["boundary"], "slackweb-") {
		t.Errorf("boundary = %q", params["boundary"])
	}

	reader := multipart.NewReader(strings.NewReader(string(encoded.body)), params["boundary"])
	fields := make(map[string]string)
	var fileName, fileContent string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		data, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		if part.FileName() != "" {
			fileName = part.FileName()
			fileContent = string(data)
			if part.FormName() != "file" {
				t.Errorf("file part name = %q", part.FormName())
			}
			continue
		}
		fields[part.FormName()] = string(data)
	}
	if fields["channels"] != "C1,C2" || fields["initial_comment"] != "nightly report" || len(fields) != 2 {
		t.Errorf("fields = %v", fields)
	}
	if fileName != "report.csv" || fileContent != "a,b\n1,2\n" {
		t.Errorf("file = %q %q", fileName, fileContent)
	}

	// The boundary depends on content.
	request.InitialComment = "weekly report"
	other, err := encodeRequest(mustSpec(t, MethodFilesUpload), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	if other.contentType == encoded.contentType {
		t.Error("different content produced the same boundary")
	}
}

func TestEncodeInlineContentStaysForm(t *testing.T) {
	request := FilesUploadRequest{Channels: []string{"C1"}, Content: "hello", Filename: "hello.txt"}
	encoded, err := encodeRequest(mustSpec(t, MethodFilesUpload), request)
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	if encoded.contentType != contentTypeForm {
		t.Errorf("content type = %q", encoded.contentType)
	}
}

func TestEncodeGetRejectsFiles(t *testing.T) {
	request := FilesUploadRequest{File: &FileUpload{Filename: "x", Content: []byte("x")}}
	if _, err := encodeRequest(get(MethodFilesUpload), request); err == nil {
		t.Fatal("expected error for GET with file content")
	}
}

func TestEncodePointerRequest(t *testing.T) {
	encoded, err := encodeRequest(mustSpec(t, MethodChannelsJoin), &ChannelsJoinRequest{Name: "general"})
	if err != nil {
		t.Fatalf("encodeRequest: %v", err)
	}
	if got := string(encoded.body); got != "name=general" {
		t.Errorf("body = %q", got)
	}

	var nilRequest *ChannelsJoinRequest
	if _, err := encodeRequest(mustSpec(t, MethodChannelsJoin), nilRequest); err == nil {
		t.Error("nil pointer request: expected error")
	}
}
