// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputJSON(t *testing.T) {
	var buffer bytes.Buffer
	output := NewOutput(&buffer)

	if err := output.JSON([]byte(`{"ok":true,"channel":{"id":"C1"}}`)); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := "{\n  \"ok\": true,\n  \"channel\": {\n    \"id\": \"C1\"\n  }\n}\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}

	if err := output.JSON([]byte(`{"ok":`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestOutputTablePlain(t *testing.T) {
	var buffer bytes.Buffer
	output := NewOutput(&buffer)

	err := output.Table([]string{"METHOD", "HTTP"}, [][]string{{"chat.postMessage", "POST"}, {"users.info", "GET"}})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	text := buffer.String()
	for _, want := range []string{"METHOD", "chat.postMessage", "users.info", "GET"} {
		if !strings.Contains(text, want) {
			t.Errorf("table missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Errorf("non-terminal output contains escape sequences: %q", text)
	}
}
