// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bureau-foundation/slackweb/lib/blockkit"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"empty", "", ""},
		{"emphasis", "**bold** and _it_ and ~~gone~~", "*bold* and _it_ and ~gone~"},
		{"escapes", "a & b <c>", "a &amp; b &lt;c&gt;"},
		{"code span", "Use `a < b` here", "Use `a &lt; b` here"},
		{"link", "[Slack](https://slack.com)", "<https://slack.com|Slack>"},
		{"link label formatting", "[**docs**](https://api.slack.com)", "<https://api.slack.com|*docs*>"},
		{"link pipe", "[x](https://a.test/?q=a|b)", "<https://a.test/?q=a%7Cb|x>"},
		{"bare url", "Visit https://example.com now", "Visit <https://example.com> now"},
		{"www url", "see www.example.com", "see <http://www.example.com>"},
		{"email", "<someone@example.com>", "<mailto:someone@example.com|someone@example.com>"},
		{"image", "![diagram](https://img.test/d.png)", "<https://img.test/d.png|diagram>"},
		{"heading", "# Title\n\npara", "*Title*\n\npara"},
		{"soft break reflows", "one\ntwo", "one two"},
		{"bullets", "- one\n- two", "• one\n• two"},
		{"ordered", "3. c\n4. d", "3. c\n4. d"},
		{"nested list", "- a\n  - b", "• a\n    • b"},
		{"task list", "- [x] done\n- [ ] todo", "• ☑ done\n• ☐ todo"},
		{"blockquote", "> quoted\n>\n> second", "> quoted\n>\n> second"},
		{"fenced code", "```go\nif a < b {\n}\n```", "```\nif a &lt; b {\n}\n```"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "```\na | b\n1 | 2\n```"},
		{"rule", "above\n\n---\n\nbelow", "above\n\n―――\n\nbelow"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Convert(test.markdown); got != test.want {
				t.Errorf("Convert(%q)\n got: %q\nwant: %q", test.markdown, got, test.want)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	blocks := Blocks("# Release notes\n\nFixed **two** bugs.\n\n- a\n- b\n\n---\n\nThanks.")
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4: %#v", len(blocks), blocks)
	}

	header, ok := blocks[0].(*blockkit.HeaderBlock)
	if !ok {
		t.Fatalf("blocks[0] is %T, want *blockkit.HeaderBlock", blocks[0])
	}
	if header.Text.Type != blockkit.TextTypePlain || header.Text.Text != "Release notes" {
		t.Errorf("header text = %+v", header.Text)
	}

	section, ok := blocks[1].(*blockkit.SectionBlock)
	if !ok {
		t.Fatalf("blocks[1] is %T, want *blockkit.SectionBlock", blocks[1])
	}
	if section.Text.Type != blockkit.TextTypeMarkdown || section.Text.Text != "Fixed *two* bugs.\n\n• a\n• b" {
		t.Errorf("section text = %+v", section.Text)
	}

	if _, ok := blocks[2].(*blockkit.DividerBlock); !ok {
		t.Errorf("blocks[2] is %T, want *blockkit.DividerBlock", blocks[2])
	}
	if last, ok := blocks[3].(*blockkit.SectionBlock); !ok || last.Text.Text != "Thanks." {
		t.Errorf("blocks[3] = %#v", blocks[3])
	}
}

func TestBlocksEmpty(t *testing.T) {
	if blocks := Blocks("  \n"); blocks != nil {
		t.Errorf("Blocks of blank input = %#v", blocks)
	}
}

func TestBlocksSplitsLongSections(t *testing.T) {
	paragraph := strings.Repeat("word ", 200)
	source := strings.Repeat(paragraph+"\n\n", 8)

	blocks := Blocks(source)
	if len(blocks) < 2 {
		t.Fatalf("got %d blocks, want the text split across several", len(blocks))
	}
	total := 0
	for index, block := range blocks {
		section, ok := block.(*blockkit.SectionBlock)
		if !ok {
			t.Fatalf("blocks[%d] is %T", index, block)
		}
		length := utf8.RuneCountInString(section.Text.Text)
		if length > maxSectionText {
			t.Errorf("blocks[%d] holds %d characters", index, length)
		}
		total += strings.Count(section.Text.Text, "word")
	}
	if total != 1600 {
		t.Errorf("split sections hold %d words, want 1600", total)
	}
}

func TestSplitText(t *testing.T) {
	chunks := splitText("aaaa\nbbbb\ncc", 9)
	if len(chunks) != 2 || chunks[0] != "aaaa\nbbbb" || chunks[1] != "cc" {
		t.Errorf("line split = %q", chunks)
	}
	chunks = splitText("ééééé", 2)
	if len(chunks) != 3 || chunks[0] != "éé" || chunks[2] != "é" {
		t.Errorf("rune split = %q", chunks)
	}
}

func TestTruncateHeader(t *testing.T) {
	blocks := Blocks("# " + strings.Repeat("x", 200))
	header := blocks[0].(*blockkit.HeaderBlock)
	if utf8.RuneCountInString(header.Text.Text) != maxHeaderText || !strings.HasSuffix(header.Text.Text, "…") {
		t.Errorf("header = %q", header.Text.Text)
	}
}
