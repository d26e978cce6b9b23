// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"

	"github.com/bureau-foundation/slackweb/lib/blockkit"
)

// Slack's length limits, in characters.
const (
	maxSectionText = 3000
	maxHeaderText  = 150
)

// Blocks renders markdown source as Block Kit blocks. Top-level
// headings become header blocks, thematic breaks become dividers, and
// everything between is gathered into mrkdwn section blocks, split
// where a section would exceed Slack's 3000-character limit.
func Blocks(source string) blockkit.Blocks {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	data := []byte(source)
	converter := &converter{source: data}

	var blocks blockkit.Blocks
	var pending []string
	pendingLength := 0
	flush := func() {
		if len(pending) == 0 {
			return
		}
		for _, chunk := range splitText(strings.Join(pending, "\n\n"), maxSectionText) {
			blocks = append(blocks, &blockkit.SectionBlock{Text: blockkit.NewMarkdown(chunk)})
		}
		pending = pending[:0]
		pendingLength = 0
	}

	for node := parse(data).FirstChild(); node != nil; node = node.NextSibling() {
		switch node := node.(type) {
		case *ast.Heading:
			flush()
			heading := plainText(node, data)
			if heading == "" {
				continue
			}
			blocks = append(blocks, &blockkit.HeaderBlock{Text: blockkit.NewPlainText(truncate(heading, maxHeaderText))})
		case *ast.ThematicBreak:
			flush()
			blocks = append(blocks, &blockkit.DividerBlock{})
		default:
			rendered := converter.block(node, false)
			if rendered == "" {
				continue
			}
			length := utf8.RuneCountInString(rendered)
			if len(pending) > 0 && pendingLength+2+length > maxSectionText {
				flush()
			}
			pending = append(pending, rendered)
			if pendingLength > 0 {
				pendingLength += 2
			}
			pendingLength += length
		}
	}
	flush()
	return blocks
}

// splitText breaks text into pieces of at most limit characters,
// preferring line boundaries.
func splitText(text string, limit int) []string {
	var chunks []string
	for utf8.RuneCountInString(text) > limit {
		cut := byteOffset(text, limit)
		// A newline right at the limit still ends this chunk.
		if newline := strings.LastIndexByte(text[:cut+1], '\n'); newline > 0 {
			chunks = append(chunks, text[:newline])
			text = text[newline+1:]
			continue
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

// truncate shortens s to at most limit characters, ending with an
// ellipsis when anything was removed.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return s[:byteOffset(s, limit-1)] + "…"
}

// byteOffset returns the byte index of the rune at position runes.
func byteOffset(s string, runes int) int {
	count := 0
	for index := range s {
		if count == runes {
			return index
		}
		count++
	}
	return len(s)
}
