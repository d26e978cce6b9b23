// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mrkdwn converts CommonMark (with GitHub extensions) into
// Slack's mrkdwn dialect and into Block Kit blocks.
//
// Slack mrkdwn is not Markdown: bold is *single-starred*, italics use
// underscores, strikethrough uses a single tilde, links are written
// <url|label>, and there are no headings, tables, or nested emphasis
// rules. [Convert] maps each construct to its closest mrkdwn form;
// [Blocks] additionally turns headings into header blocks and
// thematic breaks into dividers.
package mrkdwn

import (
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func markdownParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parserInstance
}

func parse(source []byte) ast.Node {
	return markdownParser().Parser().Parse(text.NewReader(source))
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces the three characters Slack reserves for markup
// (&, <, >) with their entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

var urlEscaper = strings.NewReplacer("|", "%7C", "<", "%3C", ">", "%3E")

// Convert renders markdown source as Slack mrkdwn.
func Convert(source string) string {
	if source == "" {
		return ""
	}
	data := []byte(source)
	converter := &converter{source: data}
	return converter.blocks(parse(data), false)
}

type converter struct {
	source []byte
}

// blocks renders the block children of container, separated by a
// blank line, or by a single newline when tight.
func (c *converter) blocks(container ast.Node, tight bool) string {
	separator := "\n\n"
	if tight {
		separator = "\n"
	}
	var parts []string
	for child := container.FirstChild(); child != nil; child = child.NextSibling() {
		if rendered := c.block(child, tight); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, separator)
}

func (c *converter) block(node ast.Node, tight bool) string {
	switch node := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return c.inline(node)
	case *ast.Heading:
		content := c.inline(node)
		if content == "" {
			return ""
		}
		return "*" + content + "*"
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return "```\n" + Escape(c.lines(node)) + "```"
	case *ast.Blockquote:
		return prefixLines(c.blocks(node, false), "> ", "> ")
	case *ast.List:
		return c.list(node)
	case *ast.ThematicBreak:
		return "―――"
	case *ast.HTMLBlock:
		return Escape(strings.TrimRight(c.lines(node), "\n"))
	case *extast.Table:
		return c.table(node)
	default:
		return c.blocks(node, tight)
	}
}

func (c *converter) list(list *ast.List) string {
	var items []string
	number := list.Start
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		content := c.blocks(child, list.IsTight)
		items = append(items, prefixLines(content, marker, strings.Repeat(" ", 4)))
	}
	return strings.Join(items, "\n")
}

// table renders a GFM table as preformatted text, one row per line.
func (c *converter) table(table *extast.Table) string {
	var rows []string
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, plainText(cell, c.source))
		}
		rows = append(rows, strings.Join(cells, " | "))
	}
	return "```\n" + Escape(strings.Join(rows, "\n")) + "\n```"
}

// lines concatenates the raw source lines of a block node.
func (c *converter) lines(node ast.Node) string {
	var builder strings.Builder
	segments := node.Lines()
	for index := range segments.Len() {
		segment := segments.At(index)
		builder.Write(segment.Value(c.source))
	}
	return builder.String()
}

// inline renders the inline children of node.
func (c *converter) inline(node ast.Node) string {
	writer := &inlineWriter{source: c.source}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, writer.walk)
	}
	return strings.TrimSpace(writer.output.String())
}

type inlineWriter struct {
	source []byte
	output strings.Builder
}

func (w *inlineWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Text:
		if entering {
			w.output.WriteString(Escape(string(node.Segment.Value(w.source))))
			switch {
			case node.HardLineBreak():
				w.output.WriteString("\n")
			case node.SoftLineBreak():
				w.output.WriteString(" ")
			}
		}

	case *ast.String:
		if entering {
			w.output.WriteString(Escape(string(node.Value)))
		}

	case *ast.Emphasis:
		if node.Level >= 2 {
			w.output.WriteString("*")
		} else {
			w.output.WriteString("_")
		}

	case *extast.Strikethrough:
		w.output.WriteString("~")

	case *ast.CodeSpan:
		if entering {
			w.output.WriteString("`" + Escape(plainText(node, w.source)) + "`")
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			label := (&converter{source: w.source}).inline(node)
			w.output.WriteString(link(string(node.Destination), label))
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			address := string(node.URL(w.source))
			if node.AutoLinkType == ast.AutoLinkEmail {
				w.output.WriteString(link("mailto:"+address, Escape(address)))
			} else {
				w.output.WriteString(link(address, ""))
			}
		}

	case *ast.Image:
		if entering {
			w.output.WriteString(link(string(node.Destination), Escape(plainText(node, w.source))))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			for index := range node.Segments.Len() {
				segment := node.Segments.At(index)
				w.output.WriteString(Escape(string(segment.Value(w.source))))
			}
		}

	case *extast.TaskCheckBox:
		if entering {
			if node.IsChecked {
				w.output.WriteString("☑ ")
			} else {
				w.output.WriteString("☐ ")
			}
		}
	}
	return ast.WalkContinue, nil
}

// link formats a mrkdwn link. An empty label, or one equal to the
// destination, yields the bare <url> form.
func link(destination, label string) string {
	destination = urlEscaper.Replace(destination)
	if label == "" || label == destination {
		return "<" + destination + ">"
	}
	return "<" + destination + "|" + label + ">"
}

// plainText concatenates the literal text beneath node with no markup.
func plainText(node ast.Node, source []byte) string {
	var builder strings.Builder
	ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch child := child.(type) {
		case *ast.Text:
			builder.Write(child.Segment.Value(source))
			if child.SoftLineBreak() || child.HardLineBreak() {
				builder.WriteString(" ")
			}
		case *ast.String:
			builder.Write(child.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(builder.String())
}

// prefixLines prefixes the first line of content with first and every
// later line with rest. Blank lines under rest keep only its
// trailing-space-free form.
func prefixLines(content, first, rest string) string {
	lines := strings.Split(content, "\n")
	for index, line := range lines {
		prefix := rest
		if index == 0 {
			prefix = first
		}
		if line == "" {
			lines[index] = strings.TrimRight(prefix, " ")
			continue
		}
		lines[index] = prefix + line
	}
	return strings.Join(lines, "\n")
}
