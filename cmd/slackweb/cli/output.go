// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// Output writes command results. Color is used only when the writer
// is a terminal.
type Output struct {
	writer   io.Writer
	color    bool
	renderer *lipgloss.Renderer
}

// NewOutput wraps w, detecting whether it is a color terminal.
func NewOutput(w io.Writer) *Output {
	color := IsTerminal(w)
	profile := termenv.Ascii
	if color {
		profile = termenv.NewOutput(w).EnvColorProfile()
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &Output{writer: w, color: color && profile != termenv.Ascii, renderer: renderer}
}

// Writer returns the underlying writer.
func (o *Output) Writer() io.Writer { return o.writer }

// JSON writes raw JSON indented, syntax-highlighted on a color
// terminal.
func (o *Output) JSON(raw []byte) error {
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting JSON output: %w", err)
	}
	indented.WriteByte('\n')
	if o.color {
		if err := quick.Highlight(o.writer, indented.String(), "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err := o.writer.Write(indented.Bytes())
	return err
}

// Value marshals value and writes it with [Output.JSON].
func (o *Output) Value(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return o.JSON(data)
}

// Table writes rows under headers with a rounded border.
func (o *Output) Table(headers []string, rows [][]string) error {
	headerStyle := o.renderer.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := o.renderer.NewStyle().Padding(0, 1)
	rendered := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(o.renderer.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, column int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
	_, err := fmt.Fprintln(o.writer, rendered)
	return err
}

// Line writes a formatted line.
func (o *Output) Line(format string, args ...any) {
	fmt.Fprintf(o.writer, format+"\n", args...)
}

// Success writes a line styled as a positive outcome.
func (o *Output) Success(format string, args ...any) {
	style := o.renderer.NewStyle().Foreground(lipgloss.Color("2"))
	fmt.Fprintln(o.writer, style.Render(fmt.Sprintf(format, args...)))
}

// Failure writes a line styled as a negative outcome.
func (o *Output) Failure(format string, args ...any) {
	style := o.renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	fmt.Fprintln(o.writer, style.Render(fmt.Sprintf(format, args...)))
}
