// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PrintHelp writes the command's help to w: description, usage,
// subcommand listing, flags, and examples, in that order.
func (c *Command) PrintHelp(w io.Writer) {
	var sections []string

	if text := c.Description; text != "" {
		sections = append(sections, text)
	} else if c.Summary != "" {
		sections = append(sections, c.Summary)
	}
	sections = append(sections, "Usage:\n  "+c.usageLine())

	if len(c.Subcommands) > 0 {
		sections = append(sections, "Commands:\n"+c.commandListing())
	}
	if c.Flags != nil {
		if usages := c.Flags().FlagUsages(); usages != "" {
			sections = append(sections, "Flags:\n"+strings.TrimRight(usages, "\n"))
		}
	}
	if len(c.Examples) > 0 {
		sections = append(sections, "Examples:\n"+c.exampleListing())
	}
	if len(c.Subcommands) > 0 {
		sections = append(sections, fmt.Sprintf("Run '%s <command> --help' for more information on a command.", c.fullName()))
	}

	fmt.Fprintln(w, strings.Join(sections, "\n\n"))
}

func (c *Command) usageLine() string {
	switch {
	case c.Usage != "":
		return c.Usage
	case len(c.Subcommands) > 0:
		return c.fullName() + " <command> [flags]"
	default:
		return c.fullName() + " [flags]"
	}
}

func (c *Command) commandListing() string {
	var builder strings.Builder
	writer := tabwriter.NewWriter(&builder, 2, 0, 3, ' ', 0)
	for _, sub := range c.Subcommands {
		fmt.Fprintf(writer, "  %s\t%s\n", sub.Name, sub.Summary)
	}
	writer.Flush()
	return strings.TrimRight(builder.String(), "\n")
}

func (c *Command) exampleListing() string {
	entries := make([]string, 0, len(c.Examples))
	for _, example := range c.Examples {
		entry := "  " + example.Command
		if example.Description != "" {
			entry = "  # " + example.Description + "\n" + entry
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n\n")
}
