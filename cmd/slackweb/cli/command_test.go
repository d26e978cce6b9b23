// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name:       "slackweb",
		HelpOutput: &bytes.Buffer{},
		Subcommands: []*Command{
			{Name: "version", Run: func(args []string) error { called = "version"; return nil }},
			{
				Name: "blocks",
				Subcommands: []*Command{
					{
						Name: "validate",
						Run: func(args []string) error {
							called = "blocks validate"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"blocks", "validate", "message.jsonc"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "blocks validate" {
		t.Errorf("dispatched to %q, want %q", called, "blocks validate")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "message.jsonc" {
		t.Errorf("args = %v, want [message.jsonc]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var channel string
	var receivedArgs []string

	command := &Command{
		Name: "post",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("post", pflag.ContinueOnError)
			flagSet.StringVar(&channel, "channel", "", "channel ID")
			return flagSet
		},
		Run: func(args []string) error {
			receivedArgs = args
			return nil
		},
	}

	if err := command.Execute([]string{"--channel", "C1", "hello"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if channel != "C1" {
		t.Errorf("channel = %q, want C1", channel)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "hello" {
		t.Errorf("args = %v", receivedArgs)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "post",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("post", pflag.ContinueOnError)
			flagSet.String("channel", "", "channel ID")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--chanel", "C1"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --channel?") {
		t.Errorf("error %q does not suggest --channel", err)
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "slackweb",
		Subcommands: []*Command{
			{Name: "methods", Run: func(args []string) error { return nil }},
			{Name: "post", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"metods"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "methods"?`) {
		t.Errorf("error = %v, want a suggestion for methods", err)
	}

	err = root.Execute([]string{"zzzzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	var help bytes.Buffer
	ran := false
	command := &Command{
		Name:       "methods",
		Summary:    "List catalog methods",
		HelpOutput: &help,
		Run:        func(args []string) error { ran = true; return nil },
	}

	for _, flag := range []string{"--help", "-h", "help"} {
		help.Reset()
		if err := command.Execute([]string{flag}); err != nil {
			t.Fatalf("Execute(%s) error: %v", flag, err)
		}
		if !strings.Contains(help.String(), "List catalog methods") {
			t.Errorf("help for %s = %q", flag, help.String())
		}
	}
	if ran {
		t.Error("help flag ran the command")
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "slackweb",
		HelpOutput:  &help,
		Subcommands: []*Command{{Name: "version", Summary: "Print version"}},
	}
	if err := root.Execute(nil); err == nil || err.Error() != "subcommand required" {
		t.Errorf("error = %v, want subcommand required", err)
	}
	if !strings.Contains(help.String(), "version") {
		t.Errorf("help does not list subcommands: %q", help.String())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{Name: "slackweb"}
	command := &Command{
		Name:        "call",
		Description: "Call any Web API method.",
		Usage:       "slackweb call <method> [key=value...]",
		Examples: []Example{
			{Description: "Check the token", Command: "slackweb call auth.test"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("call", pflag.ContinueOnError)
			flagSet.String("record", "", "record exchanges to a cassette")
			return flagSet
		},
		parent: root,
	}

	var help bytes.Buffer
	command.PrintHelp(&help)
	for _, want := range []string{
		"Call any Web API method.",
		"Usage:\n  slackweb call <method> [key=value...]",
		"--record",
		"# Check the token",
		"slackweb call auth.test",
	} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("help missing %q:\n%s", want, help.String())
		}
	}
	if command.fullName() != "slackweb call" {
		t.Errorf("fullName() = %q", command.fullName())
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"post", "", 4},
		{"post", "post", 0},
		{"metods", "methods", 1},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
