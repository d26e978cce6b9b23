// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// slackweb is a command line for the Slack Web API.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own failure report return an
		// ExitError; skip the redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	streams := commands.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	return commands.Root(streams).Execute(os.Args[1:])
}
