// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the slackweb command tree.
package commands

import (
	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
)

// Root builds the complete slackweb command tree over streams.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name: "slackweb",
		Description: `slackweb: a command line for the Slack Web API.

Call any method, post messages built from Markdown or Block Kit files,
validate Block Kit payloads, and record exchanges to cassettes for
offline replay.

Configuration is read from the file named by --config or
$SLACKWEB_CONFIG. The token comes from api.token_file or the
variable named by api.token_env (SLACK_TOKEN by default).`,
		HelpOutput: streams.Err,
		Subcommands: []*cli.Command{
			callCommand(streams),
			postCommand(streams),
			blocksCommand(streams),
			cassetteCommand(streams),
			methodsCommand(streams),
			eventsCommand(streams),
			versionCommand(streams),
		},
	}
}
