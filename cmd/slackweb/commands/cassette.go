// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/lib/cassette"
)

func cassetteCommand(streams Streams) *cli.Command {
	return &cli.Command{
		Name:    "cassette",
		Summary: "Inspect recorded cassettes",
		Subcommands: []*cli.Command{
			cassetteInspectCommand(streams),
		},
	}
}

type cassetteInspectParams struct {
	Dump bool `flag:"dump" desc:"print the raw document in CBOR diagnostic notation"`
	JSON bool `flag:"json" desc:"print JSON instead of a table"`
}

// interactionEntry is the JSON form of one recorded exchange.
type interactionEntry struct {
	Method      string `json:"method"`
	HTTP        string `json:"http_method"`
	Status      int    `json:"status"`
	BodyBytes   int    `json:"body_bytes"`
	Fingerprint string `json:"fingerprint"`
}

func cassetteInspectCommand(streams Streams) *cli.Command {
	var params cassetteInspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "List the exchanges recorded in a cassette",
		Description: `List every exchange a cassette holds, in recording order: the API
method, HTTP method, response status, response size, and the request
fingerprint replay matches on.

With --dump, print the whole decompressed document in CBOR diagnostic
notation (RFC 8949 section 8) instead.`,
		Usage: "slackweb cassette inspect <file> [flags]",
		Examples: []cli.Example{
			{Description: "Summarize a recording", Command: "slackweb cassette inspect post.cassette"},
			{Description: "Show the raw recorded document", Command: "slackweb cassette inspect post.cassette --dump"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("inspect", &params) },
		Run: func(args []string) error {
			if len(args) != 1 {
				return errors.New("usage: slackweb cassette inspect <file>")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading cassette: %w", err)
			}

			output := cli.NewOutput(streams.Out)
			if params.Dump {
				notation, err := cassette.Dump(data)
				if err != nil {
					return err
				}
				output.Line("%s", notation)
				return nil
			}

			interactions, err := cassette.Decode(data)
			if err != nil {
				return err
			}
			entries := make([]interactionEntry, 0, len(interactions))
			for _, interaction := range interactions {
				entries = append(entries, interactionEntry{
					Method:      methodFromURL(interaction.Request.URL),
					HTTP:        interaction.Request.Method,
					Status:      interaction.Response.StatusCode,
					BodyBytes:   len(interaction.Response.Body),
					Fingerprint: interaction.Fingerprint,
				})
			}
			if params.JSON {
				return output.Value(entries)
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				fingerprint := entry.Fingerprint
				if len(fingerprint) > 12 {
					fingerprint = fingerprint[:12]
				}
				rows = append(rows, []string{
					entry.Method,
					entry.HTTP,
					strconv.Itoa(entry.Status),
					strconv.Itoa(entry.BodyBytes),
					fingerprint,
				})
			}
			return output.Table([]string{"METHOD", "HTTP", "STATUS", "BYTES", "FINGERPRINT"}, rows)
		},
	}
}

// methodFromURL returns the last path segment of a recorded request
// URL, which is the API method name.
func methodFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return raw
	}
	return path.Base(parsed.Path)
}
