// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/webapi"
)

type methodsParams struct {
	Prefix string `flag:"prefix" desc:"only list methods starting with this prefix (e.g., chat.)"`
	JSON   bool   `flag:"json" desc:"print JSON instead of a table"`
}

// methodEntry is the JSON form of a catalog entry.
type methodEntry struct {
	Name     string `json:"name"`
	HTTP     string `json:"http_method"`
	Encoding string `json:"encoding"`
	Auth     string `json:"auth"`
}

func methodsCommand(streams Streams) *cli.Command {
	var params methodsParams

	return &cli.Command{
		Name:    "methods",
		Summary: "List the methods the client can dispatch",
		Description: `List the method catalog: every API method the client knows how to
encode, with its HTTP method, body encoding, and whether it sends the
default token.`,
		Examples: []cli.Example{
			{Description: "List chat methods", Command: "slackweb methods --prefix chat."},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("methods", &params) },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			var entries []methodEntry
			for _, spec := range webapi.DefaultCatalog().Methods() {
				if !strings.HasPrefix(spec.Name, params.Prefix) {
					continue
				}
				entries = append(entries, methodEntry{
					Name:     spec.Name,
					HTTP:     spec.HTTPMethod,
					Encoding: spec.Encoding.String(),
					Auth:     spec.Auth.String(),
				})
			}

			output := cli.NewOutput(streams.Out)
			if params.JSON {
				return output.Value(entries)
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Name, entry.HTTP, entry.Encoding, entry.Auth})
			}
			return output.Table([]string{"METHOD", "HTTP", "ENCODING", "AUTH"}, rows)
		},
	}
}
