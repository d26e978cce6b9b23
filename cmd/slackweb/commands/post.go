// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/lib/blockkit"
	"github.com/bureau-foundation/slackweb/lib/mrkdwn"
	"github.com/bureau-foundation/slackweb/lib/ref"
	"github.com/bureau-foundation/slackweb/webapi"
)

type postParams struct {
	Channel    string `flag:"channel,c" desc:"channel ID to post to"`
	Text       string `flag:"text,t" desc:"message text, or the notification fallback with blocks"`
	Markdown   string `flag:"markdown,m" desc:"CommonMark file to convert to blocks, or - for stdin"`
	BlocksFile string `flag:"blocks-file" desc:"JSON or JSONC file holding a blocks array"`
	ThreadTS   string `flag:"thread-ts" desc:"reply in the thread of this message ts"`
	Broadcast  bool   `flag:"broadcast" desc:"also send a thread reply to the channel"`
}

func postCommand(streams Streams) *cli.Command {
	var session sessionParams
	var params postParams

	return &cli.Command{
		Name:    "post",
		Summary: "Post a message with chat.postMessage",
		Description: `Post a message to a channel.

The message is plain --text, blocks rendered from a CommonMark file
with --markdown, or blocks read from --blocks-file. Blocks files may
contain comments and trailing commas. With --markdown, the converted
mrkdwn doubles as the notification text unless --text is given.`,
		Usage: "slackweb post --channel <id> (--text <text> | --markdown <file> | --blocks-file <file>)",
		Examples: []cli.Example{
			{Description: "Post plain text", Command: "slackweb post -c C012AB3CD -t 'deploy finished'"},
			{Description: "Post release notes", Command: "slackweb post -c C012AB3CD --markdown CHANGELOG.md"},
			{Description: "Reply in a thread", Command: "slackweb post -c C012AB3CD -t done --thread-ts 1503435956.000247"},
		},
		Flags: sessionFlags("post", &session, &params),
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			request, err := buildPostRequest(params, streams.In)
			if err != nil {
				return err
			}

			ctx := context.Background()
			s, err := openSession(ctx, &session, streams, nil)
			if err != nil {
				return err
			}
			response, postErr := s.client.ChatPostMessage(ctx, request)
			closeErr := s.Close(ctx)
			if postErr != nil {
				reportCallError(cli.NewOutput(streams.Err), postErr)
				return &cli.ExitError{Code: 1}
			}

			cli.NewOutput(streams.Out).Success("posted %s to %s", response.TS, response.Channel)
			return closeErr
		},
	}
}

// buildPostRequest validates params and assembles the request. stdin
// backs --markdown -.
func buildPostRequest(params postParams, stdin io.Reader) (webapi.ChatPostMessageRequest, error) {
	request := webapi.ChatPostMessageRequest{Channel: params.Channel}
	if params.Channel == "" {
		return request, errors.New("--channel is required")
	}
	if params.Markdown != "" && params.BlocksFile != "" {
		return request, errors.New("--markdown and --blocks-file are mutually exclusive")
	}
	request.Text = params.Text

	switch {
	case params.Markdown != "":
		source, err := readInput(params.Markdown, stdin)
		if err != nil {
			return request, err
		}
		request.Blocks = mrkdwn.Blocks(string(source))
		if request.Text == "" {
			request.Text = mrkdwn.Convert(string(source))
		}
	case params.BlocksFile != "":
		blocks, err := readBlocksFile(params.BlocksFile)
		if err != nil {
			return request, err
		}
		request.Blocks = blocks
	}
	if request.Text == "" && len(request.Blocks) == 0 {
		return request, errors.New("nothing to post: give --text, --markdown, or --blocks-file")
	}

	if params.ThreadTS != "" {
		threadTS, err := ref.ParseTimestamp(params.ThreadTS)
		if err != nil {
			return request, fmt.Errorf("--thread-ts: %w", err)
		}
		request.ThreadTS = threadTS
		request.ReplyBroadcast = params.Broadcast
	} else if params.Broadcast {
		return request, errors.New("--broadcast requires --thread-ts")
	}
	return request, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// readJSONC reads a JSON file that may carry comments and trailing
// commas.
func readJSONC(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return jsonc.ToJSON(data), nil
}

func readBlocksFile(path string) (blockkit.Blocks, error) {
	data, err := readJSONC(path)
	if err != nil {
		return nil, err
	}
	var blocks blockkit.Blocks
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blocks, nil
}
