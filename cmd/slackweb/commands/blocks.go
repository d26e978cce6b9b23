// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/lib/blockkit"
)

func blocksCommand(streams Streams) *cli.Command {
	return &cli.Command{
		Name:    "blocks",
		Summary: "Work with Block Kit payloads",
		Subcommands: []*cli.Command{
			blocksValidateCommand(streams),
		},
	}
}

func blocksValidateCommand(streams Streams) *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Decode a Block Kit file and report problems",
		Description: `Decode every block and attachment in a file the way the client
decodes API responses, and report each one.

The file holds a blocks array, a single block, or a message object
with "blocks" and "attachments" arrays. Comments and trailing commas
are allowed. Types this client does not recognize are reported but
are not errors: they are carried through unchanged.`,
		Usage: "slackweb blocks validate <file>",
		Examples: []cli.Example{
			{Description: "Check a message layout before posting it", Command: "slackweb blocks validate message.jsonc"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return errors.New("usage: slackweb blocks validate <file>")
			}
			data, err := readJSONC(args[0])
			if err != nil {
				return err
			}
			output := cli.NewOutput(streams.Out)
			if failures := validateBlockKit(output, data); failures > 0 {
				output.Failure("%s: %d invalid item(s)", args[0], failures)
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// validateBlockKit reports each item in data and returns how many
// failed to decode.
func validateBlockKit(output *cli.Output, data []byte) int {
	if !gjson.ValidBytes(data) {
		output.Failure("not valid JSON")
		return 1
	}
	document := gjson.ParseBytes(data)
	switch {
	case document.IsArray():
		return validateList(output, "blocks", document, decodeBlock)
	case document.IsObject() && (document.Get("blocks").Exists() || document.Get("attachments").Exists()):
		failures := 0
		if blocks := document.Get("blocks"); blocks.Exists() {
			failures += validateList(output, "blocks", blocks, decodeBlock)
		}
		if attachments := document.Get("attachments"); attachments.Exists() {
			failures += validateList(output, "attachments", attachments, decodeAttachment)
		}
		return failures
	case document.IsObject():
		return validateItem(output, "block", document.Raw, decodeBlock)
	default:
		output.Failure("expected a blocks array or an object, got %s", document.Type)
		return 1
	}
}

func validateList(output *cli.Output, label string, list gjson.Result, decode func([]byte) (string, error)) int {
	if !list.IsArray() {
		output.Failure("%s: not an array", label)
		return 1
	}
	failures := 0
	for index, item := range list.Array() {
		failures += validateItem(output, fmt.Sprintf("%s[%d]", label, index), item.Raw, decode)
	}
	return failures
}

func validateItem(output *cli.Output, label, raw string, decode func([]byte) (string, error)) int {
	description, err := decode([]byte(raw))
	if err != nil {
		output.Failure("%s: %s", label, describeDecodeError(err))
		return 1
	}
	output.Success("%s: %s", label, description)
	return 0
}

func decodeBlock(data []byte) (string, error) {
	block, err := blockkit.DecodeBlock(data)
	if err != nil {
		return "", err
	}
	if unknown, ok := block.(*blockkit.UnknownBlock); ok {
		return fmt.Sprintf("%s (unrecognized, kept as-is)", unknown.Type), nil
	}
	return block.BlockType(), nil
}

func decodeAttachment(data []byte) (string, error) {
	attachment, err := blockkit.DecodeAttachment(data)
	if err != nil {
		return "", err
	}
	if attachment.Fallback != "" {
		return fmt.Sprintf("attachment %q", attachment.Fallback), nil
	}
	return "attachment", nil
}

func describeDecodeError(err error) string {
	var decodeErr *blockkit.DecodeError
	if !errors.As(err, &decodeErr) {
		return err.Error()
	}
	switch decodeErr.Kind {
	case blockkit.MalformedField:
		return fmt.Sprintf("%s: %s %q field %q", decodeErr.Kind, decodeErr.Family, decodeErr.Variant, decodeErr.Field)
	case blockkit.MissingDiscriminator:
		return fmt.Sprintf("%s: %s has no \"type\"", decodeErr.Kind, decodeErr.Family)
	default:
		return decodeErr.Error()
	}
}
