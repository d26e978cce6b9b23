// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/webapi"
)

type callParams struct {
	Get    bool `flag:"get" desc:"send an uncataloged method as GET"`
	JSON   bool `flag:"json" desc:"send an uncataloged method as a JSON body"`
	NoAuth bool `flag:"no-auth" desc:"send an uncataloged method without the token"`
}

func callCommand(streams Streams) *cli.Command {
	var session sessionParams
	var params callParams

	return &cli.Command{
		Name:    "call",
		Summary: "Call any Web API method",
		Description: `Call a Web API method by name and print the full response.

Parameters are key=value pairs. For JSON-encoded methods, values that
hold a JSON object or array are sent as structured values. Methods
missing from the catalog are sent as form-encoded POSTs unless --get
or --json says otherwise.

A response with "ok": false is printed and the command exits non-zero.`,
		Usage: "slackweb call <method> [key=value...]",
		Examples: []cli.Example{
			{Description: "Check the configured token", Command: "slackweb call auth.test"},
			{
				Description: "Post a message and record the exchange",
				Command:     "slackweb call chat.postMessage channel=C012AB3CD text=hello --record post.cassette",
			},
			{Description: "Call a method the catalog does not list", Command: "slackweb call team.info --get"},
		},
		Flags: sessionFlags("call", &session, &params),
		Run: func(args []string) error {
			if len(args) == 0 {
				return errors.New("usage: slackweb call <method> [key=value...]")
			}
			name := args[0]
			values, err := parseParameters(args[1:])
			if err != nil {
				return err
			}

			catalog := webapi.DefaultCatalog()
			if _, ok := catalog.Lookup(name); !ok {
				if err := catalog.Register(adHocSpec(name, params)); err != nil {
					return err
				}
			}

			ctx := context.Background()
			s, err := openSession(ctx, &session, streams, catalog)
			if err != nil {
				return err
			}

			var response webapi.RawResponse
			callErr := s.client.Invoke(ctx, webapi.RawRequest{Name: name, Params: values}, &response)
			closeErr := s.Close(ctx)

			output := cli.NewOutput(streams.Out)
			if callErr != nil {
				reportCallError(cli.NewOutput(streams.Err), callErr)
				return &cli.ExitError{Code: 1}
			}
			if err := output.JSON(response.Raw); err != nil {
				return err
			}
			return closeErr
		},
	}
}

// parseParameters splits key=value arguments. Later keys win.
func parseParameters(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", arg)
		}
		values[key] = value
	}
	return values, nil
}

func adHocSpec(name string, params callParams) webapi.MethodSpec {
	spec := webapi.MethodSpec{Name: name, HTTPMethod: http.MethodPost}
	if params.Get {
		spec.HTTPMethod = http.MethodGet
	}
	if params.JSON {
		spec.Encoding = webapi.EncodingJSON
	}
	if params.NoAuth {
		spec.Auth = webapi.AuthNone
	}
	return spec
}

// reportCallError prints a failed call by error class.
func reportCallError(output *cli.Output, err error) {
	var remoteErr *webapi.RemoteError
	var transportErr *webapi.TransportError
	var invalidErr *webapi.InvalidResponseError
	switch {
	case errors.As(err, &remoteErr):
		output.Failure("%s failed: %s", remoteErr.Method, remoteErr.Code)
		if remoteErr.Needed != "" {
			output.Line("  needed scope: %s (token has %s)", remoteErr.Needed, remoteErr.Provided)
		}
		for _, message := range remoteErr.Messages {
			output.Line("  %s", message)
		}
		if remoteErr.RetryAfter > 0 {
			output.Line("  retry after %s", remoteErr.RetryAfter)
		}
	case errors.As(err, &transportErr):
		output.Failure("transport failure: %v", transportErr)
	case errors.As(err, &invalidErr):
		output.Failure("invalid response: %v", invalidErr)
	default:
		output.Failure("%v", err)
	}
}
