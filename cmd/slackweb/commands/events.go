// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/events"
	"github.com/bureau-foundation/slackweb/lib/secret"
)

type eventsServeParams struct {
	Listen   string `flag:"listen" desc:"address to listen on" default:":3000"`
	Path     string `flag:"path" desc:"request path Slack delivers to" default:"/slack/events"`
	TokenEnv string `flag:"verification-token-env" desc:"environment variable holding the verification token" default:"SLACK_VERIFICATION_TOKEN"`
	Debug    bool   `flag:"debug" desc:"log every request"`
}

func eventsCommand(streams Streams) *cli.Command {
	return &cli.Command{
		Name:    "events",
		Summary: "Receive Events API deliveries",
		Subcommands: []*cli.Command{
			eventsServeCommand(streams),
		},
	}
}

func eventsServeCommand(streams Streams) *cli.Command {
	var params eventsServeParams

	return &cli.Command{
		Name:    "serve",
		Summary: "Answer url_verification and print delivered events",
		Description: `Run an Events API endpoint. It answers the url_verification
handshake and writes each event_callback to stdout as one JSON line.

When the verification token variable is set, payloads carrying any
other token are rejected. The variable is cleared after reading.`,
		Examples: []cli.Example{
			{Description: "Serve on port 8080", Command: "slackweb events serve --listen :8080"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("serve", &params) },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			level := slog.LevelInfo
			if params.Debug {
				level = slog.LevelDebug
			}
			logger := cli.NewCommandLogger(streams.Err, level)

			token, err := secret.FromEnv(params.TokenEnv)
			if err != nil {
				return err
			}
			if token != nil {
				defer token.Close()
			} else {
				logger.Warn("verification token not set; payload tokens are not checked", "variable", params.TokenEnv)
			}

			server := newEventsServer(params, token, streams, logger)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serveUntilDone(ctx, server, logger)
		},
	}
}

// newEventsServer builds the HTTP server for events serve. token may
// be nil.
func newEventsServer(params eventsServeParams, token *secret.Buffer, streams Streams, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	var verificationToken string
	if token != nil {
		verificationToken = token.String()
	}

	var mu sync.Mutex
	handler := events.NewHandler(events.HandlerConfig{
		VerificationToken: verificationToken,
		Logger:            logger,
		OnEvent: func(ctx context.Context, callback *events.EventCallback) error {
			printed := *callback
			printed.Token = ""
			line, err := json.Marshal(&printed)
			if err != nil {
				return fmt.Errorf("encoding event %s: %w", callback.EventID, err)
			}
			logger.Debug("event received", "event_id", callback.EventID, "type", callback.EventType())
			mu.Lock()
			defer mu.Unlock()
			_, err = fmt.Fprintf(streams.Out, "%s\n", line)
			return err
		},
	})

	return &http.Server{
		Addr:              params.Listen,
		Handler:           handler.Router(params.Path),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serveUntilDone runs server until ctx is canceled, then shuts it down.
func serveUntilDone(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving events", "address", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serving events: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
