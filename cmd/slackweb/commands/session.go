// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/slackweb/cmd/slackweb/cli"
	"github.com/bureau-foundation/slackweb/lib/cassette"
	"github.com/bureau-foundation/slackweb/lib/config"
	"github.com/bureau-foundation/slackweb/lib/secret"
	"github.com/bureau-foundation/slackweb/lib/telemetry"
	"github.com/bureau-foundation/slackweb/lib/version"
	"github.com/bureau-foundation/slackweb/webapi"
)

// Streams are the standard streams a command tree writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// sessionParams are the flags shared by every command that talks to
// the Web API.
type sessionParams struct {
	ConfigPath string `flag:"config" desc:"configuration file (default $SLACKWEB_CONFIG)"`
	TokenFile  string `flag:"token-file" desc:"read the token from this file, or stdin for -"`
	Record     string `flag:"record" desc:"record exchanges to this cassette"`
	Replay     string `flag:"replay" desc:"answer from this cassette instead of the network"`
	Trace      bool   `flag:"trace" desc:"write OpenTelemetry spans to stderr"`
	Debug      bool   `flag:"debug" desc:"log every call"`
}

// session is one command's connection to the Web API: a client over
// the configured transport chain plus everything that must be released
// when the command finishes.
type session struct {
	config     *config.Config
	client     *webapi.Client
	logger     *slog.Logger
	telemetry  *telemetry.Telemetry
	recorder   *cassette.Recorder
	recordPath string
	replayer   *cassette.Replayer
	token      *secret.Buffer
}

// openSession builds a client from params. catalog may be nil for the
// default catalog. The caller must Close the session.
func openSession(ctx context.Context, params *sessionParams, streams Streams, catalog *webapi.Catalog) (*session, error) {
	if params.Record != "" && params.Replay != "" {
		return nil, errors.New("--record and --replay are mutually exclusive")
	}

	cfg, err := loadConfig(params.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if params.Debug {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(streams.Err, level)

	s := &session{config: cfg, logger: logger}

	var transport webapi.Transport
	if params.Replay != "" {
		s.replayer, err = cassette.Load(cfg.CassettePath(params.Replay))
		if err != nil {
			return nil, err
		}
		transport = s.replayer
	} else {
		transport, err = newTransport(cfg)
		if err != nil {
			return nil, err
		}
	}
	if params.Record != "" {
		if err := cfg.EnsureCassetteDirectory(); err != nil {
			return nil, err
		}
		s.recorder = cassette.NewRecorder(transport)
		s.recordPath = cfg.CassettePath(params.Record)
		transport = s.recorder
	}

	s.telemetry, err = telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled || params.Trace,
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     version.Short(),
		Output:      streams.Err,
	})
	if err != nil {
		return nil, err
	}
	transport = s.telemetry.Transport(transport)

	if params.TokenFile != "" {
		s.token, err = secret.ReadFromPath(params.TokenFile)
	} else {
		s.token, err = cfg.ReadToken()
	}
	if err != nil {
		s.telemetry.Shutdown(ctx)
		return nil, fmt.Errorf("loading token: %w", err)
	}

	s.client, err = webapi.NewClient(webapi.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		Transport: transport,
		Token:     s.token,
		Catalog:   catalog,
		Logger:    logger,
	})
	if err != nil {
		// Nothing was exchanged, so there is no cassette to write.
		s.recorder = nil
		s.Close(ctx)
		return nil, err
	}
	return s, nil
}

// loadConfig reads path, or the file named by SLACKWEB_CONFIG when
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newTransport builds the network transport named by api.transport.
func newTransport(cfg *config.Config) (webapi.Transport, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	switch cfg.API.Transport {
	case config.TransportResty:
		return webapi.NewRestyTransport(resty.New().SetTimeout(timeout)), nil
	default:
		return webapi.NewHTTPTransport(&http.Client{Timeout: timeout}), nil
	}
}

// Close saves any recording, flushes telemetry, and releases the
// token. It reports every failure. A session whose client was never
// built saves no cassette.
func (s *session) Close(ctx context.Context) error {
	var errs []error
	if s.recorder != nil && s.client != nil {
		compression, err := cassette.ParseCompression(s.config.Cassette.Compression)
		if err == nil {
			err = s.recorder.Save(s.recordPath, compression)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("saving cassette: %w", err))
		} else {
			s.logger.Info("cassette saved",
				"path", s.recordPath,
				"interactions", len(s.recorder.Interactions()),
			)
		}
	}
	if s.replayer != nil && s.replayer.Remaining() > 0 {
		s.logger.Warn("cassette not fully replayed", "remaining", s.replayer.Remaining())
	}
	if s.telemetry != nil {
		if s.telemetry.Enabled() {
			counts, err := s.telemetry.CallCounts(ctx)
			if err == nil {
				methods := make([]string, 0, len(counts))
				for method := range counts {
					methods = append(methods, method)
				}
				sort.Strings(methods)
				for _, method := range methods {
					s.logger.Debug("calls", "method", method, "count", counts[method])
				}
			}
		}
		if err := s.telemetry.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing telemetry: %w", err))
		}
	}
	if s.token != nil {
		if err := s.token.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sessionFlags binds sessionParams and extra to one flag set.
func sessionFlags(name string, params *sessionParams, extra any) func() *pflag.FlagSet {
	return func() *pflag.FlagSet {
		flagSet := cli.FlagsFromParams(name, params)
		if extra != nil {
			if err := cli.BindFlags(extra, flagSet); err != nil {
				panic(fmt.Sprintf("commands: binding %s flags: %v", name, err))
			}
		}
		return flagSet
	}
}
