// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the slackweb
// command.
//
// Configuration is loaded from a single file specified by either the
// SLACKWEB_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search.
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches, so one file can point at a test
// workspace and a real one.
//
// Variable expansion is performed on path and URL fields after
// loading: ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values. The token itself is
// never stored in the file; api.token_file or api.token_env says where
// to find it, and [Config.ReadToken] loads it into a secret.Buffer.
//
// Key exports:
//
//   - [Config] -- master struct with API, Cassette, Telemetry
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
