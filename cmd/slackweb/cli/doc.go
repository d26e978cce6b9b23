// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for slackweb: a tree of
// [Command] values with pflag parsing, struct-tag flag binding
// ([FlagsFromParams]), "did you mean" suggestions, and terminal-aware
// output and logging.
package cli
