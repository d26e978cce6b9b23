// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds API tokens (bot, user, and app tokens, OAuth
// client secrets) in memory that the Go runtime never sees.
//
// [Buffer] allocates its storage with mmap(MAP_ANONYMOUS), locks it
// into RAM with mlock, and excludes it from core dumps with
// madvise(MADV_DONTDUMP). Close zeroes, unlocks, and unmaps it. The
// garbage collector cannot copy memory it does not manage, so a closed
// Buffer leaves no trace of the token behind.
//
// Tokens enter through [NewFromBytes] (which zeroes the caller's copy),
// [ReadFromPath] (a file or stdin), or [FromEnv] (an environment
// variable, which is unset after reading). They leave only at the HTTP
// boundary through [Buffer.String], when the Authorization header is
// built.
package secret
