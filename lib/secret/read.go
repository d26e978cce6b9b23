// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadFromPath reads a token from a file, or from stdin if path is "-".
// Surrounding whitespace (a trailing newline from `echo`) is trimmed.
// The caller must Close the returned Buffer.
func ReadFromPath(path string) (*Buffer, error) {
	if path == "-" {
		return readFirstLine(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fromTrimmed(data)
}

// FromEnv reads a token from the named environment variable and unsets
// it so child processes do not inherit it. Returns (nil, nil) if the
// variable is unset or empty.
func FromEnv(name string) (*Buffer, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return nil, nil
	}
	if err := os.Unsetenv(name); err != nil {
		return nil, fmt.Errorf("secret: unsetting %s: %w", name, err)
	}
	buffer, err := fromTrimmed([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("secret: %s: %w", name, err)
	}
	return buffer, nil
}

func readFirstLine(reader io.Reader) (*Buffer, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return nil, fmt.Errorf("stdin is empty")
	}
	return fromTrimmed(scanner.Bytes())
}

// fromTrimmed stores data without surrounding whitespace and zeroes all
// of data, including the trimmed margins.
func fromTrimmed(data []byte) (*Buffer, error) {
	defer Zero(data)
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("secret is empty")
	}
	return NewFromBytes(trimmed)
}
