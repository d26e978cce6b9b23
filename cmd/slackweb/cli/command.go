// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Command is one node of the command tree. A node either dispatches to
// Subcommands or runs itself.
type Command struct {
	// Name is what the user types to reach this command.
	Name string

	// Summary is the one-line listing in the parent's help.
	Summary string

	// Description is the full text of this command's own help. Summary
	// is used when it is empty.
	Description string

	// Usage overrides the synthesized usage line
	// (e.g., "slackweb call <method> [key=value...]").
	Usage string

	Examples []Example

	// Flags builds the command's flag set. It is called afresh for
	// every parse and help rendering, so it must bind to variables
	// captured by Run. Nil means the command takes no flags.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing.
	Run func(args []string) error

	// HelpOutput receives help text. Subcommands inherit it; the root
	// default is os.Stderr.
	HelpOutput io.Writer

	parent *Command
}

// Example is one entry in a command's help.
type Example struct {
	Description string
	Command     string
}

// usageError is a command-line mistake. Its message ends with a pointer
// to the help of the command that rejected the input.
type usageError struct {
	message string
	command string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%s\n\nRun '%s --help' for usage.", e.message, e.command)
}

// Execute runs the command tree against args (without the program
// name).
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.helpOutput())
		return nil
	}
	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			return c.dispatch(args[0], args[1:])
		}
		if c.Run == nil {
			c.PrintHelp(c.helpOutput())
			if len(args) == 0 {
				return errors.New("subcommand required")
			}
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
	}

	positional, helped, err := c.parseFlags(args)
	if err != nil || helped {
		return err
	}
	if c.Run == nil {
		c.PrintHelp(c.helpOutput())
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(positional)
}

// dispatch hands args to the subcommand called name.
func (c *Command) dispatch(name string, args []string) error {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub.Execute(args)
		}
	}
	message := fmt.Sprintf("unknown command %q", name)
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		message += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return &usageError{message: message, command: c.fullName()}
}

// parseFlags parses args against the command's flags and returns the
// positional remainder. helped is true when --help was among the flags
// and help has been printed.
func (c *Command) parseFlags(args []string) (positional []string, helped bool, err error) {
	if c.Flags == nil {
		return args, false, nil
	}
	flagSet := c.Flags()
	// Errors are reported through usageError, not pflag's own output.
	flagSet.SetOutput(io.Discard)

	err = flagSet.Parse(args)
	switch {
	case err == nil:
		return flagSet.Args(), false, nil
	case errors.Is(err, pflag.ErrHelp):
		c.PrintHelp(c.helpOutput())
		return nil, true, nil
	}

	message := err.Error()
	if strings.HasPrefix(message, "unknown flag") || strings.HasPrefix(message, "unknown shorthand flag") {
		if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
			message += fmt.Sprintf(" (did you mean %s?)", suggestion)
		}
	}
	return nil, false, &usageError{message: message, command: c.fullName()}
}

// fullName is the command path from the root (e.g.,
// "slackweb blocks validate").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) helpOutput() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.HelpOutput != nil {
			return command.HelpOutput
		}
	}
	return os.Stderr
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
