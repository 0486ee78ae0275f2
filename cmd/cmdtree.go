/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package cmd dispatches command lines to sub-commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
)

const banner = `
 __   __    ____ ____  _
 \ \ / /_ _/ ___/ ___|(_)_ __ ___
  \ V / _  | |   \___ \| | '_ ' _ \
   | | (_| | |___ ___) | | | | | | |
   |_|\__,_|\____|____/|_|_| |_| |_|
`

// CmdTree is a command with either a handler or sub-commands.
type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

// Usage prints the sub-commands of the command and exits.
func (c *CmdTree) Usage(args []string) {
	fmt.Fprintln(os.Stderr, banner[1:])
	fmt.Fprintf(os.Stderr, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(os.Stderr, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		if sub.Name == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		spaces := strings.Repeat(" ", max(16-len(sub.Name), 1))
		fmt.Fprintf(os.Stderr, "  %s%s%s\n", sub.Name, spaces, sub.Help)
	}
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}

// Find returns the handler of the command line and its arguments, where the first argument names the
// selected command. It returns nil if the command line does not select a handler.
func (c *CmdTree) Find(args []string) (func([]string), []string) {
	if c.Fun != nil {
		return c.Fun, args
	}
	if len(args) <= 1 {
		return nil, args
	}
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			return sub.Find(append([]string{name}, args[2:]...))
		}
	}
	return nil, args
}

// Execute runs the handler selected by the command line, or prints the usage.
func (c *CmdTree) Execute(args []string) {
	if fun, fargs := c.Find(args); fun != nil {
		fun(fargs)
		return
	}
	c.Usage(args)
}
