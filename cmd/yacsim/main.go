/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"os"

	"github.com/named-data/YaCSim/cmd"
	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/executor"
)

// Version of YaCSim.
var Version string

// BuildTime contains the timestamp of when the version of YaCSim was built.
var BuildTime string

func main() {
	executor.Version = Version
	core.BuildTime = BuildTime

	tree := cmd.CmdTree{
		Name: "yacsim",
		Help: "Content-centric caching and router selection simulator",
		Sub: []*cmd.CmdTree{{
			Name: "run",
			Help: "Simulate every cache replacement policy and rank content popularity",
			Fun:  executor.RunMain,
		}, {
			Name: "select",
			Help: "Compare manual and ensemble router selection",
			Fun:  executor.SelectMain,
		}, {
			// separator
		}, {
			Name: "version",
			Help: "Print version and exit",
			Fun:  executor.VersionMain,
		}},
	}

	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
