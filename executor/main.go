/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/mgmt"
)

// Version of YaCSim.
var Version string

func parseFlags(name string, args []string) *YaCSimConfig {
	config := &YaCSimConfig{Version: Version}

	flagset := flag.NewFlagSet(name, flag.ExitOnError)
	flagset.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [config-file]\n", args[0])
		flagset.PrintDefaults()
	}

	var policies string
	flagset.StringVar(&config.TopologyFile, "topology", "", "Load the network from a YAML description instead of building a line")
	flagset.StringVar(&config.LogFile, "log", "", "Write logs to the specified file instead of stdout")
	flagset.StringVar(&config.MetricsFile, "metrics", "", "Write router metrics in the Prometheus text format to the specified file")
	flagset.IntVar(&config.Iterations, "iterations", 0, "Number of iterations (overrides sim.iterations)")
	flagset.StringVar(&policies, "policies", "", "Comma-separated replacement policies (overrides sim.policies)")
	flagset.StringVar(&config.CpuProfile, "cpu-profile", "", "Enable CPU profiling (output to specified file)")
	flagset.StringVar(&config.MemProfile, "mem-profile", "", "Enable memory profiling (output to specified file)")
	flagset.StringVar(&config.BlockProfile, "block-profile", "", "Enable block profiling (output to specified file)")

	flagset.Parse(args[1:])

	config.ConfigFile = flagset.Arg(0)
	if policies != "" {
		config.Policies = strings.Split(policies, ",")
	}
	return config
}

func start(config *YaCSimConfig) *YaCSim {
	yacsim, err := NewYaCSim(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to start YaCSim: "+err.Error())
		os.Exit(3)
	}
	if err = yacsim.Start(); err != nil {
		core.LogFatal("Main", "Unable to start profiling: ", err)
	}
	return yacsim
}

// RunMain simulates every replacement policy on the configured network and prints the totals
// and the global popularity table.
func RunMain(args []string) {
	yacsim := start(parseFlags("run", args))

	results, err := yacsim.RunPolicies()
	if err != nil {
		core.LogFatal("Main", "Simulation failed: ", err)
	}
	WritePolicyReport(os.Stdout, results)
	fmt.Println()
	WriteGlobalPopularity(os.Stdout, yacsim.Simulation().GlobalPopularity(), 10)
	fmt.Println()

	routers := yacsim.Simulation().Network().Routers
	statuses := make([]mgmt.RouterStatus, len(routers))
	for i, router := range routers {
		statuses[i] = mgmt.Router(router)
	}
	WriteRouterStatus(os.Stdout, statuses)

	if err = yacsim.Stop(); err != nil {
		os.Exit(1)
	}
}

// SelectMain simulates requests with both router selection procedures and prints their comparison.
func SelectMain(args []string) {
	yacsim := start(parseFlags("select", args))

	rows := yacsim.RunSelection()
	WriteComparison(os.Stdout, rows)
	if leader, ok := yacsim.Simulation().Selector().TaskMigrationLeader(); ok {
		fmt.Println("Task migration leader: " + leader)
	}

	if err := yacsim.Stop(); err != nil {
		os.Exit(1)
	}
}

// VersionMain prints the version of YaCSim.
func VersionMain(args []string) {
	fmt.Fprintln(os.Stderr, "YaCSim: Yet another Caching Simulator")
	fmt.Fprintln(os.Stderr, "Version: ", Version)
	fmt.Fprintln(os.Stderr, "Copyright (C) 2020-2021 Eric Newberry")
	fmt.Fprintln(os.Stderr, "Released under the terms of the MIT License")
}
