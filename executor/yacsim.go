/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/metrics"
	"github.com/named-data/YaCSim/mgmt"
	"github.com/named-data/YaCSim/selection"
	"github.com/named-data/YaCSim/sim"
	"github.com/named-data/YaCSim/table"
	"github.com/named-data/YaCSim/topology"
)

// YaCSimConfig is the configuration of a YaCSim invocation.
type YaCSimConfig struct {
	Version      string
	ConfigFile   string
	TopologyFile string
	LogFile      string
	MetricsFile  string
	CpuProfile   string
	MemProfile   string
	BlockProfile string

	// Iterations overrides sim.iterations when positive.
	Iterations int
	// Policies overrides sim.policies when not empty.
	Policies []string
}

// YaCSim is the wrapper around one simulation of a network.
type YaCSim struct {
	config     *YaCSimConfig
	simConfig  sim.Config
	profiler   *Profiler
	simulation *sim.Simulation
}

// NewYaCSim loads the configuration, initializes logging and builds the simulated network.
func NewYaCSim(config *YaCSimConfig) (*YaCSim, error) {
	core.Version = config.Version
	core.StartTimestamp = time.Now()

	if config.ConfigFile != "" {
		if err := core.LoadConfig(config.ConfigFile); err != nil {
			return nil, err
		}
	}
	if err := core.InitializeLogger(config.LogFile); err != nil {
		return nil, err
	}
	table.Configure()
	fw.Configure()

	simConfig, err := sim.DefaultConfig()
	if err != nil {
		return nil, err
	}
	if config.Iterations > 0 {
		simConfig.Iterations = config.Iterations
	}
	if len(config.Policies) > 0 {
		simConfig.Policies = make([]table.CsPolicy, 0, len(config.Policies))
		for _, name := range config.Policies {
			policy, err := table.ParseCsPolicy(name)
			if err != nil {
				return nil, err
			}
			simConfig.Policies = append(simConfig.Policies, policy)
		}
	}

	policy, err := table.ParseCsPolicy(table.DefaultCsPolicy())
	if err != nil {
		return nil, err
	}
	rng := simConfig.NewRand()
	buildConfig := topology.BuildConfig{
		Router: fw.DefaultRouterConfig(policy),
		Rand:   rng,
	}

	var network *topology.Network
	if config.TopologyFile != "" {
		description, err := topology.LoadDescription(config.TopologyFile)
		if err != nil {
			return nil, err
		}
		network, err = description.Build(buildConfig)
		if err != nil {
			return nil, err
		}
	} else {
		network, err = topology.BuildLine(simConfig.Routers, simConfig.Subscribers, topology.DefaultPublishers(), buildConfig)
		if err != nil {
			return nil, err
		}
	}

	return &YaCSim{
		config:     config,
		simConfig:  simConfig,
		profiler:   NewProfiler(config),
		simulation: sim.NewSimulation(network, simConfig, rng),
	}, nil
}

// Start starts profiling.
func (y *YaCSim) Start() error {
	core.LogInfo("Main", "Starting YaCSim run ", y.simulation.RunID().String())
	return y.profiler.Start()
}

// Simulation returns the simulation driven by this instance.
func (y *YaCSim) Simulation() *sim.Simulation {
	return y.simulation
}

// RunPolicies simulates every configured policy.
func (y *YaCSim) RunPolicies() ([]*sim.PolicyStats, error) {
	return y.simulation.RunAll(y.simConfig.Policies, y.simConfig.Iterations)
}

// RunSelection simulates the configured number of requests with router selection.
func (y *YaCSim) RunSelection() []selection.ComparisonRow {
	return y.simulation.RunSelection(y.simConfig.Iterations)
}

// Stop writes the router metrics, stops profiling and closes the log file.
func (y *YaCSim) Stop() error {
	var err error
	if y.config.MetricsFile != "" {
		err = metrics.WriteTextfile(y.config.MetricsFile, y.simulation.Network().Routers)
		if err != nil {
			core.LogError("Main", "Unable to write metrics to ", y.config.MetricsFile, ": ", err)
		}
	}
	y.profiler.Stop()

	status := mgmt.General(y.simulation.Network().Routers)
	core.LogInfo("Main", "Stopped YaCSim run ", y.simulation.RunID().String(), " after ", status.NTotalRequests,
		" Interests: ", status.NCacheHits, " cache hits, ", status.NPublisherHits, " publisher hits, ",
		status.NEvictions, " evictions")
	core.ShutdownLogger()
	return err
}
