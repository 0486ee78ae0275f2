/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package sim

import (
	"math/rand"
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/table"
)

// Config contains the parameters of a simulation.
type Config struct {
	Iterations        int
	ActiveProbability float64
	Routers           int
	Subscribers       int

	// Seed of the shared random source. Zero seeds from the current time.
	Seed int64

	Policies []table.CsPolicy
}

// DefaultConfig returns the simulation configuration in effect.
func DefaultConfig() (Config, error) {
	config := Config{
		Iterations:        core.GetConfigIntDefault("sim.iterations", 100),
		ActiveProbability: core.GetConfigFloatDefault("sim.active_probability", 0.9),
		Routers:           core.GetConfigIntDefault("sim.routers", 5),
		Subscribers:       core.GetConfigIntDefault("sim.subscribers", 3),
		Seed:              core.GetConfigInt64Default("sim.seed", 0),
		Policies:          table.CsPolicies,
	}

	if names := core.GetConfigArrayString("sim.policies"); len(names) > 0 {
		config.Policies = make([]table.CsPolicy, 0, len(names))
		for _, name := range names {
			policy, err := table.ParseCsPolicy(name)
			if err != nil {
				return Config{}, err
			}
			config.Policies = append(config.Policies, policy)
		}
	}
	return config, config.validate()
}

func (c Config) validate() error {
	if c.Iterations < 0 {
		return &core.ConfigurationError{Key: "sim.iterations", Value: itoa(c.Iterations)}
	}
	if c.ActiveProbability < 0 || c.ActiveProbability > 1 {
		return &core.ConfigurationError{Key: "sim.active_probability", Value: ftoa(c.ActiveProbability)}
	}
	return nil
}

// NewRand returns the random source used by every component of a simulation.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
