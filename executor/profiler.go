/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/named-data/YaCSim/core"
)

// Profiler writes the pprof profiles requested by a configuration.
type Profiler struct {
	config  *YaCSimConfig
	cpuFile *os.File
	block   *pprof.Profile
}

// NewProfiler creates a profiler for the profiles named in the configuration.
func NewProfiler(config *YaCSimConfig) *Profiler {
	return &Profiler{config: config}
}

func (p *Profiler) String() string {
	return "Profiler"
}

// Start starts the CPU and block profiles.
func (p *Profiler) Start() (err error) {
	if p.config.CpuProfile != "" {
		p.cpuFile, err = os.Create(p.config.CpuProfile)
		if err != nil {
			return err
		}

		core.LogInfo(p, "Profiling CPU - outputting to ", p.config.CpuProfile)
		if err = pprof.StartCPUProfile(p.cpuFile); err != nil {
			p.cpuFile.Close()
			p.cpuFile = nil
			return err
		}
	}

	if p.config.BlockProfile != "" {
		core.LogInfo(p, "Profiling blocking operations - outputting to ", p.config.BlockProfile)
		runtime.SetBlockProfileRate(1)
		p.block = pprof.Lookup("block")
	}
	return nil
}

// Stop writes the heap and block profiles and stops the CPU profile.
func (p *Profiler) Stop() {
	if p.config.MemProfile != "" {
		memProfileFile, err := os.Create(p.config.MemProfile)
		if err != nil {
			core.LogError(p, "Unable to open output file for memory profile: ", err)
		} else {
			core.LogInfo(p, "Profiling memory - outputting to ", p.config.MemProfile)
			runtime.GC()
			if err := pprof.WriteHeapProfile(memProfileFile); err != nil {
				core.LogError(p, "Unable to write memory profile: ", err)
			}
			memProfileFile.Close()
		}
	}

	if p.block != nil {
		blockProfileFile, err := os.Create(p.config.BlockProfile)
		if err != nil {
			core.LogError(p, "Unable to open output file for block profile: ", err)
		} else {
			if err := p.block.WriteTo(blockProfileFile, 0); err != nil {
				core.LogError(p, "Unable to write block profile: ", err)
			}
			blockProfileFile.Close()
		}
		runtime.SetBlockProfileRate(0)
		p.block = nil
	}

	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}
}
