/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package mgmt provides read-only status datasets of the routers of a network.
package mgmt

import (
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/table"
)

// GeneralStatus summarizes a set of routers.
type GeneralStatus struct {
	Version          string
	StartTimestamp   time.Time
	CurrentTimestamp time.Time

	NRouters        int
	NCsEntries      int
	NPitEntries     int
	NFibEntries     int
	NCacheHits      int
	NPublisherHits  int
	NEvictions      int
	NTotalRequests  int
	NPopularEntries int
}

// RouterStatus is the dataset of one router.
type RouterStatus struct {
	Name       string
	Policy     table.CsPolicy
	Capacity   int
	Cs         []string
	Pit        []table.PitEntry
	Fib        []table.FibEntry
	Popularity []table.PopularityRecord
	Counters   fw.Counters
}

// General returns the aggregated status of the specified routers.
func General(routers []*fw.Router) GeneralStatus {
	status := GeneralStatus{
		Version:          core.Version,
		StartTimestamp:   core.StartTimestamp,
		CurrentTimestamp: time.Now(),
		NRouters:         len(routers),
	}
	for _, router := range routers {
		counters := router.Counters()
		status.NCsEntries += router.ContentStore().Size()
		status.NPitEntries += len(router.PitContents())
		status.NFibEntries += router.Fib().Size()
		status.NPopularEntries += router.PopularityTable().Size()
		status.NCacheHits += counters.NCacheHits
		status.NPublisherHits += counters.NPublisherHits
		status.NEvictions += counters.NEvictions
		status.NTotalRequests += counters.NTotalRequests
	}
	core.LogTrace("StatusMgmt", "Generated general status of ", len(routers), " routers")
	return status
}

// Router returns the dataset of the specified router. Popularity records are ranked first.
func Router(router *fw.Router) RouterStatus {
	router.PopularityTable().Rank()
	return RouterStatus{
		Name:       router.Name(),
		Policy:     router.Policy(),
		Capacity:   router.ContentStore().Capacity(),
		Cs:         router.CsContents(),
		Pit:        router.PitContents(),
		Fib:        router.Fib().Entries(),
		Popularity: router.PopularityTable().Records(),
		Counters:   router.Counters(),
	}
}
