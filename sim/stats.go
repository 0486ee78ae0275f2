/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package sim

import (
	"strconv"
	"time"

	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/table"
)

// IterationStat is the state of the network after one iteration.
type IterationStat struct {
	Time          time.Time
	ActiveClients int
	TotalRequests int
	HopReduction  float64 // Requests served from cache per request
	CacheHitRatio float64 // Percent
	Latency       float64 // Seconds per request
}

// PolicyStats is the outcome of simulating one replacement policy.
type PolicyStats struct {
	Policy        table.CsPolicy
	Iterations    []IterationStat
	TotalRequests int
	CacheHits     int
	PublisherHits int
	CacheHitRatio float64

	// Entries removed from the Content Stores by the replacement policies and by TTL expiry
	EvictedEntries int
	ExpiredEntries int
}

type networkTotals struct {
	requests        int
	cacheHits       int
	publisherHits   int
	servedFromCache int
}

func sumCounters(routers []*fw.Router) networkTotals {
	var totals networkTotals
	for _, router := range routers {
		counters := router.Counters()
		totals.requests += counters.NCacheHits + counters.NPublisherHits
		totals.cacheHits += counters.NCacheHits
		totals.publisherHits += counters.NPublisherHits
		totals.servedFromCache += counters.NServedFromCache
	}
	return totals
}

func (t networkTotals) cacheHitRatio() float64 {
	if t.requests == 0 {
		return 0
	}
	return float64(t.cacheHits) / float64(t.requests) * 100
}

func (t networkTotals) hopReduction() float64 {
	if t.requests == 0 {
		return 0
	}
	return float64(t.servedFromCache) / float64(t.requests)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
