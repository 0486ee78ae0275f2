/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package sim drives simulations of a network under each Content Store replacement policy.
package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/selection"
	"github.com/named-data/YaCSim/table"
	"github.com/named-data/YaCSim/topology"
)

// Simulation issues random requests from the subscribers of a network and records the resulting statistics.
type Simulation struct {
	network  *topology.Network
	config   Config
	rng      *rand.Rand
	runID    uuid.UUID
	selector *selection.Selector

	// Popularity records per "<policy>/<router>", snapshotted at the end of each policy run
	popularity map[string][]table.PopularityRecord
}

// NewSimulation creates a simulation over the specified network. A nil source is created from the configuration.
func NewSimulation(network *topology.Network, config Config, rng *rand.Rand) *Simulation {
	s := new(Simulation)
	s.network = network
	s.config = config
	s.rng = rng
	if s.rng == nil {
		s.rng = config.NewRand()
	}
	s.runID = uuid.New()
	s.selector = selection.NewSelector(s.rng)
	s.popularity = make(map[string][]table.PopularityRecord)
	return s
}

func (s *Simulation) String() string {
	return "Simulation-" + s.runID.String()
}

// RunID returns the unique identifier of the simulation.
func (s *Simulation) RunID() uuid.UUID {
	return s.runID
}

// Network returns the simulated network.
func (s *Simulation) Network() *topology.Network {
	return s.network
}

// Selector returns the router selector used by RunSelection.
func (s *Simulation) Selector() *selection.Selector {
	return s.selector
}

// pickRequest marks each subscriber active with the configured probability, then draws one active subscriber
// and one content. It returns nil when no subscriber is active.
func (s *Simulation) pickRequest(contents []string) (*fw.Subscriber, string, int) {
	active := make([]*fw.Subscriber, 0, len(s.network.Subscribers))
	for _, subscriber := range s.network.Subscribers {
		subscriber.SetActive(s.rng.Float64() < s.config.ActiveProbability)
		if subscriber.Active() {
			active = append(active, subscriber)
		}
	}
	if len(active) == 0 || len(contents) == 0 {
		return nil, "", len(active)
	}
	subscriber := active[s.rng.Intn(len(active))]
	return subscriber, contents[s.rng.Intn(len(contents))], len(active)
}

func (s *Simulation) request(subscriber *fw.Subscriber, name string) {
	core.LogDebug(s, subscriber.Name(), " requesting ", name)
	if err := subscriber.Request(name); err != nil {
		core.LogDebug(s, "Request of ", name, " by ", subscriber.Name(), " failed: ", err)
	}
}

// Run resets every router to the specified policy and issues at most one request per iteration.
func (s *Simulation) Run(policy table.CsPolicy, iterations int) (*PolicyStats, error) {
	if err := s.network.SetPolicy(string(policy)); err != nil {
		return nil, err
	}
	core.LogInfo(s, "Simulating ", policy, " for ", iterations, " iterations")

	contents := s.network.Contents()
	stats := &PolicyStats{
		Policy:     policy,
		Iterations: make([]IterationStat, 0, iterations),
	}
	countRemovals := func(event table.CsEvent) {
		switch event.Type {
		case table.CsEventEvict:
			stats.EvictedEntries++
		case table.CsEventExpire:
			stats.ExpiredEntries++
		}
	}
	for _, router := range s.network.Routers {
		if err := router.ContentStore().SubscribeEvents(countRemovals); err != nil {
			return nil, err
		}
		defer router.ContentStore().UnsubscribeEvents(countRemovals)
	}
	var totals networkTotals
	for i := 0; i < iterations; i++ {
		subscriber, name, nActive := s.pickRequest(contents)
		if subscriber != nil {
			s.request(subscriber, name)
		}

		latency := 0.01 + s.rng.Float64()*0.09
		totals = sumCounters(s.network.Routers)
		stat := IterationStat{
			Time:          time.Now(),
			ActiveClients: nActive,
			TotalRequests: totals.requests,
			HopReduction:  totals.hopReduction(),
			CacheHitRatio: totals.cacheHitRatio(),
		}
		if totals.requests > 0 {
			stat.Latency = latency / float64(totals.requests)
		}
		stats.Iterations = append(stats.Iterations, stat)
	}

	totals = sumCounters(s.network.Routers)
	stats.TotalRequests = totals.requests
	stats.CacheHits = totals.cacheHits
	stats.PublisherHits = totals.publisherHits
	stats.CacheHitRatio = totals.cacheHitRatio()

	s.snapshotPopularity(policy)
	core.LogInfo(s, policy, ": ", stats.TotalRequests, " requests, ", stats.CacheHits, " cache hits, ",
		stats.PublisherHits, " publisher hits, CHR ", stats.CacheHitRatio, "%")
	return stats, nil
}

// RunAll runs the specified policies in order. The configured policies are used if none are specified.
func (s *Simulation) RunAll(policies []table.CsPolicy, iterations int) ([]*PolicyStats, error) {
	if len(policies) == 0 {
		policies = s.config.Policies
	}
	results := make([]*PolicyStats, 0, len(policies))
	for _, policy := range policies {
		stats, err := s.Run(policy, iterations)
		if err != nil {
			return results, err
		}
		results = append(results, stats)
	}
	return results, nil
}

func (s *Simulation) snapshotPopularity(policy table.CsPolicy) {
	for _, router := range s.network.Routers {
		router.PopularityTable().Rank()
		s.popularity[string(policy)+"/"+router.Name()] = router.PopularityTable().Records()
	}
}

// PolicyPopularity returns the popularity records of a router at the end of the latest run of the specified policy.
func (s *Simulation) PolicyPopularity(policy table.CsPolicy, router string) []table.PopularityRecord {
	return s.popularity[string(policy)+"/"+router]
}

// GlobalPopularity sums the popularity of each content over every router and policy run so far and ranks the result.
func (s *Simulation) GlobalPopularity() []table.GlobalPopularityRecord {
	return table.AggregatePopularity(s.popularity)
}

// RunSelection issues at most one request per iteration. Before each request, both selection procedures elect a
// router on the path of the requested content; the centrality measures are recomputed after the request.
func (s *Simulation) RunSelection(iterations int) []selection.ComparisonRow {
	contents := s.network.Contents()
	routers := s.network.SelectionRouters()
	metrics := s.network.Metrics()
	rows := make([]selection.ComparisonRow, 0, iterations)

	for i := 0; i < iterations; i++ {
		subscriber, name, _ := s.pickRequest(contents)
		if subscriber == nil {
			continue
		}

		// Failed procedures return nil, reported as N/A
		manual, _ := s.selector.ManualRouterSelection(routers, metrics, name)
		ai, _ := s.selector.AIRecommenderProcess(routers, metrics, name)
		rows = append(rows, selection.NewComparisonRow(name, manual, ai))

		s.request(subscriber, name)
		metrics = s.network.Metrics()
	}

	if leader, ok := s.selector.TaskMigrationLeader(); ok {
		core.LogInfo(s, "Task migration leader after ", len(rows), " selections: ", leader)
	}
	return rows
}
