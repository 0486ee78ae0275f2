/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package selection

import (
	"math/rand"

	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/table"
	"github.com/named-data/YaCSim/utils/comparison"
)

// defaultDegree is assumed for routers missing from the degree centrality map when estimating latency.
const defaultDegree = 0.5

// NetworkMetrics contains the centrality measures of every router of a topology, keyed by router name.
type NetworkMetrics struct {
	Degree      map[string]float64
	Betweenness map[string]float64
	Closeness   map[string]float64
}

// Router is the read-only view of a router used to evaluate it.
type Router interface {
	Name() string
	Fib() *table.Fib
	ContentStore() *table.ContentStore
	Counters() fw.Counters
}

// RouterMetrics are the performance measures of a router at the time of a selection.
type RouterMetrics struct {
	Router         string
	CacheOccupancy float64
	Cmba           float64
	Latency        float64
	CacheHitRatio  float64
	Degree         float64
	Betweenness    float64
	Closeness      float64

	ManualScore   float64
	EnsembleScore float64
}

// Cmba returns the centrality-based multi-metric balanced assessment of the specified router.
// Missing centrality values count as 0.
func (m NetworkMetrics) Cmba(router string) float64 {
	return 0.3*m.Degree[router] + 0.4*m.Betweenness[router] + 0.3*m.Closeness[router]
}

// Evaluate computes the metrics of a router. The latency estimate draws from the specified source.
func Evaluate(router Router, network NetworkMetrics, rng *rand.Rand) RouterMetrics {
	name := router.Name()
	cs := router.ContentStore()
	counters := router.Counters()

	degree, ok := network.Degree[name]
	if !ok {
		degree = defaultDegree
	}
	baseLatency := 0.01 + rng.Float64()*0.09
	missFactor := 1 - float64(counters.NCacheHits)/float64(comparison.Max(counters.NCacheHits+counters.NPublisherHits, 1))

	return RouterMetrics{
		Router:         name,
		CacheOccupancy: float64(cs.Size()) / float64(cs.Capacity()) * 100,
		Cmba:           network.Cmba(name),
		Latency:        baseLatency * missFactor * (2 - degree),
		CacheHitRatio:  counters.CacheHitRatio(),
		Degree:         network.Degree[name],
		Betweenness:    network.Betweenness[name],
		Closeness:      network.Closeness[name],
	}
}

// ManualScore is the weighted score of the manual selection procedure.
func ManualScore(m RouterMetrics) float64 {
	return 0.20*m.CacheOccupancy + 0.30*m.Cmba*100 + 0.25*(100-m.Latency*1000) + 0.25*m.CacheHitRatio
}

// EnsembleScore combines the three sub-scores of the ensemble selection procedure.
func EnsembleScore(m RouterMetrics) float64 {
	score1 := 0.25*m.CacheOccupancy + 0.35*m.Cmba*100 + 0.25*(100-m.Latency*1000) + 0.15*m.CacheHitRatio
	score2 := 0.40*m.CacheHitRatio + 0.30*(100-m.Latency*1000) + 0.30*m.Cmba*100
	score3 := m.CacheHitRatio / comparison.Max(m.Latency*1000, 0.1) * m.Cmba * 100
	return 0.40*score1 + 0.35*score2 + 0.25*score3
}
