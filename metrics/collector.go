/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package metrics exposes router statistics as Prometheus metrics.
package metrics

import (
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/table"
	"github.com/prometheus/client_golang/prometheus"
)

// Router is the read-only view of a router exported by the collector.
type Router interface {
	Name() string
	Policy() table.CsPolicy
	ContentStore() *table.ContentStore
	Counters() fw.Counters
}

// RouterCollector reads the counters of a set of routers every time it is collected.
type RouterCollector struct {
	routers []Router

	cacheHits     *prometheus.Desc
	publisherHits *prometheus.Desc
	evictions     *prometheus.Desc
	totalRequests *prometheus.Desc
	accessTime    *prometheus.Desc
	csEntries     *prometheus.Desc
	csOccupancy   *prometheus.Desc
	cacheHitRatio *prometheus.Desc
}

var routerLabels = []string{"router", "policy"}

// NewRouterCollector creates a collector over the specified routers.
func NewRouterCollector[R Router](routers []R) *RouterCollector {
	c := new(RouterCollector)
	c.routers = make([]Router, len(routers))
	for i, router := range routers {
		c.routers[i] = router
	}
	c.cacheHits = prometheus.NewDesc("yacsim_cache_hits_total",
		"Interests satisfied from the Content Store", routerLabels, nil)
	c.publisherHits = prometheus.NewDesc("yacsim_publisher_hits_total",
		"Interests that missed the Content Store", routerLabels, nil)
	c.evictions = prometheus.NewDesc("yacsim_cs_evictions_total",
		"Admissions that found the Content Store full", routerLabels, nil)
	c.totalRequests = prometheus.NewDesc("yacsim_requests_total",
		"Interests received, including dropped ones", routerLabels, nil)
	c.accessTime = prometheus.NewDesc("yacsim_access_time_seconds_total",
		"Sum of the simulated access times", routerLabels, nil)
	c.csEntries = prometheus.NewDesc("yacsim_cs_entries",
		"Entries in the Content Store", routerLabels, nil)
	c.csOccupancy = prometheus.NewDesc("yacsim_cs_occupancy_percent",
		"Content Store size relative to its capacity", routerLabels, nil)
	c.cacheHitRatio = prometheus.NewDesc("yacsim_cache_hit_ratio_percent",
		"Cache hits relative to all Content Store lookups", routerLabels, nil)
	return c
}

// Describe implements prometheus.Collector.
func (c *RouterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cacheHits
	ch <- c.publisherHits
	ch <- c.evictions
	ch <- c.totalRequests
	ch <- c.accessTime
	ch <- c.csEntries
	ch <- c.csOccupancy
	ch <- c.cacheHitRatio
}

// Collect implements prometheus.Collector.
func (c *RouterCollector) Collect(ch chan<- prometheus.Metric) {
	for _, router := range c.routers {
		labels := []string{router.Name(), string(router.Policy())}
		counters := router.Counters()
		cs := router.ContentStore()

		ch <- prometheus.MustNewConstMetric(c.cacheHits, prometheus.CounterValue, float64(counters.NCacheHits), labels...)
		ch <- prometheus.MustNewConstMetric(c.publisherHits, prometheus.CounterValue, float64(counters.NPublisherHits), labels...)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(counters.NEvictions), labels...)
		ch <- prometheus.MustNewConstMetric(c.totalRequests, prometheus.CounterValue, float64(counters.NTotalRequests), labels...)
		ch <- prometheus.MustNewConstMetric(c.accessTime, prometheus.CounterValue, counters.TotalAccessTime, labels...)
		ch <- prometheus.MustNewConstMetric(c.csEntries, prometheus.GaugeValue, float64(cs.Size()), labels...)
		ch <- prometheus.MustNewConstMetric(c.csOccupancy, prometheus.GaugeValue,
			float64(cs.Size())/float64(cs.Capacity())*100, labels...)
		ch <- prometheus.MustNewConstMetric(c.cacheHitRatio, prometheus.GaugeValue, counters.CacheHitRatio(), labels...)
	}
}

// WriteTextfile writes the current metrics of the routers to a file in the Prometheus text format.
func WriteTextfile[R Router](file string, routers []R) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(NewRouterCollector(routers)); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(file, registry)
}
