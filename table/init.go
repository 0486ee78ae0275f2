/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"time"

	"github.com/named-data/YaCSim/core"
)

// csCapacity is the maximum number of entries in a Content Store.
var csCapacity = 15

// csTopNPopular is the number of Content Store slots reserved for popular content by FACR.
var csTopNPopular = 5

// csTTL is the lifetime of a Content Store entry after its latest admission.
var csTTL = 5 * time.Minute

// csReplacementPolicy is the default Content Store replacement policy.
var csReplacementPolicy = "LRU"

// popularityAlpha is the default EWMA smoothing factor of popularity tables.
var popularityAlpha = 0.9

// Configure configures the tables from the loaded configuration.
func Configure() {
	csCapacity = core.GetConfigIntDefault("tables.cs.capacity", 15)
	csTopNPopular = core.GetConfigIntDefault("tables.cs.top_n_popular", 5)
	csTTL = time.Duration(core.GetConfigIntDefault("tables.cs.ttl", 300000)) * time.Millisecond
	csReplacementPolicy = core.GetConfigStringDefault("tables.cs.policy", "LRU")
	popularityAlpha = core.GetConfigFloatDefault("tables.popularity.alpha", 0.9)
	core.LogDebug("Tables", "Configured CS capacity=", csCapacity, ", top-n=", csTopNPopular,
		", ttl=", csTTL, ", policy=", csReplacementPolicy, ", alpha=", popularityAlpha)
}

// DefaultCsConfig returns the Content Store configuration in effect.
func DefaultCsConfig() CsConfig {
	return CsConfig{
		Capacity:    csCapacity,
		TopNPopular: csTopNPopular,
		TTL:         csTTL,
	}
}

// DefaultCsPolicy returns the name of the configured Content Store replacement policy.
func DefaultCsPolicy() string {
	return csReplacementPolicy
}

// DefaultPopularityAlpha returns the configured EWMA smoothing factor.
func DefaultPopularityAlpha() float64 {
	return popularityAlpha
}
