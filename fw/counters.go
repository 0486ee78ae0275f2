/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

// Counters is a snapshot of the statistics of a router.
type Counters struct {
	NCacheHits           int
	NPublisherHits       int
	NServedFromCache     int
	NServedFromPublisher int
	NEvictions           int
	NTotalRequests       int
	TotalAccessTime      float64
}

// CacheHitRatio returns the percentage of cache lookups that hit, or 0 if there was none.
func (c Counters) CacheHitRatio() float64 {
	lookups := c.NCacheHits + c.NPublisherHits
	if lookups == 0 {
		return 0
	}
	return float64(c.NCacheHits) / float64(lookups) * 100
}
