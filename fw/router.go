/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/dispatch"
	"github.com/named-data/YaCSim/ndn"
	"github.com/named-data/YaCSim/table"
)

const accessTimeKey = "access-time"

// RouterConfig contains the parameters of a router.
type RouterConfig struct {
	Policy table.CsPolicy
	Cs     table.CsConfig
	Alpha  float64

	// Rand draws access times. Defaults to a time-seeded source.
	Rand *rand.Rand

	// Directory is used to report content IDs in logs. May be nil.
	Directory *table.ContentDirectory
}

// DefaultRouterConfig returns the router configuration in effect, using the specified replacement policy.
func DefaultRouterConfig(policy table.CsPolicy) RouterConfig {
	return RouterConfig{
		Policy: policy,
		Cs:     table.DefaultCsConfig(),
		Alpha:  table.DefaultPopularityAlpha(),
	}
}

// Router is a content router with a Content Store, PIT, FIB and popularity table.
type Router struct {
	name         string
	dispatch     *dispatch.Dispatch
	directory    *table.ContentDirectory
	rng          *rand.Rand
	cs           *table.ContentStore
	pit          *table.Pit
	fib          *table.Fib
	popularity   *table.PopularityTable
	measurements *table.Measurements

	// Counters
	nCacheHits           int
	nPublisherHits       int
	nServedFromCache     int
	nServedFromPublisher int
	nTotalRequests       int
	totalAccessTime      float64
}

// NewRouter creates a router and registers it with the specified dispatch table.
func NewRouter(name string, d *dispatch.Dispatch, config RouterConfig) (*Router, error) {
	r := new(Router)
	r.name = name
	r.dispatch = d
	r.directory = config.Directory
	r.rng = config.Rand
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.pit = table.NewPit()
	r.fib = table.NewFib()
	r.popularity = table.NewPopularityTable(config.Alpha)
	r.measurements = table.NewMeasurements()

	var err error
	r.cs, err = table.NewContentStore(name, config.Policy, r.popularity, config.Cs)
	if err != nil {
		return nil, err
	}

	if d != nil {
		d.AddForwarder(r)
	}
	return r, nil
}

func (r *Router) String() string {
	return "Router-" + r.name
}

// Name returns the name of the router.
func (r *Router) Name() string {
	return r.name
}

// Policy returns the replacement policy of the router's Content Store.
func (r *Router) Policy() table.CsPolicy {
	return r.cs.Policy()
}

// SetPolicy changes the replacement policy of the router's Content Store.
func (r *Router) SetPolicy(name string) error {
	policy, err := table.ParseCsPolicy(name)
	if err != nil {
		return err
	}
	return r.cs.SetPolicy(policy)
}

// Reset clears the Content Store, PIT, popularity table, measurements and counters. The FIB is kept.
func (r *Router) Reset() {
	r.cs.Clear()
	r.pit.Clear()
	r.popularity.Clear()
	r.measurements.DeletePrefix("")
	r.nCacheHits = 0
	r.nPublisherHits = 0
	r.nServedFromCache = 0
	r.nServedFromPublisher = 0
	r.nTotalRequests = 0
	r.totalAccessTime = 0
	core.LogDebug(r, "Reset with policy ", r.cs.Policy())
}

func (r *Router) contentID(name string) string {
	if id, ok := r.directory.ID(name); ok {
		return name + " (ID " + strconv.Itoa(id) + ")"
	}
	return name
}

// ReceiveInterest processes an Interest sent by the specified requester. Data is delivered to the requester
// by whichever router on the path can satisfy the Interest. Dropped Interests are reported as errors.
func (r *Router) ReceiveInterest(interest *ndn.Interest, requester dispatch.Requester) error {
	name := interest.Name()
	r.measurements.AddToMeasurementInt(requestKey(name), 1)
	r.nTotalRequests++
	core.LogTrace(r, "OnIncomingInterest: ", r.contentID(name), " from ", requester.Name())

	accessTime := 0.01 + r.rng.Float64()*0.09
	r.totalAccessTime += accessTime
	r.measurements.AddSampleToEWMA(accessTimeKey, accessTime, accessTimeAlpha)

	if interest.HasVisited(r.name) {
		core.LogDebug(r, "Loop detected for ", interest, " - DROP")
		return core.ErrLoopDetected
	}
	interest.Visit(r.name)

	if r.pit.Insert(name, requester.Name()) {
		core.LogTrace(r, "Created PIT entry for ", name, " requested by ", requester.Name())
	}

	if r.cs.Contains(name) {
		r.nCacheHits++
		r.nServedFromCache++
		core.LogDebug(r, "Cache hit: serving ", r.contentID(name), " from cache")
		requester.ReceiveData(ndn.NewData(name, []byte(name)))
		return nil
	}

	r.nPublisherHits++
	core.LogDebug(r, "Cache miss: fetching ", r.contentID(name), " from next hop")
	err := r.forwardInterest(interest, requester)
	r.nServedFromPublisher++
	return err
}

func (r *Router) forwardInterest(interest *ndn.Interest, requester dispatch.Requester) error {
	name := interest.Name()
	nexthop, ok := r.fib.Lookup(name)
	if !ok {
		core.LogInfo(r, "No route found in FIB for ", name, " - DROP")
		return &core.RoutingFailure{Router: r.name, Name: name}
	}

	switch nexthop.Kind {
	case table.NextHopRouter:
		if next := r.lookupForwarder(nexthop.Name); next != nil {
			return next.ReceiveInterest(interest, requester)
		}
	case table.NextHopPublisher:
		if producer := r.lookupProducer(nexthop.Name); producer != nil {
			data := producer.ServeContent(name)
			if data == nil {
				core.LogInfo(r, producer, " has no content ", name, " - DROP")
				return nil
			}
			r.ReceiveData(data)
			requester.ReceiveData(data)
			return nil
		}
	}

	core.LogWarn(r, "Next hop ", nexthop, " for ", name, " does not exist - DROP")
	return &core.RoutingFailure{Router: r.name, Name: name}
}

func (r *Router) lookupForwarder(name string) dispatch.Forwarder {
	if r.dispatch == nil {
		return nil
	}
	return r.dispatch.GetForwarder(name)
}

func (r *Router) lookupProducer(name string) dispatch.Producer {
	if r.dispatch == nil {
		return nil
	}
	return r.dispatch.GetProducer(name)
}

// ReceiveData admits Data into the Content Store and counts it in the popularity table.
func (r *Router) ReceiveData(data *ndn.Data) {
	if evicted := r.cs.Admit(data.Name()); evicted != "" {
		core.LogDebug(r, "Evicted ", r.contentID(evicted), " from Content Store (", r.cs.Policy(), ")")
	}
	core.LogDebug(r, "Cached ", r.contentID(data.Name()), " in Content Store")
	r.popularity.Update(data.Name(), table.FeedbackNone)
}

// UpdatePopularity counts one more request for the specified content in the popularity table, weighted by the feedback.
func (r *Router) UpdatePopularity(name string, feedback table.Feedback) {
	r.popularity.Update(name, feedback)
	core.LogTrace(r, "Popularity of ", name, " updated with feedback ", feedback)
}

// ContentStore returns the router's Content Store.
func (r *Router) ContentStore() *table.ContentStore {
	return r.cs
}

// CsContents returns the names cached in the Content Store, in insertion order.
func (r *Router) CsContents() []string {
	return r.cs.Names()
}

// PitContents returns the pending entries of the PIT.
func (r *Router) PitContents() []table.PitEntry {
	return r.pit.Entries()
}

// Fib returns the router's FIB.
func (r *Router) Fib() *table.Fib {
	return r.fib
}

// PopularityTable returns the router's popularity table.
func (r *Router) PopularityTable() *table.PopularityTable {
	return r.popularity
}

// RequestCount returns how many Interests for the specified content reached this router.
func (r *Router) RequestCount(name string) int {
	return r.measurements.GetInt(requestKey(name))
}

// AverageAccessTime returns the moving average of access times sampled by this router.
func (r *Router) AverageAccessTime() float64 {
	return r.measurements.GetFloat(accessTimeKey)
}

// Counters returns a snapshot of the router's statistics.
func (r *Router) Counters() Counters {
	return Counters{
		NCacheHits:           r.nCacheHits,
		NPublisherHits:       r.nPublisherHits,
		NServedFromCache:     r.nServedFromCache,
		NServedFromPublisher: r.nServedFromPublisher,
		NEvictions:           r.cs.Evictions(),
		NTotalRequests:       r.nTotalRequests,
		TotalAccessTime:      r.totalAccessTime,
	}
}

func requestKey(name string) string {
	return "requests/" + name
}
