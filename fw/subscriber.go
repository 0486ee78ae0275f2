/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"math/rand"
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/dispatch"
	"github.com/named-data/YaCSim/ndn"
	"github.com/named-data/YaCSim/table"
)

// Subscriber is a consumer attached to one router. It rates every Data it receives.
type Subscriber struct {
	name   string
	router *Router
	rng    *rand.Rand
	active bool

	nReceived    int
	lastReceived string
	lastFeedback table.Feedback
}

// NewSubscriber creates an active subscriber. A nil source is replaced by a time-seeded one.
func NewSubscriber(name string, rng *rand.Rand) *Subscriber {
	s := new(Subscriber)
	s.name = name
	s.rng = rng
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.active = true
	return s
}

func (s *Subscriber) String() string {
	return "Subscriber-" + s.name
}

// Name returns the name of the subscriber.
func (s *Subscriber) Name() string {
	return s.name
}

// Connect attaches the subscriber to the specified router, which receives its feedback.
func (s *Subscriber) Connect(router *Router) {
	s.router = router
}

// Router returns the router the subscriber is attached to.
func (s *Subscriber) Router() *Router {
	return s.router
}

// Active returns whether the subscriber currently takes part in the simulation.
func (s *Subscriber) Active() bool {
	return s.active
}

// SetActive sets whether the subscriber takes part in the simulation.
func (s *Subscriber) SetActive(active bool) {
	s.active = active
}

// SendInterest sends a fresh Interest for the specified name to the specified router.
func (s *Subscriber) SendInterest(name string, router dispatch.Forwarder) error {
	if router == nil {
		return &core.RoutingFailure{Router: s.name, Name: name}
	}
	interest := ndn.NewInterestWithNonce(name, 1000+s.rng.Intn(9000))
	core.LogTrace(s, "Sending ", interest, " to ", router.Name())
	return router.ReceiveInterest(interest, s)
}

// Request sends an Interest for the specified name to the connected router.
func (s *Subscriber) Request(name string) error {
	if s.router == nil {
		return s.SendInterest(name, nil)
	}
	return s.SendInterest(name, s.router)
}

// ReceiveData records the delivery and sends random feedback about it to the connected router.
func (s *Subscriber) ReceiveData(data *ndn.Data) {
	s.nReceived++
	s.lastReceived = data.Name()
	core.LogDebug(s, "Received ", data)

	feedback := table.AllFeedback[s.rng.Intn(len(table.AllFeedback))]
	s.ProvideFeedback(s.router, data.Name(), feedback)
}

// ProvideFeedback sends feedback about the specified content to the specified router.
func (s *Subscriber) ProvideFeedback(router *Router, name string, feedback table.Feedback) {
	s.lastFeedback = feedback
	if router == nil {
		return
	}
	core.LogDebug(s, "Providing feedback ", feedback, " for ", name, " via ", router.Name())
	router.UpdatePopularity(name, feedback)
}

// Received returns how many Data packets the subscriber has received.
func (s *Subscriber) Received() int {
	return s.nReceived
}

// LastReceived returns the name of the latest Data received.
func (s *Subscriber) LastReceived() string {
	return s.lastReceived
}

// LastFeedback returns the latest feedback the subscriber gave.
func (s *Subscriber) LastFeedback() table.Feedback {
	return s.lastFeedback
}
