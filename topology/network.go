/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package topology

import (
	"fmt"
	"math/rand"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/dispatch"
	"github.com/named-data/YaCSim/fw"
	"github.com/named-data/YaCSim/selection"
	"github.com/named-data/YaCSim/table"
)

// Network is a set of routers, publishers and subscribers sharing one dispatch table and content directory.
type Network struct {
	Dispatch    *dispatch.Dispatch
	Directory   *table.ContentDirectory
	Routers     []*fw.Router
	Publishers  []*fw.Publisher
	Subscribers []*fw.Subscriber
}

// Contents returns every content name served by the network, in content ID order.
func (n *Network) Contents() []string {
	return n.Directory.Names()
}

// Router returns the router with the specified name, or nil.
func (n *Network) Router(name string) *fw.Router {
	for _, router := range n.Routers {
		if router.Name() == name {
			return router
		}
	}
	return nil
}

// SelectionRouters returns the routers as seen by the selection engine.
func (n *Network) SelectionRouters() []selection.Router {
	routers := make([]selection.Router, len(n.Routers))
	for i, router := range n.Routers {
		routers[i] = router
	}
	return routers
}

// Graph returns the router graph induced by the current FIBs.
func (n *Network) Graph() *Graph {
	return FromFibs(n.Routers)
}

// Metrics returns the centrality measures of the current router graph.
func (n *Network) Metrics() selection.NetworkMetrics {
	return Centrality(n.Graph())
}

// SetPolicy switches every router to the specified replacement policy and resets them.
func (n *Network) SetPolicy(policy string) error {
	for _, router := range n.Routers {
		if err := router.SetPolicy(policy); err != nil {
			return err
		}
		router.Reset()
	}
	return nil
}

// BuildConfig contains the parameters used to create the nodes of a network.
type BuildConfig struct {
	Router fw.RouterConfig
	Rand   *rand.Rand
}

func newNetwork(publishers []*fw.Publisher) *Network {
	n := new(Network)
	n.Dispatch = dispatch.NewDispatch()
	n.Publishers = publishers
	catalogues := make([][]string, len(publishers))
	for i, publisher := range publishers {
		catalogues[i] = publisher.Catalogue()
		n.Dispatch.AddProducer(publisher)
	}
	n.Directory = table.NewContentDirectory(catalogues...)
	return n
}

func (n *Network) addRouter(name string, config BuildConfig) (*fw.Router, error) {
	routerConfig := config.Router
	routerConfig.Directory = n.Directory
	if routerConfig.Rand == nil {
		routerConfig.Rand = config.Rand
	}
	router, err := fw.NewRouter(name, n.Dispatch, routerConfig)
	if err != nil {
		return nil, err
	}
	n.Routers = append(n.Routers, router)
	return router, nil
}

func (n *Network) addSubscriber(name string, router *fw.Router, config BuildConfig) *fw.Subscriber {
	subscriber := fw.NewSubscriber(name, config.Rand)
	subscriber.Connect(router)
	n.Subscribers = append(n.Subscribers, subscriber)
	return subscriber
}

// BuildLine creates routers Router1..RouterN and subscribers Subscriber1..SubscriberM attached round-robin.
// Every router forwards every content to the router three positions further, or to the last router when closer to it;
// the last router forwards each content to the publisher serving it.
func BuildLine(nRouters int, nSubscribers int, publishers []*fw.Publisher, config BuildConfig) (*Network, error) {
	if nRouters < 1 {
		return nil, &core.ConfigurationError{Key: "sim.routers", Value: fmt.Sprint(nRouters)}
	}
	if nSubscribers < 0 {
		return nil, &core.ConfigurationError{Key: "sim.subscribers", Value: fmt.Sprint(nSubscribers)}
	}

	n := newNetwork(publishers)
	for i := 1; i <= nRouters; i++ {
		if _, err := n.addRouter(fmt.Sprintf("Router%d", i), config); err != nil {
			return nil, err
		}
	}
	for i := 1; i <= nSubscribers; i++ {
		n.addSubscriber(fmt.Sprintf("Subscriber%d", i), n.Routers[(i-1)%nRouters], config)
	}
	SetupLineFib(n.Routers, publishers)
	core.LogInfo("Topology", "Built line of ", nRouters, " routers, ", len(publishers), " publishers, ",
		nSubscribers, " subscribers, ", n.Directory.Len(), " contents")
	return n, nil
}

// SetupLineFib fills the FIBs of the routers for every content of the publishers: router i forwards to router i+1,
// overridden by skip links to i+2 and i+3 when they exist. The last router forwards to the publishers.
func SetupLineFib(routers []*fw.Router, publishers []*fw.Publisher) {
	if len(routers) == 0 {
		return
	}
	contents := make([]string, 0)
	for _, publisher := range publishers {
		contents = append(contents, publisher.Catalogue()...)
	}

	for i, router := range routers {
		if i < len(routers)-1 {
			for _, name := range contents {
				router.Fib().Insert(name, table.RouterHop(routers[i+1].Name()))
			}
		}
		for j := i + 2; j < i+4 && j < len(routers); j++ {
			for _, name := range contents {
				router.Fib().Insert(name, table.RouterHop(routers[j].Name()))
			}
		}
	}

	last := routers[len(routers)-1]
	for _, publisher := range publishers {
		for _, name := range publisher.Catalogue() {
			last.Fib().Insert(name, table.PublisherHop(publisher.Name()))
		}
	}
}

// SyntheticCatalogue returns n content objects named <prefix>_image1.jpg to <prefix>_image<n>.jpg.
func SyntheticCatalogue(prefix string, n int) map[string][]byte {
	catalogue := make(map[string][]byte, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%s_image%d.jpg", prefix, i)
		catalogue[name] = []byte(name)
	}
	return catalogue
}

// DefaultPublishers returns the two synthetic publishers of 50 cat and 50 dog images.
func DefaultPublishers() []*fw.Publisher {
	return []*fw.Publisher{
		fw.NewPublisher("Publisher1", SyntheticCatalogue("cat", 50)),
		fw.NewPublisher("Publisher2", SyntheticCatalogue("dog", 50)),
	}
}
